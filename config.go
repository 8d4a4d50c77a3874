package lebin

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lowbit-labs/lebin/internal/checker"
)

// DefaultConfigName is the config file the CLI looks for and the file
// `lebin init` writes.
const DefaultConfigName = ".lebin.yaml"

// Config describes the domain the law checker runs over.
type Config struct {
	Name            string `yaml:"name"`
	MaxNatural      uint64 `yaml:"max-natural"`
	MaxDigits       int    `yaml:"max-digits"`
	RandomTrials    int    `yaml:"random-trials"`
	RandomMaxDigits int    `yaml:"random-max-digits"`
	Seed            int64  `yaml:"seed"`
}

// DefaultConfig returns the default checking domain.
func DefaultConfig() Config {
	c := checker.DefaultConfig()
	return Config{
		Name:            "lebin",
		MaxNatural:      c.MaxNatural,
		MaxDigits:       c.MaxDigits,
		RandomTrials:    c.RandomTrials,
		RandomMaxDigits: c.RandomMaxDigits,
		Seed:            c.Seed,
	}
}

// LoadConfig reads a YAML config file. An empty path yields the
// default config; unset fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}

// Save writes the config as YAML to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(data)
	return err
}

func (c Config) checkerConfig() checker.Config {
	return checker.Config{
		MaxNatural:      c.MaxNatural,
		MaxDigits:       c.MaxDigits,
		RandomTrials:    c.RandomTrials,
		RandomMaxDigits: c.RandomMaxDigits,
		Seed:            c.Seed,
	}
}
