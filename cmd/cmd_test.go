package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lowbit-labs/lebin"
)

func TestInitCreatesConfigFile(t *testing.T) {
	oldCfg, oldLogger := cfgFile, logger
	defer func() { cfgFile, logger = oldCfg, oldLogger }()

	cfgFile = filepath.Join(t.TempDir(), ".lebin.yaml")
	logger = zap.NewNop()

	initCmd.Run(initCmd, nil)

	config, err := lebin.LoadConfig(cfgFile)
	require.NoError(t, err)
	assert.Equal(t, lebin.DefaultConfig(), config)
}

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"init", "conv", "norm", "inc", "check"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
