package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lebin",
	Short: "lebin - little-endian binary counter toolkit",
	Long: `lebin converts between natural numbers and little-endian binary
digit trees, normalizes non-canonical trees, and checks the codec's
correctness laws.

Trees are written as least-significant-first digit strings: "101" is 5,
"10" is a non-canonical spelling of 1.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Timeout for long-running commands")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(convCmd)
	rootCmd.AddCommand(normCmd)
	rootCmd.AddCommand(incCmd)
	rootCmd.AddCommand(checkCmd)
}
