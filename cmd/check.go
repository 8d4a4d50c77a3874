package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lowbit-labs/lebin"
	"github.com/lowbit-labs/lebin/formatter"
)

var checkNoProgress bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the codec's correctness laws",
	Long: `Evaluate every builtin correctness law (round trips, the increment
homomorphism, normalizer idempotence and the canonical-form theorem)
over the domain described by the config file. Exits non-zero if any
law is violated.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := lebin.LoadConfig(cfgFile)
		if err != nil {
			logger.Error("Failed to load config", zap.Error(err))
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		reports, err := lebin.RunChecks(ctx, logger, config, !checkNoProgress)
		if err != nil {
			logger.Error("Law checking aborted", zap.Error(err))
			os.Exit(1)
		}

		fmt.Print(formatter.FormatReports(reports))

		if !lebin.AllHold(reports) {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkNoProgress, "no-progress", false, "Disable the progress bar")
}
