package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lowbit-labs/lebin/formatter"
	"github.com/lowbit-labs/lebin/internal/bintree"
	"github.com/lowbit-labs/lebin/internal/notation"
)

var normBits string

var normCmd = &cobra.Command{
	Use:   "norm",
	Short: "Normalize a digit tree to canonical form",
	Long: `Reduce a tree to the unique canonical tree denoting the same value,
showing which high-order zero digits were dropped.

Example) lebin norm --bits 10100`,
	Run: func(cmd *cobra.Command, args []string) {
		tree, err := notation.ParseBits(normBits)
		if err != nil {
			logger.Error("Invalid digit string", zap.String("bits", normBits), zap.Error(err))
			os.Exit(1)
		}

		fmt.Print(formatter.FormatNormalization(tree, bintree.Normalize(tree)))
	},
}

func init() {
	normCmd.Flags().StringVar(&normBits, "bits", "", "Digit string to normalize, least significant first")
	_ = normCmd.MarkFlagRequired("bits")
}
