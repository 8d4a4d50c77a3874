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

var (
	incBits  string
	incCount int
)

var incCmd = &cobra.Command{
	Use:   "inc",
	Short: "Apply the increment transition to a digit tree",
	Long: `Increment a tree one or more times and show the result.

Example) lebin inc --bits 11 --count 3`,
	Run: func(cmd *cobra.Command, args []string) {
		tree, err := notation.ParseBits(incBits)
		if err != nil {
			logger.Error("Invalid digit string", zap.String("bits", incBits), zap.Error(err))
			os.Exit(1)
		}
		if incCount < 0 {
			fmt.Println("error: --count must be non-negative")
			os.Exit(1)
		}

		for i := 0; i < incCount; i++ {
			tree = bintree.Increment(tree)
		}

		fmt.Print(formatter.FormatTree(tree))
	},
}

func init() {
	incCmd.Flags().StringVar(&incBits, "bits", "", "Digit string to increment, least significant first")
	incCmd.Flags().IntVar(&incCount, "count", 1, "Number of increments to apply")
}
