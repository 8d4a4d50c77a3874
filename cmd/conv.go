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
	convNat  uint64
	convBits string
	convSet  struct {
		nat  bool
		bits bool
	}
)

var convCmd = &cobra.Command{
	Use:   "conv",
	Short: "Convert between naturals and digit trees",
	Long: `Convert a natural number to its canonical digit tree, or interpret a
digit string as a natural number.

Example) lebin conv --nat 5
Example) lebin conv --bits 101`,
	Run: func(cmd *cobra.Command, args []string) {
		convSet.nat = cmd.Flags().Changed("nat")
		convSet.bits = cmd.Flags().Changed("bits")

		if convSet.nat == convSet.bits {
			fmt.Println("error: provide exactly one of --nat or --bits")
			os.Exit(1)
		}

		var tree bintree.Tree
		if convSet.nat {
			tree = bintree.Encode(convNat)
		} else {
			var err error
			tree, err = notation.ParseBits(convBits)
			if err != nil {
				logger.Error("Invalid digit string", zap.String("bits", convBits), zap.Error(err))
				os.Exit(1)
			}
		}

		fmt.Print(formatter.FormatTree(tree))
	},
}

func init() {
	convCmd.Flags().Uint64Var(&convNat, "nat", 0, "Natural number to encode")
	convCmd.Flags().StringVar(&convBits, "bits", "", "Digit string to interpret, least significant first")
}
