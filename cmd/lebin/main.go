package main

import (
	"os"

	"github.com/lowbit-labs/lebin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
