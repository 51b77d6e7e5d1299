package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "treebank",
	Short: "Rule-based Penn-Treebank tokenizer",
	Long:  `treebank converts raw text into Penn-Treebank style tokens with exact offsets.`,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
