package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ouankou/roup/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "roup",
	Short: "OpenMP/OpenACC directive parser and IR toolkit",
	Long:  `roup parses OpenMP and OpenACC directives out of C, C++, and Fortran source and exposes their structure as a queryable intermediate representation.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("lang", "c", "host language (c|c++|fortran-free|fortran-fixed)")
	rootCmd.PersistentFlags().String("config", "", "path to a roup.toml config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
