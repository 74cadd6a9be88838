package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/lexer"
	"github.com/ouankou/roup"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] file",
	Short: "Re-render every directive line in a source file under a different host language",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("to", "", "target host language (c|c++|fortran-free|fortran-fixed)")
	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, err := resolveLangFlag(cmd)
	if err != nil {
		return err
	}
	toName, err := cmd.Flags().GetString("to")
	if err != nil {
		return err
	}
	to, err := parseLangName(toName)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for _, group := range lexer.SplitLogicalLines(string(raw), from) {
		converted, err := roup.Convert(group, from, to)
		switch {
		case err == nil:
			fmt.Fprintln(out, converted)
		case diag.CodeOf(err) == diag.NoDirective:
			fmt.Fprintln(out, group)
		default:
			return fmt.Errorf("converting %q: %w", group, err)
		}
	}
	return nil
}
