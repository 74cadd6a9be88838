package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ouankou/roup/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file",
	Short: "Tokenize every directive line in a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type tokenJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	l, err := resolveLangFlag(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	for i, group := range lexer.SplitLogicalLines(string(raw), l) {
		body, _, err := lexer.Preprocess(group, l)
		if err != nil {
			continue
		}
		toks, err := lexer.Tokenize(body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "group %d: %v\n", i, err)
			continue
		}
		switch format {
		case "pretty":
			fmt.Printf("group %d:\n", i)
			for _, t := range toks {
				fmt.Printf("  %-12s %q\n", t.Kind.String(), t.Text)
			}
		case "json":
			out := make([]tokenJSON, len(toks))
			for j, t := range toks {
				out[j] = tokenJSON{Kind: t.Kind.String(), Text: t.Text, Line: t.Line, Col: t.Col}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}
	return nil
}
