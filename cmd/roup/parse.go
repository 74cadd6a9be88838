package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file",
	Short: "Parse every OpenMP/OpenACC directive in a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
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

	directives, errs := roup.ParseAll(string(raw), l)
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, colorizeError(cmd, e.Error()))
	}

	switch format {
	case "pretty":
		return printDirectivesPretty(os.Stdout, directives)
	case "json":
		return printDirectivesJSON(os.Stdout, directives)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func colorizeError(cmd *cobra.Command, msg string) string {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	if !useColor {
		return "error: " + msg
	}
	return color.New(color.FgRed, color.Bold).Sprint("error: ") + msg
}

func printDirectivesPretty(w *os.File, directives []*ir.Directive) error {
	for i, d := range directives {
		if d == nil {
			continue
		}
		fmt.Fprintf(w, "[%d] %s\n", i, roup.Render(d))
		for _, c := range d.ClausesInOriginalOrder() {
			fmt.Fprintf(w, "    %s (%s)\n", c.Kind.String(), variantName(c.Variant))
		}
	}
	return nil
}

type clauseJSON struct {
	Kind      string   `json:"kind"`
	Variant   string   `json:"variant"`
	Modifiers []string `json:"modifiers,omitempty"`
	Expr      string   `json:"expr,omitempty"`
	Items     []string `json:"items,omitempty"`
	EnumTag   string   `json:"enum_tag,omitempty"`
	EnumArg   string   `json:"enum_arg,omitempty"`
}

type directiveJSON struct {
	Kind     string       `json:"kind"`
	Language string       `json:"language"`
	Text     string       `json:"text"`
	Clauses  []clauseJSON `json:"clauses"`
}

func printDirectivesJSON(w *os.File, directives []*ir.Directive) error {
	out := make([]directiveJSON, 0, len(directives))
	for _, d := range directives {
		if d == nil {
			continue
		}
		dj := directiveJSON{
			Kind:     strings.Join(d.Kind.Words(), " "),
			Language: d.Language.String(),
			Text:     roup.Render(d),
		}
		for _, c := range d.ClausesInOriginalOrder() {
			dj.Clauses = append(dj.Clauses, clauseJSON{
				Kind:      c.Kind.String(),
				Variant:   variantName(c.Variant),
				Modifiers: c.Modifiers,
				Expr:      c.Expr,
				Items:     c.Items,
				EnumTag:   c.EnumTag,
				EnumArg:   c.EnumArg,
			})
		}
		out = append(out, dj)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func variantName(v ir.Variant) string {
	switch v {
	case ir.Bare:
		return "bare"
	case ir.Expression:
		return "expression"
	case ir.List:
		return "list"
	case ir.Enum:
		return "enum"
	case ir.Composite:
		return "composite"
	default:
		return "unknown"
	}
}
