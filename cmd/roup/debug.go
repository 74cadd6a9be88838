package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ouankou/roup/internal/cliui"
)

var debugCmd = &cobra.Command{
	Use:   "debug [flags] dir",
	Short: "Scan a directory tree with a live progress display",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebug,
}

func init() {
	debugCmd.Flags().Int("jobs", 0, "parallel worker count (0 = GOMAXPROCS)")
}

func runDebug(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	files, err := listSourceFiles(args[0])
	if err != nil {
		return err
	}

	events := make(chan cliui.Event, 256)
	type outcome struct {
		results []FileResult
		err     error
	}
	outcomeCh := make(chan outcome, 1)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	go func() {
		results, err := scanDir(ctx, args[0], jobs, nil, func(path, status string) {
			events <- cliui.Event{Path: path, Status: status}
		})
		outcomeCh <- outcome{results: results, err: err}
		close(events)
	}()

	model := cliui.NewProgressModel("scanning "+args[0], files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return uiErr
	}
	if out.err != nil {
		return out.err
	}

	total := 0
	for _, r := range out.results {
		total += r.Directives
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d files, %d directives\n", len(out.results), total)
	return nil
}
