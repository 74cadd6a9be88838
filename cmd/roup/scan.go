package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ouankou/roup/internal/cache"
	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/lexer"
	"github.com/ouankou/roup"
)

var scan ViewableExtensions = ViewableExtensions{
	lang.C:            {".c", ".h"},
	lang.CXX:          {".cc", ".cpp", ".cxx", ".hpp", ".hh"},
	lang.FortranFree:  {".f90", ".f95", ".f03", ".f08"},
	lang.FortranFixed: {".f", ".for", ".f77"},
}

// ViewableExtensions maps each host language to the file extensions scan
// recognizes as written in it.
type ViewableExtensions map[lang.Language][]string

// languageFor reports the host language path's extension implies, or
// false if the extension is not one scan recognizes.
func (v ViewableExtensions) languageFor(path string) (lang.Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for l, exts := range v {
		for _, e := range exts {
			if e == ext {
				return l, true
			}
		}
	}
	return 0, false
}

// FileResult is one file's worth of a directory scan.
type FileResult struct {
	Path       string
	Language   lang.Language
	Directives int
	Errors     []error
}

var scanCmd = &cobra.Command{
	Use:   "scan [flags] dir",
	Short: "Parse every recognized source file under a directory tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().Int("jobs", 0, "parallel worker count (0 = GOMAXPROCS)")
	scanCmd.Flags().Bool("cache", false, "memoize parse results in the disk cache")
}

func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := scan.languageFor(path); ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// scanDir parses every recognized file under dir concurrently, reporting
// progress through report (which may be nil).
func scanDir(ctx context.Context, dir string, jobs int, c *cache.Disk, report func(path, status string)) ([]FileResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(files), 1)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if report != nil {
				report(path, "scanning")
			}
			l, _ := scan.languageFor(path)
			raw, err := os.ReadFile(path)
			if err != nil {
				results[i] = FileResult{Path: path, Language: l, Errors: []error{err}}
				if report != nil {
					report(path, "error")
				}
				return nil
			}
			var directives []*roup.Directive
			var errs []error
			if c != nil {
				for _, group := range splitForCache(raw, l) {
					d, err := roup.ParseCached(c, group, l)
					if err == nil {
						directives = append(directives, d)
					} else if diag.CodeOf(err) != diag.NoDirective {
						errs = append(errs, err)
					}
				}
			} else {
				directives, errs = roup.ParseAll(string(raw), l)
			}
			results[i] = FileResult{Path: path, Language: l, Directives: len(directives), Errors: errs}
			if report != nil {
				report(path, "done")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func splitForCache(raw []byte, l lang.Language) []string {
	return lexer.SplitLogicalLines(string(raw), l)
}

func runScan(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}

	var c *cache.Disk
	if useCache {
		dir, err := resolveCacheDir(cmd)
		if err != nil {
			return err
		}
		if dir == "" {
			c, err = cache.OpenDefault()
		} else {
			c, err = cache.Open(dir)
		}
		if err != nil {
			return err
		}
	}

	results, err := scanDir(cmd.Context(), args[0], jobs, c, nil)
	if err != nil {
		return err
	}

	total := 0
	failed := 0
	for _, r := range results {
		total += r.Directives
		failed += len(r.Errors)
		fmt.Fprintf(cmd.OutOrStdout(), "%-60s %3d directives", r.Path, r.Directives)
		if len(r.Errors) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "  (%d errors)", len(r.Errors))
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d files, %d directives, %d errors\n", len(results), total, failed)
	return nil
}
