package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	dof "github.com/reoring/godof"
	"github.com/reoring/godof/i18n"
)

type checkResult struct {
	path  string
	doc   *dof.Document
	err   error
	lines []string
}

func newCheckCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate .dof files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			results, err := checkFiles(ctx, args, o.cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.err == nil {
					fmt.Fprintf(out, "%s: ok\n", r.path)
					continue
				}
				failed++
				for _, line := range r.lines {
					fmt.Fprintf(out, "%s: %s\n", r.path, line)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(results))
			}
			return nil
		},
	}
}

// checkFiles parses every path with at most cfg.Workers files in flight.
// Results keep the order of paths.
func checkFiles(ctx context.Context, paths []string, cfg Config) ([]checkResult, error) {
	logger := loggerFromContext(ctx)
	tr := i18n.ForLanguage(cfg.Lang)
	opt := cfg.parseOpt()
	results := make([]checkResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := parseFile(dof.WithLogger(gctx, logger.With("file", path)), path, opt)
			res := checkResult{path: path, doc: doc, err: err}
			if err != nil {
				res.lines = describe(tr, err)
				logger.Debug("check failed", "file", path, "issues", len(res.lines))
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// describe renders err as one line per issue.
func describe(tr i18n.Translator, err error) []string {
	iss, ok := dof.AsIssues(err)
	if !ok {
		return []string{strings.TrimSpace(err.Error())}
	}
	lines := make([]string, len(iss))
	for i, it := range iss {
		lines[i] = formatIssue(tr, it)
	}
	return lines
}
