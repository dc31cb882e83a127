package main

import (
	"context"
	stderrors "errors"

	"github.com/spf13/cobra"
	"github.com/vango-dev/vquery/internal/watch"
	"github.com/vango-dev/vquery/pkg/query"
	"github.com/vango-dev/vquery/pkg/vdom"
)

func watchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <fixture> <selector>",
		Short: "Re-run a query whenever the fixture changes",
		Long: `Print the matches for a selector, then print them again each time the
fixture file is saved. Invalid edits are reported and the last good tree is
kept. Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runWatch(ctx, cmd, opts, args[0], args[1])
		},
	}
}

func runWatch(ctx context.Context, cmd *cobra.Command, opts *globalOptions, path, sel string) error {
	p, err := opts.projector(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	run := func() {
		nodes, err := opts.find(p, sel)
		if err != nil {
			warn(cmd.ErrOrStderr(), "%v", err)
			return
		}
		if err := printResult(out, opts.cfg, newQueryResult(sel, nodes, opts.cfg.TextLimit)); err != nil {
			warn(cmd.ErrOrStderr(), "%v", err)
		}
	}

	// Reject an invalid selector before watching.
	if _, err := query.Compile(sel); err != nil {
		return err
	}
	run()

	w := watch.New(watch.Config{
		Files:    []string{path},
		Debounce: opts.cfg.DebounceDuration(),
		Logger:   opts.logger,
	})
	w.OnChange(func(string) {
		tree, err := vdom.DecodeFile(path)
		if err != nil {
			warn(cmd.ErrOrStderr(), "keeping previous tree: %v", err)
			return
		}
		p.Initialize(func() *vdom.VNode { return tree })
		success(cmd.ErrOrStderr(), "reloaded %s", path)
		run()
	})

	if err := w.Run(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
