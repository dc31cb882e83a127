package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-dev/vquery/internal/errors"
	"github.com/vango-dev/vquery/pkg/query"
)

func queryCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "query <fixture> <selector>",
		Short: "List the nodes matching a selector",
		Long: `List every node matching the selector, in document order.

Examples:
  vquery query tree.yaml li.done
  vquery query tree.json '#submit' --format json --pretty`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.projector(args[0])
			if err != nil {
				return err
			}
			nodes, err := opts.find(p, args[1])
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), opts.cfg, newQueryResult(args[1], nodes, opts.cfg.TextLimit))
		},
	}
}

func textCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "text <fixture> <selector>",
		Short: "Print the text content of the first match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.projector(args[0])
			if err != nil {
				return err
			}
			nodes, err := opts.find(p, args[1])
			if err != nil {
				return err
			}
			if len(nodes) == 0 {
				return noMatch(args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), query.TextContent(nodes[0]))
			return nil
		},
	}
}

func countCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "count <fixture> <selector>",
		Short: "Print the number of matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.projector(args[0])
			if err != nil {
				return err
			}
			nodes, err := opts.find(p, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), len(nodes))
			return nil
		},
	}
}

func existsCmd(opts *globalOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "exists <fixture> <selector>",
		Short: "Report whether any node matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.projector(args[0])
			if err != nil {
				return err
			}
			nodes, err := opts.find(p, args[1])
			if err != nil {
				return err
			}
			found := len(nodes) > 0
			fmt.Fprintln(cmd.OutOrStdout(), found)
			if !found && strict {
				return noMatch(args[1])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 when nothing matches")

	return cmd
}

// noMatch reports a selector that matched nothing in the fixture.
func noMatch(sel string) error {
	return errors.New(errors.CodeNoMatch).WithDetailf("%q", sel)
}
