package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/vango-dev/vquery/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		errors.Fprint(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "vquery",
		Short: "Query virtual-node trees with CSS-like selectors",
		Long: `vquery locates nodes in a virtual-node tree stored as a YAML or JSON
fixture, using tag, .class and #id selectors.

Fixture format:

  selector: div.app
  properties:
    role: main
  children:
    - selector: h1
      text: Hello
    - plain text child`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: yaml or json")
	flags.BoolVar(&opts.pretty, "pretty", false, "Indent JSON output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored error output")
	flags.BoolVar(&opts.includeRoot, "include-root", false, "Let selectors match the root node")

	rootCmd.AddCommand(
		queryCmd(opts),
		textCmd(opts),
		countCmd(opts),
		existsCmd(opts),
		watchCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", colored("\033[32m", "✓"), fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", colored("\033[33m", "⚠"), fmt.Sprintf(format, args...))
}

var colorOutput = true

func colored(code, text string) string {
	if !colorOutput {
		return text
	}
	return code + text + "\033[0m"
}
