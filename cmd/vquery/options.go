package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/vango-dev/vquery/internal/config"
	"github.com/vango-dev/vquery/internal/errors"
	"github.com/vango-dev/vquery/pkg/query"
	"github.com/vango-dev/vquery/pkg/vdom"
)

// globalOptions holds the persistent flags merged over the config file.
type globalOptions struct {
	format      string
	pretty      bool
	verbose     bool
	noColor     bool
	includeRoot bool

	cfg    *config.Config
	logger *slog.Logger
}

// resolve loads the config file and applies the flags the user set on top.
func (o *globalOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("pretty") {
		cfg.Pretty = o.pretty
	}
	if flags.Changed("no-color") {
		cfg.NoColor = o.noColor
	}
	if flags.Changed("include-root") {
		cfg.IncludeRoot = o.includeRoot
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.NoColor {
		errors.DisableColors()
		colorOutput = false
	}

	o.cfg = cfg
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	o.logger.Debug("config resolved", "path", cfg.Path(), "format", cfg.Format)
	return nil
}

// projector loads the fixture at path and returns a projector rendering it.
func (o *globalOptions) projector(path string) (*query.Projector, error) {
	tree, err := vdom.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("fixture loaded", "path", path)
	return query.NewProjector(func() *vdom.VNode { return tree }, query.WithLogger(o.logger)), nil
}

// find returns the nodes matching sel. The root itself is only considered
// when include-root is set.
func (o *globalOptions) find(p *query.Projector, sel string) ([]*vdom.VNode, error) {
	if o.cfg.IncludeRoot {
		pred, err := query.Compile(sel)
		if err != nil {
			return nil, err
		}
		root, err := p.Root().Execute()
		if err != nil {
			return nil, err
		}
		return query.FindAll(pred, root), nil
	}

	matches, err := p.TryQueryAll(sel)
	if err != nil {
		return nil, err
	}
	return matches.Nodes()
}
