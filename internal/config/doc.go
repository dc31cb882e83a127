// Package config provides configuration for the vquery CLI.
//
// The configuration is stored in vquery.yaml (or vquery.yml / vquery.json)
// in the working directory or any parent directory. Every field is optional;
// command-line flags override file values.
//
// # Configuration File Structure
//
//	format: yaml        # output format: yaml or json
//	pretty: true        # indent JSON output
//	noColor: false      # disable ANSI colors in error output
//	logLevel: info      # debug, info, warn or error
//	textLimit: 80       # truncate text in query output (0 = no limit)
//	includeRoot: false  # let queries match the fixture's root node
//	watch:
//	  debounce: 100ms   # delay before re-running a watched query
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Format)
package config
