package main

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/vango-dev/vquery/internal/config"
	"github.com/vango-dev/vquery/pkg/query"
	"github.com/vango-dev/vquery/pkg/vdom"
	"gopkg.in/yaml.v3"
)

// Match is one query result.
type Match struct {
	Selector   string         `yaml:"selector,omitempty"   json:"selector,omitempty"`
	Text       string         `yaml:"text,omitempty"       json:"text,omitempty"`
	Properties map[string]any `yaml:"properties,omitempty" json:"properties,omitempty"`
	Handlers   []string       `yaml:"handlers,omitempty"   json:"handlers,omitempty"`
	Children   int            `yaml:"children"             json:"children"`
}

// QueryResult is the output of the query and watch commands.
type QueryResult struct {
	Selector string  `yaml:"selector" json:"selector"`
	Count    int     `yaml:"count"    json:"count"`
	Matches  []Match `yaml:"matches"  json:"matches"`
}

func newMatch(n *vdom.VNode, textLimit int) Match {
	m := Match{
		Selector: n.Selector,
		Text:     truncate(query.TextContent(n), textLimit),
		Children: len(n.Children),
	}
	for k, v := range n.Properties {
		if v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
			m.Handlers = append(m.Handlers, k)
			continue
		}
		if m.Properties == nil {
			m.Properties = make(map[string]any)
		}
		m.Properties[k] = v
	}
	sort.Strings(m.Handlers)
	return m
}

func newQueryResult(sel string, nodes []*vdom.VNode, textLimit int) QueryResult {
	r := QueryResult{Selector: sel, Count: len(nodes), Matches: []Match{}}
	for _, n := range nodes {
		r.Matches = append(r.Matches, newMatch(n, textLimit))
	}
	return r
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "…"
}

// printResult writes v to w in the configured format.
func printResult(w io.Writer, cfg *config.Config, v any) error {
	if cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(w)
		if cfg.Pretty {
			enc.SetIndent("", "  ")
		}
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
