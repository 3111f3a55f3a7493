package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/publinks/pkg/links"
)

// Result is a link together with the document it was found in.
type Result struct {
	Path string
	Link links.Link
}

// Results pairs every link with path.
func Results(path string, ls []links.Link) []Result {
	out := make([]Result, len(ls))
	for i, l := range ls {
		out[i] = Result{Path: path, Link: l}
	}
	return out
}

type document struct {
	Links []entry `json:"links"`
}

type entry struct {
	Path    string     `json:"path,omitempty"`
	Target  string     `json:"target"`
	URL     string     `json:"url"`
	Tooltip string     `json:"tooltip,omitempty"`
	Range   links.Span `json:"range"`
}

// WriteJSON encodes results as JSON and writes them to w. An empty result set
// is written as an empty array, never null.
func WriteJSON(results []Result, w io.Writer) error {
	out := document{Links: make([]entry, len(results))}
	for i, r := range results {
		out.Links[i] = entry{
			Path:    r.Path,
			Target:  r.Link.Target,
			URL:     r.Link.URL(),
			Tooltip: r.Link.Tooltip,
			Range:   r.Link.Span,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes results to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(results []Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(results, f)
}

// ReadJSON decodes results written by [WriteJSON].
func ReadJSON(r io.Reader) ([]Result, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	out := make([]Result, 0, len(doc.Links))
	for i, e := range doc.Links {
		if e.Target == "" {
			return nil, fmt.Errorf("link %d: missing target", i)
		}
		out = append(out, Result{
			Path: e.Path,
			Link: links.Link{Span: e.Range, Target: e.Target, Tooltip: e.Tooltip},
		})
	}
	return out, nil
}

// WriteLines writes one "path:line:column: target url" line per result.
func WriteLines(results []Result, w io.Writer) error {
	for _, r := range results {
		path := r.Path
		if path == "" {
			path = "-"
		}
		start := r.Link.Span.Start
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s\n", path, start.Line+1, start.Column+1, r.Link.Target, r.Link.URL()); err != nil {
			return err
		}
	}
	return nil
}
