// Package dispatch runs the extractor matching a document's kind.
//
// This package exists to break import cycles: the extractor packages (dart,
// pubspec) import pkg/links, so pkg/links cannot import them back. Consumers
// that need a complete scan import this package.
//
// Usage:
//
//	ls := dispatch.Scan(text, links.KindPubspec, links.DefaultConfig())
//	for _, l := range ls {
//	    fmt.Println(l.Target, l.URL())
//	}
package dispatch

import (
	"github.com/matzehuels/publinks/pkg/links"
	"github.com/matzehuels/publinks/pkg/links/dart"
	"github.com/matzehuels/publinks/pkg/links/pubspec"
)

// All is the canonical list of extractors.
var All = []links.Extractor{
	dart.Imports{},
	pubspec.Dependencies{},
}

// Dispatcher routes documents to extractors by kind. It holds no mutable
// state and is safe for concurrent use.
type Dispatcher struct {
	extractors []links.Extractor
}

// New creates a Dispatcher over the given extractors, or over [All] when
// none are given.
func New(extractors ...links.Extractor) *Dispatcher {
	if len(extractors) == 0 {
		extractors = All
	}
	return &Dispatcher{extractors: extractors}
}

// Scan returns the links found in text by every extractor registered for
// kind, concatenated in registration order. Extractors for a kind that cfg
// disables are not run. Unknown kinds yield no links.
func (d *Dispatcher) Scan(text string, kind links.Kind, cfg links.Config) []links.Link {
	if !cfg.Enabled(kind) {
		return nil
	}
	var out []links.Link
	for _, x := range d.extractors {
		if x.Kind() == kind {
			out = append(out, x.Extract(text)...)
		}
	}
	return out
}

// ScanPath classifies the document by path and scans it.
func (d *Dispatcher) ScanPath(path, text string, cfg links.Config) []links.Link {
	return d.Scan(text, links.DetectKind(path), cfg)
}

var std = New()

// Scan scans text with the default extractors.
func Scan(text string, kind links.Kind, cfg links.Config) []links.Link {
	return std.Scan(text, kind, cfg)
}

// ScanPath classifies the document by path and scans it with the default
// extractors.
func ScanPath(path, text string, cfg links.Config) []links.Link {
	return std.ScanPath(path, text, cfg)
}
