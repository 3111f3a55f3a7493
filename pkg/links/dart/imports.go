package dart

import (
	"regexp"
	"strings"

	"github.com/matzehuels/publinks/pkg/links"
)

// importPattern matches a package import up to its closing quote.
// Groups: 1 opening quote, 2 package name, 3 first path segment, 4 closing quote.
var importPattern = regexp.MustCompile(`\bimport\s+(['"])package:([A-Za-z0-9_.]+)/([^/.'"\s]+)[^'"\r\n]*(['"])`)

// Imports extracts links from package imports.
type Imports struct{}

func (Imports) Kind() links.Kind { return links.KindDart }

// Extract returns one link per self-consistent package import in text, in
// the order the imports appear.
func (Imports) Extract(text string) []links.Link {
	var out []links.Link
	var idx *links.LineIndex

	for _, m := range importPattern.FindAllStringSubmatchIndex(text, -1) {
		if text[m[2]:m[3]] != text[m[8]:m[9]] {
			continue
		}
		name := text[m[4]:m[5]]
		segment := text[m[6]:m[7]]
		if !strings.HasPrefix(segment, name) {
			continue
		}
		if idx == nil {
			idx = links.NewLineIndex(text)
		}
		out = append(out, links.Link{
			Span:    idx.Span(m[4], m[7]),
			Target:  name,
			Tooltip: links.DefaultTooltip,
		})
	}
	return out
}
