package pubspec

import (
	"regexp"
	"strings"

	"github.com/matzehuels/publinks/pkg/links"
)

// entryPattern matches an indented key line.
// Groups: 1 leading whitespace, 2 key.
var entryPattern = regexp.MustCompile(`^(\s+)([A-Za-z0-9_]+):`)

// sourceKeys mark a dependency that is not hosted on the registry when they
// appear on the line after its key.
var sourceKeys = []string{"sdk:", "path:"}

// Dependencies extracts links from pubspec.yaml dependency blocks.
type Dependencies struct{}

func (Dependencies) Kind() links.Kind { return links.KindPubspec }

// Extract returns one link per registry-hosted dependency in text, in line
// order.
func (Dependencies) Extract(text string) []links.Link {
	var out []links.Link

	lines := strings.Split(text, "\n")
	section := Outside
	entryIndent := -1
	offset := 0

	for i, raw := range lines {
		lineStart := offset
		offset += len(raw) + 1

		line := strings.TrimSuffix(raw, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), "sdk:") {
			continue
		}

		if IsHeader(line) {
			section, entryIndent = Inside, -1
			continue
		}
		if section = section.Next(line); section != Inside {
			continue
		}

		m := entryPattern.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		indent := m[3] - m[2]
		if entryIndent < 0 {
			entryIndent = indent
		}
		if indent != entryIndent {
			continue
		}
		if i+1 < len(lines) && isLocalSource(indent, lines[i+1]) {
			continue
		}

		start, end := m[4], m[5]
		out = append(out, links.Link{
			Span: links.Span{
				Start: links.Position{Offset: lineStart + start, Line: i, Column: start},
				End:   links.Position{Offset: lineStart + end, Line: i, Column: end},
			},
			Target:  line[start:end],
			Tooltip: links.DefaultTooltip,
		})
	}
	return out
}

// isLocalSource reports whether next, the line after a dependency key at
// indent, declares an sdk or path source.
func isLocalSource(indent int, next string) bool {
	next = strings.TrimSuffix(next, "\r")
	body := strings.TrimLeft(next, " \t")
	if len(next)-len(body) <= indent {
		return false
	}
	for _, key := range sourceKeys {
		if strings.HasPrefix(body, key) {
			return true
		}
	}
	return false
}
