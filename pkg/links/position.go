package links

import (
	"sort"
	"unicode/utf8"
)

// LineIndex converts byte offsets into line/column positions.
type LineIndex struct {
	text   string
	starts []int // Byte offset of the first character of each line
}

// NewLineIndex indexes the line starts of text in a single pass.
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{text: text, starts: starts}
}

// LineCount returns the number of lines, counting a trailing empty line.
func (x *LineIndex) LineCount() int { return len(x.starts) }

// Position returns the position of the byte at offset. Offsets outside the
// text are clamped to its bounds.
func (x *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(x.text) {
		offset = len(x.text)
	}
	line := sort.Search(len(x.starts), func(i int) bool { return x.starts[i] > offset }) - 1
	return Position{
		Offset: offset,
		Line:   line,
		Column: utf16Len(x.text[x.starts[line]:offset]),
	}
}

// Span returns the span between two byte offsets.
func (x *LineIndex) Span(start, end int) Span {
	return Span{Start: x.Position(start), End: x.Position(end)}
}

func utf16Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
