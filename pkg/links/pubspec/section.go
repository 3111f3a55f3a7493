package pubspec

import "regexp"

// Section is the block a manifest line belongs to.
type Section int

const (
	Outside Section = iota // Not inside a dependency block
	Inside                 // Inside dependencies, dev_dependencies or dependency_overrides
)

func (s Section) String() string {
	if s == Inside {
		return "inside"
	}
	return "outside"
}

// headerPattern matches an unindented dependency block header. The colon
// must follow the key directly, so keys like "dependencies_foo:" do not match.
var headerPattern = regexp.MustCompile(`^(dependencies|dev_dependencies|dependency_overrides):`)

// IsHeader reports whether line opens a dependency block.
func IsHeader(line string) bool {
	return headerPattern.MatchString(line)
}

// isTopLevelKey reports whether line starts a new unindented key.
func isTopLevelKey(line string) bool {
	if line == "" {
		return false
	}
	c := line[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Next returns the section after line. Headers enter a block and any other
// unindented key leaves it; all other lines keep the current section.
func (s Section) Next(line string) Section {
	if IsHeader(line) {
		return Inside
	}
	if s == Inside && isTopLevelKey(line) {
		return Outside
	}
	return s
}
