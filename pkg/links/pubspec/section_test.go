package pubspec

import "testing"

func TestIsHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"dependencies:", true},
		{"dev_dependencies:", true},
		{"dependency_overrides:", true},
		{"dependencies: # pinned", true},
		{"dependencies_foo:", false},
		{"  dependencies:", false},
		{"dependencies", false},
		{"environment:", false},
		{"sdk: flutter", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := IsHeader(tt.line); got != tt.want {
				t.Errorf("IsHeader(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestSectionNext(t *testing.T) {
	tests := []struct {
		name string
		from Section
		line string
		want Section
	}{
		{"header enters", Outside, "dependencies:", Inside},
		{"dev header enters", Outside, "dev_dependencies:", Inside},
		{"header stays inside", Inside, "dependency_overrides:", Inside},
		{"top-level key leaves", Inside, "flutter:", Outside},
		{"top-level key outside", Outside, "name: app", Outside},
		{"indented key stays inside", Inside, "  http: ^1.0.0", Inside},
		{"indented key stays outside", Outside, "  http: ^1.0.0", Outside},
		{"blank line stays inside", Inside, "", Inside},
		{"comment stays inside", Inside, "# comment", Inside},
		{"suffixed header leaves", Inside, "dependencies_foo:", Outside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Next(tt.line); got != tt.want {
				t.Errorf("%v.Next(%q) = %v, want %v", tt.from, tt.line, got, tt.want)
			}
		})
	}
}

func TestSectionString(t *testing.T) {
	if got := Inside.String(); got != "inside" {
		t.Errorf("Inside.String() = %q, want %q", got, "inside")
	}
	if got := Outside.String(); got != "outside" {
		t.Errorf("Outside.String() = %q, want %q", got, "outside")
	}
}
