package links

import "testing"

func TestDetectKind(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"lib/main.dart", KindDart},
		{"main.dart", KindDart},
		{"pubspec.yaml", KindPubspec},
		{"/home/me/app/pubspec.yaml", KindPubspec},
		{"my_pubspec.yaml", KindUnknown},
		{"pubspec.lock", KindUnknown},
		{"Pubspec.yaml", KindUnknown},
		{"main.dart.bak", KindUnknown},
		{"README.md", KindUnknown},
		{"", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectKind(tt.path); got != tt.want {
				t.Errorf("DetectKind(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"dart", KindDart, true},
		{"DART", KindDart, true},
		{"source", KindDart, true},
		{"pubspec", KindPubspec, true},
		{"manifest", KindPubspec, true},
		{"pubspec.yaml", KindPubspec, true},
		{" pubspec ", KindPubspec, true},
		{"yaml", KindUnknown, false},
		{"", KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseKind(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := KindDart.String(); got != "dart" {
		t.Errorf("KindDart.String() = %q, want %q", got, "dart")
	}
	if got := KindPubspec.String(); got != "pubspec" {
		t.Errorf("KindPubspec.String() = %q, want %q", got, "pubspec")
	}
	if got := Kind(42).String(); got != "unknown" {
		t.Errorf("Kind(42).String() = %q, want %q", got, "unknown")
	}
}

func TestConfigEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		kind Kind
		want bool
	}{
		{"default dart", DefaultConfig(), KindDart, true},
		{"default pubspec", DefaultConfig(), KindPubspec, true},
		{"default unknown", DefaultConfig(), KindUnknown, false},
		{"dart disabled", Config{EnablePubspecFile: true}, KindDart, false},
		{"pubspec disabled", Config{EnableDartFiles: true}, KindPubspec, false},
		{"all disabled", Config{}, KindDart, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Enabled(tt.kind); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestRegistryURL(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"http", "https://pub.dev/packages/http"},
		{"flutter_bloc", "https://pub.dev/packages/flutter_bloc"},
		{"MixedCase", "https://pub.dev/packages/MixedCase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RegistryURL(tt.name); got != tt.want {
				t.Errorf("RegistryURL(%q) = %q, want %q", tt.name, got, tt.want)
			}
			l := Link{Target: tt.name}
			if got := l.URL(); got != tt.want {
				t.Errorf("Link.URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineIndexPosition(t *testing.T) {
	text := "abc\nde\n\nfgh"
	x := NewLineIndex(text)

	if got := x.LineCount(); got != 4 {
		t.Fatalf("LineCount() = %d, want 4", got)
	}

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{Offset: 0, Line: 0, Column: 0}},
		{2, Position{Offset: 2, Line: 0, Column: 2}},
		{3, Position{Offset: 3, Line: 0, Column: 3}},
		{4, Position{Offset: 4, Line: 1, Column: 0}},
		{7, Position{Offset: 7, Line: 2, Column: 0}},
		{8, Position{Offset: 8, Line: 3, Column: 0}},
		{11, Position{Offset: 11, Line: 3, Column: 3}},
		{-5, Position{Offset: 0, Line: 0, Column: 0}},
		{99, Position{Offset: 11, Line: 3, Column: 3}},
	}

	for _, tt := range tests {
		if got := x.Position(tt.offset); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestLineIndexUTF16Columns(t *testing.T) {
	// "é" is two bytes and one UTF-16 unit; "😀" is four bytes and two units.
	text := "é😀x"
	x := NewLineIndex(text)

	got := x.Position(len("é😀"))
	if got.Column != 3 {
		t.Errorf("Column = %d, want 3", got.Column)
	}
	if got.Offset != 6 {
		t.Errorf("Offset = %d, want 6", got.Offset)
	}
}

func TestLineIndexSpan(t *testing.T) {
	x := NewLineIndex("one\ntwo three")
	s := x.Span(8, 13)

	if s.Start.Line != 1 || s.Start.Column != 4 {
		t.Errorf("Start = %+v, want line 1 column 4", s.Start)
	}
	if s.End.Line != 1 || s.End.Column != 9 {
		t.Errorf("End = %+v, want line 1 column 9", s.End)
	}
	if got := s.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}
