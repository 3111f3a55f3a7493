package links

import (
	"path/filepath"
	"strings"
)

const (
	// RegistryBaseURL is the pub.dev package page prefix.
	RegistryBaseURL = "https://pub.dev/packages/"

	// DefaultTooltip is the hint attached to every link.
	DefaultTooltip = "Open in pub.dev"

	// ManifestFilename is the file name of a Dart package manifest.
	ManifestFilename = "pubspec.yaml"

	// SourceExtension is the extension of Dart source files.
	SourceExtension = ".dart"
)

// Position is a zero-based location in a document.
type Position struct {
	Offset int `json:"offset"` // Byte offset from the start of the text
	Line   int `json:"line"`   // Zero-based line number
	Column int `json:"column"` // Zero-based column in UTF-16 code units
}

// Span is the half-open range [Start, End) covered by a link.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End.Offset - s.Start.Offset }

// Link is a package reference found in a document.
type Link struct {
	Span    Span   // Range of the package-identifier token
	Target  string // Package name exactly as written
	Tooltip string // Optional hover text
}

// URL returns the registry page for the link target.
func (l Link) URL() string { return RegistryURL(l.Target) }

// RegistryURL builds the pub.dev page URL for a package name. The name is
// used verbatim; callers that need escaping must apply it themselves.
func RegistryURL(name string) string {
	return RegistryBaseURL + name
}

// Config toggles the extractors for a single scan.
type Config struct {
	EnableDartFiles   bool // Scan .dart sources for package imports
	EnablePubspecFile bool // Scan pubspec.yaml for dependencies
}

// DefaultConfig enables both extractors.
func DefaultConfig() Config {
	return Config{EnableDartFiles: true, EnablePubspecFile: true}
}

// Enabled reports whether documents of kind k should be scanned.
func (c Config) Enabled(k Kind) bool {
	switch k {
	case KindDart:
		return c.EnableDartFiles
	case KindPubspec:
		return c.EnablePubspecFile
	default:
		return false
	}
}

// Kind discriminates the document types that can be scanned.
type Kind int

const (
	KindUnknown Kind = iota
	KindDart         // Dart source file
	KindPubspec      // pubspec.yaml manifest
)

var kindNames = map[Kind]string{
	KindUnknown: "unknown",
	KindDart:    "dart",
	KindPubspec: "pubspec",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// ParseKind maps a kind name ("dart", "pubspec") to its Kind. Matching is
// case-insensitive; "source" and "manifest" are accepted as aliases.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dart", "source":
		return KindDart, true
	case "pubspec", "manifest", ManifestFilename:
		return KindPubspec, true
	}
	return KindUnknown, false
}

// DetectKind classifies a document by its path: files ending in .dart are
// sources and files named pubspec.yaml are manifests.
func DetectKind(path string) Kind {
	if path == "" {
		return KindUnknown
	}
	if filepath.Base(path) == ManifestFilename {
		return KindPubspec
	}
	if strings.HasSuffix(path, SourceExtension) {
		return KindDart
	}
	return KindUnknown
}

// Extractor finds links in documents of a single kind.
type Extractor interface {
	// Kind returns the document kind this extractor handles.
	Kind() Kind
	// Extract returns the links found in text, in document order.
	// It never fails: text that does not match yields no links.
	Extract(text string) []Link
}
