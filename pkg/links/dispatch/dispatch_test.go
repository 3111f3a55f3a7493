package dispatch

import (
	"reflect"
	"sync"
	"testing"

	"github.com/matzehuels/publinks/pkg/links"
)

const dartSource = `import 'package:http/http.dart';
import 'package:foo/src/bar.dart';
`

const manifest = `name: app
environment:
  sdk: ">=2.12.0 <3.0.0"
dependencies:
  http: ^0.13.0
  flutter:
    sdk: flutter
dev_dependencies:
  test: ^1.0.0
`

// countingExtractor records how often it runs.
type countingExtractor struct {
	kind  links.Kind
	calls *int
}

func (c countingExtractor) Kind() links.Kind { return c.kind }

func (c countingExtractor) Extract(string) []links.Link {
	*c.calls++
	return []links.Link{{Target: c.kind.String()}}
}

func targets(ls []links.Link) []string {
	var out []string
	for _, l := range ls {
		out = append(out, l.Target)
	}
	return out
}

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind links.Kind
		cfg  links.Config
		want []string
	}{
		{"dart enabled", dartSource, links.KindDart, links.DefaultConfig(), []string{"http"}},
		{"dart disabled", dartSource, links.KindDart, links.Config{EnablePubspecFile: true}, nil},
		{"pubspec enabled", manifest, links.KindPubspec, links.DefaultConfig(), []string{"http", "test"}},
		{"pubspec disabled", manifest, links.KindPubspec, links.Config{EnableDartFiles: true}, nil},
		{"both disabled", manifest, links.KindPubspec, links.Config{}, nil},
		{"unknown kind", manifest, links.KindUnknown, links.DefaultConfig(), nil},
		{"manifest text as dart", manifest, links.KindDart, links.DefaultConfig(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := targets(Scan(tt.text, tt.kind, tt.cfg))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan() targets = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanPath(t *testing.T) {
	tests := []struct {
		path string
		text string
		want []string
	}{
		{"lib/main.dart", dartSource, []string{"http"}},
		{"pubspec.yaml", manifest, []string{"http", "test"}},
		{"app/pubspec.yaml", manifest, []string{"http", "test"}},
		{"notes.txt", dartSource, nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := targets(ScanPath(tt.path, tt.text, links.DefaultConfig()))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ScanPath(%q) targets = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDisabledExtractorDoesNotRun(t *testing.T) {
	var dartCalls, pubspecCalls int
	d := New(
		countingExtractor{kind: links.KindDart, calls: &dartCalls},
		countingExtractor{kind: links.KindPubspec, calls: &pubspecCalls},
	)

	d.Scan("x", links.KindDart, links.Config{EnablePubspecFile: true})
	d.Scan("x", links.KindPubspec, links.Config{EnableDartFiles: true})
	if dartCalls != 0 || pubspecCalls != 0 {
		t.Errorf("disabled extractors ran: dart=%d pubspec=%d", dartCalls, pubspecCalls)
	}

	d.Scan("x", links.KindPubspec, links.DefaultConfig())
	if dartCalls != 0 || pubspecCalls != 1 {
		t.Errorf("calls = dart=%d pubspec=%d, want dart=0 pubspec=1", dartCalls, pubspecCalls)
	}
}

func TestNewDefaultsToAll(t *testing.T) {
	d := New()
	if len(d.extractors) != len(All) {
		t.Errorf("New() has %d extractors, want %d", len(d.extractors), len(All))
	}
}

func TestScanDeterministic(t *testing.T) {
	first := Scan(manifest, links.KindPubspec, links.DefaultConfig())
	second := Scan(manifest, links.KindPubspec, links.DefaultConfig())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Scan() not deterministic: %v vs %v", first, second)
	}
}

func TestScanConcurrent(t *testing.T) {
	want := Scan(manifest, links.KindPubspec, links.DefaultConfig())

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text, kind := manifest, links.KindPubspec
			if i%2 == 1 {
				text, kind = dartSource, links.KindDart
			}
			got := Scan(text, kind, links.DefaultConfig())
			if kind == links.KindPubspec && !reflect.DeepEqual(got, want) {
				errs <- "concurrent pubspec scan differs"
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}
