package io

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/publinks/pkg/links"
	"github.com/matzehuels/publinks/pkg/links/dispatch"
)

const manifest = "name: app\ndependencies:\n  http: ^1.0.0\n  provider: ^6.0.0\n"

func scanManifest(t *testing.T) []Result {
	t.Helper()
	ls := dispatch.Scan(manifest, links.KindPubspec, links.DefaultConfig())
	if len(ls) != 2 {
		t.Fatalf("scan returned %d links, want 2", len(ls))
	}
	return Results("pubspec.yaml", ls)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(scanManifest(t), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var doc struct {
		Links []map[string]any `json:"links"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc.Links) != 2 {
		t.Fatalf("got %d links, want 2", len(doc.Links))
	}

	first := doc.Links[0]
	if first["target"] != "http" {
		t.Errorf("target = %v, want http", first["target"])
	}
	if first["url"] != "https://pub.dev/packages/http" {
		t.Errorf("url = %v", first["url"])
	}
	if first["path"] != "pubspec.yaml" {
		t.Errorf("path = %v, want pubspec.yaml", first["path"])
	}
	start := first["range"].(map[string]any)["start"].(map[string]any)
	if start["line"] != float64(2) || start["column"] != float64(2) {
		t.Errorf("range.start = %v, want line 2 column 2", start)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(nil, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"links": []`) {
		t.Errorf("empty output = %s, want an empty links array", buf.String())
	}
}

func TestReadJSON(t *testing.T) {
	want := scanManifest(t)

	var buf bytes.Buffer
	if err := WriteJSON(want, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadJSON() = %+v, want %+v", got, want)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", "{"},
		{"missing target", `{"links":[{"url":"https://pub.dev/packages/x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("ReadJSON() error = nil, want error")
			}
		})
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	results := scanManifest(t)
	results = append(results, Result{Link: links.Link{Target: "dio"}})

	if err := WriteLines(results, &buf); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}

	want := "pubspec.yaml:3:3: http https://pub.dev/packages/http\n" +
		"pubspec.yaml:4:3: provider https://pub.dev/packages/provider\n" +
		"-:1:1: dio https://pub.dev/packages/dio\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteLines() =\n%s\nwant\n%s", got, want)
	}
}
