package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, name := range []string{"scan", "browse", "open", "serve", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"config", "no-dart", "no-pubspec"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s missing", flag)
		}
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	c, _ := newTestCLI(t)
	t.Setenv("PUBLINKS_ENABLE_DART_FILES", "true")
	c.noDart = true

	_, ext, err := c.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if ext.EnableDartFiles {
		t.Error("--no-dart should win over the environment")
	}
	if !ext.EnablePubspecFile {
		t.Error("pubspec scanning should default to enabled")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not logged after SetLogLevel: %q", buf.String())
	}
}

func TestVersionFlag(t *testing.T) {
	c, _ := newTestCLI(t)
	out, err := execute(t, c, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Errorf("version output = %q", out)
	}
}
