package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/publinks/pkg/errors"
	pkgio "github.com/matzehuels/publinks/pkg/io"
	"github.com/matzehuels/publinks/pkg/links"
	"github.com/matzehuels/publinks/pkg/links/dispatch"
	"github.com/matzehuels/publinks/pkg/observability"
)

// Output formats for the scan command.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatLines = "lines"
)

// skipDirs are never descended into when walking a directory.
var skipDirs = map[string]bool{
	".dart_tool":   true,
	".git":         true,
	".pub-cache":   true,
	"build":        true,
	"node_modules": true,
}

// scanOpts holds the command-line flags for the scan command.
type scanOpts struct {
	format string // output format (text, json, lines)
	output string // output file path (stdout if empty)
	stdin  bool   // read a single document from stdin
	kind   string // document kind for stdin
}

// scanCommand creates the scan command.
func (c *CLI) scanCommand() *cobra.Command {
	opts := scanOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "List pub.dev links in Dart files and pubspec.yaml manifests",
		Long: `Scan files and directories for package references.

Directories are walked recursively; .dart files and pubspec.yaml manifests are
scanned, build output and hidden directories are skipped.

Examples:
  publinks scan                                  # Current directory
  publinks scan pubspec.yaml lib/main.dart       # Specific files
  publinks scan --format json -o links.json .    # JSON export
  cat pubspec.yaml | publinks scan --stdin --kind pubspec`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScan(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, lines")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "read one document from stdin")
	cmd.Flags().StringVar(&opts.kind, "kind", "", "document kind for --stdin: dart or pubspec")

	return cmd
}

// runScan scans the given paths (or stdin) and writes the links found.
func (c *CLI) runScan(ctx context.Context, stdin io.Reader, stdout io.Writer, opts scanOpts, args []string) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	_, cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var results []pkgio.Result
	var docs int
	if opts.stdin {
		kind, ok := links.ParseKind(opts.kind)
		if !ok {
			return perrors.New(perrors.ErrCodeInvalidKind, "--stdin requires --kind dart or --kind pubspec")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		results = pkgio.Results("", scanDocument(ctx, "", kind, string(data), cfg))
		docs = 1
	} else {
		results, docs, err = scanPaths(ctx, args, cfg)
		if err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Found %d links in %d files", len(results), docs))
	if err := writeResults(stdout, results, opts); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Wrote %d links to %s", len(results), opts.output)
	}
	return nil
}

// scanPaths scans every file under paths (the current directory if none)
// and reports how many files were visited.
func scanPaths(ctx context.Context, paths []string, cfg links.Config) ([]pkgio.Result, int, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectFiles(paths)
	if err != nil {
		return nil, 0, err
	}
	var results []pkgio.Result
	for _, path := range files {
		rs, err := scanFile(ctx, path, cfg)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, rs...)
	}
	return results, len(files), nil
}

// scanFile reads and scans one file. Files of unknown kind yield nothing.
func scanFile(ctx context.Context, path string, cfg links.Config) ([]pkgio.Result, error) {
	kind := links.DetectKind(path)
	if kind == links.KindUnknown {
		observability.Scan().OnScanSkipped(ctx, path, "not a .dart file or pubspec.yaml")
		return nil, nil
	}
	if !cfg.Enabled(kind) {
		observability.Scan().OnScanSkipped(ctx, path, kind.String()+" scanning disabled")
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return pkgio.Results(path, scanDocument(ctx, path, kind, string(data), cfg)), nil
}

// scanDocument runs the dispatcher on text, reporting to the scan hooks.
func scanDocument(ctx context.Context, path string, kind links.Kind, text string, cfg links.Config) []links.Link {
	start := time.Now()
	observability.Scan().OnScanStart(ctx, path, kind)
	ls := dispatch.Scan(text, kind, cfg)
	observability.Scan().OnScanComplete(ctx, path, kind, len(ls), time.Since(start))
	return ls
}

// collectFiles expands directories into the scannable files they contain.
// Explicitly named files are returned as given.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, perrors.New(perrors.ErrCodeFileNotFound, "no such file or directory: %s", root)
			}
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if links.DetectKind(path) != links.KindUnknown {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return files, nil
}

func skipDir(name string) bool {
	return skipDirs[name] || (strings.HasPrefix(name, ".") && name != ".")
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatLines:
		return nil
	}
	return perrors.New(perrors.ErrCodeInvalidFormat, "unknown format %q (available: %s, %s, %s)", format, formatText, formatJSON, formatLines)
}

// writeResults writes results in the requested format to opts.output, or to
// stdout when no output file is set.
func writeResults(stdout io.Writer, results []pkgio.Result, opts scanOpts) error {
	out, err := openOutput(stdout, opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch opts.format {
	case formatJSON:
		return pkgio.WriteJSON(results, out)
	case formatLines:
		return pkgio.WriteLines(results, out)
	default:
		_, err := fmt.Fprintln(out, renderLinkTable(results))
		return err
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns stdout wrapped in nopCloser.
func openOutput(stdout io.Writer, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}
