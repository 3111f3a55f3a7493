package cli

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/publinks/pkg/errors"
	"github.com/matzehuels/publinks/pkg/links"
)

// browserOpener opens a URL in the system browser. Replaced in tests.
var browserOpener = openBrowser

// openCommand creates the open command.
func (c *CLI) openCommand() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "open <package>",
		Short: "Open a package page on pub.dev",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := perrors.ValidatePubPackageName(name); err != nil {
				return err
			}
			u := links.RegistryURL(name)
			if printOnly {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), u)
				return err
			}
			if err := browserOpener(u); err != nil {
				return fmt.Errorf("open %s: %w", u, err)
			}
			printInfo("Opened %s", StyleLink.Render(u))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print the URL instead of opening it")

	return cmd
}

func openBrowser(rawURL string) error {
	if err := perrors.ValidateURL(rawURL); err != nil {
		return err
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("URL scheme must be http or https, got %q", parsed.Scheme)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "linux":
		cmd = exec.Command("xdg-open", rawURL)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", rawURL)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
