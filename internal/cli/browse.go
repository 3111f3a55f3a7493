package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/publinks/pkg/errors"
	pkgio "github.com/matzehuels/publinks/pkg/io"
	"github.com/matzehuels/publinks/pkg/links"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var fromJSON string

	cmd := &cobra.Command{
		Use:   "browse [paths...]",
		Short: "Pick package links interactively and open them on pub.dev",
		Long: `Scan files and list their package links in an interactive picker.

Examples:
  publinks browse pubspec.yaml
  publinks browse lib/
  publinks scan -f json -o links.json . && publinks browse --json links.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []pkgio.Result
			var err error
			if fromJSON != "" {
				results, err = readResults(fromJSON)
			} else {
				var cfg links.Config
				if _, cfg, err = c.loadConfig(); err != nil {
					return err
				}
				results, _, err = scanPaths(cmd.Context(), args, cfg)
			}
			if err != nil {
				return err
			}
			if len(results) == 0 {
				printWarning("No package links found")
				return nil
			}

			p := tea.NewProgram(NewLinkListModel(results, browserOpener), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&fromJSON, "json", "", "browse links from a JSON file written by scan --format json")

	return cmd
}

func readResults(path string) ([]pkgio.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	results, err := pkgio.ReadJSON(f)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "read %s", path)
	}
	return results, nil
}

// =============================================================================
// LinkListModel - Interactive link selection
// =============================================================================

// openedMsg reports the outcome of opening a link.
type openedMsg struct {
	url string
	err error
}

// LinkListModel is the bubbletea model for interactive link selection.
// Enter opens the link under the cursor; the list stays open.
type LinkListModel struct {
	Results []pkgio.Result
	Cursor  int
	Height  int
	Offset  int
	Status  string

	open func(string) error
}

// NewLinkListModel creates a new link list model. open is called with the
// URL of each link the user selects.
func NewLinkListModel(results []pkgio.Result, open func(string) error) LinkListModel {
	return LinkListModel{
		Results: results,
		Height:  15,
		open:    open,
	}
}

func (m LinkListModel) Init() tea.Cmd {
	return nil
}

func (m LinkListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Results)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Results) == 0 || m.open == nil {
				return m, nil
			}
			u := m.Results[m.Cursor].Link.URL()
			open := m.open
			return m, func() tea.Msg {
				return openedMsg{url: u, err: open(u)}
			}
		}
	case openedMsg:
		if msg.err != nil {
			m.Status = styleIconError.Render(iconError) + " " + StyleWarning.Render(msg.err.Error())
		} else {
			m.Status = StyleSuccess.Render(iconSuccess+" opened ") + StyleLink.Render(msg.url)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 7
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m LinkListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Package Links"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Results) {
		end = len(m.Results)
	}

	for i := m.Offset; i < end; i++ {
		r := m.Results[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-24s %s", cursor, r.Link.Target, listDimStyle.Render(location(r)))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Status != "" {
		b.WriteString(m.Status)
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Results))))

	return b.String()
}
