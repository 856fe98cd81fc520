package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"fontembed/internal/core/services"
	"fontembed/pkg/ui"
)

var statusInteractive bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which headers need regeneration",
	Long: `Report the staleness of every generated header.

A header is stale when its source font was modified after the header was
last written, and "not generated" when it does not exist yet.

With --interactive, browse the report in a table:
  - ↑/↓   : Navigate
  - g     : Regenerate selected entry
  - q     : Quit`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVarP(&statusInteractive, "interactive", "i", false, "Browse the report interactively")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	specs := manifestSpecs()
	if len(specs) == 0 {
		fmt.Println(ui.FormatWarning("Manifest has no fonts. Add one with 'fontembed add'."))
		return nil
	}

	resp, err := statusService.Execute(ctx, services.StatusRequest{Specs: specs})
	if err != nil {
		return err
	}

	if statusInteractive {
		p := tea.NewProgram(initialStatusModel(resp.Items))
		if _, err := p.Run(); err != nil {
			return err
		}
		return nil
	}

	for _, item := range resp.Items {
		line := fmt.Sprintf("%s  %s", item.Spec.Symbol, ui.FormatMuted(string(item.State)))
		switch item.State {
		case services.StateFresh:
			fmt.Println(ui.StyleSuccess.Render(ui.IconSuccess) + " " + line)
		case services.StateMissingSource:
			fmt.Println(ui.StyleError.Render(ui.IconError) + " " + line)
		default:
			fmt.Println(ui.StyleWarning.Render(ui.IconWarning) + " " + line)
		}
	}

	fmt.Println()
	if resp.Stale == 0 {
		fmt.Println(ui.FormatSuccess("All headers up to date"))
	} else {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%d header(s) need regeneration — run 'fontembed generate --all'", resp.Stale)))
	}
	return nil
}

// --- TUI Model ---

type statusModel struct {
	table table.Model
	items []services.SpecStatus
	note  string
}

func initialStatusModel(items []services.SpecStatus) statusModel {
	columns := []table.Column{
		{Title: "Symbol", Width: 28},
		{Title: "Format", Width: 8},
		{Title: "Size", Width: 10},
		{Title: "Status", Width: 16},
	}

	rows := []table.Row{}
	for _, item := range items {
		rows = append(rows, statusRow(item))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(ui.ColorDefault).
		Background(ui.ColorPrimary).
		Bold(true)
	t.SetStyles(s)

	return statusModel{
		table: t,
		items: items,
	}
}

func statusRow(item services.SpecStatus) table.Row {
	size := "-"
	if item.State != services.StateMissingSource {
		size = formatSize(item.SourceSize)
	}
	return table.Row{
		item.Spec.Symbol,
		string(item.Format),
		size,
		string(item.State),
	}
}

func (m statusModel) Init() tea.Cmd { return nil }

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "g":
			idx := m.table.Cursor()
			if idx < len(m.items) {
				item := &m.items[idx]
				resp, _ := embedService.Execute(getContext(), services.EmbedRequest{Spec: item.Spec})
				if resp.Success {
					item.State = services.StateFresh
					m.note = fmt.Sprintf("Generated %s (%d bytes)", item.Spec.Symbol, resp.ByteCount)
				} else {
					m.note = fmt.Sprintf("Failed: %v", resp.Error)
				}

				rows := m.table.Rows()
				rows[idx] = statusRow(*item)
				m.table.SetRows(rows)
			}
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m statusModel) View() string {
	view := "\n" + m.table.View() + "\n"
	if m.note != "" {
		view += ui.FormatMuted(m.note) + "\n"
	}
	view += ui.FormatMuted("↑/↓ navigate · g regenerate · q quit") + "\n"
	return view
}
