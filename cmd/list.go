package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fontembed/internal/core/services"
	"fontembed/pkg/ui"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List manifest entries",
	Aliases: []string{"ls"},
	Long:    `List every font in the manifest with its format, size, and staleness. (alias: ls)`,
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
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

	table := ui.NewTable([]ui.TableColumn{
		{Header: "SYMBOL"},
		{Header: "FORMAT"},
		{Header: "SIZE", AlignRight: true},
		{Header: "OUTPUT"},
		{Header: "STATUS"},
	})

	for _, item := range resp.Items {
		size := "-"
		if item.State != services.StateMissingSource {
			size = formatSize(item.SourceSize)
		}
		table.AddRow(
			item.Spec.Symbol,
			string(item.Format),
			size,
			appProject.Rel(item.Spec.Output),
			string(item.State),
		)
	}

	fmt.Print(table.Render())
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d font(s), %d needing regeneration", len(resp.Items), resp.Stale)))
	return nil
}

// formatSize renders a byte count in a compact human form
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
