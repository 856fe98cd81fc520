package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fontembed/internal/core/domain"
	"fontembed/pkg/ui"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [symbol]",
	Short: "Remove generated headers",
	Long: `Delete the headers produced from the manifest.

With no argument every generated header is removed. With a symbol
argument only that entry's header is removed. Source fonts are never
touched.

Examples:
  fontembed clean                  # Remove all generated headers
  fontembed clean inter_font_data  # Remove one header`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	specs := manifestSpecs()
	if len(args) == 1 {
		spec, err := findSpec(args[0])
		if err != nil {
			return err
		}
		specs = []domain.EmbedSpec{*spec}
	}

	removed := 0
	for _, spec := range specs {
		if !headerRepo.Exists(ctx, spec.Output) {
			continue
		}
		if err := headerRepo.Remove(ctx, spec.Output); err != nil {
			fmt.Println(ui.FormatError(fmt.Sprintf("%s: %v", spec.Symbol, err)))
			continue
		}
		fmt.Println(ui.FormatMuted("Removed " + appProject.Rel(spec.Output)))
		removed++
	}

	if removed == 0 {
		fmt.Println(ui.FormatInfo("Nothing to clean"))
		return nil
	}
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Removed %d header(s)", removed)))
	return nil
}
