package cmd

import (
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"fontembed/internal/core/domain"
	"fontembed/internal/core/services"
	"fontembed/pkg/ui"
)

var generateAll bool

var generateCmd = &cobra.Command{
	Use:     "generate [symbol]",
	Short:   "Generate C headers from the manifest",
	Aliases: []string{"gen"},
	Long: `Convert font files into C headers.

With a symbol argument, only that entry is generated. With --all, every
manifest entry is processed in order; a font that fails (for example a
missing source file) is reported and the remaining entries still run.
With no argument, pick an entry interactively.

Examples:
  fontembed generate --all
  fontembed generate inter_font_data`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVarP(&generateAll, "all", "a", false, "Generate every manifest entry")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	specs := manifestSpecs()
	if len(specs) == 0 {
		fmt.Println(ui.FormatWarning("Manifest has no fonts. Add one with 'fontembed add'."))
		return nil
	}

	if generateAll {
		resp, err := embedService.ExecuteAll(ctx, services.EmbedAllRequest{Specs: specs})
		if err != nil {
			return err
		}

		for _, result := range resp.Results {
			printEmbedResult(result)
		}

		fmt.Println()
		if resp.Failed == 0 {
			fmt.Println(ui.FormatSuccess(fmt.Sprintf("Generated %d header(s)", resp.Succeeded)))
		} else {
			fmt.Println(ui.FormatWarning(fmt.Sprintf("Generated %d of %d header(s), %d failed",
				resp.Succeeded, resp.Total, resp.Failed)))
		}

		if resp.Succeeded == 0 {
			return fmt.Errorf("all %d font(s) failed", resp.Failed)
		}
		return nil
	}

	var spec *domain.EmbedSpec
	if len(args) == 1 {
		found, err := findSpec(args[0])
		if err != nil {
			return err
		}
		spec = found
	} else {
		idx, err := fuzzyfinder.Find(
			specs,
			func(i int) string { return specs[i].Symbol },
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				return fmt.Sprintf("Symbol: %s\nSource: %s\nOutput: %s",
					specs[i].Symbol, specs[i].Source, specs[i].Output)
			}),
		)
		if err != nil {
			return nil
		}
		spec = &specs[idx]
	}

	resp, err := embedService.Execute(ctx, services.EmbedRequest{Spec: *spec})
	printEmbedResult(*resp)
	return err
}

// printEmbedResult prints the one diagnostic line per processed font
func printEmbedResult(r services.EmbedResponse) {
	if r.Success {
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Generated %s: %d bytes embedded",
			appProject.Rel(r.OutputPath), r.ByteCount)))
		return
	}
	fmt.Println(ui.FormatError(fmt.Sprintf("%s: %v", r.Symbol, r.Error)))
}
