package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"fontembed/internal/core/domain"
	"fontembed/pkg/config"
	"fontembed/pkg/ui"
)

var (
	addSymbol string
	addOutput string
	addLabel  string
)

var addCmd = &cobra.Command{
	Use:   "add [font file]",
	Short: "Add a font to the manifest",
	Long: `Register a font file in the manifest.

The symbol defaults to a sanitized version of the filename, and the output
header defaults to <symbol>.h next to the font. The #include line for the
generated header is copied to your clipboard.

Examples:
  fontembed add assets/fonts/Inter-Regular.ttf
  fontembed add assets/fonts/Mono.ttf --symbol mono_font_data --output src/gen/mono.h`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addSymbol, "symbol", "", "Name of the generated array")
	addCmd.Flags().StringVar(&addOutput, "output", "", "Path of the header to write")
	addCmd.Flags().StringVar(&addLabel, "label", "", "Attribution label for the header comment")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	source := args[0]

	symbol := addSymbol
	if symbol == "" {
		symbol = domain.SymbolFromFilename(source)
	}

	output := addOutput
	if output == "" {
		output = filepath.Join(filepath.Dir(source), symbol+".h")
	}

	spec := domain.EmbedSpec{
		Symbol: symbol,
		Source: source,
		Output: output,
		Label:  addLabel,
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	if !fontRepo.Exists(ctx, appProject.Resolve(source)) {
		fmt.Println(ui.FormatWarning("Source file not found: " + source))
		fmt.Println(ui.FormatMuted("(added anyway; 'fontembed doctor' will flag it until the file appears)"))
	} else if format, err := fontRepo.Sniff(ctx, appProject.Resolve(source)); err == nil && format == domain.FormatUnknown {
		fmt.Println(ui.FormatWarning("File does not look like a known font format"))
	}

	if err := appConfig.AddFont(config.FontSpec{
		Symbol: spec.Symbol,
		Source: spec.Source,
		Output: spec.Output,
		Label:  spec.Label,
	}); err != nil {
		return err
	}
	if err := appConfig.Save(appProject.ManifestPath); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Added " + symbol + " to manifest"))

	includeSnippet := fmt.Sprintf("#include \"%s\"", filepath.Base(output))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Include line (Copied to Clipboard):"))
	fmt.Println(ui.StyleBold.Render(includeSnippet))

	// Try to write to clipboard (non-blocking if fails)
	if err := clipboard.WriteAll(includeSnippet); err != nil {
		fmt.Println(ui.FormatMuted("(Clipboard access failed, please copy manually)"))
	}

	fmt.Println()
	fmt.Println(ui.FormatMuted("Run 'fontembed generate " + symbol + "' to create the header"))
	return nil
}
