package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fontembed/pkg/config"
	"fontembed/pkg/project"
	"fontembed/pkg/ui"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a fontembed manifest in the current directory",
	Long: `Create a starter fontembed.yaml manifest.

The manifest lists the fonts to embed and where the generated headers go:

  fonts:
    - symbol: inter_font_data
      source: assets/fonts/Inter-Regular.ttf
      output: src/inter_font_data.h
      label: Inter

Add entries with 'fontembed add' or by editing the file directly.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	p, err := project.At(cwd)
	if err != nil {
		return err
	}

	if p.Exists() {
		fmt.Println(ui.FormatWarning("Manifest already exists: " + p.ManifestPath))
		return nil
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(p.ManifestPath); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Created " + project.ManifestName))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  fontembed add assets/fonts/YourFont.ttf"))
	fmt.Println(ui.FormatMuted("  fontembed generate --all"))
	return nil
}
