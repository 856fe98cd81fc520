package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fontembed/internal/adapters/repository"
	"fontembed/internal/core/domain"
	"fontembed/internal/core/services"
	"fontembed/pkg/config"
	"fontembed/pkg/project"
	"fontembed/pkg/ui"
)

var (
	// Global flags
	manifestFlag string

	// Project + manifest
	appProject *project.Project
	appConfig  *config.Config

	// Repositories
	fontRepo   *repository.FontRepository
	headerRepo *repository.HeaderRepository

	// Services
	embedService  *services.EmbedService
	statusService *services.StatusService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fontembed",
	Short: "Embed font files as C headers",
	Long: ui.StyleTitle.Render("fontembed") + " - Font Asset Embedder\n\n" +
		"A build-time tool that converts binary font files into C headers\n" +
		"containing a constant byte array and a companion size constant,\n" +
		"driven by a fontembed.yaml manifest.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&manifestFlag, "manifest", "", "Path to the manifest file (default: nearest fontembed.yaml)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp locates the manifest and wires repositories and services
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for commands that work without a manifest
	if cmd.Name() == "init" || cmd.Name() == "version" {
		return nil
	}

	var p *project.Project
	var err error

	if manifestFlag != "" {
		p, err = project.FromManifest(manifestFlag)
	} else {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return fmt.Errorf("failed to get working directory: %w", cwdErr)
		}
		p, err = project.Find(cwd)
	}
	if err != nil {
		fmt.Println(ui.FormatError("No manifest found"))
		fmt.Println(ui.FormatInfo("Run 'fontembed init' to create a fontembed.yaml"))
		os.Exit(1)
	}
	appProject = p

	cfg, err := config.Load(appProject.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	appConfig = cfg

	ui.SetTheme(appConfig.ColorTheme)

	fontRepo = repository.NewFontRepository()
	headerRepo = repository.NewHeaderRepository()

	embedService = services.NewEmbedService(fontRepo, headerRepo, appConfig.BytesPerRow)
	statusService = services.NewStatusService(fontRepo, headerRepo)

	return nil
}

// manifestSpecs converts manifest entries into specs with paths resolved
// against the manifest directory
func manifestSpecs() []domain.EmbedSpec {
	specs := make([]domain.EmbedSpec, 0, len(appConfig.Fonts))
	for _, f := range appConfig.Fonts {
		specs = append(specs, domain.EmbedSpec{
			Symbol: f.Symbol,
			Source: appProject.Resolve(f.Source),
			Output: appProject.Resolve(f.Output),
			Label:  f.Label,
		})
	}
	return specs
}

// findSpec returns the resolved spec for a symbol
func findSpec(symbol string) (*domain.EmbedSpec, error) {
	for _, spec := range manifestSpecs() {
		if spec.Symbol == symbol {
			return &spec, nil
		}
	}
	return nil, fmt.Errorf("no manifest entry for symbol '%s'", symbol)
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
