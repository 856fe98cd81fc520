package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fontembed/internal/core/domain"
	"fontembed/pkg/cheader"
	"fontembed/pkg/ui"
)

var doctorVerify bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of the manifest",
	Long: `Diagnose issues with the manifest and its entries.

Checks for:
  - Valid and unique symbol names
  - Source fonts that exist and look like real font files
  - Output directories that exist
  - Zero-byte source files

With --verify, existing headers are parsed and their embedded bytes
compared against the current source files.`,
	Run: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorVerify, "verify", false, "Compare generated headers against source fonts")
}

func runDoctor(cmd *cobra.Command, args []string) {
	ctx := getContext()

	fmt.Println(ui.FormatTitle("fontembed doctor"))
	fmt.Println()

	issues := 0
	warn := func(msg string) {
		fmt.Println(ui.FormatWarning(msg))
		issues++
	}
	fail := func(msg string) {
		fmt.Println(ui.FormatError(msg))
		issues++
	}
	ok := func(msg string) {
		fmt.Println(ui.FormatSuccess(msg))
	}

	specs := manifestSpecs()
	ok(fmt.Sprintf("Manifest found: %s (%d font(s))", appProject.Rel(appProject.ManifestPath), len(specs)))

	seen := make(map[string]bool)
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			fail(fmt.Sprintf("%s: %v", spec.Symbol, err))
			continue
		}
		if seen[spec.Symbol] {
			fail("Duplicate symbol: " + spec.Symbol)
		}
		seen[spec.Symbol] = true

		if !fontRepo.Exists(ctx, spec.Source) {
			fail(spec.Symbol + ": source not found: " + appProject.Rel(spec.Source))
			continue
		}

		if info, err := fontRepo.Stat(ctx, spec.Source); err == nil && info.Size() == 0 {
			warn(spec.Symbol + ": source file is empty (header will embed zero bytes)")
		}

		if format, err := fontRepo.Sniff(ctx, spec.Source); err == nil && format == domain.FormatUnknown {
			warn(spec.Symbol + ": source does not look like a known font format")
		}

		outDir := filepath.Dir(spec.Output)
		if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
			fail(spec.Symbol + ": output directory does not exist: " + appProject.Rel(outDir))
		}

		if doctorVerify {
			verifyHeader(spec, warn, fail, ok)
		}
	}

	fmt.Println()
	if issues == 0 {
		fmt.Println(ui.FormatSuccess("No problems found"))
	} else {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%d problem(s) found", issues)))
	}
}

// verifyHeader parses a generated header and compares its payload with
// the current source bytes
func verifyHeader(spec domain.EmbedSpec, warn, fail, ok func(string)) {
	ctx := getContext()

	if !headerRepo.Exists(ctx, spec.Output) {
		warn(spec.Symbol + ": header not generated yet")
		return
	}

	content, err := os.ReadFile(spec.Output)
	if err != nil {
		fail(fmt.Sprintf("%s: failed to read header: %v", spec.Symbol, err))
		return
	}

	embedded, err := cheader.ParseArray(string(content))
	if err != nil {
		fail(fmt.Sprintf("%s: malformed header: %v", spec.Symbol, err))
		return
	}

	size, err := cheader.ParseSize(string(content))
	if err != nil || size != len(embedded) {
		fail(fmt.Sprintf("%s: size constant disagrees with array length", spec.Symbol))
		return
	}

	asset, err := fontRepo.Read(ctx, spec.Source)
	if err != nil {
		fail(fmt.Sprintf("%s: %v", spec.Symbol, err))
		return
	}

	if !bytes.Equal(embedded, asset.Data) {
		warn(spec.Symbol + ": header is out of date with its source font")
		return
	}
	ok(spec.Symbol + ": header matches source")
}
