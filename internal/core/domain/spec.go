package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// identifierRe matches a valid C identifier
var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// EmbedSpec describes a single font-to-header conversion
type EmbedSpec struct {
	Symbol string // Name of the generated array (e.g. inter_font_data)
	Source string // Path to the binary font file
	Output string // Path of the header to write
	Label  string // Human-readable attribution (e.g. "Inter")
}

// Validate checks that the spec can produce a compilable header
func (s EmbedSpec) Validate() error {
	if s.Symbol == "" {
		return fmt.Errorf("symbol name is required")
	}
	if !identifierRe.MatchString(s.Symbol) {
		return fmt.Errorf("symbol '%s' is not a valid C identifier", s.Symbol)
	}
	if s.Source == "" {
		return fmt.Errorf("source path is required")
	}
	if s.Output == "" {
		return fmt.Errorf("output path is required")
	}
	return nil
}

// Guard returns the include guard macro derived from the symbol
func (s EmbedSpec) Guard() string {
	return strings.ToUpper(s.Symbol) + "_H"
}

// SizeSymbol returns the name of the companion size constant
func (s EmbedSpec) SizeSymbol() string {
	return s.Symbol + "_size"
}

// DisplayLabel returns the attribution label, falling back to the symbol
func (s EmbedSpec) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Symbol
}

// SymbolFromFilename derives a default symbol from a font filename.
// "Inter_18pt-Regular.ttf" becomes "inter_18pt_regular_font_data".
func SymbolFromFilename(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(base)

	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	symbol := strings.Trim(b.String(), "_")
	if symbol == "" {
		symbol = "font"
	}
	if symbol[0] >= '0' && symbol[0] <= '9' {
		symbol = "_" + symbol
	}
	return symbol + "_font_data"
}
