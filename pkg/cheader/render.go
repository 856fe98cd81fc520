// Package cheader renders binary data as C header source text containing
// a constant byte array and a companion size constant.
package cheader

import (
	"fmt"
	"strings"
)

// DefaultBytesPerRow is the number of hex literals emitted per line
const DefaultBytesPerRow = 16

// Renderer converts binary data into an include-guarded C header
type Renderer struct {
	BytesPerRow int
}

// NewRenderer creates a renderer with default row width
func NewRenderer() *Renderer {
	return &Renderer{BytesPerRow: DefaultBytesPerRow}
}

// Guard returns the include guard macro for a symbol
func Guard(symbol string) string {
	return strings.ToUpper(symbol) + "_H"
}

// Render produces the full header text for the given symbol and data.
// Every row holds BytesPerRow hex literals except the last, which holds
// the remainder. An empty input produces an empty (but legal) initializer.
func (r *Renderer) Render(symbol, label string, data []byte) string {
	perRow := r.BytesPerRow
	if perRow <= 0 {
		perRow = DefaultBytesPerRow
	}

	guard := Guard(symbol)

	var b strings.Builder
	fmt.Fprintf(&b, "// Auto-generated font data - %d bytes\n", len(data))
	fmt.Fprintf(&b, "// %s font from google fonts\n", label)
	fmt.Fprintf(&b, "#ifndef %s\n", guard)
	fmt.Fprintf(&b, "#define %s\n", guard)
	b.WriteString("\n")
	fmt.Fprintf(&b, "static const unsigned char %s[] = {\n", symbol)

	for i := 0; i < len(data); i += perRow {
		end := i + perRow
		if end > len(data) {
			end = len(data)
		}

		b.WriteString("    ")
		for j, v := range data[i:end] {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "0x%02X", v)
		}
		b.WriteString(",\n")
	}

	b.WriteString("};\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "static const unsigned int %s_size = %d;\n", symbol, len(data))
	b.WriteString("\n")
	fmt.Fprintf(&b, "#endif // %s\n", guard)

	return b.String()
}
