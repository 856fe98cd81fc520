package cheader

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"testing"
)

var entryRe = regexp.MustCompile(`^0x[0-9A-F]{2}$`)

// arrayRows returns the lines of the array initializer body
func arrayRows(t *testing.T, text string) [][]string {
	t.Helper()

	open := strings.Index(text, "{")
	end := strings.Index(text, "};")
	if open < 0 || end < 0 {
		t.Fatalf("no array initializer in output:\n%s", text)
	}

	var rows [][]string
	for _, line := range strings.Split(text[open+1:end], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !strings.HasSuffix(line, ",") {
			t.Errorf("row does not end with a comma: %q", line)
		}

		var entries []string
		for _, cell := range strings.Split(strings.TrimSuffix(line, ","), ",") {
			entries = append(entries, strings.TrimSpace(cell))
		}
		rows = append(rows, entries)
	}
	return rows
}

func TestRender_EntryCountAndFormat(t *testing.T) {
	for _, n := range []int{1, 15, 16, 17, 100, 256} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}

		out := NewRenderer().Render("test_font_data", "Test", data)

		total := 0
		for _, row := range arrayRows(t, out) {
			for _, entry := range row {
				if !entryRe.MatchString(entry) {
					t.Errorf("n=%d: malformed entry %q", n, entry)
				}
				total++
			}
		}
		if total != n {
			t.Errorf("n=%d: expected %d entries, got %d", n, n, total)
		}
	}
}

func TestRender_RowWidths(t *testing.T) {
	data := make([]byte, 37) // 2 full rows + remainder of 5
	out := NewRenderer().Render("sym", "Test", data)

	rows := arrayRows(t, out)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if len(rows[0]) != 16 || len(rows[1]) != 16 {
		t.Errorf("expected full rows of 16, got %d and %d", len(rows[0]), len(rows[1]))
	}
	if len(rows[2]) != 5 {
		t.Errorf("expected final row of 5, got %d", len(rows[2]))
	}
}

func TestRender_SeventeenByteScenario(t *testing.T) {
	data := make([]byte, 17)
	for i := range data {
		data[i] = byte(i) // 0x00..0x10
	}

	out := NewRenderer().Render("glyphs", "Glyphs", data)

	rows := arrayRows(t, out)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[0]) != 16 || len(rows[1]) != 1 {
		t.Errorf("expected rows of 16 and 1, got %d and %d", len(rows[0]), len(rows[1]))
	}
	if rows[1][0] != "0x10" {
		t.Errorf("expected last entry 0x10, got %s", rows[1][0])
	}

	size, err := ParseSize(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 17 {
		t.Errorf("expected size constant 17, got %d", size)
	}
}

func TestRender_EmptyInput(t *testing.T) {
	out := NewRenderer().Render("empty_font_data", "Empty", nil)

	if rows := arrayRows(t, out); len(rows) != 0 {
		t.Errorf("expected zero rows for empty input, got %d", len(rows))
	}

	size, err := ParseSize(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 0 {
		t.Errorf("expected size constant 0, got %d", size)
	}

	if !strings.Contains(out, "static const unsigned char empty_font_data[] = {\n};") {
		t.Errorf("expected well-formed empty initializer:\n%s", out)
	}
}

func TestRender_GuardDerivation(t *testing.T) {
	out := NewRenderer().Render("inter_font_data", "Inter", []byte{0xAB})

	for _, want := range []string{
		"#ifndef INTER_FONT_DATA_H\n",
		"#define INTER_FONT_DATA_H\n",
		"#endif // INTER_FONT_DATA_H\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRender_SizeConstantAndComments(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	out := NewRenderer().Render("logo_font_data", "Logo", data)

	wantSize := "static const unsigned int logo_font_data_size = 4;"
	if !strings.Contains(out, wantSize) {
		t.Errorf("missing size constant %q", wantSize)
	}
	if !strings.HasPrefix(out, "// Auto-generated font data - 4 bytes\n") {
		t.Errorf("missing byte count comment:\n%s", out)
	}
	if !strings.Contains(out, "// Logo font from google fonts\n") {
		t.Errorf("missing attribution comment:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output should end with a newline")
	}
}

func TestRender_RoundTrip(t *testing.T) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i * 7)
	}

	out := NewRenderer().Render("roundtrip", "Roundtrip", data)

	parsed, err := ParseArray(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(parsed, data) {
		t.Error("parsed bytes do not match original input")
	}
}

func TestRender_CustomRowWidth(t *testing.T) {
	r := &Renderer{BytesPerRow: 8}
	out := r.Render("narrow", "Narrow", make([]byte, 20))

	rows := arrayRows(t, out)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if len(rows[0]) != 8 || len(rows[1]) != 8 || len(rows[2]) != 4 {
		t.Errorf("unexpected row widths: %d, %d, %d", len(rows[0]), len(rows[1]), len(rows[2]))
	}
}

func TestParseArray_NoInitializer(t *testing.T) {
	if _, err := ParseArray("#ifndef X_H\n#define X_H\n#endif\n"); err == nil {
		t.Error("expected error for text without initializer")
	}
}

func TestParseSize_Missing(t *testing.T) {
	if _, err := ParseSize("int x = 1;"); err == nil {
		t.Error("expected error for text without size constant")
	}
}

func TestGuard(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"inter_font_data", "INTER_FONT_DATA_H"},
		{"x", "X_H"},
		{"Mixed_Case", "MIXED_CASE_H"},
	}

	for _, tt := range tests {
		if got := Guard(tt.symbol); got != tt.want {
			t.Errorf("Guard(%q) = %q, want %q", tt.symbol, got, tt.want)
		}
	}
}

func ExampleRenderer_Render() {
	out := NewRenderer().Render("tiny_font_data", "Tiny", []byte{0x00, 0xFF})
	fmt.Print(out)
	// Output:
	// // Auto-generated font data - 2 bytes
	// // Tiny font from google fonts
	// #ifndef TINY_FONT_DATA_H
	// #define TINY_FONT_DATA_H
	//
	// static const unsigned char tiny_font_data[] = {
	//     0x00, 0xFF,
	// };
	//
	// static const unsigned int tiny_font_data_size = 2;
	//
	// #endif // TINY_FONT_DATA_H
}
