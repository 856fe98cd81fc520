package cheader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	byteLiteralRe = regexp.MustCompile(`0x([0-9A-Fa-f]{2})`)
	sizeConstRe   = regexp.MustCompile(`_size\s*=\s*(\d+)\s*;`)
)

// ParseArray extracts the embedded bytes from a generated header.
// Only the array initializer body is scanned, so hex sequences in
// comments or labels are ignored.
func ParseArray(text string) ([]byte, error) {
	open := strings.Index(text, "{")
	if open < 0 {
		return nil, fmt.Errorf("no array initializer found")
	}
	end := strings.Index(text[open:], "};")
	if end < 0 {
		return nil, fmt.Errorf("unterminated array initializer")
	}
	body := text[open : open+end]

	matches := byteLiteralRe.FindAllStringSubmatch(body, -1)
	data := make([]byte, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseUint(m[1], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid byte literal %q: %w", m[0], err)
		}
		data = append(data, byte(v))
	}
	return data, nil
}

// ParseSize extracts the declared size constant from a generated header
func ParseSize(text string) (int, error) {
	m := sizeConstRe.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("no size constant found")
	}
	return strconv.Atoi(m[1])
}
