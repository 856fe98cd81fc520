package repository

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	"fontembed/internal/core/domain"
)

// FontRepository reads source font files from the local filesystem
type FontRepository struct{}

// NewFontRepository creates a new font repository
func NewFontRepository() *FontRepository {
	return &FontRepository{}
}

// Read loads the full content of a font file
func (r *FontRepository) Read(ctx context.Context, path string) (*domain.SourceAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source font not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	return domain.NewSourceAsset(path, data), nil
}

// Sniff reads only the magic bytes to identify the font format
func (r *FontRepository) Sniff(ctx context.Context, path string) (domain.FontFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.FormatUnknown, fmt.Errorf("failed to open font file: %w", err)
	}
	defer f.Close()

	magic := make([]byte, 4)
	n, err := io.ReadFull(f, magic)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return domain.FormatUnknown, fmt.Errorf("failed to read font file: %w", err)
	}
	return domain.DetectFormat(magic[:n]), nil
}

// Exists checks if a source file exists and is a regular file
func (r *FontRepository) Exists(ctx context.Context, path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Stat returns file metadata
func (r *FontRepository) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
