package ports

import (
	"context"
	"io/fs"

	"fontembed/internal/core/domain"
)

// AssetRepository defines the port for reading source font files
type AssetRepository interface {
	// Read loads the full content of a font file
	Read(ctx context.Context, path string) (*domain.SourceAsset, error)

	// Sniff reads just enough of the file to identify its format
	Sniff(ctx context.Context, path string) (domain.FontFormat, error)

	// Exists checks if a source file exists
	Exists(ctx context.Context, path string) bool

	// Stat returns file metadata (size, modification time)
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
}

// ArtifactRepository defines the port for writing generated headers
type ArtifactRepository interface {
	// Write persists a rendered header to its output path, overwriting
	// any existing content
	Write(ctx context.Context, artifact *domain.Artifact) error

	// Remove deletes a generated header
	Remove(ctx context.Context, path string) error

	// Exists checks if a generated header exists
	Exists(ctx context.Context, path string) bool

	// Stat returns file metadata for a generated header
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
}
