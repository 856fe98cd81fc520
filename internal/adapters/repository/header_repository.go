package repository

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"fontembed/internal/core/domain"
)

// HeaderRepository writes generated headers to the local filesystem
type HeaderRepository struct{}

// NewHeaderRepository creates a new header repository
func NewHeaderRepository() *HeaderRepository {
	return &HeaderRepository{}
}

// Write persists a rendered header, overwriting any existing file.
// The output directory must already exist; a missing parent is a
// configuration error the caller surfaces.
func (r *HeaderRepository) Write(ctx context.Context, artifact *domain.Artifact) error {
	if err := os.WriteFile(artifact.Spec.Output, []byte(artifact.Content), 0644); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// Remove deletes a generated header
func (r *HeaderRepository) Remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove header: %w", err)
	}
	return nil
}

// Exists checks if a generated header exists
func (r *HeaderRepository) Exists(ctx context.Context, path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Stat returns file metadata
func (r *HeaderRepository) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
