// Package project locates the fontembed manifest for the current working
// directory, walking up the tree the way git discovers its repository root.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the manifest filename fontembed looks for
const ManifestName = "fontembed.yaml"

// Project represents the directory tree governed by one manifest
type Project struct {
	RootPath     string
	ManifestPath string
}

// Find walks up from startDir looking for a manifest
func Find(startDir string) (*Project, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return &Project{RootPath: dir, ManifestPath: candidate}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("no %s found in %s or any parent directory", ManifestName, startDir)
		}
		dir = parent
	}
}

// FromManifest builds a project from an explicit manifest path
func FromManifest(path string) (*Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}
	return &Project{RootPath: filepath.Dir(abs), ManifestPath: abs}, nil
}

// At returns the project rooted at dir without requiring a manifest to
// exist yet. Used by 'fontembed init'.
func At(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory: %w", err)
	}
	return &Project{RootPath: abs, ManifestPath: filepath.Join(abs, ManifestName)}, nil
}

// Exists checks if the manifest file is present
func (p *Project) Exists() bool {
	info, err := os.Stat(p.ManifestPath)
	return err == nil && !info.IsDir()
}

// Resolve makes a manifest-relative path absolute. Absolute paths are
// returned unchanged.
func (p *Project) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.RootPath, path)
}

// Rel returns path relative to the project root when possible, for
// display purposes
func (p *Project) Rel(path string) string {
	rel, err := filepath.Rel(p.RootPath, path)
	if err != nil {
		return path
	}
	return rel
}
