package mocks

import (
	"context"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"fontembed/internal/core/domain"
)

// mockFileInfo is a minimal fs.FileInfo for in-memory files
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return m.size }
func (m mockFileInfo) Mode() fs.FileMode  { return 0644 }
func (m mockFileInfo) ModTime() time.Time { return m.modTime }
func (m mockFileInfo) IsDir() bool        { return false }
func (m mockFileInfo) Sys() any           { return nil }

// MockAssetRepository is an in-memory implementation of the AssetRepository
// interface for testing
type MockAssetRepository struct {
	mu       sync.Mutex
	files    map[string][]byte
	modTimes map[string]time.Time
	calls    []string
}

// NewMockAssetRepository creates a new mock asset repository
func NewMockAssetRepository() *MockAssetRepository {
	return &MockAssetRepository{
		files:    make(map[string][]byte),
		modTimes: make(map[string]time.Time),
	}
}

// AddFile registers an in-memory source file
func (m *MockAssetRepository) AddFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
	m.modTimes[path] = time.Now()
}

// SetModTime overrides the modification time of a registered file
func (m *MockAssetRepository) SetModTime(path string, t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modTimes[path] = t
}

// Read loads a registered file
func (m *MockAssetRepository) Read(ctx context.Context, path string) (*domain.SourceAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, path)

	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("source font not found: %s", path)
	}
	return domain.NewSourceAsset(path, data), nil
}

// Sniff identifies the format of a registered file
func (m *MockAssetRepository) Sniff(ctx context.Context, path string) (domain.FontFormat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[path]
	if !ok {
		return domain.FormatUnknown, fmt.Errorf("source font not found: %s", path)
	}
	return domain.DetectFormat(data), nil
}

// Exists checks if a file was registered
func (m *MockAssetRepository) Exists(ctx context.Context, path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok
}

// Stat returns metadata for a registered file
func (m *MockAssetRepository) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("source font not found: %s", path)
	}
	return mockFileInfo{name: path, size: int64(len(data)), modTime: m.modTimes[path]}, nil
}

// GetCalls returns the paths passed to Read, in order
func (m *MockAssetRepository) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// --- MockArtifactRepository ---

// MockArtifactRepository is an in-memory implementation of the
// ArtifactRepository interface
type MockArtifactRepository struct {
	mu         sync.Mutex
	written    map[string]*domain.Artifact
	modTimes   map[string]time.Time
	calls      []string
	shouldFail bool
	failError  error
}

// NewMockArtifactRepository creates a new mock artifact repository
func NewMockArtifactRepository() *MockArtifactRepository {
	return &MockArtifactRepository{
		written:  make(map[string]*domain.Artifact),
		modTimes: make(map[string]time.Time),
	}
}

// Write records an artifact in memory
func (m *MockArtifactRepository) Write(ctx context.Context, artifact *domain.Artifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, artifact.Spec.Output)

	if m.shouldFail {
		if m.failError != nil {
			return m.failError
		}
		return fmt.Errorf("write failed for %s", artifact.Spec.Output)
	}

	m.written[artifact.Spec.Output] = artifact
	m.modTimes[artifact.Spec.Output] = time.Now()
	return nil
}

// Remove deletes a recorded artifact
func (m *MockArtifactRepository) Remove(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.written[path]; !ok {
		return fmt.Errorf("header not found: %s", path)
	}
	delete(m.written, path)
	delete(m.modTimes, path)
	return nil
}

// Exists checks if an artifact was written
func (m *MockArtifactRepository) Exists(ctx context.Context, path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.written[path]
	return ok
}

// Stat returns metadata for a written artifact
func (m *MockArtifactRepository) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.written[path]
	if !ok {
		return nil, fmt.Errorf("header not found: %s", path)
	}
	return mockFileInfo{name: path, size: int64(len(a.Content)), modTime: m.modTimes[path]}, nil
}

// SetModTime overrides the modification time of a written artifact
func (m *MockArtifactRepository) SetModTime(path string, t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modTimes[path] = t
}

// SetShouldFail makes subsequent writes fail
func (m *MockArtifactRepository) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

// Get returns a written artifact by output path
func (m *MockArtifactRepository) Get(path string) *domain.Artifact {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.written[path]
}

// GetCalls returns the output paths passed to Write, in order
func (m *MockArtifactRepository) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}
