package services

import (
	"context"

	"fontembed/internal/core/domain"
	"fontembed/internal/core/ports"
)

// SpecState describes the relationship between a source font and its
// generated header
type SpecState string

const (
	StateFresh         SpecState = "fresh"          // Header newer than source
	StateStale         SpecState = "stale"          // Source modified after header
	StateNotGenerated  SpecState = "not generated"  // Header missing
	StateMissingSource SpecState = "missing source" // Source file absent
)

// StatusService reports staleness for manifest entries
type StatusService struct {
	assets    ports.AssetRepository
	artifacts ports.ArtifactRepository
}

// NewStatusService creates a new status service
func NewStatusService(assets ports.AssetRepository, artifacts ports.ArtifactRepository) *StatusService {
	return &StatusService{assets: assets, artifacts: artifacts}
}

// SpecStatus is the status of one manifest entry
type SpecStatus struct {
	Spec       domain.EmbedSpec
	State      SpecState
	Format     domain.FontFormat
	SourceSize int64
}

// StatusRequest represents a request for a staleness report
type StatusRequest struct {
	Specs []domain.EmbedSpec
}

// StatusResponse carries the per-entry report
type StatusResponse struct {
	Items []SpecStatus
	Stale int // Entries needing regeneration (stale + not generated)
}

// Execute inspects every spec sequentially
func (s *StatusService) Execute(ctx context.Context, req StatusRequest) (*StatusResponse, error) {
	response := &StatusResponse{
		Items: make([]SpecStatus, 0, len(req.Specs)),
	}

	for _, spec := range req.Specs {
		if err := ctx.Err(); err != nil {
			return response, err
		}

		item := SpecStatus{Spec: spec, Format: domain.FormatUnknown}

		srcInfo, err := s.assets.Stat(ctx, spec.Source)
		if err != nil {
			item.State = StateMissingSource
			response.Items = append(response.Items, item)
			continue
		}
		item.SourceSize = srcInfo.Size()

		if format, err := s.assets.Sniff(ctx, spec.Source); err == nil {
			item.Format = format
		}

		outInfo, err := s.artifacts.Stat(ctx, spec.Output)
		switch {
		case err != nil:
			item.State = StateNotGenerated
			response.Stale++
		case srcInfo.ModTime().After(outInfo.ModTime()):
			item.State = StateStale
			response.Stale++
		default:
			item.State = StateFresh
		}

		response.Items = append(response.Items, item)
	}

	return response, nil
}
