package services

import (
	"context"
	"fmt"

	"fontembed/internal/core/domain"
	"fontembed/internal/core/ports"
	"fontembed/pkg/cheader"
)

// EmbedService converts font files into C headers
type EmbedService struct {
	assets    ports.AssetRepository
	artifacts ports.ArtifactRepository
	renderer  *cheader.Renderer
}

// NewEmbedService creates a new embed service
func NewEmbedService(assets ports.AssetRepository, artifacts ports.ArtifactRepository, bytesPerRow int) *EmbedService {
	renderer := cheader.NewRenderer()
	if bytesPerRow > 0 {
		renderer.BytesPerRow = bytesPerRow
	}
	return &EmbedService{
		assets:    assets,
		artifacts: artifacts,
		renderer:  renderer,
	}
}

// EmbedRequest represents a request to embed a single font
type EmbedRequest struct {
	Spec domain.EmbedSpec
}

// EmbedResponse represents the result of embedding a single font
type EmbedResponse struct {
	Symbol     string
	OutputPath string
	ByteCount  int
	Format     domain.FontFormat
	Success    bool
	Error      error
}

// EmbedAllRequest represents a request to embed every manifest entry
type EmbedAllRequest struct {
	Specs []domain.EmbedSpec
}

// EmbedAllResponse aggregates per-font results
type EmbedAllResponse struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []EmbedResponse
}

// Execute embeds a single font. A missing source file yields a failed
// response without touching the output; nothing is ever partially written
// over an existing header on the failure paths handled here.
func (s *EmbedService) Execute(ctx context.Context, req EmbedRequest) (*EmbedResponse, error) {
	spec := req.Spec

	fail := func(err error) (*EmbedResponse, error) {
		return &EmbedResponse{
			Symbol:     spec.Symbol,
			OutputPath: spec.Output,
			Success:    false,
			Error:      err,
		}, err
	}

	if err := spec.Validate(); err != nil {
		return fail(fmt.Errorf("invalid spec: %w", err))
	}

	if !s.assets.Exists(ctx, spec.Source) {
		return fail(fmt.Errorf("source font not found: %s", spec.Source))
	}

	asset, err := s.assets.Read(ctx, spec.Source)
	if err != nil {
		return fail(fmt.Errorf("failed to read source font: %w", err))
	}

	artifact := &domain.Artifact{
		Spec:      spec,
		Content:   s.renderer.Render(spec.Symbol, spec.DisplayLabel(), asset.Data),
		ByteCount: asset.Size(),
	}

	if err := s.artifacts.Write(ctx, artifact); err != nil {
		return fail(err)
	}

	return &EmbedResponse{
		Symbol:     spec.Symbol,
		OutputPath: spec.Output,
		ByteCount:  asset.Size(),
		Format:     asset.Format,
		Success:    true,
	}, nil
}

// ExecuteAll embeds every spec strictly in order. Each spec is processed
// independently; a failure is recorded and the remaining specs still run.
func (s *EmbedService) ExecuteAll(ctx context.Context, req EmbedAllRequest) (*EmbedAllResponse, error) {
	response := &EmbedAllResponse{
		Total:   len(req.Specs),
		Results: make([]EmbedResponse, 0, len(req.Specs)),
	}

	for _, spec := range req.Specs {
		if err := ctx.Err(); err != nil {
			return response, err
		}

		resp, _ := s.Execute(ctx, EmbedRequest{Spec: spec})
		response.Results = append(response.Results, *resp)

		if resp.Success {
			response.Succeeded++
		} else {
			response.Failed++
		}
	}

	return response, nil
}
