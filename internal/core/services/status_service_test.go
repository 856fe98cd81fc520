package services

import (
	"context"
	"testing"
	"time"

	"fontembed/internal/core/domain"
	"fontembed/internal/core/ports/mocks"
)

func TestStatusService_Execute(t *testing.T) {
	mockAssets := mocks.NewMockAssetRepository()
	mockArtifacts := mocks.NewMockArtifactRepository()

	embedSvc := NewEmbedService(mockAssets, mockArtifacts, 0)
	statusSvc := NewStatusService(mockAssets, mockArtifacts)
	ctx := context.Background()

	base := time.Now()

	// fresh: generated after the source was last touched
	mockAssets.AddFile("fresh.ttf", ttfBytes(10))
	mockAssets.SetModTime("fresh.ttf", base.Add(-time.Hour))

	// stale: source touched after generation
	mockAssets.AddFile("stale.ttf", ttfBytes(10))

	// never generated
	mockAssets.AddFile("new.ttf", ttfBytes(10))

	specs := []domain.EmbedSpec{
		{Symbol: "fresh_font_data", Source: "fresh.ttf", Output: "fresh.h"},
		{Symbol: "stale_font_data", Source: "stale.ttf", Output: "stale.h"},
		{Symbol: "new_font_data", Source: "new.ttf", Output: "new.h"},
		{Symbol: "gone_font_data", Source: "gone.ttf", Output: "gone.h"},
	}

	for _, symbol := range []string{"fresh_font_data", "stale_font_data"} {
		for _, spec := range specs {
			if spec.Symbol == symbol {
				if _, err := embedSvc.Execute(ctx, EmbedRequest{Spec: spec}); err != nil {
					t.Fatalf("setup embed failed: %v", err)
				}
			}
		}
	}
	mockAssets.SetModTime("stale.ttf", base.Add(time.Hour))

	resp, err := statusSvc.Execute(ctx, StatusRequest{Specs: specs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(resp.Items))
	}

	states := map[string]SpecState{}
	for _, item := range resp.Items {
		states[item.Spec.Symbol] = item.State
	}

	if states["fresh_font_data"] != StateFresh {
		t.Errorf("expected fresh, got %s", states["fresh_font_data"])
	}
	if states["stale_font_data"] != StateStale {
		t.Errorf("expected stale, got %s", states["stale_font_data"])
	}
	if states["new_font_data"] != StateNotGenerated {
		t.Errorf("expected not generated, got %s", states["new_font_data"])
	}
	if states["gone_font_data"] != StateMissingSource {
		t.Errorf("expected missing source, got %s", states["gone_font_data"])
	}

	if resp.Stale != 2 {
		t.Errorf("expected 2 entries needing regeneration, got %d", resp.Stale)
	}
}

func TestStatusService_ReportsFormatAndSize(t *testing.T) {
	mockAssets := mocks.NewMockAssetRepository()
	mockArtifacts := mocks.NewMockArtifactRepository()
	svc := NewStatusService(mockAssets, mockArtifacts)

	data := append([]byte("wOF2"), make([]byte, 60)...)
	mockAssets.AddFile("web.woff2", data)

	resp, err := svc.Execute(context.Background(), StatusRequest{
		Specs: []domain.EmbedSpec{{Symbol: "web_font_data", Source: "web.woff2", Output: "web.h"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := resp.Items[0]
	if item.Format != domain.FormatWOFF2 {
		t.Errorf("expected WOFF2, got %s", item.Format)
	}
	if item.SourceSize != int64(len(data)) {
		t.Errorf("expected size %d, got %d", len(data), item.SourceSize)
	}
}
