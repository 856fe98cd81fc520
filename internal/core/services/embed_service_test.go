package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"fontembed/internal/core/domain"
	"fontembed/internal/core/ports/mocks"
	"fontembed/pkg/cheader"
)

func ttfBytes(n int) []byte {
	data := make([]byte, n)
	copy(data, []byte{0x00, 0x01, 0x00, 0x00})
	for i := 4; i < n; i++ {
		data[i] = byte(i)
	}
	return data
}

func TestEmbedService_Execute_Success(t *testing.T) {
	mockAssets := mocks.NewMockAssetRepository()
	mockArtifacts := mocks.NewMockArtifactRepository()
	svc := NewEmbedService(mockAssets, mockArtifacts, 0)

	data := ttfBytes(40)
	mockAssets.AddFile("assets/Inter.ttf", data)

	spec := domain.EmbedSpec{
		Symbol: "inter_font_data",
		Source: "assets/Inter.ttf",
		Output: "gui/inter_font_data.h",
		Label:  "Inter",
	}

	resp, err := svc.Execute(context.Background(), EmbedRequest{Spec: spec})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Success {
		t.Error("expected Success=true")
	}
	if resp.ByteCount != len(data) {
		t.Errorf("expected ByteCount=%d, got %d", len(data), resp.ByteCount)
	}
	if resp.Format != domain.FormatTTF {
		t.Errorf("expected TTF format, got %s", resp.Format)
	}
	if resp.OutputPath != spec.Output {
		t.Errorf("expected output %s, got %s", spec.Output, resp.OutputPath)
	}

	artifact := mockArtifacts.Get(spec.Output)
	if artifact == nil {
		t.Fatal("expected artifact to be written")
	}
	if artifact.ByteCount != len(data) {
		t.Errorf("expected artifact ByteCount=%d, got %d", len(data), artifact.ByteCount)
	}
	if !strings.Contains(artifact.Content, "#ifndef INTER_FONT_DATA_H") {
		t.Error("artifact missing include guard")
	}
	if !strings.Contains(artifact.Content, "// Inter font from google fonts") {
		t.Error("artifact missing attribution comment")
	}

	parsed, err := cheader.ParseArray(artifact.Content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(parsed, data) {
		t.Error("embedded bytes do not round-trip to the source data")
	}
}

func TestEmbedService_Execute_MissingSource(t *testing.T) {
	mockAssets := mocks.NewMockAssetRepository()
	mockArtifacts := mocks.NewMockArtifactRepository()
	svc := NewEmbedService(mockAssets, mockArtifacts, 0)

	spec := domain.EmbedSpec{
		Symbol: "ghost_font_data",
		Source: "assets/Ghost.ttf",
		Output: "gui/ghost_font_data.h",
	}

	resp, err := svc.Execute(context.Background(), EmbedRequest{Spec: spec})

	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if resp == nil {
		t.Fatal("expected response even on error")
	}
	if resp.Success {
		t.Error("expected Success=false")
	}
	if len(mockArtifacts.GetCalls()) != 0 {
		t.Error("no output should be written when the source is missing")
	}
}

func TestEmbedService_Execute_InvalidSymbol(t *testing.T) {
	mockAssets := mocks.NewMockAssetRepository()
	mockArtifacts := mocks.NewMockArtifactRepository()
	svc := NewEmbedService(mockAssets, mockArtifacts, 0)

	mockAssets.AddFile("f.ttf", ttfBytes(8))

	spec := domain.EmbedSpec{
		Symbol: "2bad-name",
		Source: "f.ttf",
		Output: "f.h",
	}

	resp, err := svc.Execute(context.Background(), EmbedRequest{Spec: spec})
	if err == nil {
		t.Fatal("expected error for invalid symbol")
	}
	if resp.Success {
		t.Error("expected Success=false")
	}
	if len(mockArtifacts.GetCalls()) != 0 {
		t.Error("no output should be written for an invalid spec")
	}
}

func TestEmbedService_Execute_WriteFailure(t *testing.T) {
	mockAssets := mocks.NewMockAssetRepository()
	mockArtifacts := mocks.NewMockArtifactRepository()
	svc := NewEmbedService(mockAssets, mockArtifacts, 0)

	mockAssets.AddFile("f.ttf", ttfBytes(8))
	mockArtifacts.SetShouldFail(true, fmt.Errorf("permission denied"))

	spec := domain.EmbedSpec{Symbol: "f_font_data", Source: "f.ttf", Output: "out/f.h"}

	resp, err := svc.Execute(context.Background(), EmbedRequest{Spec: spec})
	if err == nil {
		t.Fatal("expected error from write failure")
	}
	if resp.Success {
		t.Error("expected Success=false")
	}
}

func TestEmbedService_Execute_EmptySource(t *testing.T) {
	mockAssets := mocks.NewMockAssetRepository()
	mockArtifacts := mocks.NewMockArtifactRepository()
	svc := NewEmbedService(mockAssets, mockArtifacts, 0)

	mockAssets.AddFile("empty.bin", []byte{})

	spec := domain.EmbedSpec{Symbol: "empty_font_data", Source: "empty.bin", Output: "empty.h"}

	resp, err := svc.Execute(context.Background(), EmbedRequest{Spec: spec})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ByteCount != 0 {
		t.Errorf("expected ByteCount=0, got %d", resp.ByteCount)
	}

	artifact := mockArtifacts.Get("empty.h")
	if artifact == nil {
		t.Fatal("expected artifact to be written")
	}
	if size, err := cheader.ParseSize(artifact.Content); err != nil || size != 0 {
		t.Errorf("expected size constant 0, got %d (err %v)", size, err)
	}
}

func TestEmbedService_ExecuteAll_PartialFailureContinues(t *testing.T) {
	mockAssets := mocks.NewMockAssetRepository()
	mockArtifacts := mocks.NewMockArtifactRepository()
	svc := NewEmbedService(mockAssets, mockArtifacts, 0)

	mockAssets.AddFile("a.ttf", ttfBytes(10))
	mockAssets.AddFile("c.ttf", ttfBytes(20))

	specs := []domain.EmbedSpec{
		{Symbol: "a_font_data", Source: "a.ttf", Output: "a.h"},
		{Symbol: "b_font_data", Source: "b.ttf", Output: "b.h"}, // missing
		{Symbol: "c_font_data", Source: "c.ttf", Output: "c.h"},
	}

	resp, err := svc.ExecuteAll(context.Background(), EmbedAllRequest{Specs: specs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 3 {
		t.Errorf("expected Total=3, got %d", resp.Total)
	}
	if resp.Succeeded != 2 {
		t.Errorf("expected Succeeded=2, got %d", resp.Succeeded)
	}
	if resp.Failed != 1 {
		t.Errorf("expected Failed=1, got %d", resp.Failed)
	}

	// The failed middle spec must not prevent the third from running
	writes := mockArtifacts.GetCalls()
	if len(writes) != 2 || writes[0] != "a.h" || writes[1] != "c.h" {
		t.Errorf("expected sequential writes [a.h c.h], got %v", writes)
	}

	if resp.Results[1].Success || resp.Results[1].Error == nil {
		t.Error("expected failure recorded for missing source")
	}
}

func TestEmbedService_ExecuteAll_Cancelled(t *testing.T) {
	mockAssets := mocks.NewMockAssetRepository()
	mockArtifacts := mocks.NewMockArtifactRepository()
	svc := NewEmbedService(mockAssets, mockArtifacts, 0)

	mockAssets.AddFile("a.ttf", ttfBytes(10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	specs := []domain.EmbedSpec{{Symbol: "a_font_data", Source: "a.ttf", Output: "a.h"}}
	if _, err := svc.ExecuteAll(ctx, EmbedAllRequest{Specs: specs}); err == nil {
		t.Error("expected context error")
	}
	if len(mockArtifacts.GetCalls()) != 0 {
		t.Error("no writes expected after cancellation")
	}
}
