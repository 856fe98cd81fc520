package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// FontFormat identifies the container format of a font file
type FontFormat string

const (
	FormatTTF     FontFormat = "TTF"
	FormatOTF     FontFormat = "OTF"
	FormatWOFF    FontFormat = "WOFF"
	FormatWOFF2   FontFormat = "WOFF2"
	FormatTTC     FontFormat = "TTC"
	FormatUnknown FontFormat = "unknown"
)

// SourceAsset holds the raw bytes of a font file read from disk
type SourceAsset struct {
	Path   string
	Data   []byte
	Format FontFormat
	Hash   string // SHA-256 of the content
}

// NewSourceAsset builds an asset from raw file content
func NewSourceAsset(path string, data []byte) *SourceAsset {
	sum := sha256.Sum256(data)
	return &SourceAsset{
		Path:   path,
		Data:   data,
		Format: DetectFormat(data),
		Hash:   hex.EncodeToString(sum[:]),
	}
}

// Size returns the byte length of the asset
func (a *SourceAsset) Size() int {
	return len(a.Data)
}

// DetectFormat sniffs the font container format from its magic bytes
func DetectFormat(data []byte) FontFormat {
	if len(data) < 4 {
		return FormatUnknown
	}
	switch {
	case bytes.Equal(data[:4], []byte{0x00, 0x01, 0x00, 0x00}):
		return FormatTTF
	case bytes.Equal(data[:4], []byte("true")):
		return FormatTTF
	case bytes.Equal(data[:4], []byte("OTTO")):
		return FormatOTF
	case bytes.Equal(data[:4], []byte("wOFF")):
		return FormatWOFF
	case bytes.Equal(data[:4], []byte("wOF2")):
		return FormatWOFF2
	case bytes.Equal(data[:4], []byte("ttcf")):
		return FormatTTC
	default:
		return FormatUnknown
	}
}
