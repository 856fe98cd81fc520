package domain

// Artifact is a rendered header ready to be written to disk
type Artifact struct {
	Spec      EmbedSpec
	Content   string
	ByteCount int // Number of embedded bytes (the _size constant)
}
