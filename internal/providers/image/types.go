package image

import (
	"context"

	"creativegen/internal/domain"
	"creativegen/internal/providers/genai"
)

// GenerateRequest identifies one variant of one aspect ratio for a brief.
type GenerateRequest struct {
	Brief       domain.Brief
	AspectRatio domain.AspectRatio
	Variant     int
}

// Generator produces a single asset on disk and returns its path.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// ContentGenerator is the remote model call; *genai.Client implements it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (*genai.Response, error)
	Model() string
}

// Store is the persistence boundary for generated files.
type Store interface {
	EnsureDir(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key string, data []byte) (string, error)
}

var _ ContentGenerator = (*genai.Client)(nil)
