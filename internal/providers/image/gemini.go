package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"creativegen/internal/domain"
	"creativegen/internal/infra"
	"creativegen/internal/providers/prompt"
)

const (
	timestampLayout = "20060102_150405"
	maxLoggedText   = 150
)

// Options configures a GeminiGenerator.
type Options struct {
	Prompts prompt.Builder
	Logger  *infra.Logger
	Now     func() time.Time
}

// GeminiGenerator renders a prompt, asks the model for an image, resizes the
// first inline image to the aspect ratio's fixed size and stores it as PNG.
type GeminiGenerator struct {
	backend ContentGenerator
	store   Store
	prompts prompt.Builder
	logger  *infra.Logger
	now     func() time.Time
}

// NewGeminiGenerator wires a generator around a model backend and a store.
func NewGeminiGenerator(backend ContentGenerator, store Store, opts Options) *GeminiGenerator {
	logger := opts.Logger
	if logger == nil {
		logger = infra.NopLogger()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &GeminiGenerator{
		backend: backend,
		store:   store,
		prompts: opts.Prompts,
		logger:  logger,
		now:     now,
	}
}

// FileName returns the asset file name for a variant generated at ts.
func FileName(product string, ratio domain.AspectRatio, variant int, ts time.Time) string {
	return fmt.Sprintf("%s_%s_v%d_%s.png", product, ratio, variant, ts.Format(timestampLayout))
}

// Generate produces one asset. Text parts in the response are logged and
// skipped; only the first inline image is used.
func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	product := req.Brief.ProductKey()
	dirKey := path.Join(product, string(req.AspectRatio))
	logger := g.logger.With().
		Str("product", product).
		Str("ratio", req.AspectRatio.Display()).
		Int("variant", req.Variant).
		Logger()

	out, err := g.generate(ctx, req, product, dirKey, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("image: error generating asset")
		return "", err
	}
	logger.Info().Str("path", out).Msg("image: saved")
	return out, nil
}

func (g *GeminiGenerator) generate(ctx context.Context, req GenerateRequest, product, dirKey string, logger *infra.Logger) (string, error) {
	if _, err := g.store.EnsureDir(ctx, dirKey); err != nil {
		return "", err
	}

	text := g.prompts.Build(req.Brief, req.AspectRatio, req.Variant)
	logger.Info().Str("model", g.backend.Model()).Msg("image: generating asset")

	resp, err := g.backend.GenerateContent(ctx, text)
	if err != nil {
		return "", err
	}

	for _, part := range resp.Parts {
		if part.IsInlineData() {
			data, err := resizePNG(part.Data, req.AspectRatio.Size())
			if err != nil {
				return "", err
			}
			key := path.Join(dirKey, FileName(product, req.AspectRatio, req.Variant, g.now()))
			return g.store.Write(ctx, key, data)
		}
		if part.Text != "" {
			logger.Info().Str("text", truncate(part.Text, maxLoggedText)).Msg("image: response text")
		}
	}

	return "", fmt.Errorf("%w from %s", domain.ErrNoImageReturned, g.backend.Model())
}

// resizePNG decodes an image payload and re-encodes it as PNG at size.
func resizePNG(data []byte, size domain.Size) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image: decode inline data: %w", err)
	}

	dst := imaging.Resize(src, size.Width, size.Height, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, imaging.PNG); err != nil {
		return nil, fmt.Errorf("image: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

var _ Generator = (*GeminiGenerator)(nil)
