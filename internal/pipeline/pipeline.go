package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"creativegen/internal/brief"
	"creativegen/internal/domain"
	"creativegen/internal/infra"
	"creativegen/internal/providers/image"
	"creativegen/pkg/zip"
)

const (
	// DefaultVariants is the number of images generated per aspect ratio.
	DefaultVariants = 3
	// DefaultLocale is the only locale campaign messages are produced in.
	DefaultLocale = "en"

	manifestName = "manifest.json"
	rule         = "============================================================"
)

// AssetStore is the filesystem boundary the pipeline reads and writes through.
type AssetStore interface {
	ExistingAssets(product, ratio string) (string, []string)
	Write(ctx context.Context, key string, data []byte) (string, error)
	ReadFile(path string) ([]byte, error)
	Path(elem ...string) string
}

// Deps are the collaborators of a Pipeline.
type Deps struct {
	Generator image.Generator
	Store     AssetStore
	Model     string
	Logger    *infra.Logger
	// Out receives the human-readable run header and summary.
	Out io.Writer
	Now func() time.Time
}

// RunOptions tune a single run.
type RunOptions struct {
	Variants     int
	SkipExisting bool
	// RequireComplete only treats existing assets as a hit when there are at
	// least Variants of them.
	RequireComplete bool
	Locale          string
	Archive         bool
}

// DefaultRunOptions mirrors the CLI defaults.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Variants:     DefaultVariants,
		SkipExisting: true,
		Locale:       DefaultLocale,
	}
}

// Pipeline drives brief loading and asset generation across the fixed
// aspect ratios. It is sequential: one generation call at a time.
type Pipeline struct {
	gen    image.Generator
	store  AssetStore
	model  string
	logger *infra.Logger
	out    io.Writer
	now    func() time.Time
}

// New builds a Pipeline from deps.
func New(deps Deps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = infra.NopLogger()
	}
	out := deps.Out
	if out == nil {
		out = io.Discard
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		gen:    deps.Generator,
		store:  deps.Store,
		model:  deps.Model,
		logger: logger,
		out:    out,
		now:    now,
	}
}

// Run loads the brief at briefPath and generates every missing asset.
// Brief and option errors and context cancellation abort the run; per-variant
// failures are logged and leave a shorter path list for that ratio.
func (p *Pipeline) Run(ctx context.Context, briefPath string, opts RunOptions) (Result, error) {
	if opts.Variants < 1 {
		return Result{}, fmt.Errorf("%w: got %d", domain.ErrInvalidVariants, opts.Variants)
	}

	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, "Creative Automation Pipeline - Starting")
	fmt.Fprintln(p.out, rule)

	b, err := brief.Load(briefPath)
	if err != nil {
		return Result{}, err
	}
	return p.RunBrief(ctx, b, opts)
}

// RunBrief runs the generation loop for an already loaded brief.
func (p *Pipeline) RunBrief(ctx context.Context, b domain.Brief, opts RunOptions) (Result, error) {
	if opts.Variants < 1 {
		return Result{}, fmt.Errorf("%w: got %d", domain.ErrInvalidVariants, opts.Variants)
	}

	runID := uuid.NewString()
	started := p.now()
	product := b.ProductKey()
	logger := p.logger.With().Str("run_id", runID).Str("product", product).Logger()

	fmt.Fprintf(p.out, "\nProduct: %s\n", product)
	fmt.Fprintf(p.out, "Target Region: %s\n", orNA(b.TargetRegion))
	fmt.Fprintf(p.out, "Target Audience: %s\n", orNA(b.TargetAudience))
	fmt.Fprintf(p.out, "Campaign Message: %s\n", orNA(b.CampaignMessage))

	var result Result
	for _, ratio := range domain.AspectRatios() {
		if err := interrupted(ctx, &logger); err != nil {
			return result, err
		}
		label := ratio.Display()
		fmt.Fprintf(p.out, "\n--- Processing %s aspect ratio ---\n", label)

		if opts.SkipExisting {
			if paths, ok := p.existing(product, ratio, opts, &logger); ok {
				result.add(label, paths, true)
				continue
			}
		}

		var paths []string
		for v := 1; v <= opts.Variants; v++ {
			if err := interrupted(ctx, &logger); err != nil {
				result.add(label, paths, false)
				return result, err
			}
			fmt.Fprintf(p.out, "\nGenerating %s asset for %s (variant %d)...\n", label, product, v)
			out, err := p.gen.Generate(ctx, image.GenerateRequest{Brief: b, AspectRatio: ratio, Variant: v})
			if err != nil {
				logger.Warn().Err(err).Str("ratio", label).Int("variant", v).Msg("pipeline: failed to generate variant")
				fmt.Fprintf(p.out, "Failed to generate variant %d: %v\n", v, err)
				continue
			}
			fmt.Fprintf(p.out, "✓ Saved: %s\n", out)
			paths = append(paths, out)
		}
		result.add(label, paths, false)
	}

	fmt.Fprintln(p.out, "\n--- Campaign Message ---")
	fmt.Fprintf(p.out, "English: %s\n", p.LocalizeMessage(b, opts.Locale))

	if err := p.writeManifest(ctx, runID, product, started, opts, result); err != nil {
		logger.Warn().Err(err).Msg("pipeline: failed to write manifest")
	}
	if opts.Archive {
		if archive, err := p.archive(ctx, product, result); err != nil {
			logger.Warn().Err(err).Msg("pipeline: failed to archive assets")
		} else if archive != "" {
			fmt.Fprintf(p.out, "Archive: %s\n", archive)
		}
	}

	p.printSummary(product, result)
	logger.Info().Int("total", result.Total()).Dur("duration", p.now().Sub(started)).Msg("pipeline: complete")
	return result, nil
}

// interrupted reports a canceled run. Assets already written stay on disk and
// the next run picks them up through the existing-asset check.
func interrupted(ctx context.Context, logger *infra.Logger) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	logger.Warn().Err(err).Msg("pipeline: run interrupted")
	return fmt.Errorf("pipeline: interrupted: %w", err)
}

func (p *Pipeline) existing(product string, ratio domain.AspectRatio, opts RunOptions, logger *infra.Logger) ([]string, bool) {
	dir, paths := p.store.ExistingAssets(product, string(ratio))
	if dir == "" {
		return nil, false
	}
	if opts.RequireComplete && len(paths) < opts.Variants {
		logger.Info().
			Str("ratio", ratio.Display()).
			Int("existing", len(paths)).
			Int("requested", opts.Variants).
			Msg("pipeline: existing asset set incomplete, regenerating")
		return nil, false
	}
	fmt.Fprintf(p.out, "✓ Found existing assets for %s (%s)\n", product, ratio.Display())
	logger.Info().Str("ratio", ratio.Display()).Str("dir", dir).Int("count", len(paths)).Msg("pipeline: skipping existing assets")
	return paths, true
}

// LocalizeMessage returns the campaign message for locale. Translation is not
// implemented: any language other than English logs a notice and falls back
// to the brief's message.
func (p *Pipeline) LocalizeMessage(b domain.Brief, locale string) string {
	msg := b.CampaignMessage
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(locale)
	if err == nil {
		if base, _ := tag.Base(); base.String() == DefaultLocale {
			return msg
		}
	}
	p.logger.Warn().Str("locale", locale).Msg("pipeline: localization not yet implemented, using English")
	return msg
}

type manifest struct {
	RunID        string        `json:"run_id"`
	Product      string        `json:"product"`
	Model        string        `json:"model,omitempty"`
	Variants     int           `json:"variants"`
	SkipExisting bool          `json:"skip_existing"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   time.Time     `json:"finished_at"`
	Total        int           `json:"total"`
	Results      []RatioAssets `json:"results"`
}

func (p *Pipeline) writeManifest(ctx context.Context, runID, product string, started time.Time, opts RunOptions, result Result) error {
	m := manifest{
		RunID:        runID,
		Product:      product,
		Model:        p.model,
		Variants:     opts.Variants,
		SkipExisting: opts.SkipExisting,
		StartedAt:    started.UTC(),
		FinishedAt:   p.now().UTC(),
		Total:        result.Total(),
		Results:      result.Ratios,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	_, err = p.store.Write(ctx, path.Join(product, manifestName), data)
	return err
}

func (p *Pipeline) archive(ctx context.Context, product string, result Result) (string, error) {
	paths := result.AllPaths()
	if len(paths) == 0 {
		return "", nil
	}
	root := p.store.Path(product)
	assets := make([]zip.Asset, 0, len(paths))
	for _, full := range paths {
		data, err := p.store.ReadFile(full)
		if err != nil {
			return "", err
		}
		name, err := filepath.Rel(root, full)
		if err != nil || strings.HasPrefix(name, "..") {
			name = filepath.Base(full)
		}
		assets = append(assets, zip.Asset{Filename: filepath.ToSlash(name), Data: data, Modified: p.now()})
	}
	data, err := zip.ArchiveAssets(assets)
	if err != nil {
		return "", err
	}
	return p.store.Write(ctx, path.Join(product, product+"_assets.zip"), data)
}

func (p *Pipeline) printSummary(product string, result Result) {
	fmt.Fprintln(p.out, "\n"+rule)
	fmt.Fprintln(p.out, "Pipeline Complete - Summary")
	fmt.Fprintln(p.out, rule)
	fmt.Fprintf(p.out, "Total assets generated: %d\n", result.Total())
	for _, ra := range result.Ratios {
		fmt.Fprintf(p.out, "  %s: %d variants\n", ra.Label, len(ra.Paths))
	}
	fmt.Fprintf(p.out, "\nOutput directory: %s\n", p.store.Path(product))
	fmt.Fprintln(p.out, rule)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
