package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"creativegen/internal/domain"
	"creativegen/internal/infra"
	"creativegen/internal/pipeline"
	"creativegen/internal/providers/genai"
	"creativegen/internal/providers/image"
	"creativegen/internal/providers/prompt"
	"creativegen/internal/storage"
)

type cliOptions struct {
	variants        int
	noSkip          bool
	apiKey          string
	model           string
	outputDir       string
	locale          string
	noFeatures      bool
	requireComplete bool
	archive         bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "creativegen <brief>",
		Short: "Generate social media creatives from a campaign brief",
		Long: `Reads a campaign brief (JSON or YAML), asks a Gemini image model for
product photographs in 1:1, 9:16 and 16:9 formats, and stores them as PNG
files under <output-dir>/<product>/<ratio>/.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.variants, "variants", pipeline.DefaultVariants, "number of variants per aspect ratio")
	flags.BoolVar(&opts.noSkip, "no-skip", false, "regenerate even when assets already exist")
	flags.StringVar(&opts.apiKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	flags.StringVar(&opts.model, "model", "", "image model: "+strings.Join(infra.SupportedModels, ", ")+" (default "+infra.DefaultModel+")")
	flags.StringVar(&opts.outputDir, "output-dir", "", "output root directory (default "+infra.DefaultOutputDir+")")
	flags.StringVar(&opts.locale, "locale", pipeline.DefaultLocale, "locale for the campaign message")
	flags.BoolVar(&opts.noFeatures, "no-features", false, "leave key features out of prompts")
	flags.BoolVar(&opts.requireComplete, "require-complete", false, "only skip a ratio when it already has every requested variant")
	flags.BoolVar(&opts.archive, "archive", false, "bundle the product's assets into a zip archive")

	return cmd
}

func run(cmd *cobra.Command, briefPath string, opts *cliOptions) error {
	if opts.variants < 1 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidVariants, opts.variants)
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		return err
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := infra.NewLogger(cmd.ErrOrStderr(), cfg.AppEnv, cfg.LogLevel)
	ctx := cmd.Context()

	store, err := storage.NewFileStore(cfg.OutputDir)
	if err != nil {
		return err
	}

	backend, err := genai.NewClient(ctx, genai.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		Model:      cfg.GeminiModel,
		HTTPClient: infra.NewHTTPClient(cfg.HTTPTimeout),
		Logger:     &logger,
	})
	if err != nil {
		return err
	}

	generator := image.NewGeminiGenerator(backend, store, image.Options{
		Prompts: prompt.Builder{IncludeFeatures: !opts.noFeatures},
		Logger:  &logger,
	})

	p := pipeline.New(pipeline.Deps{
		Generator: generator,
		Store:     store,
		Model:     backend.Model(),
		Logger:    &logger,
		Out:       cmd.OutOrStdout(),
	})

	logger.Info().
		Str("brief", briefPath).
		Str("model", cfg.GeminiModel).
		Str("output_dir", store.BasePath()).
		Int("variants", opts.variants).
		Msg("creativegen: starting pipeline")

	_, err = p.Run(ctx, briefPath, pipeline.RunOptions{
		Variants:        opts.variants,
		SkipExisting:    !opts.noSkip,
		RequireComplete: opts.requireComplete,
		Locale:          opts.locale,
		Archive:         opts.archive,
	})
	return err
}

// applyFlags lets explicit flags override environment configuration.
func applyFlags(cfg *infra.Config, opts *cliOptions) {
	if key := strings.TrimSpace(opts.apiKey); key != "" {
		cfg.GeminiAPIKey = key
	}
	if model := strings.TrimSpace(opts.model); model != "" {
		cfg.GeminiModel = model
	}
	if dir := strings.TrimSpace(opts.outputDir); dir != "" {
		cfg.OutputDir = dir
	}
}
