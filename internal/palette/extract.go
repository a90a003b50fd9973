package palette

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/palettedex/palettedex/internal/colour"
	img "github.com/palettedex/palettedex/internal/image"
	"github.com/palettedex/palettedex/internal/pokeapi"
	"github.com/palettedex/palettedex/internal/util/imagecache"
)

// SpriteExtractor builds an ExtractFunc that resolves a subject's sprite via
// the Pokemon API, caches the sprite on disk and runs the colour extractor
// over it. This is the production wiring of the extraction pipeline; tests
// substitute their own ExtractFunc.
func SpriteExtractor(client *pokeapi.Client, extractor colour.Extractor, logger hclog.Logger) ExtractFunc {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return func(ctx context.Context, subject Subject, count int) ([]colour.RGB, error) {
		// A form variety is itself a pokemon endpoint entry.
		lookup := subject.Name
		if subject.Form != "" {
			lookup = subject.Form
		}

		p, err := client.Pokemon(ctx, lookup)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve subject %q: %w", subject.Slug(), err)
		}

		url := p.Sprites.URL(subject.Shiny)
		logger.Debug("resolving sprite", "subject", subject.Slug(), "url", url)

		// Prefer the on-disk cache; a broken cache dir must not block
		// extraction, so fall back to loading straight from the URL.
		source, err := imagecache.DownloadAndCache(ctx, url, imagecache.CacheOptions{})
		if err != nil {
			logger.Warn("sprite cache unavailable, loading directly", "url", url, "error", err)
			source = url
		} else if width, height, derr := img.GetImageDimensions(source); derr == nil {
			logger.Debug("sprite cached", "path", source, "size", fmt.Sprintf("%dx%d", width, height))
		}

		decoded, err := img.NewSmartLoader().Load(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("failed to load sprite for %q: %w", subject.Slug(), err)
		}

		pal, err := extractor.Extract(decoded, count)
		if err != nil {
			return nil, fmt.Errorf("failed to extract colours for %q: %w", subject.Slug(), err)
		}

		logger.Debug("extraction complete", "subject", subject.Slug(), "colours", pal.Len())
		return pal.Colors, nil
	}
}
