package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/palettedex/palettedex/internal/collections"
	"github.com/palettedex/palettedex/internal/colour"
	"github.com/palettedex/palettedex/internal/palette"
	"github.com/palettedex/palettedex/internal/pokeapi"
)

var (
	// Palette command flags
	paletteColours int
	paletteShiny   bool
	paletteForm    string
	paletteFormat  string
	palettePreview bool
	paletteSave    bool
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette <pokemon>",
	Short: "Extract a colour palette from a Pokemon's artwork",
	Long: `Extract the dominant colours from a Pokemon's official artwork.

Colours are ordered by dominance: the first colour covers the largest share
of the artwork. Transparent sprite background pixels are ignored.

Examples:
  # The five dominant colours of Pikachu's artwork
  palettedex palette pikachu

  # Shiny colourway, eight colours, with terminal previews
  palettedex palette --shiny --colours 8 --preview charizard

  # A specific form
  palettedex palette deoxys --form deoxys-attack

  # Machine-readable output
  palettedex palette gengar --format json

  # Save the palette to the local collection
  palettedex palette umbreon --save`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().IntVarP(&paletteColours, "colours", "c", 5, "number of colours to extract (1-16)")
	paletteCmd.Flags().BoolVar(&paletteShiny, "shiny", false, "use the shiny colourway")
	paletteCmd.Flags().StringVar(&paletteForm, "form", "", "specific form variety (e.g. deoxys-attack)")
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "hex", "output format (hex, rgb, hsl, json)")
	paletteCmd.Flags().BoolVar(&palettePreview, "preview", false, "show colour previews in terminal")
	paletteCmd.Flags().BoolVar(&paletteSave, "save", false, "save the palette to the local collection")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	client := newClient(logger)

	config := colour.DefaultExtractorConfig()
	config.ColorCount = paletteColours
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	store := palette.NewStore(
		palette.SpriteExtractor(client, extractor, logger),
		palette.WithSize(paletteColours),
		palette.WithLogger(logger),
	)

	subject := palette.Subject{
		Name:  pokeapi.Slugify(args[0]),
		Shiny: paletteShiny,
		Form:  paletteForm,
	}
	if err := store.SetSubject(cmd.Context(), subject); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	snap := store.Snapshot()
	output, err := formatColors(snap.Colors, paletteFormat, palettePreview)
	if err != nil {
		return err
	}
	fmt.Print(output)

	if paletteSave {
		library := openLibrary(logger)
		library.Saved.Add(collections.SavedPalette{
			Slug:      subject.Slug(),
			Name:      subject.Name,
			Shiny:     subject.Shiny,
			Form:      subject.Form,
			Colors:    snap.Colors,
			CreatedAt: time.Now(),
		})
		fmt.Printf("saved as %q (%d palettes in collection)\n", subject.Slug(), library.Saved.Len())
	}

	return nil
}

// formatColors renders a colour list in the requested encoding.
func formatColors(colors []colour.RGB, format string, showPreview bool) (string, error) {
	if format == "json" {
		data, err := colour.NewPalette(colors).ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	}

	var b strings.Builder
	for _, c := range colors {
		var text string
		switch format {
		case "hex":
			text = c.Hex()
		case "rgb":
			text = c.String()
		case "hsl":
			text = c.HSL()
		default:
			return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, hsl, json)", format)
		}
		switch {
		case showPreview && format == "hex":
			b.WriteString(colour.FormatWithPreview(c, 8))
		case showPreview:
			b.WriteString(colour.FormatWithLabel(c, text, 8))
		default:
			b.WriteString(text)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
