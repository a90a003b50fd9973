package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/palettedex/palettedex/internal/colour"
	"github.com/palettedex/palettedex/internal/palette"
)

var (
	randomColours int
	randomShiny   bool
	randomFormat  string
	randomPreview bool
)

// randomCmd represents the random command
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Extract a palette from a random Pokemon",
	Long: `Pick a random Pokemon and extract the colour palette of its artwork.

Examples:
  palettedex random
  palettedex random --shiny --preview`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().IntVarP(&randomColours, "colours", "c", 5, "number of colours to extract (1-16)")
	randomCmd.Flags().BoolVar(&randomShiny, "shiny", false, "use the shiny colourway")
	randomCmd.Flags().StringVarP(&randomFormat, "format", "f", "hex", "output format (hex, rgb, hsl, json)")
	randomCmd.Flags().BoolVar(&randomPreview, "preview", false, "show colour previews in terminal")
}

// runRandom executes the random command.
func runRandom(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	client := newClient(logger)

	// Resolve the random id to a name first so the output names the subject.
	id := client.RandomID()
	p, err := client.Pokemon(cmd.Context(), strconv.Itoa(id))
	if err != nil {
		return fmt.Errorf("failed to resolve random pokemon: %w", err)
	}

	config := colour.DefaultExtractorConfig()
	config.ColorCount = randomColours
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return err
	}
	store := palette.NewStore(
		palette.SpriteExtractor(client, extractor, logger),
		palette.WithSize(config.ColorCount),
		palette.WithLogger(logger),
	)

	subject := palette.Subject{Name: p.Name, ID: p.ID, Shiny: randomShiny}
	if err := store.SetSubject(cmd.Context(), subject); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	fmt.Printf("#%d %s\n", p.ID, subject.String())
	output, err := formatColors(store.Snapshot().Colors, randomFormat, randomPreview)
	if err != nil {
		return err
	}
	fmt.Print(output)
	return nil
}
