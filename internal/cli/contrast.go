package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palettedex/palettedex/internal/colour"
)

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <background>...",
	Short: "Pick contrast-safe text for a background colour",
	Long: `Decide whether light or dark text is legible on a background colour,
using the WCAG relative-luminance contrast ratio. The endpoint with the
higher ratio wins; WCAG AA asks for at least 4.5:1 for normal text.

Examples:
  palettedex contrast "#f7d02c"
  palettedex contrast "rgb(52, 152, 219)" "#1a1a1a"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runContrast,
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	white := colour.RGB{R: 255, G: 255, B: 255}
	black := colour.RGB{R: 0, G: 0, B: 0}

	for _, arg := range args {
		rgb, err := colour.Parse(arg)
		if err != nil {
			return fmt.Errorf("not a colour: %q", arg)
		}

		t := colour.Evaluate(rgb)
		fmt.Printf("%s  text: %-5s  vs white: %5.2f:1  vs black: %5.2f:1\n",
			colour.FormatWithPreview(rgb, 8),
			t.Text,
			colour.ContrastRatio(rgb, white),
			colour.ContrastRatio(rgb, black))
	}
	return nil
}
