package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palettedex/palettedex/internal/colour"
)

var convertTo string

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <colour>...",
	Short: "Convert colours between hex, rgb and hsl",
	Long: `Convert one or more colour strings to a target encoding.

Accepted inputs: #rrggbb, #rgb, rgb(r, g, b) and hsl(h, s%, l%).
Converting a colour to the encoding it is already in returns it normalised.

Examples:
  palettedex convert "#3498db" --to hsl
  palettedex convert "rgb(247, 208, 44)" "hsl(204, 70%, 53%)" --to hex`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "hex", "target encoding (hex, rgb, hsl)")
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	target := colour.Format(convertTo)
	if !colour.IsValidFormat(target) {
		return fmt.Errorf("unsupported target encoding: %s (supported: hex, rgb, hsl)", convertTo)
	}

	for _, arg := range args {
		if _, err := colour.Parse(arg); err != nil {
			return fmt.Errorf("not a colour: %q", arg)
		}
		fmt.Println(colour.Convert(arg, target))
	}
	return nil
}
