package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palettedex/palettedex/internal/pokeapi"
)

var dexFlavor bool

// dexCmd represents the dex command
var dexCmd = &cobra.Command{
	Use:   "dex <pokemon>",
	Short: "Look up a Pokemon's dex entry",
	Long: `Look up a Pokemon: number, types, base stats, available forms and,
with --flavor, the dex flavor texts by game version.

Examples:
  palettedex dex pikachu
  palettedex dex 94 --flavor`,
	Args: cobra.ExactArgs(1),
	RunE: runDex,
}

func init() {
	dexCmd.Flags().BoolVar(&dexFlavor, "flavor", false, "include dex flavor texts")
}

// runDex executes the dex command.
func runDex(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	client := newClient(logger)

	p, err := client.Pokemon(cmd.Context(), pokeapi.Slugify(args[0]))
	if err != nil {
		return err
	}

	fmt.Printf("#%d %s  (%s)\n\n", p.ID, p.Name, strings.Join(p.Types, "/"))

	stats := NewTable([]string{"STAT", "VALUE"})
	for _, s := range p.Stats {
		stats.AddRow([]string{s.Name, strconv.Itoa(s.Value)})
	}
	fmt.Println(stats.Render())

	species, err := client.Species(cmd.Context(), p.Species)
	if err != nil {
		logger.Warn("species lookup failed", "species", p.Species, "error", err)
		return nil
	}

	if len(species.Varieties) > 1 {
		var forms []string
		for _, v := range species.Varieties {
			name := v.Name
			if v.IsDefault {
				name += " (default)"
			}
			forms = append(forms, name)
		}
		fmt.Printf("forms: %s\n", strings.Join(forms, ", "))
	}

	if dexFlavor {
		flavor := NewTable([]string{"VERSION", "ENTRY"})
		flavor.SetColumnMaxWidth(1, 60)
		for _, ft := range species.FlavorTexts {
			flavor.AddRow([]string{ft.Version, ft.Text})
		}
		fmt.Println()
		fmt.Println(flavor.Render())
	}

	return nil
}
