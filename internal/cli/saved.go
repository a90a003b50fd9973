package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palettedex/palettedex/internal/colour"
)

// savedCmd represents the saved command
var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage the local collection of saved palettes",
	RunE:  runSavedList,
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	Args:  cobra.NoArgs,
	RunE:  runSavedList,
}

var savedRemoveCmd = &cobra.Command{
	Use:   "remove <slug>",
	Short: "Remove a saved palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedRemove,
}

var savedClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all saved palettes",
	Args:  cobra.NoArgs,
	RunE:  runSavedClear,
}

func init() {
	savedCmd.AddCommand(savedListCmd)
	savedCmd.AddCommand(savedRemoveCmd)
	savedCmd.AddCommand(savedClearCmd)
}

// runSavedList lists the saved palettes as a table.
func runSavedList(cmd *cobra.Command, args []string) error {
	library := openLibrary(newLogger())

	palettes := library.Saved.All()
	if len(palettes) == 0 {
		fmt.Println("no saved palettes yet (save one with: palettedex palette <pokemon> --save)")
		return nil
	}

	table := NewTable([]string{"SLUG", "DEX", "COLOURS", "SAVED"})
	for _, p := range palettes {
		hexes := make([]string, 0, len(p.Colors))
		for _, c := range p.Colors {
			hexes = append(hexes, c.Hex())
		}
		dex := ""
		if p.DexID > 0 {
			dex = "#" + strconv.Itoa(p.DexID)
		}
		table.AddRow([]string{p.Slug, dex, strings.Join(hexes, " "), p.CreatedAt.Format("2006-01-02")})
	}
	fmt.Println(table.Render())

	if !colour.DisableColourOutput {
		for _, p := range palettes {
			var strip strings.Builder
			for _, c := range p.Colors {
				strip.WriteString(colour.PreviewWithText(c, c.Hex(), 9))
			}
			fmt.Printf("%-28s %s\n", p.Slug, strip.String())
		}
	}
	return nil
}

// runSavedRemove removes one palette by its slug.
func runSavedRemove(cmd *cobra.Command, args []string) error {
	library := openLibrary(newLogger())

	if !library.Saved.Remove(args[0]) {
		return fmt.Errorf("no saved palette named %q", args[0])
	}
	fmt.Printf("removed %q\n", args[0])
	return nil
}

// runSavedClear removes all saved palettes.
func runSavedClear(cmd *cobra.Command, args []string) error {
	library := openLibrary(newLogger())

	n := library.Saved.Len()
	library.Saved.Clear()
	fmt.Printf("removed %d palette(s)\n", n)
	return nil
}
