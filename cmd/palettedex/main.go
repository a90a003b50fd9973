// Palettedex - colour palettes from Pokemon artwork
//
// Palettedex extracts colour palettes from official Pokemon artwork and
// keeps a local collection of saved palettes and liked designs.
package main

import (
	"github.com/joho/godotenv"

	"github.com/palettedex/palettedex/internal/cli"
)

func main() {
	// PALETTEDEX_* settings may come from a .env file in the working
	// directory; a missing file is fine.
	_ = godotenv.Load()

	cli.Execute()
}
