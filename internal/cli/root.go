// Package cli provides the command-line interface for palettedex.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/palettedex/palettedex/internal/collections"
	"github.com/palettedex/palettedex/internal/colour"
	"github.com/palettedex/palettedex/internal/pokeapi"
	"github.com/palettedex/palettedex/internal/version"
)

var (
	// Global flags
	globalVerbose bool
	globalNoColor bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "palettedex",
		Short: "Colour palettes from Pokemon artwork",
		Long: `Palettedex extracts colour palettes from official Pokemon artwork and
helps you work with them: inspect contrast-safe text treatments, convert
between colour encodings, keep a local collection of saved palettes and
liked designs, and play a palette guessing game.

Palette data comes from the public PokeAPI; sprites are cached locally so
repeat lookups are fast and offline-friendly.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if globalNoColor {
				applyNoColor()
			}
		},
	}
)

// applyNoColor turns off every colour-emitting path: the ANSI preview
// helpers and the lipgloss styles used by the render surfaces, which
// otherwise pick a profile from the terminal on their own.
func applyNoColor() {
	colour.DisableColourOutput = true
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "disable colour previews in output")

	// Accept both spellings for the colour-related flags.
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		switch name {
		case "colors":
			name = "colours"
		case "no-colour":
			name = "no-color"
		}
		return pflag.NormalizedName(name)
	})

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(dexCmd)
	rootCmd.AddCommand(savedCmd)
	rootCmd.AddCommand(likesCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(studioCmd)
}

// newLogger builds the hclog logger commands share, honouring --verbose.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if globalVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "palettedex",
		Level:  level,
		Output: os.Stderr,
	})
}

// newClient builds the Pokemon API client. PALETTEDEX_API_URL and
// PALETTEDEX_LANGUAGE override the defaults; both are normally supplied via
// the environment or a .env file.
func newClient(logger hclog.Logger) *pokeapi.Client {
	opts := []pokeapi.Option{pokeapi.WithLogger(logger)}
	if url := os.Getenv("PALETTEDEX_API_URL"); url != "" {
		opts = append(opts, pokeapi.WithBaseURL(url))
	}
	if lang := os.Getenv("PALETTEDEX_LANGUAGE"); lang != "" {
		opts = append(opts, pokeapi.WithLanguage(lang))
	}
	return pokeapi.New(opts...)
}

// openLibrary opens the on-disk collections, degrading to a memory-only
// session when the config directory is unavailable.
func openLibrary(logger hclog.Logger) *collections.Library {
	dir, err := collections.DefaultDir()
	if err != nil {
		logger.Warn("config directory unavailable, collections are session-only", "error", err)
		dir = ""
	}
	return collections.OpenLibrary(dir, logger)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
