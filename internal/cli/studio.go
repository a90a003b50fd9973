package cli

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/palettedex/palettedex/internal/colour"
	"github.com/palettedex/palettedex/internal/palette"
	"github.com/palettedex/palettedex/internal/tui"
)

var studioStart string

// studioCmd represents the studio command
var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Open the interactive palette studio",
	Long: `Open the interactive palette studio: pick Pokemon, lock slots you want
to keep across re-extractions, reorder and edit colours, copy values to the
clipboard and save palettes to the local collection.`,
	Args: cobra.NoArgs,
	RunE: runStudio,
}

func init() {
	studioCmd.Flags().StringVar(&studioStart, "start", "", "pokemon to load on startup")
}

// runStudio executes the studio command.
func runStudio(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	client := newClient(logger)

	config := colour.DefaultExtractorConfig()
	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return err
	}
	extract := palette.SpriteExtractor(client, extractor, logger)
	store := palette.NewStore(extract,
		palette.WithSize(config.ColorCount),
		palette.WithLogger(logger))

	pickRandom := func(ctx context.Context) (palette.Subject, error) {
		p, err := client.Pokemon(ctx, strconv.Itoa(client.RandomID()))
		if err != nil {
			return palette.Subject{}, err
		}
		return palette.Subject{Name: p.Name, ID: p.ID}, nil
	}

	model := tui.NewStudio(tui.Config{
		Store:      store,
		Extract:    extract,
		Library:    openLibrary(logger),
		User:       currentProfile(logger),
		PickRandom: pickRandom,
		Logger:     logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())

	// Bridge store notifications into the program. The subscriber must not
	// call Send directly: notifications fire synchronously on the mutating
	// goroutine, which during key handling is the program's own event loop.
	// A non-blocking signal through a one-slot channel coalesces bursts and
	// hands delivery to a separate goroutine.
	changed := make(chan struct{}, 1)
	defer close(changed)
	unsubscribe := store.Subscribe(func(palette.Snapshot) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()
	go func() {
		for range changed {
			program.Send(tui.StoreChangedMsg{})
		}
	}()

	if studioStart != "" {
		start := studioStart
		go func() {
			program.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
			program.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(start)})
			program.Send(tea.KeyMsg{Type: tea.KeyEnter})
		}()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("studio exited with error: %w", err)
	}
	return nil
}
