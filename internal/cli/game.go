package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palettedex/palettedex/internal/colour"
	"github.com/palettedex/palettedex/internal/game"
	"github.com/palettedex/palettedex/internal/palette"
	"github.com/palettedex/palettedex/internal/pokeapi"
	"github.com/palettedex/palettedex/internal/render"
)

var gameAttempts int

// gameCmd represents the game command
var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Guess the Pokemon from its palette",
	Long: `A guessing game: a random Pokemon is picked and only the colour palette
of its artwork is shown. Guess the Pokemon by name; each wrong guess reveals
whether the answer sits higher or lower in the dex and which of your guess's
types it shares.`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func init() {
	gameCmd.Flags().IntVar(&gameAttempts, "attempts", game.DefaultMaxAttempts, "number of guesses allowed")
}

// runGame executes the game command.
func runGame(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	client := newClient(logger)
	ctx := cmd.Context()

	answer, err := client.Pokemon(ctx, strconv.Itoa(client.RandomID()))
	if err != nil {
		return fmt.Errorf("failed to pick a pokemon: %w", err)
	}

	config := colour.DefaultExtractorConfig()
	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return err
	}
	store := palette.NewStore(
		palette.SpriteExtractor(client, extractor, logger),
		palette.WithSize(config.ColorCount),
		palette.WithLogger(logger),
	)

	// The board shows the palette but must not name the subject.
	gen := store.BeginSubject(palette.Subject{Name: "???", ID: 0})
	colors, extractErr := palette.SpriteExtractor(client, extractor, logger)(
		ctx, palette.Subject{Name: answer.Name}, config.ColorCount)
	store.CommitExtraction(gen, colors, extractErr)

	lookup := func(ctx context.Context, name string) (game.Answer, error) {
		p, err := client.Pokemon(ctx, pokeapi.Slugify(name))
		if err != nil {
			return game.Answer{}, err
		}
		return game.Answer{Name: p.Name, DexID: p.ID, Types: p.Types}, nil
	}

	g, err := game.New(game.Answer{Name: answer.Name, DexID: answer.ID, Types: answer.Types}, lookup, gameAttempts)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for g.Status() == game.StatusPlaying {
		fmt.Println(render.GameBoard(g, store.Snapshot()))
		fmt.Print("your guess: ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		guess := strings.TrimSpace(scanner.Text())
		if guess == "" {
			continue
		}
		if _, err := g.Guess(ctx, guess); err != nil {
			if errors.Is(err, game.ErrInvalidName) {
				fmt.Println("Invalid name")
				continue
			}
			return err
		}
	}

	fmt.Println(render.GameBoard(g, store.Snapshot()))
	return nil
}
