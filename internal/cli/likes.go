package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palettedex/palettedex/internal/collections"
	"github.com/palettedex/palettedex/internal/colour"
)

// likesCmd represents the likes command
var likesCmd = &cobra.Command{
	Use:   "likes",
	Short: "Manage liked designs",
	Long: `List, like and unlike community designs kept in the local library.

A design is a named palette submitted under a title and category. Liking is
a toggle: liking an already-liked design removes it from the liked set.`,
	RunE: runLikesList,
}

var likesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List liked designs",
	Args:  cobra.NoArgs,
	RunE:  runLikesList,
}

var likesToggleCmd = &cobra.Command{
	Use:   "toggle <design-id>",
	Short: "Like or unlike a design from the local design library",
	Args:  cobra.ExactArgs(1),
	RunE:  runLikesToggle,
}

var likesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Unlike all designs",
	Args:  cobra.NoArgs,
	RunE:  runLikesClear,
}

var (
	designTitle    string
	designCategory string
)

var likesSubmitCmd = &cobra.Command{
	Use:   "submit <colour>...",
	Short: "Add a design to the local design library",
	Long: `Add a design built from explicit colours to the local design library.

Example:
  palettedex likes submit "#f7d02c" "#3d7dca" --title "trainer kit" --category electric`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLikesSubmit,
}

func init() {
	likesSubmitCmd.Flags().StringVar(&designTitle, "title", "", "design title (required)")
	likesSubmitCmd.Flags().StringVar(&designCategory, "category", "general", "design category")

	likesCmd.AddCommand(likesListCmd)
	likesCmd.AddCommand(likesToggleCmd)
	likesCmd.AddCommand(likesSubmitCmd)
	likesCmd.AddCommand(likesClearCmd)
}

// runLikesList lists liked designs.
func runLikesList(cmd *cobra.Command, args []string) error {
	library := openLibrary(newLogger())

	liked := library.Liked.All()
	if len(liked) == 0 {
		fmt.Println("no liked designs yet")
		return nil
	}

	table := NewTable([]string{"ID", "TITLE", "CREATOR", "CATEGORY", "LIKES"})
	for _, d := range liked {
		table.AddRow([]string{d.ID, d.Title, d.Creator, d.Category, strconv.Itoa(d.Likes)})
	}
	fmt.Println(table.Render())
	return nil
}

// runLikesToggle toggles a design in the liked set.
func runLikesToggle(cmd *cobra.Command, args []string) error {
	library := openLibrary(newLogger())

	design, ok := library.Designs.Get(args[0])
	if !ok {
		return fmt.Errorf("no design with id %q", args[0])
	}

	if library.Liked.Toggle(design) {
		fmt.Printf("liked %q\n", design.Title)
	} else {
		fmt.Printf("unliked %q\n", design.Title)
	}
	return nil
}

// runLikesClear unlikes everything.
func runLikesClear(cmd *cobra.Command, args []string) error {
	library := openLibrary(newLogger())

	n := library.Liked.Len()
	library.Liked.Clear()
	fmt.Printf("unliked %d design(s)\n", n)
	return nil
}

// runLikesSubmit adds a design built from explicit colours.
func runLikesSubmit(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(designTitle) == "" {
		return fmt.Errorf("--title is required")
	}

	colors := make([]colour.RGB, 0, len(args))
	for _, arg := range args {
		rgb, err := colour.Parse(arg)
		if err != nil {
			return fmt.Errorf("not a colour: %q", arg)
		}
		colors = append(colors, rgb)
	}

	logger := newLogger()
	library := openLibrary(logger)
	user := currentProfile(logger)

	design := collections.NewDesign(designTitle, user.Name(), "", designCategory, colors)
	library.Designs.Add(design)

	fmt.Printf("submitted %q as %s\n", design.Title, design.ID)
	return nil
}
