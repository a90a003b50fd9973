package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/palettedex/palettedex/internal/collections"
	"github.com/palettedex/palettedex/internal/profile"
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the local trainer profile and collection progress",
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

// currentProfile loads the trainer profile from the config directory,
// defaulting to the anonymous profile.
func currentProfile(logger hclog.Logger) profile.Profile {
	dir, err := collections.DefaultDir()
	if err != nil {
		return profile.Anonymous()
	}
	return profile.Load(dir, logger)
}

// runProfile executes the profile command.
func runProfile(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	user := currentProfile(logger)
	library := openLibrary(logger)

	fmt.Printf("trainer: %s\n", user.Name())
	if user.SignedIn {
		verified := ""
		if user.Verified() {
			verified = " (verified)"
		}
		fmt.Printf("signed in%s\n", verified)
	} else {
		fmt.Println("browsing anonymously")
	}

	progress := profile.ComputeProgress(library.Saved.Len(), library.Designs.Len(), library.Liked.Len())
	fmt.Printf("saved palettes: %d  designs: %d  liked: %d\n",
		library.Saved.Len(), library.Designs.Len(), library.Liked.Len())
	fmt.Printf("level %d (%d points)\n", progress.Level, progress.Points)
	return nil
}
