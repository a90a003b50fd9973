package collections

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/palettedex/palettedex/internal/colour"
)

// SavedPalette is a persisted palette snapshot. Uniqueness is keyed by the
// subject slug, so re-saving the same subject updates the stored snapshot.
type SavedPalette struct {
	Slug      string       `json:"slug"`
	Name      string       `json:"name"`
	DexID     int          `json:"dex_id"`
	Shiny     bool         `json:"shiny"`
	Form      string       `json:"form,omitempty"`
	Colors    []colour.RGB `json:"colors"`
	CreatedAt time.Time    `json:"created_at"`
}

// Key implements Record.
func (p SavedPalette) Key() string { return p.Slug }

// Design is a community-submitted design referenced by the save/like
// collections.
type Design struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Creator   string       `json:"creator"`
	Subject   string       `json:"subject"`
	Category  string       `json:"category"`
	Colors    []colour.RGB `json:"colors"`
	Likes     int          `json:"likes"`
	CreatedAt time.Time    `json:"created_at"`
}

// Key implements Record.
func (d Design) Key() string { return d.ID }

// NewDesign creates a Design with a fresh unique id.
func NewDesign(title, creator, subject, category string, colors []colour.RGB) Design {
	return Design{
		ID:        uuid.NewString(),
		Title:     title,
		Creator:   creator,
		Subject:   subject,
		Category:  category,
		Colors:    colors,
		CreatedAt: time.Now().UTC(),
	}
}

// Library bundles the three on-device collections.
type Library struct {
	Saved   *Collection[SavedPalette]
	Designs *Collection[Design]
	Liked   *Collection[Design]
}

// OpenLibrary loads the collections stored under dir. An empty dir keeps all
// collections memory-only (used by tests and by sessions where the config
// directory is unavailable).
func OpenLibrary(dir string, logger hclog.Logger) *Library {
	join := func(name string) string {
		if dir == "" {
			return ""
		}
		return filepath.Join(dir, name)
	}

	return &Library{
		Saved:   New[SavedPalette](join("saved_palettes.json"), logger),
		Designs: New[Design](join("saved_designs.json"), logger),
		Liked:   New[Design](join("liked_designs.json"), logger),
	}
}
