// Package pokeapi provides a typed client for the public Pokemon data API.
//
// The wire format is loosely structured JSON; this package is the
// parse/validate boundary that maps it into strongly-typed records,
// defaulting optional fields and rejecting records with missing identity.
package pokeapi

import (
	"fmt"
	"strings"
)

// Pokemon is the validated internal record for a single Pokemon.
type Pokemon struct {
	ID      int
	Name    string
	Types   []string
	Stats   []Stat
	Sprites SpriteSet
	Species string
}

// Stat is a single base stat (name + value pair).
type Stat struct {
	Name  string
	Value int
}

// SpriteSet holds the resolved sprite URLs for a Pokemon. Official artwork is
// preferred over the small front sprite when available.
type SpriteSet struct {
	Default string
	Shiny   string
}

// URL returns the sprite URL for the requested variant. A missing shiny
// sprite falls back to the default sprite.
func (s SpriteSet) URL(shiny bool) string {
	if shiny && s.Shiny != "" {
		return s.Shiny
	}
	return s.Default
}

// Species is the validated internal record for a species lookup.
type Species struct {
	ID          int
	Name        string
	FlavorTexts []FlavorText
	Varieties   []Variety
}

// FlavorText is a localized flavor-text entry keyed by game version.
type FlavorText struct {
	Text    string
	Version string
}

// Variety is an alternate form of a species.
type Variety struct {
	Name      string
	IsDefault bool
}

// Wire types below mirror the external API responses. They are never exposed
// outside this package.

type namedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonWire struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Sprites spritesWire `json:"sprites"`
	Types   []struct {
		Slot int      `json:"slot"`
		Type namedRef `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int      `json:"base_stat"`
		Stat     namedRef `json:"stat"`
	} `json:"stats"`
	Species namedRef `json:"species"`
}

type spritesWire struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
			FrontShiny   string `json:"front_shiny"`
		} `json:"official-artwork"`
	} `json:"other"`
}

type speciesWire struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	FlavorTextEntries []struct {
		FlavorText string   `json:"flavor_text"`
		Language   namedRef `json:"language"`
		Version    namedRef `json:"version"`
	} `json:"flavor_text_entries"`
	Varieties []struct {
		IsDefault bool     `json:"is_default"`
		Pokemon   namedRef `json:"pokemon"`
	} `json:"varieties"`
}

// toPokemon validates a wire response and maps it to the internal record.
func toPokemon(w pokemonWire) (*Pokemon, error) {
	if w.ID == 0 || w.Name == "" {
		return nil, fmt.Errorf("pokemon response missing id or name")
	}

	p := &Pokemon{
		ID:      w.ID,
		Name:    w.Name,
		Species: w.Species.Name,
	}

	// Types arrive with explicit slot numbers; ordering by slot keeps the
	// primary type first.
	for slot := 1; slot <= len(w.Types); slot++ {
		for _, t := range w.Types {
			if t.Slot == slot && t.Type.Name != "" {
				p.Types = append(p.Types, t.Type.Name)
			}
		}
	}

	for _, s := range w.Stats {
		if s.Stat.Name == "" {
			continue
		}
		p.Stats = append(p.Stats, Stat{Name: s.Stat.Name, Value: s.BaseStat})
	}

	p.Sprites = resolveSprites(w.Sprites)
	if p.Sprites.Default == "" {
		return nil, fmt.Errorf("pokemon %q has no usable sprite", w.Name)
	}

	return p, nil
}

// resolveSprites picks the best available sprite URLs: official artwork first,
// small front sprite as fallback.
func resolveSprites(w spritesWire) SpriteSet {
	s := SpriteSet{
		Default: w.Other.OfficialArtwork.FrontDefault,
		Shiny:   w.Other.OfficialArtwork.FrontShiny,
	}
	if s.Default == "" {
		s.Default = w.FrontDefault
	}
	if s.Shiny == "" {
		s.Shiny = w.FrontShiny
	}
	return s
}

// toSpecies validates a wire response and maps it to the internal record,
// keeping only entries for the requested language and de-duplicating flavor
// texts by exact text+version match.
func toSpecies(w speciesWire, language string) (*Species, error) {
	if w.ID == 0 || w.Name == "" {
		return nil, fmt.Errorf("species response missing id or name")
	}

	sp := &Species{
		ID:   w.ID,
		Name: w.Name,
	}

	seen := make(map[string]bool)
	for _, entry := range w.FlavorTextEntries {
		if entry.Language.Name != language {
			continue
		}
		text := normalizeFlavorText(entry.FlavorText)
		if text == "" {
			continue
		}
		key := text + "\x00" + entry.Version.Name
		if seen[key] {
			continue
		}
		seen[key] = true
		sp.FlavorTexts = append(sp.FlavorTexts, FlavorText{
			Text:    text,
			Version: entry.Version.Name,
		})
	}

	for _, v := range w.Varieties {
		if v.Pokemon.Name == "" {
			continue
		}
		sp.Varieties = append(sp.Varieties, Variety{
			Name:      v.Pokemon.Name,
			IsDefault: v.IsDefault,
		})
	}

	return sp, nil
}

// normalizeFlavorText collapses the form feeds and hard line breaks the API
// embeds in flavor text into plain spaces.
func normalizeFlavorText(s string) string {
	s = strings.ReplaceAll(s, "\f", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "­ ", "")
	return strings.Join(strings.Fields(s), " ")
}
