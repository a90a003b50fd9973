// Package profile is the boundary to the identity provider. The rest of the
// application only ever asks "is someone signed in" and reads optional
// profile fields; everything here is absent-by-default.
package profile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Profile describes the current user. All fields beyond SignedIn are
// optional; consumers must tolerate every one of them being empty.
type Profile struct {
	SignedIn    bool              `json:"signed_in"`
	DisplayName string            `json:"display_name,omitempty"`
	AvatarURL   string            `json:"avatar_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Anonymous is the signed-out default profile.
func Anonymous() Profile {
	return Profile{}
}

// Meta returns a metadata value, or "" when absent.
func (p Profile) Meta(key string) string {
	if p.Metadata == nil {
		return ""
	}
	return p.Metadata[key]
}

// Verified reports whether the identity provider marked this profile as
// verified.
func (p Profile) Verified() bool {
	return p.Meta("verified") == "true"
}

// Name returns the display name, or a neutral placeholder when signed out or
// unnamed.
func (p Profile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return "trainer"
}

// Load reads the profile stored under dir. A missing or unreadable file
// yields the anonymous profile: identity is never required.
// PALETTEDEX_TRAINER overrides the display name either way.
func Load(dir string, logger hclog.Logger) Profile {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if dir == "" {
		return withEnvOverrides(Anonymous())
	}

	path := filepath.Join(dir, "profile.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read profile", "path", path, "error", err)
		}
		return withEnvOverrides(Anonymous())
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		logger.Warn("failed to parse profile", "path", path, "error", err)
		return withEnvOverrides(Anonymous())
	}
	return withEnvOverrides(p)
}

// withEnvOverrides applies environment overrides on top of the stored
// profile.
func withEnvOverrides(p Profile) Profile {
	if name := os.Getenv("PALETTEDEX_TRAINER"); name != "" {
		p.DisplayName = name
	}
	return p
}

// Progress is the gamified summary derived from collection activity.
type Progress struct {
	Points int
	Level  int
}

// pointsPerLevel controls how fast levels accumulate.
const pointsPerLevel = 100

// ComputeProgress derives points and level from collection sizes. Saving a
// palette is worth more than liking someone else's design.
func ComputeProgress(savedPalettes, savedDesigns, likedDesigns int) Progress {
	points := savedPalettes*10 + savedDesigns*5 + likedDesigns*2
	return Progress{
		Points: points,
		Level:  points/pointsPerLevel + 1,
	}
}
