package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsAnonymous(t *testing.T) {
	p := Load(t.TempDir(), nil)

	assert.False(t, p.SignedIn)
	assert.Equal(t, "trainer", p.Name())
	assert.False(t, p.Verified())
	assert.Empty(t, p.Meta("bio"))
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	data := `{
		"signed_in": true,
		"display_name": "Ash",
		"avatar_url": "https://example.test/ash.png",
		"metadata": {"bio": "gotta catch em all", "verified": "true"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.json"), []byte(data), 0o644))

	p := Load(dir, nil)

	assert.True(t, p.SignedIn)
	assert.Equal(t, "Ash", p.Name())
	assert.True(t, p.Verified())
	assert.Equal(t, "gotta catch em all", p.Meta("bio"))
	assert.Empty(t, p.Meta("location"), "absent metadata reads as empty")
}

func TestLoadCorruptProfileIsAnonymous(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.json"), []byte("{oops"), 0o644))

	p := Load(dir, nil)
	assert.False(t, p.SignedIn)
}

func TestTrainerEnvOverridesDisplayName(t *testing.T) {
	dir := t.TempDir()
	data := `{"signed_in": true, "display_name": "Ash"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.json"), []byte(data), 0o644))

	t.Setenv("PALETTEDEX_TRAINER", "Misty")

	p := Load(dir, nil)
	assert.Equal(t, "Misty", p.Name())

	anon := Load(t.TempDir(), nil)
	assert.Equal(t, "Misty", anon.Name(), "override applies to the anonymous profile too")
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name                  string
		saved, designs, liked int
		wantPoints, wantLevel int
	}{
		{name: "fresh profile", wantPoints: 0, wantLevel: 1},
		{name: "a few saves", saved: 3, liked: 5, wantPoints: 40, wantLevel: 1},
		{name: "level up", saved: 10, designs: 2, liked: 0, wantPoints: 110, wantLevel: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeProgress(tt.saved, tt.designs, tt.liked)
			assert.Equal(t, tt.wantPoints, got.Points)
			assert.Equal(t, tt.wantLevel, got.Level)
		})
	}
}
