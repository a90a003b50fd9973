package pokeapi

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	httputil "github.com/palettedex/palettedex/internal/util/http"
)

const (
	// DefaultBaseURL is the public Pokemon API endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultLanguage selects which flavor-text entries are kept.
	DefaultLanguage = "en"

	// MaxSpeciesID is the highest national dex number the random picker
	// will select.
	MaxSpeciesID = 1025
)

// Client is a typed client for the Pokemon data API.
type Client struct {
	baseURL  string
	language string
	timeout  time.Duration
	logger   hclog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests and mirrors).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithLanguage overrides the flavor-text language.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new Client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		language: DefaultLanguage,
		timeout:  httputil.DefaultTimeout,
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pokemon looks up a Pokemon by name or numeric id.
func (c *Client) Pokemon(ctx context.Context, nameOrID string) (*Pokemon, error) {
	slug := Slugify(nameOrID)
	if slug == "" {
		return nil, fmt.Errorf("pokemon name or id cannot be empty")
	}

	url := fmt.Sprintf("%s/pokemon/%s", c.baseURL, slug)
	c.logger.Debug("fetching pokemon", "url", url)

	var wire pokemonWire
	if err := httputil.FetchJSON(ctx, url, &wire, httputil.FetchOptions{Timeout: c.timeout}); err != nil {
		return nil, fmt.Errorf("failed to fetch pokemon %q: %w", slug, err)
	}

	p, err := toPokemon(wire)
	if err != nil {
		return nil, fmt.Errorf("invalid pokemon response for %q: %w", slug, err)
	}

	c.logger.Debug("fetched pokemon", "name", p.Name, "id", p.ID, "types", p.Types)
	return p, nil
}

// Species looks up species data (flavor texts, varieties) by name or numeric id.
func (c *Client) Species(ctx context.Context, nameOrID string) (*Species, error) {
	slug := Slugify(nameOrID)
	if slug == "" {
		return nil, fmt.Errorf("species name or id cannot be empty")
	}

	url := fmt.Sprintf("%s/pokemon-species/%s", c.baseURL, slug)
	c.logger.Debug("fetching species", "url", url)

	var wire speciesWire
	if err := httputil.FetchJSON(ctx, url, &wire, httputil.FetchOptions{Timeout: c.timeout}); err != nil {
		return nil, fmt.Errorf("failed to fetch species %q: %w", slug, err)
	}

	sp, err := toSpecies(wire, c.language)
	if err != nil {
		return nil, fmt.Errorf("invalid species response for %q: %w", slug, err)
	}

	return sp, nil
}

// RandomID returns a random national dex number within the known range.
func (c *Client) RandomID() int {
	return rand.Intn(MaxSpeciesID) + 1
}

// Slugify normalizes user input into an API path segment: lowercased,
// trimmed, inner spaces collapsed to hyphens.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}
