// Package tui implements the interactive palette studio: a bubbletea program
// over the shared palette store with per-slot locking, reordering, colour
// editing, clipboard copy and save to the local library.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	"github.com/palettedex/palettedex/internal/collections"
	"github.com/palettedex/palettedex/internal/colour"
	"github.com/palettedex/palettedex/internal/palette"
	"github.com/palettedex/palettedex/internal/profile"
	"github.com/palettedex/palettedex/internal/render"
)

// copyRevertAfter is how long the "copied" indicator stays up.
const copyRevertAfter = 2 * time.Second

// inputMode says what the text input is currently capturing.
type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modeEditColor
)

// Config wires the studio's dependencies.
type Config struct {
	Store   *palette.Store
	Extract palette.ExtractFunc
	Library *collections.Library
	User    profile.Profile

	// PickRandom resolves a random subject. Required for the "r" binding.
	PickRandom func(ctx context.Context) (palette.Subject, error)

	// WriteClipboard defaults to the system clipboard.
	WriteClipboard func(string) error

	Logger hclog.Logger
}

// Studio is the bubbletea model for the palette studio.
type Studio struct {
	store      *palette.Store
	extract    palette.ExtractFunc
	library    *collections.Library
	user       profile.Profile
	pickRandom func(ctx context.Context) (palette.Subject, error)
	writeClip  func(string) error
	logger     hclog.Logger

	snap     palette.Snapshot
	selected int
	format   colour.Format
	mode     inputMode
	input    textinput.Model
	spin     spinner.Model

	copied  bool
	copySeq int
	status  string
	width   int
}

// NewStudio creates the studio model. The store must not be nil.
func NewStudio(cfg Config) *Studio {
	in := textinput.New()
	in.CharLimit = 32
	in.Width = 24

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	writeClip := cfg.WriteClipboard
	if writeClip == nil {
		writeClip = clipboard.WriteAll
	}
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Studio{
		store:      cfg.Store,
		extract:    cfg.Extract,
		library:    cfg.Library,
		user:       cfg.User,
		pickRandom: cfg.PickRandom,
		writeClip:  writeClip,
		logger:     logger,
		snap:       cfg.Store.Snapshot(),
		format:     colour.FormatHex,
		input:      in,
		spin:       sp,
		width:      render.TerminalWidth(),
	}
}

// Init implements tea.Model.
func (m *Studio) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model.
func (m *Studio) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case subjectPickedMsg:
		if msg.err != nil {
			m.status = "random pick failed: " + msg.err.Error()
			return m, nil
		}
		return m, m.beginExtraction(msg.subject)

	case extractedMsg:
		// A result for a superseded selection is dropped; the store keeps
		// the state of whichever selection came last.
		if m.store.CommitExtraction(msg.gen, msg.colors, msg.err) {
			if msg.err != nil {
				m.status = "extraction failed, showing fallback colours"
			} else {
				m.status = ""
			}
		}
		m.snap = m.store.Snapshot()
		return m, nil

	case copyRevertMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil

	case StoreChangedMsg:
		m.snap = m.store.Snapshot()
		if m.selected >= len(m.snap.Colors) && len(m.snap.Colors) > 0 {
			m.selected = len(m.snap.Colors) - 1
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// beginExtraction registers the subject with the store and launches the
// extraction command tagged with the new generation.
func (m *Studio) beginExtraction(subject palette.Subject) tea.Cmd {
	gen := m.store.BeginSubject(subject)
	m.snap = m.store.Snapshot()
	count := len(m.snap.Colors)

	return tea.Batch(m.spin.Tick, func() tea.Msg {
		colors, err := m.extract(context.Background(), subject, count)
		return extractedMsg{gen: gen, colors: colors, err: err}
	})
}

// updateKeys handles normal-mode key bindings.
func (m *Studio) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		if m.pickRandom == nil {
			m.status = "random pick not available"
			return m, nil
		}
		pick := m.pickRandom
		return m, func() tea.Msg {
			subject, err := pick(context.Background())
			return subjectPickedMsg{subject: subject, err: err}
		}

	case "s":
		if m.snap.Subject.Name == "" {
			return m, nil
		}
		subject := m.snap.Subject
		subject.Shiny = !subject.Shiny
		return m, m.beginExtraction(subject)

	case "/":
		m.mode = modeSearch
		m.input.Placeholder = "pokemon name"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "left":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "right":
		if m.selected < len(m.snap.Colors)-1 {
			m.selected++
		}
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(msg.String())
		if n >= 1 && n <= len(m.snap.Colors) {
			m.selected = n - 1
		}
		return m, nil

	case "l":
		m.store.ToggleLock(m.selected)
		m.snap = m.store.Snapshot()
		return m, nil

	case "[":
		if m.selected > 0 {
			m.store.Reorder(m.selected, m.selected-1)
			m.selected--
			m.snap = m.store.Snapshot()
		}
		return m, nil

	case "]":
		if m.selected < len(m.snap.Colors)-1 {
			m.store.Reorder(m.selected, m.selected+1)
			m.selected++
			m.snap = m.store.Snapshot()
		}
		return m, nil

	case "e":
		c, ok := m.snap.Color(m.selected)
		if !ok {
			return m, nil
		}
		m.mode = modeEditColor
		m.input.Placeholder = "#rrggbb, rgb(...) or hsl(...)"
		m.input.SetValue(c.Hex())
		m.input.Focus()
		return m, textinput.Blink

	case "f":
		m.format = nextFormat(m.format)
		return m, nil

	case "c":
		return m, m.copySelected()

	case "w":
		m.savePalette()
		return m, nil
	}

	return m, nil
}

// updateInput handles key events while the text input is capturing.
func (m *Studio) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = modeNormal
		m.input.Blur()

		if value == "" {
			return m, nil
		}
		switch mode {
		case modeSearch:
			return m, m.beginExtraction(palette.Subject{Name: value})
		case modeEditColor:
			rgb, err := colour.Parse(value)
			if err != nil {
				m.status = fmt.Sprintf("not a colour: %q", value)
				return m, nil
			}
			m.store.SetColorAt(m.selected, rgb)
			m.snap = m.store.Snapshot()
			m.status = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// copySelected writes the selected colour to the clipboard in the current
// display format and schedules the indicator revert.
func (m *Studio) copySelected() tea.Cmd {
	c, ok := m.snap.Color(m.selected)
	if !ok {
		return nil
	}

	value := colour.Convert(c.Hex(), m.format)
	if err := m.writeClip(value); err != nil {
		m.status = "clipboard unavailable"
		return nil
	}

	m.copied = true
	m.copySeq++
	seq := m.copySeq
	m.status = "copied " + value

	return tea.Tick(copyRevertAfter, func(time.Time) tea.Msg {
		return copyRevertMsg{seq: seq}
	})
}

// savePalette stores the current palette in the library, keyed by the
// subject slug so re-saving updates in place.
func (m *Studio) savePalette() {
	if m.library == nil {
		m.status = "no library configured"
		return
	}
	if m.snap.Subject.Name == "" {
		m.status = "nothing to save yet"
		return
	}

	colors := make([]colour.RGB, len(m.snap.Colors))
	copy(colors, m.snap.Colors)
	m.library.Saved.Add(collections.SavedPalette{
		Slug:      m.snap.Subject.Slug(),
		Name:      m.snap.Subject.Name,
		DexID:     m.snap.Subject.ID,
		Shiny:     m.snap.Subject.Shiny,
		Form:      m.snap.Subject.Form,
		Colors:    colors,
		CreatedAt: time.Now(),
	})
	m.status = "saved " + m.snap.Subject.Slug()
}

// nextFormat cycles hex -> rgb -> hsl -> hex.
func nextFormat(f colour.Format) colour.Format {
	switch f {
	case colour.FormatHex:
		return colour.FormatRGB
	case colour.FormatRGB:
		return colour.FormatHSL
	default:
		return colour.FormatHex
	}
}

// View implements tea.Model.
func (m *Studio) View() string {
	var b strings.Builder

	b.WriteString(render.Navbar(m.snap, m.width))
	b.WriteString("\n")
	b.WriteString(render.Hero(m.snap, m.width))
	b.WriteString("\n")
	b.WriteString(render.InfoPanel(m.snap))
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.mode != modeNormal {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	help := "r random · / search · s shiny · ←/→ select · l lock · [/] move · e edit · f format · c copy · w save · q quit"
	b.WriteString(render.MutedStyle.Render(m.user.Name() + " · " + help))

	return b.String()
}

// statusLine renders the transient status: extraction progress, the copied
// indicator, or the last message.
func (m *Studio) statusLine() string {
	c, _ := m.snap.Color(m.selected)
	line := fmt.Sprintf("slot %d/%d  %s  [%s]",
		m.selected+1, len(m.snap.Colors), colour.Convert(c.Hex(), m.format), m.format)

	if m.snap.Extracting {
		line += "  " + m.spin.View() + " extracting " + m.snap.Subject.String()
	}
	if m.copied {
		line += "  ✓ copied"
	}
	if m.status != "" {
		line += "  " + m.status
	}
	return line
}
