package tui

import (
	"github.com/palettedex/palettedex/internal/colour"
	"github.com/palettedex/palettedex/internal/palette"
)

// extractedMsg carries an extraction result back into the update loop. The
// generation token decides whether the result is still current.
type extractedMsg struct {
	gen    uint64
	colors []colour.RGB
	err    error
}

// subjectPickedMsg carries a resolved random subject.
type subjectPickedMsg struct {
	subject palette.Subject
	err     error
}

// copyRevertMsg clears the "copied" indicator. The sequence number guards
// against an old timer clearing the indicator of a newer copy.
type copyRevertMsg struct {
	seq int
}

// StoreChangedMsg announces a store mutation made outside the update loop.
// The studio runner bridges store subscriptions into the program with it,
// so writes from other goroutines show up without a keypress. The model
// re-reads the store on receipt, so the message carries no payload and
// coalesced or reordered deliveries cannot go stale.
type StoreChangedMsg struct{}
