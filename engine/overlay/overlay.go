package overlay

import (
	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/orientation"
)

// NoCard is the Card value when no section card is shown.
const NoCard = -1

// Visibility describes the overlay card shown for one frame.
type Visibility struct {
	// Card is the section whose card is shown, or NoCard.
	Card int

	// Alpha is the card opacity in [0, 1].
	Alpha float32
}

// Visible reports whether any part of a card is drawn.
func (v Visibility) Visible() bool {
	return v.Card != NoCard && v.Alpha > 0
}

// Cards decides which section card is visible and how opaque it is. Cards are hidden during forced
// navigation and the detail view, and faded out while the world is turning.
type Cards interface {
	// Update resolves the card for one frame from the navigator and world snapshots of that frame.
	//
	// Parameters:
	//   - delta: seconds since the previous frame
	//   - nav: this frame's navigator snapshot
	//   - world: this frame's orientation snapshot
	//
	// Returns:
	//   - Visibility: the card to draw
	Update(delta float32, nav navigator.State, world orientation.State) Visibility

	// Visibility returns the result of the most recent Update.
	//
	// Returns:
	//   - Visibility: the last resolved card
	Visibility() Visibility
}
