package orientation

// State is the per-frame snapshot of the world rotation.
type State struct {
	// Rotation is the world yaw in radians. While a turn is in flight it may leave [0, 2π); it is
	// normalised again once the turn settles.
	Rotation float32

	// Group is the major group the world currently faces, or is turning toward.
	Group int

	// IsAnimating is true while a turn is in flight.
	IsAnimating bool

	// Started is true only on the frame a turn begins.
	Started bool

	// Settled is true only on the frame a turn ends.
	Settled bool
}

// Orientation rotates the world so the active major group faces the camera.
type Orientation interface {
	// Update advances any turn in flight and, when idle, starts a new turn if the section's major
	// group differs from the one currently faced.
	//
	// Parameters:
	//   - delta: seconds since the previous frame
	//   - section: the effective section for this frame
	//
	// Returns:
	//   - State: the resolved snapshot
	Update(delta float32, section int) State

	// State returns the snapshot resolved by the most recent Update.
	//
	// Returns:
	//   - State: the last snapshot
	State() State
}
