package orientation

import (
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
	"github.com/tanema/gween"
)

type orientationImpl struct {
	mu     *sync.Mutex
	table  section.Table
	logger *log.Logger

	duration float32
	easing   common.EasingFunc

	initialized bool
	group       int
	rotation    float32
	tween       *gween.Tween
	last        State
}

// Compile-time interface compliance check
var _ Orientation = &orientationImpl{}

// NewOrientation creates a world orientation controller reading group facings from table.
// A nil table falls back to section.DefaultTable().
//
// Parameters:
//   - table: the section table providing major groups and their facings
//   - options: functional options to configure the controller
//
// Returns:
//   - Orientation: the controller, facing the group of the first section it sees
func NewOrientation(table section.Table, options ...OrientationOption) Orientation {
	if table == nil {
		table = section.DefaultTable()
	}
	o := &orientationImpl{
		mu:       &sync.Mutex{},
		table:    table,
		logger:   log.Default(),
		duration: 1.2,
		easing:   common.EaseInOutCubic,
	}

	for _, option := range options {
		option(o)
	}
	return o
}

func (o *orientationImpl) Update(delta float32, sec int) State {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !common.IsFinite(delta) || delta < 0 {
		delta = 0
	}
	group := o.table.MajorGroup(sec)

	if !o.initialized {
		o.group = group
		o.rotation = common.WrapAngle(o.table.Facing(group))
		o.initialized = true
	}

	var started, settled bool

	// Only an idle controller re-reads the group; a change during a turn waits for the settle.
	if o.tween == nil && group != o.group {
		started = true
		o.begin(group)
	}

	if o.tween != nil {
		value, done := o.tween.Update(delta)
		o.rotation = value
		if done {
			o.tween = nil
			settled = true
		}
	}
	if settled {
		o.rotation = common.WrapAngle(o.table.Facing(o.group))
		o.logf("settled on group %d", o.group)
	}

	o.last = State{
		Rotation:    o.rotation,
		Group:       o.group,
		IsAnimating: o.tween != nil,
		Started:     started,
		Settled:     settled,
	}
	return o.last
}

func (o *orientationImpl) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.last
}

// begin starts a turn toward group along the shortest signed arc.
func (o *orientationImpl) begin(group int) {
	from := o.rotation
	arc := common.ShortestArc(from, o.table.Facing(group))
	o.group = group
	o.logf("turning to group %d (%.1f°)", group, common.Degrees(arc))

	o.tween = gween.New(from, from+arc, max(o.duration, 0), common.ToTween(o.easing))
}

func (o *orientationImpl) logf(format string, args ...any) {
	if o.logger != nil {
		o.logger.Printf("[Orientation] "+format, args...)
	}
}
