package navigator

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
)

// scrollSample is one entry of the rolling velocity window.
type scrollSample struct {
	offset float32
	dt     float32
}

// directionEpsilon is the accumulated travel below which the window counts as motionless.
const directionEpsilon = 1e-5

// velocity returns the mean absolute scroll speed (offset units per second) across the window and
// the accumulated signed travel. ok is false when the window holds no elapsed time.
func (n *navigatorImpl) velocity() (speed, direction float32, ok bool) {
	var travel, elapsed float32
	for i := 1; i < n.samples.Len(); i++ {
		prev, cur := n.samples.At(i-1), n.samples.At(i)
		travel += absf(cur.offset - prev.offset)
		elapsed += cur.dt
	}
	if elapsed <= 0 {
		return 0, 0, false
	}
	direction = n.samples.At(n.samples.Len()-1).offset - n.samples.At(0).offset
	return travel / elapsed, direction, true
}

// shouldSnap decides whether an idle frame starts a snap episode and returns the snap target.
func (n *navigatorImpl) shouldSnap(live int, offset float32) (float32, bool) {
	if !n.snapEnabled || n.container == nil || !n.samples.Full() {
		return 0, false
	}
	if live < n.snapLo || live > n.snapHi {
		return 0, false
	}

	speed, direction, ok := n.velocity()
	if !ok || speed >= n.snapVelocity {
		return 0, false
	}

	// The last band has no next start; its upper candidate is the page end, where a rest is
	// already settled.
	current := n.table.OffsetFromSection(live)
	hasNext := live+1 < n.table.Count()
	upper := n.table.BandEnd(live)

	toCurrent := offset - current
	toUpper := upper - offset
	if min(toCurrent, toUpper) < n.snapMinDistance {
		return 0, false
	}

	// A forward drift carries on to the next start even from just past the current one, so a
	// deceleration never pulls back against the scroll direction.
	var target float32
	switch {
	case direction < -directionEpsilon:
		target = current
	case !hasNext:
		// Only a backward drift snaps inside the last band.
		return 0, false
	case direction > directionEpsilon:
		target = upper
	default:
		target = current
		if toUpper < toCurrent {
			target = upper
		}
	}

	if absf(target-offset) < n.snapMinDistance {
		return 0, false
	}
	return target, true
}

func (n *navigatorImpl) beginSnap(target float32) {
	n.snapTarget = target
	n.mode = ModeSnapping
}

// stepSnap eases the container toward the snap target with exponential decay and lands exactly once
// within tolerance.
func (n *navigatorImpl) stepSnap(dt, offset float32) {
	if n.container == nil {
		n.mode = ModeIdle
		n.samples.Reset()
		return
	}

	next := common.Damp(offset, n.snapTarget, n.snapRate, dt)
	if absf(next-n.snapTarget) <= n.tolerance {
		next = n.snapTarget
		n.mode = ModeIdle
		n.samples.Reset()
	}
	n.writeScroll(next)
}
