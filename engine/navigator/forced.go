package navigator

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
)

// forcedEpisode holds the progress of one requested jump.
type forcedEpisode struct {
	target       int
	targetOffset float32
	from         common.Pose
	to           common.Pose
	duration     float32
	progress     float32
	framesLeft   int
	overtime     float32
}

// navigationDuration scales the jump duration with camera travel, clamped to [navMin, navMax].
func (n *navigatorImpl) navigationDuration(distance float32) float32 {
	d := n.navBase + n.navPerUnit*distance
	lo, hi := n.navMin, n.navMax
	if hi < lo {
		hi = lo
	}
	return common.Clamp(d, lo, hi)
}

// beginForced starts (or restarts) a forced navigation from the live pose toward target.
// Any snap in flight is superseded.
func (n *navigatorImpl) beginForced(target int) {
	to := n.table.PoseForSection(target)
	distance := n.pose.Distance(to)

	n.forced = forcedEpisode{
		target:       target,
		targetOffset: n.table.OffsetFromSection(target),
		from:         n.pose,
		to:           to,
		duration:     n.navigationDuration(distance),
		framesLeft:   max(n.forcedScrollFrames, 0),
	}
	n.mode = ModeForced
	n.samples.Reset()
	n.logf("navigating to section %d (distance %.2f, %.2fs)", target, distance, n.forced.duration)
}

// stepForced advances the forced episode by dt. The eased trajectory is applied to the pose
// directly. It reports true on the single frame the episode completes.
func (n *navigatorImpl) stepForced(dt, offset float32) bool {
	f := &n.forced

	if f.duration > 0 {
		f.progress = common.Clamp01(f.progress + dt/f.duration)
	} else {
		f.progress = 1
	}
	n.pose = f.from.Lerp(f.to, common.Apply(n.navEasing, f.progress))

	if f.framesLeft > 0 {
		n.writeScroll(f.targetOffset)
		f.framesLeft--
	}

	if f.progress < 1 || f.framesLeft > 0 {
		return false
	}

	converged := n.container == nil || absf(offset-f.targetOffset) <= n.tolerance
	if !converged {
		f.overtime += dt
		if n.settleTimeout <= 0 || f.overtime < n.settleTimeout {
			return false
		}
		n.logf("scroll did not settle on section %d (offset %.4f, want %.4f)", f.target, offset, f.targetOffset)
	}

	n.pose = f.to
	n.mode = ModeIdle
	n.samples.Reset()
	n.logf("navigation to section %d complete", f.target)
	return true
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
