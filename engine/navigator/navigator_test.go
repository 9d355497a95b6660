package navigator

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
)

const step = float32(1.0 / 60.0)

// fakeContainer applies writes immediately unless stuck is set.
type fakeContainer struct {
	offset float32
	writes int
	stuck  bool
}

func (c *fakeContainer) SetScrollOffset(offset float32) {
	c.writes++
	if !c.stuck {
		c.offset = offset
	}
}

func threeBandTable(t *testing.T) section.Table {
	t.Helper()
	tbl, err := section.NewTable([]section.Entry{
		{Start: 0, Pose: common.NewPose(0, 0, 10, 0, 0, 0)},
		{Start: 0.05, Pose: common.NewPose(5, 0, 10, 5, 0, 0)},
		{Start: 0.12, Pose: common.NewPose(10, 2, 8, 10, 1, 0)},
	})
	if err != nil {
		t.Fatalf("NewTable returned error: %v", err)
	}
	return tbl
}

func snapTable(t *testing.T) section.Table {
	t.Helper()
	tbl, err := section.NewTable([]section.Entry{
		{Start: 0, Pose: common.NewPose(0, 0, 10, 0, 0, 0)},
		{Start: 0.2, Pose: common.NewPose(4, 0, 10, 4, 0, 0)},
		{Start: 0.34, Pose: common.NewPose(8, 1, 9, 8, 0, 0)},
		{Start: 0.6, Pose: common.NewPose(12, 2, 8, 12, 1, 0)},
	})
	if err != nil {
		t.Fatalf("NewTable returned error: %v", err)
	}
	return tbl
}

// run advances n frames, feeding the container's offset back as the live offset.
func run(n Navigator, c *fakeContainer, frames int, req int, onState func(State)) State {
	var s State
	for i := 0; i < frames; i++ {
		s = n.Update(Frame{Delta: step, Offset: c.offset, Request: req})
		if onState != nil {
			onState(s)
		}
	}
	return s
}

func TestDuplicateRequestIsOneEpisode(t *testing.T) {
	c := &fakeContainer{}
	nav := NewNavigator(threeBandTable(t), WithScrollContainer(c), WithLogger(nil))

	var completions, starts int
	prev := ModeIdle
	run(nav, c, 400, 2, func(s State) {
		if s.Mode == ModeForced && prev != ModeForced {
			starts++
		}
		if s.Completed {
			completions++
		}
		prev = s.Mode
	})

	if starts != 1 {
		t.Fatalf("forced episodes = %d, want 1", starts)
	}
	if completions != 1 {
		t.Fatalf("completion events = %d, want 1", completions)
	}
	if got := nav.State().Section; got != 2 {
		t.Fatalf("section after navigation = %d, want 2", got)
	}
}

func TestRequestAfterClearStartsNewEpisode(t *testing.T) {
	c := &fakeContainer{}
	nav := NewNavigator(threeBandTable(t), WithScrollContainer(c), WithLogger(nil))

	completions := 0
	count := func(s State) {
		if s.Completed {
			completions++
		}
	}
	run(nav, c, 300, 1, count)
	run(nav, c, 5, NoRequest, count)
	run(nav, c, 300, 0, count)

	if completions != 2 {
		t.Fatalf("completion events = %d, want 2", completions)
	}
	if got := nav.State().Section; got != 0 {
		t.Fatalf("section = %d, want 0", got)
	}
}

func TestSnapConvergesToTarget(t *testing.T) {
	c := &fakeContainer{offset: 0.28}
	nav := NewNavigator(snapTable(t), WithScrollContainer(c), WithLogger(nil), WithDrift(0, 0))

	// Scroll forward to 0.302 and let go.
	for c.offset < 0.302 {
		c.offset = min(c.offset+0.002, 0.302)
		nav.Update(Frame{Delta: step, Offset: c.offset, Request: NoRequest})
	}

	snapped := false
	s := run(nav, c, 600, NoRequest, func(s State) {
		if s.Mode == ModeSnapping {
			snapped = true
		}
	})

	if !snapped {
		t.Fatal("expected a snapping episode")
	}
	if math.Abs(float64(c.offset-0.34)) > 1e-3 {
		t.Fatalf("offset = %v, want ~0.34", c.offset)
	}
	if s.Mode != ModeIdle {
		t.Fatalf("mode = %v, want idle", s.Mode)
	}
	if s.Section != 2 {
		t.Fatalf("section = %d, want 2", s.Section)
	}
}

func TestSnapFromDirectEpisode(t *testing.T) {
	c := &fakeContainer{offset: 0.302}
	nav := NewNavigator(snapTable(t), WithScrollContainer(c), WithLogger(nil)).(*navigatorImpl)
	nav.Update(Frame{Delta: step, Offset: c.offset, Request: NoRequest})
	nav.beginSnap(0.34)

	s := run(nav, c, 240, NoRequest, nil)
	if c.offset != 0.34 {
		t.Fatalf("offset = %v, want exactly 0.34", c.offset)
	}
	if s.Mode != ModeIdle {
		t.Fatalf("mode = %v, want idle", s.Mode)
	}
}

func TestForwardDriftJustPastStartCarriesOn(t *testing.T) {
	c := &fakeContainer{offset: 0.2}
	nav := NewNavigator(snapTable(t), WithScrollContainer(c), WithLogger(nil), WithDrift(0, 0))

	// Barely past the start of section 1, still moving forward.
	for c.offset < 0.212 {
		c.offset = min(c.offset+0.002, 0.212)
		nav.Update(Frame{Delta: step, Offset: c.offset, Request: NoRequest})
	}
	s := run(nav, c, 600, NoRequest, nil)

	if c.offset != 0.34 {
		t.Fatalf("offset = %v, want the next start 0.34", c.offset)
	}
	if s.Section != 2 {
		t.Fatalf("section = %d, want 2", s.Section)
	}
}

func TestSnapBackwardGoesToCurrentStart(t *testing.T) {
	c := &fakeContainer{offset: 0.32}
	nav := NewNavigator(snapTable(t), WithScrollContainer(c), WithLogger(nil))

	for c.offset > 0.3 {
		c.offset = max(c.offset-0.002, 0.3)
		nav.Update(Frame{Delta: step, Offset: c.offset, Request: NoRequest})
	}
	run(nav, c, 600, NoRequest, nil)

	if c.offset != 0.2 {
		t.Fatalf("offset = %v, want 0.2", c.offset)
	}
}

func TestNoSnapBackAtPageEnd(t *testing.T) {
	c := &fakeContainer{offset: 0.90}
	nav := NewNavigator(section.DefaultTable(), WithScrollContainer(c), WithLogger(nil))

	// Scroll to the bottom of the page and stop there.
	for c.offset < 1 {
		c.offset = min(c.offset+0.004, 1)
		nav.Update(Frame{Delta: step, Offset: c.offset, Request: NoRequest})
	}
	s := run(nav, c, 240, NoRequest, func(s State) {
		if s.Mode == ModeSnapping {
			t.Fatalf("snapping at offset %.4f after resting at the page end", s.Offset)
		}
	})

	if c.offset != 1 {
		t.Fatalf("offset = %.4f after resting at the page end, want 1", c.offset)
	}
	if s.Section != 13 {
		t.Fatalf("section = %d, want 13", s.Section)
	}
}

func TestRestInsideLastBandStays(t *testing.T) {
	c := &fakeContainer{offset: 0.75}
	nav := NewNavigator(snapTable(t), WithScrollContainer(c), WithLogger(nil))

	// Arrive from above and stop in the middle of the last band.
	for c.offset < 0.8 {
		c.offset = min(c.offset+0.002, 0.8)
		nav.Update(Frame{Delta: step, Offset: c.offset, Request: NoRequest})
	}
	run(nav, c, 240, NoRequest, nil)

	if c.writes != 0 || c.offset != 0.8 {
		t.Fatalf("offset = %.4f with %d writes, want 0.8 untouched", c.offset, c.writes)
	}
}

func TestBackwardDriftSnapsInLastBand(t *testing.T) {
	c := &fakeContainer{offset: 0.72}
	nav := NewNavigator(snapTable(t), WithScrollContainer(c), WithLogger(nil))

	for c.offset > 0.7 {
		c.offset = max(c.offset-0.002, 0.7)
		nav.Update(Frame{Delta: step, Offset: c.offset, Request: NoRequest})
	}
	run(nav, c, 600, NoRequest, nil)

	if c.offset != 0.6 {
		t.Fatalf("offset = %.4f, want the last band start 0.6", c.offset)
	}
}

func TestNoSnapWhenSettled(t *testing.T) {
	c := &fakeContainer{offset: 0.2}
	nav := NewNavigator(snapTable(t), WithScrollContainer(c), WithLogger(nil))

	run(nav, c, 120, NoRequest, func(s State) {
		if s.Mode != ModeIdle {
			t.Fatalf("mode = %v at a section start, want idle", s.Mode)
		}
	})
	if c.writes != 0 {
		t.Fatalf("container writes = %d, want 0", c.writes)
	}
}

func TestSnapRangeExcludesSection(t *testing.T) {
	c := &fakeContainer{offset: 0.302}
	nav := NewNavigator(snapTable(t), WithScrollContainer(c), WithLogger(nil), WithSnapRange(2, 3))

	run(nav, c, 120, NoRequest, nil)
	if c.writes != 0 {
		t.Fatalf("container writes = %d, want 0 outside the snap range", c.writes)
	}
}

func TestCompletionWaitsForScroll(t *testing.T) {
	c := &fakeContainer{stuck: true}
	nav := NewNavigator(threeBandTable(t),
		WithScrollContainer(c),
		WithLogger(nil),
		WithSettleTimeout(0),
		WithForcedScrollFrames(4),
	)

	// Pose progress and the frame budget both finish well inside 300 frames.
	s := run(nav, c, 300, 2, func(s State) {
		if s.Completed {
			t.Fatal("completed while the scroll offset had not converged")
		}
	})
	if s.Mode != ModeForced {
		t.Fatalf("mode = %v, want forced", s.Mode)
	}
	if !s.Pose.ApproxEqual(nav.Table().PoseForSection(2), 1e-4) {
		t.Fatalf("pose = %v, want the target pose", s.Pose)
	}

	c.stuck = false
	c.offset = nav.Table().OffsetFromSection(2)
	completions := 0
	run(nav, c, 10, 2, func(s State) {
		if s.Completed {
			completions++
		}
	})
	if completions != 1 {
		t.Fatalf("completion events = %d, want 1", completions)
	}
}

func TestCompletionWaitsForFrameBudget(t *testing.T) {
	c := &fakeContainer{}
	nav := NewNavigator(threeBandTable(t),
		WithScrollContainer(c),
		WithLogger(nil),
		WithNavigationDuration(0, 0, 0.1, 0.1),
		WithForcedScrollFrames(30),
	)

	for i := 1; i <= 40; i++ {
		s := nav.Update(Frame{Delta: step, Offset: c.offset, Request: 1})
		if s.Completed {
			if i < 30 {
				t.Fatalf("completed on frame %d before the scroll budget ran out", i)
			}
			return
		}
	}
	t.Fatal("navigation never completed")
}

func TestSettleTimeoutCompletes(t *testing.T) {
	c := &fakeContainer{stuck: true}
	nav := NewNavigator(threeBandTable(t), WithScrollContainer(c), WithLogger(nil), WithSettleTimeout(0.5))

	completions := 0
	run(nav, c, 400, 2, func(s State) {
		if s.Completed {
			completions++
		}
	})
	if completions != 1 {
		t.Fatalf("completion events = %d, want 1", completions)
	}
}

func TestThreeBandScenario(t *testing.T) {
	c := &fakeContainer{}
	nav := NewNavigator(threeBandTable(t), WithScrollContainer(c), WithLogger(nil), WithSnapping(false))

	s := nav.Update(Frame{Delta: step, Offset: 0.07, Request: NoRequest})
	if s.Section != 1 {
		t.Fatalf("section at 0.07 = %d, want 1", s.Section)
	}

	c.offset = 0.07
	done := false
	var seenTarget bool
	run(nav, c, 400, 2, func(s State) {
		if s.Mode == ModeForced && s.Effective() == 2 {
			seenTarget = true
		}
		if s.Completed {
			done = true
		}
	})
	if !seenTarget {
		t.Fatal("effective section never reported the target while navigating")
	}
	if !done {
		t.Fatal("navigation never completed")
	}
	if c.offset != 0.12 {
		t.Fatalf("scroll offset = %v, want 0.12", c.offset)
	}
	if got := nav.State().Section; got != 2 {
		t.Fatalf("section = %d, want 2", got)
	}
}

func TestForcedPoseIsEasedNotDamped(t *testing.T) {
	tbl := threeBandTable(t)
	c := &fakeContainer{}
	nav := NewNavigator(tbl,
		WithScrollContainer(c),
		WithLogger(nil),
		WithNavigationDuration(1, 0, 1, 1),
		WithNavigationEasing(common.EaseLinear),
	)
	start := nav.Update(Frame{Delta: step, Offset: 0, Request: NoRequest}).Pose

	var s State
	for i := 0; i < 30; i++ {
		s = nav.Update(Frame{Delta: step, Offset: c.offset, Request: 2})
	}
	want := start.Lerp(tbl.PoseForSection(2), 30*step)
	if !s.Pose.ApproxEqual(want, 1e-3) {
		t.Fatalf("pose halfway = %v, want %v", s.Pose, want)
	}
}

func TestDifferentRequestRestartsFromLivePose(t *testing.T) {
	c := &fakeContainer{}
	nav := NewNavigator(threeBandTable(t), WithScrollContainer(c), WithLogger(nil))

	mid := run(nav, c, 20, 2, nil)
	s := nav.Update(Frame{Delta: 0, Offset: c.offset, Request: 1})
	if s.Target != 1 {
		t.Fatalf("target = %d, want 1", s.Target)
	}
	if !s.Pose.ApproxEqual(mid.Pose, 1e-4) {
		t.Fatalf("restart jumped from %v to %v", mid.Pose, s.Pose)
	}
}

func TestDetailOverride(t *testing.T) {
	c := &fakeContainer{}
	nav := NewNavigator(threeBandTable(t), WithScrollContainer(c), WithLogger(nil))
	detail := common.NewPose(0, 20, 0, 0, 0, 0)

	run(nav, c, 10, 2, nil)
	s := nav.Update(Frame{Delta: step, Offset: c.offset, Request: 2, Detail: true, DetailPose: detail})
	if !s.Interrupted {
		t.Fatal("expected the forced navigation to be interrupted")
	}
	if s.Mode != ModeDetail {
		t.Fatalf("mode = %v, want detail", s.Mode)
	}

	for i := 0; i < 300; i++ {
		s = nav.Update(Frame{Delta: step, Offset: c.offset, Request: NoRequest, Detail: true, DetailPose: detail})
		if s.Interrupted {
			t.Fatal("interrupted reported more than once")
		}
	}
	if !s.Pose.ApproxEqual(detail, 1e-3) {
		t.Fatalf("pose = %v, want detail pose %v", s.Pose, detail)
	}

	s = nav.Update(Frame{Delta: step, Offset: c.offset, Request: NoRequest})
	if s.Mode != ModeIdle {
		t.Fatalf("mode after detail = %v, want idle", s.Mode)
	}
}

func TestRequestHeldDuringDetail(t *testing.T) {
	c := &fakeContainer{}
	nav := NewNavigator(threeBandTable(t), WithScrollContainer(c), WithLogger(nil))

	s := nav.Update(Frame{Delta: step, Offset: 0, Request: 2, Detail: true})
	if s.Mode != ModeDetail {
		t.Fatalf("mode = %v, want detail", s.Mode)
	}
	s = nav.Update(Frame{Delta: step, Offset: 0, Request: 2})
	if s.Mode != ModeForced || s.Target != 2 {
		t.Fatalf("state = %v/%d, want forced toward 2", s.Mode, s.Target)
	}
}

func TestMissingContainerDoesNotStall(t *testing.T) {
	nav := NewNavigator(threeBandTable(t), WithLogger(nil))

	var done *State
	for i := 0; i < 300 && done == nil; i++ {
		s := nav.Update(Frame{Delta: step, Offset: 0, Request: 2})
		if s.Completed {
			done = &s
		}
	}
	if done == nil {
		t.Fatal("navigation without a container never completed")
	}
	if !done.Pose.ApproxEqual(nav.Table().PoseForSection(2), 1e-4) {
		t.Fatalf("pose at completion = %v, want section 2 pose", done.Pose)
	}
}

func TestDegenerateInput(t *testing.T) {
	nav := NewNavigator(nil, WithLogger(nil))
	nan := float32(math.NaN())

	frames := []Frame{
		{Delta: nan, Offset: nan, Request: NoRequest},
		{Delta: -1, Offset: -5, Request: 999},
		{Delta: 1e9, Offset: 42, Request: -77},
		{Delta: float32(math.Inf(1)), Offset: 0.5, Request: NoRequest},
	}
	for _, f := range frames {
		s := nav.Update(f)
		if !s.Pose.IsFinite() {
			t.Fatalf("pose not finite after %+v: %v", f, s.Pose)
		}
		if s.Offset < 0 || s.Offset > 1 {
			t.Fatalf("offset %v escaped [0, 1]", s.Offset)
		}
	}
}

func TestDampingIsFrameRateIndependent(t *testing.T) {
	tbl := threeBandTable(t)
	slow := NewNavigator(tbl, WithLogger(nil), WithDrift(0, 0))
	fast := NewNavigator(tbl, WithLogger(nil), WithDrift(0, 0))

	slow.Update(Frame{Offset: 0, Request: NoRequest})
	fast.Update(Frame{Offset: 0, Request: NoRequest})
	for i := 0; i < 30; i++ {
		slow.Update(Frame{Delta: 1.0 / 30, Offset: 0.12, Request: NoRequest})
	}
	for i := 0; i < 60; i++ {
		fast.Update(Frame{Delta: 1.0 / 60, Offset: 0.12, Request: NoRequest})
	}
	if !slow.State().Pose.ApproxEqual(fast.State().Pose, 1e-3) {
		t.Fatalf("30fps pose %v differs from 60fps pose %v", slow.State().Pose, fast.State().Pose)
	}
}

func TestSubscribe(t *testing.T) {
	nav := NewNavigator(threeBandTable(t), WithLogger(nil))

	var got []uint64
	cancel := nav.Subscribe(func(s State) {
		got = append(got, s.Frame)
	})
	nav.Update(Frame{Delta: step, Request: NoRequest})
	nav.Update(Frame{Delta: step, Request: NoRequest})
	cancel()
	nav.Update(Frame{Delta: step, Request: NoRequest})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("listener frames = %v, want [1 2]", got)
	}
}

func TestModeString(t *testing.T) {
	if ModeSnapping.String() != "snapping" || Mode(42).String() != "unknown" {
		t.Fatal("unexpected Mode strings")
	}
}
