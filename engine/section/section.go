package section

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

// maxHold keeps at least a sliver of every band for camera travel.
const maxHold = 0.95

// Sentinel errors returned by NewTable. Wrapped errors carry the offending index.
var (
	ErrEmptyTable  = errors.New("section: table has no entries")
	ErrBandOrder   = errors.New("section: band starts must begin at 0 and strictly increase below 1")
	ErrGroupLayout = errors.New("section: groups must partition the sections into contiguous runs")
	ErrInvalidPose = errors.New("section: pose contains a non-finite component")
)

// Entry is one row of the single source-of-truth table. The mapper bands, the canonical snap and
// jump offsets, and the pose keyframes are all derived from the same list of entries.
type Entry struct {
	// Name labels the section for logs and tools.
	Name string

	// Start is the lower bound of this section's scroll band and its canonical offset.
	// The band runs until the next entry's Start; the final band ends at 1.0 inclusive.
	Start float32

	// Pose is the camera pose framed when the scroll offset sits exactly on Start.
	Pose common.Pose

	// Group is the index of the major group this section belongs to.
	Group int

	// Easing shapes the camera's arrival into this section from the previous keyframe.
	// Nil means EaseInOutCubic.
	Easing common.EasingFunc

	// Hold is the leading fraction [0, 1) of this section's band during which the camera dwells
	// on Pose before departing toward the next keyframe.
	Hold float32
}

// Group is a coarser run of consecutive sections sharing one facing angle in the world.
type Group struct {
	// Name labels the group.
	Name string

	// Facing is the world rotation in radians that turns this group toward the camera.
	Facing float32
}

// Table is the static lookup from discrete sections to scroll bands and camera poses.
// Implementations are immutable after construction and safe for concurrent reads.
type Table interface {
	// Count returns the number of sections.
	//
	// Returns:
	//   - int: section count N; valid indices are 0..N-1
	Count() int

	// Entry returns a copy of the entry for the given section, clamped into range.
	//
	// Parameters:
	//   - section: section index
	//
	// Returns:
	//   - Entry: the section's table row
	Entry(section int) Entry

	// Clamp limits an arbitrary index to the valid section range.
	//
	// Parameters:
	//   - section: any integer
	//
	// Returns:
	//   - int: the nearest valid section index
	Clamp(section int) int

	// SectionFromOffset maps a continuous scroll offset to its discrete section.
	// Bands are half-open [lower, upper) except the final band, which includes 1.0.
	//
	// Parameters:
	//   - offset: scroll offset, clamped into [0, 1]
	//
	// Returns:
	//   - int: the section whose band contains offset
	SectionFromOffset(offset float32) int

	// OffsetFromSection returns the canonical start offset of a section's band. It is used as
	// both the snap target and the jump target. Out-of-range indices clamp.
	//
	// Parameters:
	//   - section: section index
	//
	// Returns:
	//   - float32: band lower bound in [0, 1)
	OffsetFromSection(section int) float32

	// BandEnd returns the exclusive upper bound of a section's band (1.0 for the last section).
	//
	// Parameters:
	//   - section: section index
	//
	// Returns:
	//   - float32: band upper bound
	BandEnd(section int) float32

	// PoseForSection returns the discrete target pose used as a jump-navigation endpoint.
	//
	// Parameters:
	//   - section: section index, clamped into range
	//
	// Returns:
	//   - common.Pose: the keyframe pose
	PoseForSection(section int) common.Pose

	// PoseForOffset piecewise-interpolates the camera pose for a continuous scroll offset.
	// The result equals PoseForSection(s) whenever offset == OffsetFromSection(s).
	//
	// Parameters:
	//   - offset: scroll offset, clamped into [0, 1]
	//
	// Returns:
	//   - common.Pose: the interpolated pose
	PoseForOffset(offset float32) common.Pose

	// MajorGroup returns the group index of a section.
	//
	// Parameters:
	//   - section: section index, clamped into range
	//
	// Returns:
	//   - int: group index
	MajorGroup(section int) int

	// Groups returns a copy of the group list.
	//
	// Returns:
	//   - []Group: groups ordered by index
	Groups() []Group

	// Facing returns the facing angle of a group; out-of-range groups clamp.
	//
	// Parameters:
	//   - group: group index
	//
	// Returns:
	//   - float32: facing angle in radians
	Facing(group int) float32
}

// table is the implementation of the Table interface.
type table struct {
	entries []Entry
	groups  []Group

	// starts mirrors entries[i].Start for binary search.
	starts []float32
}

var _ Table = &table{}

// NewTable validates the entries and builds an immutable Table.
// When no groups are supplied, each distinct Group index referenced by the entries gets an
// unnamed group with evenly spaced facings around the circle.
//
// Parameters:
//   - entries: section rows ordered by Start
//   - options: functional options to configure the table
//
// Returns:
//   - Table: the validated table
//   - error: a wrapped sentinel error describing the first violated invariant
func NewTable(entries []Entry, options ...TableBuilderOption) (Table, error) {
	t := &table{
		entries: append([]Entry(nil), entries...),
	}
	for _, option := range options {
		option(t)
	}

	if len(t.entries) == 0 {
		return nil, ErrEmptyTable
	}

	t.starts = make([]float32, len(t.entries))
	for i, e := range t.entries {
		if !common.IsFinite(e.Start) || e.Start < 0 || e.Start >= 1 {
			return nil, fmt.Errorf("%w: section %d starts at %v", ErrBandOrder, i, e.Start)
		}
		if i == 0 && e.Start != 0 {
			return nil, fmt.Errorf("%w: first section starts at %v", ErrBandOrder, e.Start)
		}
		if i > 0 && e.Start <= t.entries[i-1].Start {
			return nil, fmt.Errorf("%w: section %d starts at %v, not after %v", ErrBandOrder, i, e.Start, t.entries[i-1].Start)
		}
		if !e.Pose.IsFinite() {
			return nil, fmt.Errorf("%w: section %d", ErrInvalidPose, i)
		}
		switch {
		case !common.IsFinite(e.Hold) || e.Hold < 0:
			t.entries[i].Hold = 0
		case e.Hold > maxHold:
			t.entries[i].Hold = maxHold
		}
		if e.Easing == nil {
			t.entries[i].Easing = common.EaseInOutCubic
		}
		t.starts[i] = e.Start
	}

	if len(t.groups) == 0 {
		t.groups = evenGroups(t.entries[len(t.entries)-1].Group + 1)
	}
	if err := validateGroups(t.entries, len(t.groups)); err != nil {
		return nil, err
	}

	return t, nil
}

// evenGroups creates n unnamed groups spaced evenly around the circle.
func evenGroups(n int) []Group {
	groups := make([]Group, max(n, 1))
	for i := range groups {
		groups[i].Facing = common.TwoPi * float32(i) / float32(len(groups))
	}
	return groups
}

// validateGroups checks that group indices start at 0, never decrease, never skip, and end on the
// last group, so every section belongs to exactly one contiguous group.
func validateGroups(entries []Entry, groupCount int) error {
	if entries[0].Group != 0 {
		return fmt.Errorf("%w: section 0 is in group %d", ErrGroupLayout, entries[0].Group)
	}
	for i := 1; i < len(entries); i++ {
		step := entries[i].Group - entries[i-1].Group
		if step != 0 && step != 1 {
			return fmt.Errorf("%w: section %d jumps from group %d to %d", ErrGroupLayout, i, entries[i-1].Group, entries[i].Group)
		}
	}
	if last := entries[len(entries)-1].Group; last != groupCount-1 {
		return fmt.Errorf("%w: sections cover groups 0..%d of %d", ErrGroupLayout, last, groupCount)
	}
	return nil
}

func (t *table) Count() int {
	return len(t.entries)
}

func (t *table) Clamp(section int) int {
	return common.Clamp(section, 0, len(t.entries)-1)
}

func (t *table) Entry(section int) Entry {
	return t.entries[t.Clamp(section)]
}

func (t *table) SectionFromOffset(offset float32) int {
	offset = common.Clamp01(offset)
	// First start strictly greater than offset; the band owner is the one before it.
	i := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > offset })
	return t.Clamp(i - 1)
}

func (t *table) OffsetFromSection(section int) float32 {
	return t.starts[t.Clamp(section)]
}

func (t *table) BandEnd(section int) float32 {
	section = t.Clamp(section)
	if section == len(t.starts)-1 {
		return 1
	}
	return t.starts[section+1]
}

func (t *table) PoseForSection(section int) common.Pose {
	return t.entries[t.Clamp(section)].Pose
}

func (t *table) PoseForOffset(offset float32) common.Pose {
	offset = common.Clamp01(offset)
	i := t.SectionFromOffset(offset)
	if i == len(t.entries)-1 {
		return t.entries[i].Pose
	}

	from, to := t.entries[i], t.entries[i+1]
	span := to.Start - from.Start
	progress := (offset - from.Start) / span

	// Dwell on the departing keyframe for the leading Hold fraction of the band.
	if from.Hold > 0 {
		progress = common.Clamp01((progress - from.Hold) / (1 - from.Hold))
	}

	return from.Pose.Lerp(to.Pose, common.Apply(to.Easing, progress))
}

func (t *table) MajorGroup(section int) int {
	return t.entries[t.Clamp(section)].Group
}

func (t *table) Groups() []Group {
	return append([]Group(nil), t.groups...)
}

func (t *table) Facing(group int) float32 {
	return t.groups[common.Clamp(group, 0, len(t.groups)-1)].Facing
}
