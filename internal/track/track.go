// Package track bakes the camera path of a section table offline: it samples poses along the whole
// scroll range and replays forced navigations frame by frame.
package track

import (
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
)

// chunkSize is the number of offsets one pool task evaluates.
const chunkSize = 256

// Sample is the table's answer for one scroll offset.
type Sample struct {
	Offset  float32
	Section int
	Pose    common.Pose
}

// SampleTable evaluates the table at steps+1 evenly spaced offsets from 0 to 1 inclusive.
// Chunks of offsets are evaluated in parallel on a worker pool; the result is ordered by offset.
//
// Parameters:
//   - table: the section table to sample
//   - steps: number of intervals (values < 1 are treated as 1)
//   - workers: pool size (values < 1 are treated as 1)
//
// Returns:
//   - []Sample: the samples, ordered by offset
func SampleTable(table section.Table, steps, workers int) []Sample {
	steps = max(steps, 1)
	workers = max(workers, 1)

	samples := make([]Sample, steps+1)
	pool := worker.NewDynamicWorkerPool(workers, 256, time.Second)

	// Each task writes a disjoint range of samples; the WaitGroup is the barrier.
	var wg sync.WaitGroup
	for start, id := 0, 0; start <= steps; start, id = start+chunkSize, id+1 {
		end := min(start+chunkSize, steps+1)
		wg.Add(1)
		lo, hi := start, end
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					offset := float32(i) / float32(steps)
					samples[i] = Sample{
						Offset:  offset,
						Section: table.SectionFromOffset(offset),
						Pose:    table.PoseForOffset(offset),
					}
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
	pool.Stop()
	return samples
}

// Simulation configures a replayed navigation.
type Simulation struct {
	// From is the section the scroll starts at.
	From int
	// To is the requested section.
	To int
	// FPS is the replay frame rate.
	FPS float32
	// MaxFrames bounds the replay.
	MaxFrames int
	// Options are applied to the navigator under test.
	Options []navigator.NavigatorOption
}

// Simulate replays a forced navigation against an in-memory scroll container and returns every
// frame up to and including the completion edge.
//
// Parameters:
//   - table: the section table
//   - sim: the replay settings
//
// Returns:
//   - []navigator.State: one snapshot per frame
//   - error: when the navigation does not complete within MaxFrames
func Simulate(table section.Table, sim Simulation) ([]navigator.State, error) {
	if sim.FPS <= 0 {
		sim.FPS = 60
	}
	if sim.MaxFrames <= 0 {
		sim.MaxFrames = int(sim.FPS) * 10
	}
	dt := 1 / sim.FPS

	container := scroll.NewContainer()
	container.SetScrollOffset(table.OffsetFromSection(sim.From))

	options := append([]navigator.NavigatorOption{navigator.WithLogger(nil)}, sim.Options...)
	options = append(options, navigator.WithScrollContainer(container))
	nav := navigator.NewNavigator(table, options...)

	// Settle on the start section before the request arrives.
	nav.Update(navigator.Frame{Delta: dt, Offset: container.Update(dt), Request: navigator.NoRequest})

	frames := make([]navigator.State, 0, sim.MaxFrames)
	for i := 0; i < sim.MaxFrames; i++ {
		s := nav.Update(navigator.Frame{Delta: dt, Offset: container.Update(dt), Request: table.Clamp(sim.To)})
		frames = append(frames, s)
		if s.Completed {
			return frames, nil
		}
	}
	return frames, fmt.Errorf("navigation %d -> %d did not complete within %d frames", sim.From, sim.To, sim.MaxFrames)
}
