package track

import (
	"bytes"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
)

func TestSampleTableOrdered(t *testing.T) {
	table := section.DefaultTable()
	samples := SampleTable(table, 1000, 4)

	if len(samples) != 1001 {
		t.Fatalf("expected 1001 samples, got %d", len(samples))
	}
	if samples[0].Offset != 0 || samples[1000].Offset != 1 {
		t.Errorf("expected offsets 0..1, got %.4f..%.4f", samples[0].Offset, samples[1000].Offset)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Offset <= samples[i-1].Offset {
			t.Fatalf("samples out of order at %d", i)
		}
		if samples[i].Section < samples[i-1].Section {
			t.Fatalf("section went backwards at offset %.4f", samples[i].Offset)
		}
	}
	if got := samples[1000].Section; got != table.Count()-1 {
		t.Errorf("expected last sample in section %d, got %d", table.Count()-1, got)
	}
}

func TestSampleTableMatchesTable(t *testing.T) {
	table := section.DefaultTable()
	for _, s := range SampleTable(table, 300, 3) {
		if !s.Pose.ApproxEqual(table.PoseForOffset(s.Offset), 1e-6) {
			t.Fatalf("sample at %.4f disagrees with the table", s.Offset)
		}
	}
}

func TestSampleTableDegenerate(t *testing.T) {
	samples := SampleTable(section.DefaultTable(), 0, 0)
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples for steps<1, got %d", len(samples))
	}
}

func TestSimulateCompletes(t *testing.T) {
	table := section.DefaultTable()
	frames, err := Simulate(table, Simulation{From: 2, To: 12, FPS: 60})
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}
	last := frames[len(frames)-1]
	if !last.Completed {
		t.Fatal("expected the final frame to carry the completion edge")
	}
	if last.Section != 12 {
		t.Errorf("expected to land in section 12, got %d", last.Section)
	}
	if !last.Pose.ApproxEqual(table.PoseForSection(12), 1e-4) {
		t.Errorf("final pose %v is not the section pose", last.Pose)
	}
	for _, f := range frames[:len(frames)-1] {
		if f.Mode != navigator.ModeForced {
			t.Fatalf("frame %d left forced mode early: %v", f.Frame, f.Mode)
		}
	}
}

func TestSimulateTimesOut(t *testing.T) {
	_, err := Simulate(section.DefaultTable(), Simulation{From: 0, To: 13, FPS: 60, MaxFrames: 5})
	if err == nil {
		t.Fatal("expected an error when the frame budget is too small")
	}
}

func TestPlotAndEncode(t *testing.T) {
	table := section.DefaultTable()
	img := Plot(table, SampleTable(table, 200, 2), 320, 160)
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 160 {
		t.Fatalf("expected 320x160 plot, got %v", b)
	}

	var buf bytes.Buffer
	if err := EncodeWebP(&buf, img); err != nil {
		t.Fatalf("EncodeWebP returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("RIFF")) || !bytes.Contains(buf.Bytes()[:16], []byte("WEBP")) {
		t.Error("output is not a RIFF/WEBP container")
	}
}
