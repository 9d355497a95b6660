package window

import "testing"

func TestOptionsKeepDefaultsForZeroValues(t *testing.T) {
	w := &engineWindow{title: defaultTitle, width: defaultWidth, height: defaultHeight}
	for _, opt := range []WindowBuilderOption{WithTitle(""), WithWidth(0), WithHeight(-5), WithSizeLimits(0, 0, 0, 0)} {
		opt(w)
	}
	if w.title != defaultTitle || w.width != defaultWidth || w.height != defaultHeight {
		t.Fatalf("zero-valued options changed the window: %+v", w)
	}
	if w.minWidth != 0 || w.maxHeight != 0 {
		t.Fatalf("zero-valued limits were applied: %+v", w)
	}
}

func TestSizeLimitsAndFit(t *testing.T) {
	w := &engineWindow{width: defaultWidth, height: defaultHeight}
	WithSizeLimits(800, 600, 1024, 400)(w)
	w.fitSize()

	if w.minWidth != 800 || w.maxWidth != 1024 {
		t.Fatalf("width limits = [%d, %d], want [800, 1024]", w.minWidth, w.maxWidth)
	}
	// An inverted height range collapses onto its minimum.
	if w.maxHeight != 600 {
		t.Fatalf("max height = %d, want 600", w.maxHeight)
	}
	if w.width != 1024 || w.height != 600 {
		t.Fatalf("size = %dx%d, want 1024x600", w.width, w.height)
	}
}
