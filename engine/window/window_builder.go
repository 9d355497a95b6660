package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the initial title. An empty title keeps the default, since the engine replaces it
// with the active section's title once the first frame is stepped.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		if title != "" {
			w.title = title
		}
	}
}

// WithWidth sets the initial client area width. Non-positive values keep the default.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
	}
}

// WithHeight sets the initial client area height. The scroll container derives its viewport from
// this value, so it should match the configured viewport height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if height > 0 {
			w.height = height
		}
	}
}

// WithMinWidth bounds interactive resizing from below. Non-positive values keep the default.
func WithMinWidth(minWidth int) WindowBuilderOption {
	return func(w *engineWindow) {
		if minWidth > 0 {
			w.minWidth = minWidth
		}
	}
}

// WithMinHeight bounds interactive resizing from below. Non-positive values keep the default.
func WithMinHeight(minHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		if minHeight > 0 {
			w.minHeight = minHeight
		}
	}
}

// WithMaxWidth bounds interactive resizing from above. Non-positive values keep the default.
func WithMaxWidth(maxWidth int) WindowBuilderOption {
	return func(w *engineWindow) {
		if maxWidth > 0 {
			w.maxWidth = maxWidth
		}
	}
}

// WithMaxHeight bounds interactive resizing from above. Non-positive values keep the default.
func WithMaxHeight(maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		if maxHeight > 0 {
			w.maxHeight = maxHeight
		}
	}
}

// WithSizeLimits applies all four resize bounds at once.
//
// Parameters:
//   - minWidth, minHeight: smallest client area in pixels
//   - maxWidth, maxHeight: largest client area in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		for _, opt := range []WindowBuilderOption{
			WithMinWidth(minWidth), WithMinHeight(minHeight),
			WithMaxWidth(maxWidth), WithMaxHeight(maxHeight),
		} {
			opt(w)
		}
	}
}
