package overlay

// CardsOption is a functional option for configuring Cards.
type CardsOption func(*cardsImpl)

// WithFadeIn sets how long a card takes to reach full opacity.
//
// Parameters:
//   - seconds: fade-in duration; zero or less shows cards immediately
//
// Returns:
//   - CardsOption: functional option to set the fade
func WithFadeIn(seconds float32) CardsOption {
	return func(c *cardsImpl) {
		c.fadeIn = seconds
	}
}
