package overlay

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/orientation"
)

type cardsImpl struct {
	mu     *sync.Mutex
	fadeIn float32
	last   Visibility
}

// Compile-time interface compliance check
var _ Cards = &cardsImpl{}

// NewCards creates the card visibility tracker with nothing shown.
//
// Parameters:
//   - options: functional options to configure the tracker
//
// Returns:
//   - Cards: the tracker
func NewCards(options ...CardsOption) Cards {
	c := &cardsImpl{
		mu:     &sync.Mutex{},
		fadeIn: 0.35,
		last:   Visibility{Card: NoCard},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cardsImpl) Update(delta float32, nav navigator.State, world orientation.State) Visibility {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !common.IsFinite(delta) || delta < 0 {
		delta = 0
	}

	if nav.Mode == navigator.ModeForced || nav.Mode == navigator.ModeDetail {
		c.last = Visibility{Card: NoCard}
		return c.last
	}

	next := Visibility{Card: nav.Section, Alpha: c.last.Alpha}
	if next.Card != c.last.Card || world.IsAnimating {
		next.Alpha = 0
	}
	if !world.IsAnimating {
		if c.fadeIn <= 0 {
			next.Alpha = 1
		} else {
			next.Alpha = common.Clamp01(next.Alpha + delta/c.fadeIn)
		}
	}
	c.last = next
	return c.last
}

func (c *cardsImpl) Visibility() Visibility {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
