package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// cue plays short sine tones on navigation edges. It is silent when no audio device is available.
type cue struct {
	enabled bool
}

func newCue() (*cue, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &cue{}, err
	}
	return &cue{enabled: true}, nil
}

// play emits a tone of the given pitch and length.
func (c *cue) play(freq float64, length time.Duration) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(length), sine))
}

func (c *cue) close() {
	if c.enabled {
		speaker.Close()
	}
}
