package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/wvoliveira/pong-solo/configs"
	"github.com/wvoliveira/pong-solo/game"
)

const sampleRate = beep.SampleRate(44100)

type sound struct{}

func newSound() (*sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &sound{}, nil
}

func (s *sound) onContact(c game.Contact, _ configs.GameState) {
	switch c {
	case game.ContactPaddle:
		s.tone(880, 50*time.Millisecond)
	case game.ContactMiss:
		s.tone(220, 150*time.Millisecond)
	}
}

func (s *sound) tone(freq int, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
