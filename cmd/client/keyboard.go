package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wvoliveira/pong-solo/configs"
	"github.com/wvoliveira/pong-solo/game"
)

// keyboard transforma as bordas das setas em eventos; o resto das teclas é
// ignorado aqui mesmo.
type keyboard struct{}

func (keyboard) Poll(now float64, _ configs.GameState) []game.Event {
	var events []game.Event

	edges := []struct {
		key      ebiten.Key
		pressed  game.EventKind
		released game.EventKind
	}{
		{ebiten.KeyArrowUp, game.UpPressed, game.UpReleased},
		{ebiten.KeyArrowDown, game.DownPressed, game.DownReleased},
	}

	for _, e := range edges {
		if inpututil.IsKeyJustPressed(e.key) {
			events = append(events, game.Event{Kind: e.pressed, At: now})
		}
		if inpututil.IsKeyJustReleased(e.key) {
			events = append(events, game.Event{Kind: e.released, At: now})
		}
	}

	return events
}
