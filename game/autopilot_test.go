package game

import (
	"math"
	"testing"

	"github.com/wvoliveira/pong-solo/configs"
)

func TestAutopilotEmitsOnlyTransitions(t *testing.T) {
	cfg := configs.New()
	a := NewAutopilot(cfg)
	center := cfg.PaddleY + cfg.PaddleHeight/2

	below := configs.GameState{PaddleY: cfg.PaddleY, BallY: center + 100}
	above := configs.GameState{PaddleY: cfg.PaddleY, BallY: center - 100}
	level := configs.GameState{PaddleY: cfg.PaddleY, BallY: center}

	steps := []struct {
		state configs.GameState
		want  []EventKind
	}{
		{below, []EventKind{DownPressed}},
		{below, nil},
		{above, []EventKind{DownReleased, UpPressed}},
		{above, nil},
		{level, []EventKind{UpReleased}},
		{level, nil},
	}

	for i, s := range steps {
		now := float64(i * 16)
		got := a.Poll(now, s.state)
		if len(got) != len(s.want) {
			t.Fatalf("step %d: events = %+v, want %v", i, got, s.want)
		}
		for j, ev := range got {
			if ev.Kind != s.want[j] || ev.At != now {
				t.Errorf("step %d: event %d = %+v, want %v at %v", i, j, ev, s.want[j], now)
			}
		}
	}
}

func TestAutopilotConverges(t *testing.T) {
	cfg := configs.New()
	step := 16.0

	for _, target := range []float64{30, 250, 450} {
		a := NewAutopilot(cfg)
		r := NewReducer(cfg.PaddleSpeed)
		p := NewPaddle(cfg)

		for now := 0.0; now < 3000; now += step {
			state := configs.GameState{PaddleY: p.Position(), BallY: target}
			for _, ev := range a.Poll(now, state) {
				if cmd, ok := r.Apply(ev); ok {
					p.Command(cmd.At, cmd.Velocity)
				}
			}
			p.Update(now)
		}

		center := p.Position() + cfg.PaddleHeight/2
		slack := a.deadZone + 2*cfg.PaddleSpeed*step
		if math.Abs(center-target) > slack {
			t.Errorf("target %v: paddle center = %v, want within %v", target, center, slack)
		}
	}
}
