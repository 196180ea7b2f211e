package game

import "github.com/wvoliveira/pong-solo/configs"

// Autopilot joga sozinho apertando e soltando as setas como um jogador faria.
// Usado no modo demo e nas execuções sem janela.
type Autopilot struct {
	cfg      configs.Config
	deadZone float64

	up, down bool
}

func NewAutopilot(cfg configs.Config) *Autopilot {
	return &Autopilot{
		cfg:      cfg,
		deadZone: cfg.PaddleHeight / 4,
	}
}

// Poll compara o centro da raquete com a bola e emite só as transições
// necessárias para ir na direção dela.
func (a *Autopilot) Poll(now float64, state configs.GameState) []Event {
	center := state.PaddleY + a.cfg.PaddleHeight/2
	wantUp := state.BallY < center-a.deadZone
	wantDown := state.BallY > center+a.deadZone

	var events []Event
	if a.up && !wantUp {
		events = append(events, Event{Kind: UpReleased, At: now})
		a.up = false
	}
	if a.down && !wantDown {
		events = append(events, Event{Kind: DownReleased, At: now})
		a.down = false
	}
	if wantUp && !a.up {
		events = append(events, Event{Kind: UpPressed, At: now})
		a.up = true
	}
	if wantDown && !a.down {
		events = append(events, Event{Kind: DownPressed, At: now})
		a.down = true
	}
	return events
}
