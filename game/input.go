package game

import "github.com/wvoliveira/pong-solo/configs"

// Eventos de teclado que importam: as duas setas, apertando e soltando.
type EventKind int

const (
	UpPressed EventKind = iota
	UpReleased
	DownPressed
	DownReleased
)

func (k EventKind) String() string {
	switch k {
	case UpPressed:
		return "up_pressed"
	case UpReleased:
		return "up_released"
	case DownPressed:
		return "down_pressed"
	case DownReleased:
		return "down_released"
	}
	return "unknown"
}

type Event struct {
	Kind EventKind
	At   float64
}

// Command é a velocidade que a raquete deve adotar a partir de At.
type Command struct {
	At       float64
	Velocity float64
}

// InputSource é consultada uma vez por tick, antes da física.
type InputSource interface {
	Poll(now float64, state configs.GameState) []Event
}

// Reducer junta os dois botões numa velocidade com sinal. Eventos crus
// repetidos em sequência (auto-repeat do teclado) são descartados.
type Reducer struct {
	speed float64

	up, down int

	last    EventKind
	hasLast bool
}

func NewReducer(speed float64) *Reducer {
	return &Reducer{speed: speed}
}

// Apply devolve false quando o evento repete o anterior.
func (r *Reducer) Apply(ev Event) (Command, bool) {
	if r.hasLast && ev.Kind == r.last {
		return Command{}, false
	}
	r.last = ev.Kind
	r.hasLast = true

	switch ev.Kind {
	case UpPressed:
		r.up = 1
	case UpReleased:
		r.up = 0
	case DownPressed:
		r.down = 1
	case DownReleased:
		r.down = 0
	}

	return Command{At: ev.At, Velocity: r.Velocity()}, true
}

// Velocity é (baixo - cima) * velocidade; os dois juntos se anulam.
func (r *Reducer) Velocity() float64 {
	return float64(r.down-r.up) * r.speed
}

// Fold reduz uma sequência ordenada de eventos aos comandos que ela gera.
func Fold(speed float64, events []Event) []Command {
	r := NewReducer(speed)
	cmds := make([]Command, 0, len(events))
	for _, ev := range events {
		if cmd, ok := r.Apply(ev); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
