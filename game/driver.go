package game

import (
	"log/slog"
	"math/rand/v2"

	"github.com/wvoliveira/pong-solo/configs"
)

// Sink recebe o estado do mundo uma vez por tick.
type Sink interface {
	Render(state configs.GameState)
}

// Sinks repassa o mesmo quadro para vários destinos.
type Sinks []Sink

func (s Sinks) Render(state configs.GameState) {
	for _, sink := range s {
		sink.Render(state)
	}
}

// Driver é o único dono da bola e da raquete. Tudo que muda estado passa por
// Tick ou Input, sempre na mesma goroutine.
type Driver struct {
	ball    *Ball
	paddle  *Paddle
	reducer *Reducer

	sources   []InputSource
	sink      Sink
	onContact func(Contact, configs.GameState)

	log *slog.Logger
}

func NewDriver(cfg configs.Config, rng *rand.Rand, sink Sink, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	if sink == nil {
		sink = Sinks{}
	}

	return &Driver{
		ball:    NewBall(cfg, rng),
		paddle:  NewPaddle(cfg),
		reducer: NewReducer(cfg.PaddleSpeed),
		sink:    sink,
		log:     log,
	}
}

// AddSource registra uma fonte de eventos consultada no início de cada tick.
func (d *Driver) AddSource(src InputSource) {
	d.sources = append(d.sources, src)
}

// OnContact registra quem quer saber das colisões (som, métricas).
func (d *Driver) OnContact(fn func(Contact, configs.GameState)) {
	d.onContact = fn
}

// Start entrega o Tick ao agendador.
func (d *Driver) Start(s Scheduler) {
	s.Schedule(d.Tick)
}

// Input passa o evento pelo redutor e aplica o comando na raquete com o
// horário do próprio evento.
func (d *Driver) Input(ev Event) {
	cmd, ok := d.reducer.Apply(ev)
	if !ok {
		return
	}
	d.paddle.Command(cmd.At, cmd.Velocity)
}

// Tick: entradas, raquete, bola e, por fim, o quadro.
func (d *Driver) Tick(now float64) {
	for _, src := range d.sources {
		for _, ev := range src.Poll(now, d.Snapshot()) {
			d.Input(ev)
		}
	}

	// A raquete vem antes para a bola colidir com a posição deste tick.
	d.paddle.Update(now)
	contact := d.ball.Update(now, d.paddle.Position())

	state := d.Snapshot()
	d.sink.Render(state)

	if contact == ContactNone {
		return
	}

	d.log.Debug("contact", "kind", contact.String(), "at", now, "ball_x", state.BallX, "ball_y", state.BallY, "paddle_y", state.PaddleY)
	if d.onContact != nil {
		d.onContact(contact, state)
	}
}

func (d *Driver) Snapshot() configs.GameState {
	pos := d.ball.Position()
	return configs.GameState{
		At:      d.ball.Timestamp(),
		PaddleY: d.paddle.Position(),
		BallX:   pos.X,
		BallY:   pos.Y,
	}
}

func (d *Driver) Ball() *Ball     { return d.ball }
func (d *Driver) Paddle() *Paddle { return d.paddle }
