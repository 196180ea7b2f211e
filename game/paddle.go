package game

import (
	"github.com/wvoliveira/pong-solo/configs"
	"github.com/wvoliveira/pong-solo/geom"
)

// Paddle guarda só o eixo y; o x é sempre a linha do gol.
type Paddle struct {
	cfg configs.Config

	timestamp float64
	position  float64 // topo da raquete
	velocity  float64
}

func NewPaddle(cfg configs.Config) *Paddle {
	return &Paddle{
		cfg:      cfg,
		position: cfg.ScreenHeight/2 - cfg.PaddleHeight/2,
	}
}

func (p *Paddle) Timestamp() float64 { return p.timestamp }
func (p *Paddle) Position() float64  { return p.position }
func (p *Paddle) Velocity() float64  { return p.velocity }

// Update avança até t mantendo a velocidade atual.
func (p *Paddle) Update(t float64) {
	p.Command(t, p.velocity)
}

// Command avança até t com a velocidade antiga e só então adota v; o comando
// vale a partir daqui, nunca retroativamente.
func (p *Paddle) Command(t, v float64) {
	p.position = geom.Extrapolate1(p.timestamp, t, p.position, p.velocity)
	p.timestamp = t
	p.velocity = v

	if p.position < 0 {
		p.position = 0
	} else if p.position+p.cfg.PaddleHeight > p.cfg.ScreenHeight {
		p.position = p.cfg.ScreenHeight - p.cfg.PaddleHeight
	}
}
