package game

import (
	"math"
	"math/rand/v2"

	"github.com/wvoliveira/pong-solo/configs"
	"github.com/wvoliveira/pong-solo/geom"
)

// Contact diz qual ramo de colisão um Update tomou.
type Contact int

const (
	ContactNone Contact = iota
	ContactLeftWall
	ContactPaddle
	ContactTopWall
	ContactBottomWall
	ContactMiss
	ContactServe
)

func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactLeftWall:
		return "left_wall"
	case ContactPaddle:
		return "paddle"
	case ContactTopWall:
		return "top_wall"
	case ContactBottomWall:
		return "bottom_wall"
	case ContactMiss:
		return "miss"
	case ContactServe:
		return "serve"
	}
	return "unknown"
}

// Ball guarda o último estado conhecido da bola: posição e velocidade valem
// em timestamp.
type Ball struct {
	cfg configs.Config
	rng *rand.Rand

	timestamp float64
	position  geom.Vec2
	velocity  geom.Vec2
}

// NewBall cria a bola parada na origem; o primeiro Update faz o saque.
func NewBall(cfg configs.Config, rng *rand.Rand) *Ball {
	return &Ball{cfg: cfg, rng: rng}
}

// NewBallAt cria a bola com um estado explícito.
func NewBallAt(cfg configs.Config, rng *rand.Rand, t float64, position, velocity geom.Vec2) *Ball {
	return &Ball{
		cfg:       cfg,
		rng:       rng,
		timestamp: t,
		position:  position,
		velocity:  velocity,
	}
}

func (b *Ball) Timestamp() float64  { return b.timestamp }
func (b *Ball) Position() geom.Vec2 { return b.position }
func (b *Ball) Velocity() geom.Vec2 { return b.velocity }

// Update leva a bola até t. paddleTop é a posição da raquete já atualizada
// neste tick. No máximo uma parede é tratada por chamada, na ordem esquerda,
// gol, topo, fundo.
func (b *Ball) Update(t, paddleTop float64) Contact {
	// Ainda pode estar fora da arena.
	next := geom.Extrapolate(b.timestamp, t, b.position.X, b.position.Y, b.velocity.X, b.velocity.Y)

	radius := b.cfg.BallRadius
	goal := b.cfg.GoalLine()
	contact := ContactNone

	switch {
	case next.X-radius < 0:
		wallX := radius
		next.Y = geom.Interpolate(b.position.Y, next.Y, b.position.X, next.X, wallX)
		next.X = wallX
		if b.velocity.X < 0 {
			b.velocity.X = -b.velocity.X
		}
		contact = ContactLeftWall

	case next.X+radius > goal:
		wallX := goal - radius
		wallY := geom.Interpolate(b.position.Y, next.Y, b.position.X, next.X, wallX)

		hit := wallY >= paddleTop && wallY <= paddleTop+b.cfg.PaddleHeight
		if !hit {
			b.Reset()
			b.timestamp = t
			return ContactMiss
		}

		next = geom.Vec2{X: wallX, Y: wallY}
		if b.velocity.X > 0 {
			b.velocity.X = -b.velocity.X
		}
		contact = ContactPaddle

	case next.Y-radius < 0:
		wallY := radius
		next.X = geom.Interpolate(b.position.X, next.X, b.position.Y, next.Y, wallY)
		next.Y = wallY
		if b.velocity.Y < 0 {
			b.velocity.Y = -b.velocity.Y
		}
		contact = ContactTopWall

	case next.Y+radius > b.cfg.ScreenHeight:
		wallY := b.cfg.ScreenHeight - radius
		next.X = geom.Interpolate(b.position.X, next.X, b.position.Y, next.Y, wallY)
		next.Y = wallY
		if b.velocity.Y > 0 {
			b.velocity.Y = -b.velocity.Y
		}
		contact = ContactBottomWall
	}

	b.position = next
	b.timestamp = t

	// Só acontece na largada.
	if b.velocity.X == 0 && b.velocity.Y == 0 {
		b.Reset()
		return ContactServe
	}

	return contact
}

// Reset recoloca a bola perto da parede esquerda, numa altura sorteada no
// miolo da arena, indo para a direita num ângulo entre ServeAngleMin e
// ServeAngleMax, para cima ou para baixo.
func (b *Ball) Reset() {
	h := b.cfg.ScreenHeight

	b.position.X = b.cfg.ServeX
	b.position.Y = b.rng.Float64()*h*0.75 + h*0.125

	span := b.cfg.ServeAngleMax - b.cfg.ServeAngleMin
	angle := (b.rng.Float64()*span + b.cfg.ServeAngleMin) * math.Pi / 180
	if b.rng.Float64() <= 0.5 {
		angle = -angle
	}

	b.velocity.X = math.Cos(angle) * b.cfg.BallSpeed
	b.velocity.Y = math.Sin(angle) * b.cfg.BallSpeed
}
