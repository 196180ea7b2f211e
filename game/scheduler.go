package game

import (
	"context"
	"time"
)

// Scheduler chama tick repetidamente, uma vez por oportunidade de desenhar,
// com um horário em milissegundos que nunca volta atrás.
type Scheduler interface {
	Schedule(tick func(now float64))
}

// ManualScheduler só dispara quando alguém chama Fire. Serve para testes.
type ManualScheduler struct {
	tick func(now float64)
}

func (m *ManualScheduler) Schedule(tick func(now float64)) {
	m.tick = tick
}

func (m *ManualScheduler) Fire(now float64) {
	if m.tick != nil {
		m.tick(now)
	}
}

// TickerScheduler roda sem janela, num intervalo fixo de 1/tps.
type TickerScheduler struct {
	interval time.Duration
	epoch    time.Time
	tick     func(now float64)
}

func NewTickerScheduler(tps int) *TickerScheduler {
	if tps <= 0 {
		tps = 60
	}
	return &TickerScheduler{
		interval: time.Second / time.Duration(tps),
		epoch:    time.Now(),
	}
}

func (s *TickerScheduler) Schedule(tick func(now float64)) {
	s.tick = tick
}

// Now devolve os milissegundos desde a criação do agendador.
func (s *TickerScheduler) Now() float64 {
	return Millis(time.Since(s.epoch))
}

// Run bloqueia até o contexto acabar.
func (s *TickerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if s.tick != nil {
				s.tick(s.Now())
			}
		}
	}
}

// Millis converte uma duração para a unidade de tempo da simulação.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
