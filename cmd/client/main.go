package main

import (
	"context"
	"flag"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wvoliveira/pong-solo/configs"
	"github.com/wvoliveira/pong-solo/game"
	"github.com/wvoliveira/pong-solo/relay"
)

var (
	relayFlag    = flag.Bool("relay", false, "publish frames to the relay server")
	demoFlag     = flag.Bool("demo", false, "let the autopilot play")
	headlessFlag = flag.Bool("headless", false, "run without a window (implies -demo)")
	muteFlag     = flag.Bool("mute", false, "disable sound")
	seedFlag     = flag.Uint64("seed", 0, "serve seed (0 = random)")
)

var (
	bgColor   = color.RGBA{0x20, 0x20, 0x30, 0xff}
	ballColor = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

// Game liga o driver ao ebiten: Update é o agendador e Draw é o sink.
type Game struct {
	cfg   configs.Config
	sched *frameScheduler
	state configs.GameState
	face  text.Face
	help  string
}

func (g *Game) Update() error {
	g.sched.fire()
	return nil
}

func (g *Game) Render(state configs.GameState) {
	g.state = state
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	// Raquete (branca), sempre na linha do gol.
	vector.FillRect(screen, float32(g.cfg.GoalLine()), float32(g.state.PaddleY),
		float32(g.cfg.PaddleWidth), float32(g.cfg.PaddleHeight), color.White, false)

	// Bola (amarela)
	vector.FillCircle(screen, float32(g.state.BallX), float32(g.state.BallY),
		float32(g.cfg.BallRadius), ballColor, true)

	text.Draw(screen, g.help, g.face, &text.DrawOptions{})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}

// frameScheduler dispara o tick a cada Update do ebiten.
type frameScheduler struct {
	epoch time.Time
	tick  func(now float64)
}

func (s *frameScheduler) Schedule(tick func(now float64)) {
	s.tick = tick
}

func (s *frameScheduler) fire() {
	if s.tick != nil {
		s.tick(game.Millis(time.Since(s.epoch)))
	}
}

func main() {
	flag.Parse()

	cfg := configs.Load()
	if *muteFlag {
		cfg.Mute = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(cfg); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}

func run(cfg configs.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	sinks := game.Sinks{}
	if *relayFlag {
		serverURL := relay.URL(cfg)
		pub, err := relay.NewPublisher(ctx, serverURL, slog.Default())
		if err != nil {
			return err
		}
		defer pub.Close()
		sinks = append(sinks, pub)
		slog.Info("publishing frames", "relay", serverURL)
	}

	if *headlessFlag {
		return runHeadless(ctx, cfg, rng, sinks)
	}

	g := &Game{
		cfg:   cfg,
		sched: &frameScheduler{epoch: time.Now()},
		face:  text.NewGoXFace(basicfont.Face7x13),
		help:  "Up/Down: move",
	}
	sinks = append(sinks, g)

	driver := game.NewDriver(cfg, rng, sinks, slog.Default())
	if *demoFlag {
		driver.AddSource(game.NewAutopilot(cfg))
		g.help = "demo"
	} else {
		driver.AddSource(keyboard{})
	}

	if !cfg.Mute {
		if s, err := newSound(); err != nil {
			// Sem som o jogo continua.
			slog.Error("error to init audio", "error", err)
		} else {
			driver.OnContact(s.onContact)
		}
	}

	driver.Start(g.sched)

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(cfg.TPS)

	return ebiten.RunGame(g)
}

func runHeadless(ctx context.Context, cfg configs.Config, rng *rand.Rand, sinks game.Sinks) error {
	driver := game.NewDriver(cfg, rng, sinks, slog.Default())
	driver.AddSource(game.NewAutopilot(cfg))

	var hits, misses int
	driver.OnContact(func(c game.Contact, _ configs.GameState) {
		switch c {
		case game.ContactPaddle:
			hits++
		case game.ContactMiss:
			misses++
		}
	})

	sched := game.NewTickerScheduler(cfg.TPS)
	driver.Start(sched)

	slog.Info("running headless", "tps", cfg.TPS)
	err := sched.Run(ctx)
	slog.Info("stopped", "paddle_hits", hits, "misses", misses)

	if ctx.Err() != nil {
		return nil
	}
	return err
}
