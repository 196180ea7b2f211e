package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong-solo/configs"
	"github.com/wvoliveira/pong-solo/relay"
)

const logFileName = "pong-viewer.log"

var (
	paddleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ballStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func main() {
	cfg := configs.Load()

	// A tela é do tcell; os logs vão para arquivo.
	logPath := filepath.Join(os.TempDir(), logFileName)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(cfg); err != nil {
		slog.Error("error to run viewer", "error", err)
		fmt.Fprintf(os.Stderr, "viewer: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg configs.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverURL := relay.URL(cfg)
	frames, err := relay.Subscribe(ctx, serverURL, slog.Default())
	if err != nil {
		return err
	}
	slog.Info("watching", "relay", serverURL)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var last configs.GameState
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, cfg, last)
			}

		case state, ok := <-frames:
			if !ok {
				return fmt.Errorf("relay %s closed the connection", serverURL)
			}
			last = state
			draw(screen, cfg, last)
		}
	}
}

func draw(screen tcell.Screen, cfg configs.Config, state configs.GameState) {
	w, h := screen.Size()
	v := project(cfg, w, h, state)

	screen.Clear()
	for x := 0; x < w; x++ {
		screen.SetContent(x, 0, '─', nil, wallStyle)
		screen.SetContent(x, h-1, '─', nil, wallStyle)
	}
	for y := v.paddleTop; y <= v.paddleBottom; y++ {
		screen.SetContent(v.paddleCol, y, '█', nil, paddleStyle)
	}
	screen.SetContent(v.ballCol, v.ballRow, '●', nil, ballStyle)
	screen.Show()
}

// cells é o quadro já convertido para a grade do terminal.
type cells struct {
	ballCol, ballRow        int
	paddleCol               int
	paddleTop, paddleBottom int
}

// project escala a arena para w x h células.
func project(cfg configs.Config, w, h int, state configs.GameState) cells {
	col := func(x float64) int { return clamp(int(x/cfg.ScreenWidth*float64(w)), 0, w-1) }
	row := func(y float64) int { return clamp(int(y/cfg.ScreenHeight*float64(h)), 0, h-1) }

	return cells{
		ballCol:      col(state.BallX),
		ballRow:      row(state.BallY),
		paddleCol:    col(cfg.GoalLine()),
		paddleTop:    row(state.PaddleY),
		paddleBottom: row(state.PaddleY + cfg.PaddleHeight),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
