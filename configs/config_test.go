package configs

import (
	"log/slog"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if got, want := cfg.GoalLine(), 789.0; got != want {
		t.Errorf("GoalLine() = %v, want %v", got, want)
	}
	if got, want := cfg.PaddleY, 227.0; got != want {
		t.Errorf("initial PaddleY = %v, want %v", got, want)
	}
	if cfg.TPS != 60 {
		t.Errorf("TPS = %d, want 60", cfg.TPS)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PONG_SERVER_DOMAIN", "relay.local")
	t.Setenv("PONG_SERVER_PORT", "9090")
	t.Setenv("PONG_TPS", "120")
	t.Setenv("PONG_LOG_LEVEL", "debug")
	t.Setenv("PONG_MUTE", "true")
	t.Setenv("PONG_SEED", "42")

	cfg := Load()

	if cfg.ServerDomain != "relay.local" {
		t.Errorf("ServerDomain = %q", cfg.ServerDomain)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.TPS != 120 {
		t.Errorf("TPS = %d", cfg.TPS)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if !cfg.Mute {
		t.Error("Mute = false, want true")
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"PONG_TPS", "fast"},
		{"PONG_TPS", "-3"},
		{"PONG_LOG_LEVEL", "loud"},
		{"PONG_MUTE", "maybe"},
		{"PONG_SEED", "-1"},
	}

	def := New()
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := Load()

			if cfg.TPS != def.TPS || cfg.LogLevel != def.LogLevel || cfg.Mute != def.Mute || cfg.Seed != def.Seed {
				t.Errorf("invalid %s=%q changed config: %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

func TestLoadKeepsArenaGeometry(t *testing.T) {
	t.Setenv("PONG_SCREEN_WIDTH", "1024")

	if got := Load().ScreenWidth; got != 800 {
		t.Errorf("ScreenWidth = %v, arena must stay fixed", got)
	}
}
