package configs

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Constantes do jogo. A geometria da arena é fixa; só os ajustes de execução
// podem vir do ambiente.
type Config struct {
	ServerDomain string
	ServerPort   string

	ScreenWidth   float64
	ScreenHeight  float64
	PaddleWidth   float64
	PaddleHeight  float64
	PaddleOffset  float64
	PaddleSpeed   float64
	BallRadius    float64
	BallSpeed     float64
	ServeX        float64
	ServeAngleMin float64 // graus
	ServeAngleMax float64 // graus

	TPS      int
	LogLevel slog.Level
	Mute     bool
	Seed     uint64

	GameState
}

// Estado do mundo, exatamente o que um renderizador precisa. Também é o
// payload que trafega pelo relay.
type GameState struct {
	At      float64
	PaddleY float64
	BallX   float64
	BallY   float64
}

// Primeira mensagem de toda conexão com o relay.
type Hello struct {
	Role string
}

const (
	RolePublisher = "publisher"
	RoleViewer    = "viewer"
)

func New() Config {
	cfg := Config{
		ServerDomain: "localhost",
		ServerPort:   "8080",

		ScreenWidth:   800,
		ScreenHeight:  500,
		PaddleWidth:   6,
		PaddleHeight:  46,
		PaddleOffset:  5,
		PaddleSpeed:   0.38,
		BallRadius:    3.5,
		BallSpeed:     0.69,
		ServeX:        50,
		ServeAngleMin: 40,
		ServeAngleMax: 55,

		TPS:      60,
		LogLevel: slog.LevelInfo,
	}

	cfg.GameState = GameState{
		PaddleY: cfg.ScreenHeight/2 - cfg.PaddleHeight/2,
		BallX:   cfg.ServeX,
		BallY:   cfg.ScreenHeight / 2,
	}

	return cfg
}

// Load parte de New e aplica o .env (se existir) e as variáveis PONG_*.
func Load() Config {
	godotenv.Load()

	cfg := New()
	cfg.ServerDomain = getEnv("PONG_SERVER_DOMAIN", cfg.ServerDomain)
	cfg.ServerPort = getEnv("PONG_SERVER_PORT", cfg.ServerPort)
	cfg.TPS = getEnvInt("PONG_TPS", cfg.TPS)
	cfg.LogLevel = getEnvLevel("PONG_LOG_LEVEL", cfg.LogLevel)
	cfg.Mute = getEnvBool("PONG_MUTE", cfg.Mute)
	cfg.Seed = getEnvUint("PONG_SEED", cfg.Seed)

	return cfg
}

// Linha do gol: a bola que passa daqui sem tocar a raquete volta pro saque.
func (c Config) GoalLine() float64 {
	return c.ScreenWidth - c.PaddleOffset - c.PaddleWidth
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return defaultValue
	}
	return level
}
