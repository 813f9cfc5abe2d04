package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by SAPPER_ENV (or .env by default).
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("SAPPER_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing file is fine; env vars alone are a valid configuration.
	_ = godotenv.Load(envFile)

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// MaxBoardDim caps session board height and width.
// Defaults to 64 if not set.
func MaxBoardDim() int {
	dim, err := strconv.Atoi(os.Getenv("MAX_BOARD_DIM"))
	if err != nil || dim <= 0 {
		return 64
	}
	return dim
}

// MaxSessions caps the number of live sessions.
// Defaults to 1024 if not set.
func MaxSessions() int {
	n, err := strconv.Atoi(os.Getenv("MAX_SESSIONS"))
	if err != nil || n <= 0 {
		return 1024
	}
	return n
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
