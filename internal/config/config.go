package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr string

	// SquareSize is the pixel size of one board square. The engine never
	// looks at it; it is published to the front end so its pointer-to-cell
	// mapping (floor divide by SquareSize) matches the board it renders.
	SquareSize int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:   getenv("HTTP_ADDR", ":8080"),
		SquareSize: getenvInt("SQUARE_SIZE", 80),
	}
}
