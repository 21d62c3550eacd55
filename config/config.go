package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Addr    string
	DataDir string
}

// Load reads .env (when present) into the process environment and builds the
// top-level config. Services read their own credentials (JWT_SECRET,
// GEMINI_API_KEY) straight from the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using process environment")
	}

	cfg := Config{
		Addr:    getenv("ADDR", ":8080"),
		DataDir: getenv("DATA_DIR", "./data"),
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
