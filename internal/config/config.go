package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string
	KVBackend     string
	KVPath        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ClaudeAPIKey  string
	ClaudeModel   string
	GeocoderURL   string
	LogLevel      string
	LogFile       string
}

func Load() *Config {
	// Pull in a local .env if one exists; real env vars win.
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		redisDB = 0
	}

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		KVBackend:     getEnv("KV_BACKEND", "sqlite"),
		KVPath:        getEnv("KV_PATH", "/data/propluxe.db"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		ClaudeAPIKey:  getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:   getEnv("CLAUDE_MODEL", "claude-3-5-sonnet-latest"),
		GeocoderURL:   getEnv("GEOCODER_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
