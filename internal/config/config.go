package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName    = "gamelog"
	AppVersion = "1.0.0"
)

// DefaultStorageKey is the slot the game list lives in.
const DefaultStorageKey = "gameList"

type Config struct {
	Addr               string
	DBPath             string
	DataDir            string
	StaticDir          string
	LogLevel           string
	StorageKey         string
	NodeID             int64
	SortLocale         string
	WriteRate          int
	CheckpointInterval time.Duration
}

// Load reads the configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	dataDir := getEnv("GAMELOG_DATA_DIR", "./data")
	path := getEnv("GAMELOG_DB_PATH", filepath.Join(dataDir, "gamelog.db"))
	staticDir := os.Getenv("GAMELOG_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	return Config{
		Addr:               getEnv("GAMELOG_ADDR", ":8080"),
		DBPath:             filepath.Clean(path),
		DataDir:            filepath.Clean(dataDir),
		StaticDir:          filepath.Clean(staticDir),
		LogLevel:           getEnv("GAMELOG_LOG_LEVEL", "info"),
		StorageKey:         getEnv("GAMELOG_STORAGE_KEY", DefaultStorageKey),
		NodeID:             getEnvInt64("GAMELOG_NODE_ID", 1),
		SortLocale:         getEnv("GAMELOG_SORT_LOCALE", "en"),
		WriteRate:          int(getEnvInt64("GAMELOG_WRITE_RATE", 10)),
		CheckpointInterval: getEnvDuration("GAMELOG_CHECKPOINT_INTERVAL", 15*time.Minute),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
