package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int           `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	CORSOrigins  string        `env:"CORS_ORIGINS" envDefault:"*"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"LOG_FILE"`

	// Upstream service configuration
	UpstreamBaseURL string        `env:"UPSTREAM_BASE_URL" envDefault:"https://smartpay.propskynet.com"`
	UpstreamAPIKey  string        `env:"UPSTREAM_API_KEY"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`

	// Report configuration
	PageSize           int `env:"PAYMENTS_PAGE_SIZE" envDefault:"100"`
	MaxConcurrentPages int `env:"PAYMENTS_MAX_CONCURRENT_PAGES" envDefault:"8"`

	// Store list cache
	StoreCacheTTL time.Duration `env:"STORE_CACHE_TTL" envDefault:"24h"`

	// Machine monitor configuration
	MonitorEnabled  bool          `env:"MONITOR_ENABLED" envDefault:"true"`
	MonitorStoreIDs []int         `env:"MONITOR_STORE_IDS" envDefault:"73" envSeparator:","`
	MonitorInterval time.Duration `env:"MONITOR_INTERVAL" envDefault:"30s"`
	OfflineAfter    time.Duration `env:"MONITOR_OFFLINE_AFTER" envDefault:"60m"`
	PlayPrice       int           `env:"PLAY_PRICE" envDefault:"10"`
	MonitorTimezone string        `env:"MONITOR_TIMEZONE" envDefault:"Asia/Taipei"`

	// Database configuration
	PostgresDBURL string `env:"POSTGRES_DB_URL"`

	// Telegram alerts
	TelegramBotToken string  `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatIDs  []int64 `env:"TELEGRAM_CHAT_IDS" envSeparator:","`
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	validateConfig(cfg)

	return cfg, nil
}

// loadDotEnv loads a .env file from the project root, falling back to the
// current directory
func loadDotEnv() {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("Warning: Could not determine executable path: %v", err)
	}

	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(execPath)))
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading .env file. Using environment variables.")
		} else {
			log.Println("Loaded environment variables from current directory .env file")
		}
	} else {
		log.Printf("Loaded environment variables from %s", envPath)
	}
}

// validateConfig checks if optional integrations are configured and logs warnings if they're missing
func validateConfig(config *Config) {
	if config.UpstreamAPIKey == "" {
		log.Println("Warning: No upstream API key provided. Machine readings and the health monitor are disabled.")
	}

	if config.PostgresDBURL == "" {
		log.Println("Warning: No database URL provided. Report history will not be stored.")
	}

	if config.TelegramBotToken == "" || len(config.TelegramChatIDs) == 0 {
		log.Println("Warning: Telegram bot token or chat IDs missing. Offline alerts are only logged.")
	}
}

// Timezone returns the location used to evaluate machine reading times
func (c *Config) Timezone() *time.Location {
	loc, err := time.LoadLocation(c.MonitorTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}
