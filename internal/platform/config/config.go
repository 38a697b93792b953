package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	LogLevel       slog.Level
	DatabaseURL    string // empty keeps the ledger in memory
	EnableDBCheck  bool
	MigrationsPath string

	// Market data feed
	MarketTickInterval  time.Duration
	MarketFetchLatency  time.Duration
	MarketMoversLatency time.Duration
	MarketSeed          uint64 // 0 seeds from the clock
	TopMoversLimit      int

	// HTTP surface
	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
	DisplayCurrency    string

	SeedDemoData bool

	// Product analytics, disabled when the key is empty
	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	PosthogEndpoint string `mapstructure:"POSTHOG_ENDPOINT"`
	InstanceID      string `mapstructure:"INSTANCE_ID"`
}

// UsesDatabase reports whether the ledger is persisted in PostgreSQL.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func parseLogLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to INFO.\n", raw)
		return slog.LevelInfo
	}
	return level
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("MARKET_TICK_INTERVAL", "3s")
	viper.SetDefault("MARKET_FETCH_LATENCY", "500ms")
	viper.SetDefault("MARKET_MOVERS_LATENCY", "300ms")
	viper.SetDefault("MARKET_SEED", 0)
	viper.SetDefault("TOP_MOVERS_LIMIT", 10)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("DISPLAY_CURRENCY", "BRL")
	viper.SetDefault("SEED_DEMO_DATA", false)
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://us.i.posthog.com")
	viper.SetDefault("INSTANCE_ID", "finance-dashboard")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LogLevel = parseLogLevel(viper.GetString("LOG_LEVEL"))

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. The ledger is kept in memory and lost on restart.")
	}
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.MarketTickInterval = durationOrDefault("MARKET_TICK_INTERVAL", 3*time.Second)
	if cfg.MarketTickInterval == 0 {
		log.Println("Warning: MARKET_TICK_INTERVAL must be positive. Defaulting to 3s.")
		cfg.MarketTickInterval = 3 * time.Second
	}
	cfg.MarketFetchLatency = durationOrDefault("MARKET_FETCH_LATENCY", 500*time.Millisecond)
	cfg.MarketMoversLatency = durationOrDefault("MARKET_MOVERS_LATENCY", 300*time.Millisecond)
	cfg.MarketSeed = viper.GetUint64("MARKET_SEED")

	cfg.TopMoversLimit = viper.GetInt("TOP_MOVERS_LIMIT")
	if cfg.TopMoversLimit <= 0 {
		log.Printf("Warning: Invalid value for TOP_MOVERS_LIMIT (%d). Defaulting to 10.\n", cfg.TopMoversLimit)
		cfg.TopMoversLimit = 10
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.DisplayCurrency = strings.ToUpper(viper.GetString("DISPLAY_CURRENCY"))
	cfg.SeedDemoData = viper.GetBool("SEED_DEMO_DATA")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")
	cfg.InstanceID = viper.GetString("INSTANCE_ID")

	return cfg, nil
}
