package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies ARBSCAN_* environment variable overrides, and
// returns the final Config. A missing file is not an error; the defaults
// plus environment overrides apply. The returned Config has NOT been
// validated; the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known ARBSCAN_* environment variables and
// overwrites the corresponding Config fields when a variable is set (i.e.
// not empty). This lets operators inject settings at deploy time without
// touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	// ── Server ──
	setInt(&cfg.Server.Port, "ARBSCAN_SERVER_PORT")
	setInt(&cfg.Server.Port, "PORT") // platform convention
	setStringSlice(&cfg.Server.CORSOrigins, "ARBSCAN_SERVER_CORS_ORIGINS")
	setInt(&cfg.Server.RateLimit, "ARBSCAN_SERVER_RATE_LIMIT")
	setDuration(&cfg.Server.RateWindow, "ARBSCAN_SERVER_RATE_WINDOW")
	setInt(&cfg.Server.ArbitrageDefaultLimit, "ARBSCAN_SERVER_ARBITRAGE_DEFAULT_LIMIT")
	setInt(&cfg.Server.ArbitrageMaxLimit, "ARBSCAN_SERVER_ARBITRAGE_MAX_LIMIT")
	setInt(&cfg.Server.PricesDefaultLimit, "ARBSCAN_SERVER_PRICES_DEFAULT_LIMIT")
	setInt(&cfg.Server.PricesMaxLimit, "ARBSCAN_SERVER_PRICES_MAX_LIMIT")

	// ── Cache ──
	setStr(&cfg.Cache.Backend, "ARBSCAN_CACHE_BACKEND")
	setDuration(&cfg.Cache.PriceTTL, "ARBSCAN_CACHE_PRICE_TTL")
	setDuration(&cfg.Cache.ScanTTL, "ARBSCAN_CACHE_SCAN_TTL")

	// ── Redis ──
	setStr(&cfg.Redis.Addr, "ARBSCAN_REDIS_ADDR")
	setStr(&cfg.Redis.Password, "ARBSCAN_REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "ARBSCAN_REDIS_DB")
	setInt(&cfg.Redis.PoolSize, "ARBSCAN_REDIS_POOL_SIZE")
	setInt(&cfg.Redis.MaxRetries, "ARBSCAN_REDIS_MAX_RETRIES")
	setBool(&cfg.Redis.TLSEnabled, "ARBSCAN_REDIS_TLS_ENABLED")

	// ── Exchange ──
	setDuration(&cfg.Exchange.Timeout, "ARBSCAN_EXCHANGE_TIMEOUT")
	setInt(&cfg.Exchange.MaxIdleConns, "ARBSCAN_EXCHANGE_MAX_IDLE_CONNS")
	setDuration(&cfg.Exchange.IdleConnTimeout, "ARBSCAN_EXCHANGE_IDLE_CONN_TIMEOUT")

	// ── Arbitrage ──
	setFloat64(&cfg.Arbitrage.TheoreticalFloorPercent, "ARBSCAN_ARBITRAGE_THEORETICAL_FLOOR_PERCENT")
	setFloat64(&cfg.Arbitrage.MinProfitPercent, "ARBSCAN_ARBITRAGE_MIN_PROFIT_PERCENT")
	setFloat64(&cfg.Arbitrage.DefaultTakerFee, "ARBSCAN_ARBITRAGE_DEFAULT_TAKER_FEE")

	// ── Monitor ──
	setDuration(&cfg.Monitor.Interval, "ARBSCAN_MONITOR_INTERVAL")
	setInt(&cfg.Monitor.PairLimit, "ARBSCAN_MONITOR_PAIR_LIMIT")
	setFloat64(&cfg.Monitor.MinAlertProfitPercent, "ARBSCAN_MONITOR_MIN_ALERT_PROFIT_PERCENT")
	setDuration(&cfg.Monitor.AlertCooldown, "ARBSCAN_MONITOR_ALERT_COOLDOWN")

	// ── Notify ──
	setStr(&cfg.Notify.TelegramToken, "ARBSCAN_NOTIFY_TELEGRAM_TOKEN")
	setStr(&cfg.Notify.TelegramChatID, "ARBSCAN_NOTIFY_TELEGRAM_CHAT_ID")
	setStr(&cfg.Notify.DiscordWebhookURL, "ARBSCAN_NOTIFY_DISCORD_WEBHOOK_URL")
	setStringSlice(&cfg.Notify.Events, "ARBSCAN_NOTIFY_EVENTS")

	// ── Top-level ──
	setStringSlice(&cfg.Pairs, "ARBSCAN_PAIRS")
	setStr(&cfg.Mode, "ARBSCAN_MODE")
	setStr(&cfg.Environment, "ARBSCAN_ENVIRONMENT")
	setStr(&cfg.LogLevel, "ARBSCAN_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}
