// Package config defines the top-level configuration for the arbitrage
// scanner and provides validation helpers.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration structure. Fields are populated from a TOML
// file and then optionally overridden by ARBSCAN_* environment variables.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Cache     CacheConfig     `toml:"cache"`
	Redis     RedisConfig     `toml:"redis"`
	Exchange  ExchangeConfig  `toml:"exchange"`
	Arbitrage ArbitrageConfig `toml:"arbitrage"`
	Monitor   MonitorConfig   `toml:"monitor"`
	Notify    NotifyConfig    `toml:"notify"`

	// Pairs overrides the built-in trading-pair universe when non-empty.
	// Entries use the canonical "BASE/QUOTE" form.
	Pairs []string `toml:"pairs"`

	Mode        string `toml:"mode"`
	Environment string `toml:"environment"`
	LogLevel    string `toml:"log_level"`
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`

	// RateLimit caps requests per client IP per RateWindow. Zero disables
	// request throttling.
	RateLimit  int      `toml:"rate_limit"`
	RateWindow duration `toml:"rate_window"`

	// ArbitrageDefaultLimit and friends bound the ?limit query parameter
	// per endpoint. Requests outside [1, max] are rejected with a 400.
	ArbitrageDefaultLimit int `toml:"arbitrage_default_limit"`
	ArbitrageMaxLimit     int `toml:"arbitrage_max_limit"`
	PricesDefaultLimit    int `toml:"prices_default_limit"`
	PricesMaxLimit        int `toml:"prices_max_limit"`
}

// CacheConfig selects the cache backend and its freshness windows.
type CacheConfig struct {
	// Backend is "memory" (default, single process) or "redis" (shared).
	Backend  string   `toml:"backend"`
	PriceTTL duration `toml:"price_ttl"`
	ScanTTL  duration `toml:"scan_ttl"`
}

// RedisConfig holds Redis connection parameters. Only consulted when
// cache.backend is "redis".
type RedisConfig struct {
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	PoolSize   int    `toml:"pool_size"`
	MaxRetries int    `toml:"max_retries"`
	TLSEnabled bool   `toml:"tls_enabled"`
}

// ExchangeConfig holds parameters for the shared outbound HTTP client.
type ExchangeConfig struct {
	Timeout         duration `toml:"timeout"`
	MaxIdleConns    int      `toml:"max_idle_conns"`
	IdleConnTimeout duration `toml:"idle_conn_timeout"`
}

// ArbitrageConfig holds calculator thresholds. Percent fields are whole
// percents (0.05 means 0.05%); fee fields are fractions (0.002 means 0.2%).
type ArbitrageConfig struct {
	TheoreticalFloorPercent float64 `toml:"theoretical_floor_percent"`
	MinProfitPercent        float64 `toml:"min_profit_percent"`
	DefaultTakerFee         float64 `toml:"default_taker_fee"`
}

// MonitorConfig holds parameters for monitor mode, which runs periodic
// scans and pushes alerts instead of serving HTTP.
type MonitorConfig struct {
	Interval duration `toml:"interval"`

	// PairLimit bounds how many pairs each periodic scan covers.
	PairLimit int `toml:"pair_limit"`

	// MinAlertProfitPercent filters which opportunities produce alerts.
	MinAlertProfitPercent float64 `toml:"min_alert_profit_percent"`

	// AlertCooldown suppresses repeat alerts for the same pair within the
	// window, so a persistent spread does not alert on every tick. Zero
	// disables the suppression.
	AlertCooldown duration `toml:"alert_cooldown"`
}

// NotifyConfig holds notification channel credentials.
type NotifyConfig struct {
	TelegramToken     string   `toml:"telegram_token"`
	TelegramChatID    string   `toml:"telegram_chat_id"`
	DiscordWebhookURL string   `toml:"discord_webhook_url"`
	Events            []string `toml:"events"`
}

// duration is a wrapper around time.Duration that supports TOML string
// decoding (e.g. "5m", "30s").
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults returns a Config populated with reasonable default values.
// These match the values in config.example.toml.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:                  3000,
			CORSOrigins:           []string{"http://localhost:3000", "http://localhost:5173"},
			RateLimit:             0,
			RateWindow:            duration{time.Minute},
			ArbitrageDefaultLimit: 500,
			ArbitrageMaxLimit:     1000,
			PricesDefaultLimit:    200,
			PricesMaxLimit:        500,
		},
		Cache: CacheConfig{
			Backend:  "memory",
			PriceTTL: duration{2 * time.Second},
			ScanTTL:  duration{2 * time.Second},
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			DB:         0,
			PoolSize:   20,
			MaxRetries: 3,
			TLSEnabled: false,
		},
		Exchange: ExchangeConfig{
			Timeout:         duration{4 * time.Second},
			MaxIdleConns:    200,
			IdleConnTimeout: duration{120 * time.Second},
		},
		Arbitrage: ArbitrageConfig{
			TheoreticalFloorPercent: 0.05,
			MinProfitPercent:        0.01,
			DefaultTakerFee:         0.002,
		},
		Monitor: MonitorConfig{
			Interval:              duration{30 * time.Second},
			PairLimit:             100,
			MinAlertProfitPercent: 0.5,
			AlertCooldown:         duration{10 * time.Minute},
		},
		Notify: NotifyConfig{
			Events: []string{"opportunity", "error"},
		},
		Mode:        "server",
		Environment: "development",
		LogLevel:    "info",
	}
}

// validModes enumerates the accepted values for Config.Mode.
var validModes = map[string]bool{
	"server":  true,
	"monitor": true,
}

// validLogLevels enumerates the accepted values for Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validBackends enumerates the accepted values for CacheConfig.Backend.
var validBackends = map[string]bool{
	"memory": true,
	"redis":  true,
}

// Validate checks Config for obviously invalid or missing values and returns
// a combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	if !validModes[strings.ToLower(c.Mode)] {
		errs = append(errs, fmt.Sprintf("unknown mode %q (valid: server, monitor)", c.Mode))
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}
	if env := strings.ToLower(c.Environment); env != "development" && env != "production" {
		errs = append(errs, fmt.Sprintf("unknown environment %q (valid: development, production)", c.Environment))
	}

	// Server
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server: port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, "server: rate_limit must be >= 0")
	}
	if c.Server.RateLimit > 0 && c.Server.RateWindow.Duration <= 0 {
		errs = append(errs, "server: rate_window must be positive when rate_limit is set")
	}
	if c.Server.ArbitrageDefaultLimit < 1 || c.Server.ArbitrageDefaultLimit > c.Server.ArbitrageMaxLimit {
		errs = append(errs, "server: arbitrage_default_limit must be within [1, arbitrage_max_limit]")
	}
	if c.Server.PricesDefaultLimit < 1 || c.Server.PricesDefaultLimit > c.Server.PricesMaxLimit {
		errs = append(errs, "server: prices_default_limit must be within [1, prices_max_limit]")
	}

	// Cache
	if !validBackends[strings.ToLower(c.Cache.Backend)] {
		errs = append(errs, fmt.Sprintf("cache: unknown backend %q (valid: memory, redis)", c.Cache.Backend))
	}
	if c.Cache.PriceTTL.Duration <= 0 {
		errs = append(errs, "cache: price_ttl must be positive")
	}
	if c.Cache.ScanTTL.Duration <= 0 {
		errs = append(errs, "cache: scan_ttl must be positive")
	}

	// Redis, only when the redis backend is selected.
	if strings.ToLower(c.Cache.Backend) == "redis" {
		if c.Redis.Addr == "" {
			errs = append(errs, "redis: addr must not be empty")
		}
		if c.Redis.PoolSize < 1 {
			errs = append(errs, "redis: pool_size must be >= 1")
		}
	}

	// Exchange
	if c.Exchange.Timeout.Duration <= 0 {
		errs = append(errs, "exchange: timeout must be positive")
	}

	// Arbitrage
	if c.Arbitrage.TheoreticalFloorPercent < 0 {
		errs = append(errs, "arbitrage: theoretical_floor_percent must be >= 0")
	}
	if c.Arbitrage.MinProfitPercent < 0 {
		errs = append(errs, "arbitrage: min_profit_percent must be >= 0")
	}
	if c.Arbitrage.DefaultTakerFee < 0 || c.Arbitrage.DefaultTakerFee >= 1 {
		errs = append(errs, "arbitrage: default_taker_fee must be a fraction in [0, 1)")
	}

	// Monitor
	if c.Mode == "monitor" {
		if c.Monitor.Interval.Duration <= 0 {
			errs = append(errs, "monitor: interval must be positive")
		}
		if c.Monitor.PairLimit < 1 {
			errs = append(errs, "monitor: pair_limit must be >= 1")
		}
		if c.Monitor.AlertCooldown.Duration < 0 {
			errs = append(errs, "monitor: alert_cooldown must be >= 0")
		}
	}

	// Pairs
	for _, p := range c.Pairs {
		if !strings.Contains(p, "/") {
			errs = append(errs, fmt.Sprintf("pairs: %q is not in BASE/QUOTE form", p))
		}
	}

	// Notify, one channel needs both halves of its credentials.
	tt := c.Notify.TelegramToken != ""
	tc := c.Notify.TelegramChatID != ""
	if tt != tc {
		errs = append(errs, "notify: telegram_token and telegram_chat_id must be set together")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Production reports whether the server runs with production error
// sanitization enabled.
func (c *Config) Production() bool {
	return strings.ToLower(c.Environment) == "production"
}
