package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Scanner struct {
		Symbols                     []string `yaml:"symbols"`
		ScanIntervalMinutes         int      `yaml:"scan_interval_minutes"`
		NotificationCooldownMinutes int      `yaml:"notification_cooldown_minutes"`
		MinimumBars                 int      `yaml:"minimum_bars"`
		IntradayAggregationHours    int      `yaml:"intraday_aggregation_hours"`
		PacingDelayMs               int      `yaml:"pacing_delay_ms"`
		Timezone                    string   `yaml:"timezone"`
		AutoRefresh                 bool     `yaml:"auto_refresh"`
		NotificationsEnabled        bool     `yaml:"notifications_enabled"`
		RunOnStart                  bool     `yaml:"run_on_start"`
	} `yaml:"scanner"`
	EMA struct {
		Fast   int `yaml:"fast"`
		Slow   int `yaml:"slow"`
		Signal int `yaml:"signal"`
	} `yaml:"ema"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Booleans that default to on are seeded before parsing so an absent key keeps
// them enabled while an explicit false in the file still wins.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Scanner.AutoRefresh = true
	cfg.Scanner.NotificationsEnabled = true
	cfg.Scanner.RunOnStart = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("BARS_API_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SCAN_INTERVAL_MINUTES"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			cfg.Scanner.ScanIntervalMinutes = n
		}
	}

	// Defaults
	if len(cfg.Scanner.Symbols) == 0 {
		cfg.Scanner.Symbols = append([]string(nil), DefaultUniverse...)
	}
	if cfg.Scanner.ScanIntervalMinutes == 0 {
		cfg.Scanner.ScanIntervalMinutes = 15
	}
	if cfg.Scanner.NotificationCooldownMinutes == 0 {
		cfg.Scanner.NotificationCooldownMinutes = 45
	}
	if cfg.Scanner.MinimumBars == 0 {
		cfg.Scanner.MinimumBars = 30
	}
	if cfg.Scanner.IntradayAggregationHours == 0 {
		cfg.Scanner.IntradayAggregationHours = 4
	}
	if cfg.Scanner.PacingDelayMs == 0 {
		cfg.Scanner.PacingDelayMs = 50
	}
	if cfg.Scanner.Timezone == "" {
		cfg.Scanner.Timezone = "Asia/Kolkata"
	}
	if cfg.EMA.Fast == 0 {
		cfg.EMA.Fast = 12
	}
	if cfg.EMA.Slow == 0 {
		cfg.EMA.Slow = 26
	}
	if cfg.EMA.Signal == 0 {
		cfg.EMA.Signal = 9
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent. Missing Telegram
// credentials are not an error; they only disable notifications.
func (c *Config) Validate() error {
	if len(c.Scanner.Symbols) == 0 {
		return fmt.Errorf("scanner.symbols must not be empty")
	}
	if c.Scanner.ScanIntervalMinutes <= 0 {
		return fmt.Errorf("scanner.scan_interval_minutes must be positive")
	}
	if c.Scanner.NotificationCooldownMinutes <= 0 {
		return fmt.Errorf("scanner.notification_cooldown_minutes must be positive")
	}
	if c.Scanner.MinimumBars <= 0 {
		return fmt.Errorf("scanner.minimum_bars must be positive")
	}
	if c.Scanner.IntradayAggregationHours <= 0 {
		return fmt.Errorf("scanner.intraday_aggregation_hours must be positive")
	}
	if c.Scanner.PacingDelayMs < 0 {
		return fmt.Errorf("scanner.pacing_delay_ms must not be negative")
	}
	if c.EMA.Fast <= 0 || c.EMA.Slow <= 0 || c.EMA.Signal <= 0 {
		return fmt.Errorf("ema periods must be positive")
	}
	if c.EMA.Fast >= c.EMA.Slow {
		return fmt.Errorf("ema.fast must be less than ema.slow")
	}
	if _, err := time.LoadLocation(c.Scanner.Timezone); err != nil {
		return fmt.Errorf("scanner.timezone: %w", err)
	}
	return nil
}

// TelegramEnabled reports whether both Telegram credentials are present.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Scanner.ScanIntervalMinutes) * time.Minute
}

func (c *Config) NotifyCooldown() time.Duration {
	return time.Duration(c.Scanner.NotificationCooldownMinutes) * time.Minute
}

func (c *Config) PacingDelay() time.Duration {
	return time.Duration(c.Scanner.PacingDelayMs) * time.Millisecond
}

func (c *Config) IntradayBucket() time.Duration {
	return time.Duration(c.Scanner.IntradayAggregationHours) * time.Hour
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Scanner.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
