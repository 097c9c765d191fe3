package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	// Also read from the unprefixed SECRET_KEY and DATABASE_FILE
	SecretKey    string `mapstructure:"secret_key"`
	DatabaseFile string `mapstructure:"database_file"`

	// HTTP server
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// Proxies whose X-Forwarded-For header is believed, as IPs or CIDRs.
	// Empty means the peer address is always the client.
	TrustedProxies []string `mapstructure:"trusted_proxies"`

	// Session cookie
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
	CookieSecure bool          `mapstructure:"cookie_secure"`

	// Login throttling per client IP, 0 disables it
	LoginRateLimit float64 `mapstructure:"login_rate_limit"`
	LoginBurst     int     `mapstructure:"login_burst"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	MetricsEnabled bool `mapstructure:"metrics_enabled"`
	DevMode        bool `mapstructure:"dev_mode"`

	ConfigPath string `mapstructure:"-"`
}

const (
	DefaultConfigPath     = "watchlist.yml"
	DefaultSecretKey      = "dev"
	DefaultDatabaseFile   = "data.db"
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 5000
	DefaultSessionTTL     = 24 * time.Hour
	DefaultLoginRateLimit = 1.0
	DefaultLoginBurst     = 5
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"

	envPrefix = "WATCHLIST"
)

// Load reads configuration from an optional .env file, an optional YAML
// file and the environment, in increasing order of precedence.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	// The unprefixed names are kept for compatibility with existing deployments
	_ = v.BindEnv("secret_key", "SECRET_KEY", envPrefix+"_SECRET_KEY")
	_ = v.BindEnv("database_file", "DATABASE_FILE", envPrefix+"_DATABASE_FILE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)
		if explicit || !missing {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("secret_key", DefaultSecretKey)
	v.SetDefault("database_file", DefaultDatabaseFile)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("trusted_proxies", []string{})
	v.SetDefault("session_ttl", DefaultSessionTTL)
	v.SetDefault("cookie_secure", false)
	v.SetDefault("login_rate_limit", DefaultLoginRateLimit)
	v.SetDefault("login_burst", DefaultLoginBurst)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("metrics_enabled", false)
	v.SetDefault("dev_mode", false)
}

func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("secret_key is required")
	}

	if c.DatabaseFile == "" {
		return fmt.Errorf("database_file is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("invalid trusted_proxies entry %q", proxy)
			}
		}
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}

	if c.LoginRateLimit < 0 {
		return fmt.Errorf("login_rate_limit must not be negative")
	}
	if c.LoginRateLimit > 0 && c.LoginBurst < 1 {
		return fmt.Errorf("login_burst must be at least 1 when login_rate_limit is set")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be 'text' or 'json'")
	}

	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) IsDevMode() bool {
	return c.DevMode
}
