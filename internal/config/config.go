package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the session-core configuration
type Config struct {
	Authority AuthorityConfig
	Session   SessionConfig
	Redis     RedisConfig
	Log       LogConfig
}

// AuthorityConfig describes how to reach the remote session authority.
// The transport itself is supplied by the host; these values are handed
// to whatever authority client implementation is wired in.
type AuthorityConfig struct {
	Hosts   string
	APIKey  string
	Timeout time.Duration
}

type SessionConfig struct {
	// AntiCSRFEnabled controls whether anti-CSRF tokens are embedded in
	// access tokens for this deployment. When false, anti-CSRF checks
	// are skipped even if the caller requests them.
	AntiCSRFEnabled bool

	// AccessTokenBlacklisting forces every verification through the
	// session authority so revoked access tokens are caught before
	// their natural expiry. Disables the local fast path.
	AccessTokenBlacklisting bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("AUTHORITY_HOSTS", "http://localhost:3567")
	viper.SetDefault("AUTHORITY_TIMEOUT", 10)
	viper.SetDefault("SESSION_ANTI_CSRF_ENABLED", true)
	viper.SetDefault("SESSION_ACCESS_TOKEN_BLACKLISTING", false)
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Authority: AuthorityConfig{
			Hosts:   viper.GetString("AUTHORITY_HOSTS"),
			APIKey:  os.Getenv("AUTHORITY_API_KEY"),
			Timeout: time.Duration(viper.GetInt("AUTHORITY_TIMEOUT")) * time.Second,
		},
		Session: SessionConfig{
			AntiCSRFEnabled:         viper.GetBool("SESSION_ANTI_CSRF_ENABLED"),
			AccessTokenBlacklisting: viper.GetBool("SESSION_ACCESS_TOKEN_BLACKLISTING"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Basic validation
	if cfg.Authority.Hosts == "" {
		log.Println("WARNING: AUTHORITY_HOSTS is not set; the session authority is unreachable without it")
	}

	return cfg, nil
}
