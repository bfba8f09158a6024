package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Auth     AuthConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Env     string
	Debug   bool
	LogPath string
	BaseURL string
}

func (a AppConfig) Production() bool {
	return a.Env == "production"
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type SMTPConfig struct {
	Host     string
	User     string
	Password string
	From     string
	FromName string
}

// Enabled reports whether SMTP is configured. When it is not, verification
// emails are logged instead of sent.
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

type AuthConfig struct {
	SessionTTL      time.Duration
	VerificationTTL time.Duration
	CookieName      string
}

type RedisConfig struct {
	Addr      string
	Password  string
	PerMinute int
}

// Enabled reports whether the rate limiter backend is configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "webuild-dashboard")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BASE_URL", "http://localhost:5000")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("VERIFICATION_TTL_HOURS", 24)
	viper.SetDefault("SESSION_COOKIE", "webuild_session")
	viper.SetDefault("EMAIL_FROM_NAME", "WE-BUILD")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine as long as the environment is set. With an
		// explicit config file viper surfaces the raw *fs.PathError rather
		// than ConfigFileNotFoundError, so check both.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Env:     viper.GetString("APP_ENV"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			BaseURL: viper.GetString("BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
			FromName: viper.GetString("EMAIL_FROM_NAME"),
		},
		Auth: AuthConfig{
			SessionTTL:      time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
			VerificationTTL: time.Duration(viper.GetInt("VERIFICATION_TTL_HOURS")) * time.Hour,
			CookieName:      viper.GetString("SESSION_COOKIE"),
		},
		Redis: RedisConfig{
			Addr:      viper.GetString("REDIS_ADDR"),
			Password:  viper.GetString("REDIS_PASS"),
			PerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
	}

	return config, nil
}
