package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API          *APIConfig          `mapstructure:"api"`
	Gin          *GinConfig          `mapstructure:"gin"`
	Postgres     *PostgresConfig     `mapstructure:"postgres"`
	Notification *NotificationConfig `mapstructure:"notification"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type NotificationConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func Load(configPath string) (*AppConfig, error) {
	conf := &AppConfig{}

	viper.SetConfigFile(configPath)

	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))

		if err := viper.Unmarshal(conf); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
		}
	})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	loadEnvOverrides(conf)

	return conf, nil
}

// Environment variables beat file values so deploys can override a baked-in
// config.yml without editing it.
func loadEnvOverrides(conf *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		conf.API.Port = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		conf.API.Environment = v
	}
	if v := os.Getenv("JWT_SIGNING_KEY"); v != "" {
		conf.API.JWTSigningKey = v
	}
	if v := os.Getenv("ALLOWED_CORS_DOMAINS"); v != "" {
		conf.API.AllowedCORSDomains = strings.Split(v, ",")
	}
	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		conf.Postgres.Host = v
	}
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		conf.Postgres.Port = v
	}
	if v := os.Getenv("POSTGRES_USER"); v != "" {
		conf.Postgres.User = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		conf.Postgres.Password = v
	}
	if v := os.Getenv("POSTGRES_DB"); v != "" {
		conf.Postgres.DB = v
	}
	if v := os.Getenv("PUSH_GATEWAY_ENDPOINT"); v != "" {
		conf.Notification.Endpoint = v
	}
}
