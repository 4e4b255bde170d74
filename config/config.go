package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration for both tiers.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Gateway     GatewayConfig
	Logger      LoggerConfig
	Postgres    PostgresConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

// GatewayConfig configures the validating relay tier.
type GatewayConfig struct {
	Port int
	// ServerURL is the base URL of the API server the gateway forwards to.
	ServerURL string
	// RateLimitPerMin caps requests per minute; 0 disables the limiter.
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig holds the database connection settings.
// An empty DSN switches the server to the in-memory stores.
type PostgresConfig struct {
	DSN string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/shareit/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/shareit/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")

	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")

	cfg.Gateway.Port = viper.GetInt("gateway.port")
	cfg.Gateway.ServerURL = viper.GetString("gateway.server_url")
	cfg.Gateway.RateLimitPerMin = viper.GetInt("gateway.rate_limit_per_min")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 9090)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("gateway.port", 8080)
	viper.SetDefault("gateway.server_url", "http://localhost:9090")
	viper.SetDefault("gateway.rate_limit_per_min", 0)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
}
