package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config reúne todo lo configurable del servicio.
// DBDSN vacío => store in-memory (dev). JWTSecret vacío => modo dev
// (auth por header X-Debug-User-ID, sin verifier).
type Config struct {
	Port      string `mapstructure:"PORT"`
	AppName   string `mapstructure:"APP_NAME"`
	DBDSN     string `mapstructure:"DB_DSN"`
	JWTSecret string `mapstructure:"JWT_SECRET"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_NAME", "patient-registry")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	// Bind explícito para que Unmarshal levante las env vars.
	v.BindEnv("PORT")
	v.BindEnv("APP_NAME")
	v.BindEnv("DB_DSN")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("LOG_FORMAT")

	// .env es opcional; si no existe seguimos con env + defaults.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
