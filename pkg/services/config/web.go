package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type WebConfig struct {
	Addr            string        `mapstructure:"addr"`
	DBPath          string        `mapstructure:"db_path"`
	ProfilesPath    string        `mapstructure:"profiles_path"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func LoadWebConfig(path string) (*WebConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "journal-atlas.db")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg WebConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse web config: %w", err)
	}
	return &cfg, nil
}
