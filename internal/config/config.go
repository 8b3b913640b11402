// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Study    StudyConfig    `mapstructure:"study"`
	Backups  BackupsConfig  `mapstructure:"backups"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"required"`
	Database        string            `mapstructure:"database" validate:"required"`
	Username        string            `mapstructure:"username" validate:"required"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type StudyConfig struct {
	// DailyTarget is the fixed number of new sentences presented per day.
	DailyTarget int `mapstructure:"daily_target" validate:"min=1,max=50"`
	// Timezone is the IANA timezone that defines the calendar day for
	// selection and review scheduling. Empty means the system local zone.
	Timezone string `mapstructure:"timezone" validate:"omitempty,timezone"`
	// ShowBackFirst displays the translation side first during study.
	ShowBackFirst bool `mapstructure:"show_back_first"`
}

type BackupsConfig struct {
	Directory string `mapstructure:"directory"`
}

// Location resolves the configured study timezone.
func (c StudyConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("time.LoadLocation(%s) > %w", c.Timezone, err)
	}
	return loc, nil
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/daily3")
	}

	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "daily3")
	v.SetDefault("database.username", "daily3")
	v.SetDefault("study.daily_target", 3)
	v.SetDefault("backups.directory", "backups")

	// The database password never lives in the config file.
	if err := v.BindEnv("database.password", "DAILY3_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DAILY3_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
