// File: internal/config/config.go
package config

import (
	"os"

	"github.com/spf13/viper"

	"console.module/internal/constants"
)

// Config defines the structure of the configuration file.
type Config struct {
	Theme         string   `mapstructure:"theme"`
	LogFile       string   `mapstructure:"logfile"`
	LogFormat     string   `mapstructure:"logformat"`
	DefaultPanels []string `mapstructure:"default_panels"`
	ConfirmQuit   bool     `mapstructure:"confirm_quit"`
}

// Cfg is a global variable that holds the loaded configuration.
var Cfg Config

// LoadConfig loads the configuration from a file and environment variables.
func LoadConfig() error {
	viper.SetDefault("theme", constants.DefaultTheme)
	viper.SetDefault("logfile", constants.DefaultLogFile)
	viper.SetDefault("logformat", constants.DefaultLogFormat)
	viper.SetDefault("default_panels", []string{})
	viper.SetDefault("confirm_quit", true)
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("CONSOLE")
	viper.AutomaticEnv()
	_ = viper.BindEnv("logfile", "CONSOLE_LOG_FILE")
	_ = viper.BindEnv("theme", "CONSOLE_THEME")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	if err := viper.Unmarshal(&Cfg); err != nil {
		return err
	}
	return ValidateConfig(&Cfg)
}

// SaveConfig saves the current configuration to a file.
func SaveConfig() error {
	if err := ValidateConfig(&Cfg); err != nil {
		return err
	}
	viper.Set("theme", Cfg.Theme)
	viper.Set("logfile", Cfg.LogFile)
	viper.Set("logformat", Cfg.LogFormat)
	viper.Set("default_panels", Cfg.DefaultPanels)
	viper.Set("confirm_quit", Cfg.ConfirmQuit)
	if err := os.MkdirAll(".", 0755); err != nil {
		return err
	}
	return viper.WriteConfigAs("config.json")
}
