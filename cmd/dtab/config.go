// Config loading for the dtab CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = ".dtab"
	configFileType = "yaml"

	// Config keys.
	cfgKeyPretty = "pretty"
	cfgKeyIndent = "indent"
)

// cfg holds the loaded configuration for all subcommands.
var cfg = viper.New()

// loadConfig reads the config file into cfg. An explicit --config path must
// exist; the default .dtab.yaml is optional and a missing one is not an
// error.
func loadConfig(explicitPath string) error {
	cfg = viper.New()
	cfg.SetDefault(cfgKeyPretty, true)
	cfg.SetDefault(cfgKeyIndent, "  ")

	if explicitPath != "" {
		cfg.SetConfigFile(explicitPath)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}

	cfg.SetConfigName(configFileName)
	cfg.SetConfigType(configFileType)
	cfg.AddConfigPath(".")
	if err := cfg.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
