// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/propwise/propwise/pkg/constants"
	"github.com/propwise/propwise/pkg/property"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for propwise.
type Configuration struct {
	Properties []property.Input
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
	Server     ServerConfig  `yaml:"server,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds HTTP API configuration options
type ServerConfig struct {
	Address     string `yaml:"address,omitempty"`
	MaxBodySize string `yaml:"maxBodySize,omitempty"` // e.g. "256K", "1M"
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input violations are not duplicated here; the
// analyzer rejects those per property at analysis time.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Properties) == 0 {
		warnings = append(warnings, "no properties configured; nothing to analyze")
	}

	for i, in := range c.Properties {
		label := in.Name
		if label == "" {
			label = fmt.Sprintf("property %d", i+1)
			warnings = append(warnings, fmt.Sprintf("Property %d has no name", i+1))
		}
		if in.DownPayment == 0 && in.MonthlyMaintenance == 0 {
			warnings = append(warnings, fmt.Sprintf("Property '%s' has no down payment and no maintenance; ROI will be undefined", label))
		}
		if in.VacancyRate > 0.20 {
			warnings = append(warnings, fmt.Sprintf("Property '%s' has an unusually high vacancy rate (%.0f%%)",
				label, in.VacancyRate*constants.PercentageMultiplier))
		}
		if in.TargetResalePrice > 0 && in.TargetResalePrice < in.PurchasePrice {
			warnings = append(warnings, fmt.Sprintf("Property '%s' has a target resale price below its purchase price", label))
		}
	}

	return warnings
}
