package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var (
	EnvVarPrefix string = "JAXR"
)

type LoggingConfiguration struct {
	Debug bool        `json:"debug,omitempty" mapstructure:"debug" yaml:"debug,omitempty"`
	Log   LogFileSpec `json:"log,omitempty" mapstructure:"log" yaml:"log,omitempty"`
}

type LogFileSpec struct {
	Dir        string `json:"dir,omitempty" mapstructure:"dir" yaml:"dir,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty" mapstructure:"max_size_mb" yaml:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty" mapstructure:"max_backups" yaml:"max_backups,omitempty"`
	MaxAgeDays int    `json:"max_age_days,omitempty" mapstructure:"max_age_days" yaml:"max_age_days,omitempty"`
}

func LoadDefaultConfiguration() *LoggingConfiguration {
	return &LoggingConfiguration{
		Log: LogFileSpec{
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 60,
		},
	}
}

// LoadLoggingConfiguration reads configPath when it is set, then applies
// JAXR_ prefixed environment variables (JAXR_DEBUG, JAXR_LOG_DIR, ...).
func LoadLoggingConfiguration(v *viper.Viper, configPath string) (*LoggingConfiguration, error) {
	defaults := LoadDefaultConfiguration()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log.dir", defaults.Log.Dir)
	v.SetDefault("log.max_size_mb", defaults.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", defaults.Log.MaxBackups)
	v.SetDefault("log.max_age_days", defaults.Log.MaxAgeDays)

	v.SetEnvPrefix(EnvVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config %s: %w", configPath, err)
		}
	}

	var config LoggingConfiguration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Log.MaxSizeMB < 0 || config.Log.MaxBackups < 0 || config.Log.MaxAgeDays < 0 {
		return nil, fmt.Errorf("invalid log rotation settings: size %d, backups %d, age %d",
			config.Log.MaxSizeMB, config.Log.MaxBackups, config.Log.MaxAgeDays)
	}

	return &config, nil
}
