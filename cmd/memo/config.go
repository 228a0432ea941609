package main

import (
	"strings"

	"github.com/on-the-ground/memo_ive_go/shared/configkeys"
	"github.com/on-the-ground/memo_ive_go/shared/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Config struct {
	Cache CacheConfig `mapstructure:"cache"`
	Log   LogConfig   `mapstructure:"log"`
}

type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

type LogConfig struct {
	Level logger.LogLevel `mapstructure:"level"`
}

// loadConfig resolves the configuration of a single command run.
// Precedence: flags set on the command line, MEMO_* environment variables,
// the yaml config file, then defaults.
func loadConfig(cmd *cobra.Command, cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault(configkeys.CacheCapacity, defaultCapacity)
	v.SetDefault(configkeys.LogLevel, string(defaultLogLevel))

	v.SetEnvPrefix(configkeys.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	flags := map[string]string{
		configkeys.CacheCapacity: capacityF,
		configkeys.LogLevel:      logLevelF,
	}
	for key, name := range flags {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
