// Package config loads benchmark-run configuration from an optional file,
// .env and SEQBENCH_* environment variables. The scenario matrix itself is
// fixed at build time; configuration only covers the run's surroundings.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes viper. Call once before reading any settings.
func Load(cfgFile string) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".seqbench")
	}

	viper.SetEnvPrefix("SEQBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("output", "graph.html")
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")

	// defaults and env cover everything when no config file exists
	_ = viper.ReadInConfig()
}
