// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// AssemblyConfig is settings for greedy read assembly
type AssemblyConfig struct {
	// the number of goroutines scanning merge candidates,
	// anything below one means GOMAXPROCS
	Workers int `mapstructure:"workers"`
}

// OutputConfig is settings for FASTA serialization
type OutputConfig struct {
	// symbols per sequence line
	LineLength int `mapstructure:"line-length"`

	// symbols per space separated group within a line
	WordLength int `mapstructure:"word-length"`
}

// RandomConfig is settings for random sequence generation
type RandomConfig struct {
	// the alphabet random sequences are drawn from
	Alphabet string `mapstructure:"alphabet"`
}

// Config is the root-level settings struct and is a mix of settings
// available in an optional settings file and those available from the
// command line
type Config struct {
	// assembly settings
	Assembly AssemblyConfig

	// FASTA output settings
	Output OutputConfig

	// random generation settings
	Random RandomConfig
}

// New returns a new Config struct populated by Viper settings (either
// from an optional settings file) and/or command line arguments
func New() *Config {
	setDefaults()

	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}

func setDefaults() {
	viper.SetDefault("assembly.workers", 0)
	viper.SetDefault("output.line-length", 50)
	viper.SetDefault("output.word-length", 10)
	viper.SetDefault("random.alphabet", "acgt")
}
