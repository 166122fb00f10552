// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// PrimersConfig bounds primer candidate generation
type PrimersConfig struct {
	// the minimum primer length
	MinLength int `mapstructure:"min-length"`

	// the maximum primer length
	MaxLength int `mapstructure:"max-length"`

	// the minimum melting temperature of a primer
	MinTm float64 `mapstructure:"min-tm"`

	// the maximum melting temperature of a primer
	MaxTm float64 `mapstructure:"max-tm"`

	// the minimum GC percentage of a primer
	MinGC float64 `mapstructure:"min-gc"`

	// the maximum GC percentage of a primer
	MaxGC float64 `mapstructure:"max-gc"`

	// the largest melting temperature difference within a primer pair
	MaxTmDiff float64 `mapstructure:"max-tm-diff"`
}

// AlignConfig is the scoring model and input cap for the aligner
type AlignConfig struct {
	Match     int `mapstructure:"match"`
	Mismatch  int `mapstructure:"mismatch"`
	GapOpen   int `mapstructure:"gap-open"`
	GapExtend int `mapstructure:"gap-extend"`

	// the longest sequence the aligner accepts. the DP table is
	// quadratic in input length
	MaxLength int `mapstructure:"max-length"`
}

// ORFConfig is settings for the ORF scan
type ORFConfig struct {
	// the minimum ORF protein length, stop codon excluded
	MinAaLength int `mapstructure:"min-aa"`
}

// Config is the root-level settings struct, a mix of settings available
// in seqmap.yaml and those from the command line
type Config struct {
	// Primers settings
	Primers PrimersConfig `mapstructure:"primers"`

	// Align is the pairwise alignment settings
	Align AlignConfig `mapstructure:"align"`

	// ORF settings
	ORF ORFConfig `mapstructure:"orf"`
}

// setDefaults registers every setting's fallback value with viper
func setDefaults() {
	viper.SetDefault("primers.min-length", 18)
	viper.SetDefault("primers.max-length", 25)
	viper.SetDefault("primers.min-tm", 50.0)
	viper.SetDefault("primers.max-tm", 65.0)
	viper.SetDefault("primers.min-gc", 30.0)
	viper.SetDefault("primers.max-gc", 70.0)
	viper.SetDefault("primers.max-tm-diff", 5.0)

	viper.SetDefault("align.match", 2)
	viper.SetDefault("align.mismatch", -1)
	viper.SetDefault("align.gap-open", -5)
	viper.SetDefault("align.gap-extend", -1)
	viper.SetDefault("align.max-length", 50000)

	viper.SetDefault("orf.min-aa", 30)
}

// New returns a Config populated by Viper settings, from the local
// seqmap.yaml if one exists and defaults otherwise
func New() *Config {
	setDefaults()

	viper.SetConfigName("seqmap")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // no config file is fine, defaults apply

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}
