// Package config loads designer settings from file, environment and flags
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"ivaPrime/pkg/primer"
)

// EnvPrefix of environment overrides, IVAPRIME_HR_TM for hr-tm
const EnvPrefix = "IVAPRIME"

type Config struct {
	primer.Settings `mapstructure:",squash"`

	// Circular topology of raw sequence input
	Circular bool `mapstructure:"circular"`
	// CodonTable extra codon usage JSON merged over the embedded tables
	CodonTable string `mapstructure:"codon-table"`
}

// New viper instance carrying the defaults
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func SetDefaults(v *viper.Viper) {
	d := primer.DefaultSettings()
	v.SetDefault("symmetric-primers", d.Symmetric)
	v.SetDefault("hr-min-length", d.HRMinLength)
	v.SetDefault("hr-tm", d.HRTm)
	v.SetDefault("hr-subcloning-tm", d.HRSubcloningTm)
	v.SetDefault("tbr-tm", d.TBRTm)
	v.SetDefault("tbr-min-length", d.TBRMinLength)
	v.SetDefault("max-tm-short-insertion", d.MaxTmShortInsertion)
	v.SetDefault("organism", d.Organism)
	v.SetDefault("scale-codon-frequencies", d.ScaleCodons)
	v.SetDefault("circular", true)
	v.SetDefault("codon-table", "")

	v.SetDefault("tm.algorithm", string(d.Tm.Algorithm))
	v.SetDefault("tm.primer-concentration-nm", d.Tm.PrimerConcentrationNM)
	v.SetDefault("tm.salt-concentration-m", d.Tm.SaltConcentrationM)
	v.SetDefault("tm.salt-correction", string(d.Tm.SaltCorrection))
	v.SetDefault("tm.dmso-percent", d.Tm.DMSOPercent)
	v.SetDefault("tm.symmetry", string(d.Tm.Symmetry))
}

// Load reads path when given, then decodes v
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.HRMinLength < 0 {
		errs = append(errs, fmt.Errorf("hr-min-length %d < 0", c.HRMinLength))
	}
	if c.TBRMinLength < 1 {
		errs = append(errs, fmt.Errorf("tbr-min-length %d < 1", c.TBRMinLength))
	}
	if c.Organism == "" {
		errs = append(errs, errors.New("empty organism"))
	}
	if err := c.Tm.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
