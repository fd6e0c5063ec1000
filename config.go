package slicer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the optional configuration file looked up in
// the working directory.
const ConfigFile = "slicer.yaml"

// Config holds the parameters of a slicing run. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// ReportingCurrency is the ISO code of the currency into which all
	// foreign sales amounts are converted.
	ReportingCurrency string `yaml:"reporting_currency"`
	// RateDataFile is the name of the file in the working directory that
	// contains the exchange-rate listing. It can be created by copy-pasting
	// the listing under "Earned / Paid on" of iTunes Connect's
	// "Payments & Financial Reports > Payments" page.
	RateDataFile string `yaml:"rate_data_file"`
	// Locale selects the display conventions for dates and amounts.
	Locale string `yaml:"locale"`
}

// DefaultConfig returns the built-in run parameters.
func DefaultConfig() Config {
	return Config{
		ReportingCurrency: "EUR",
		RateDataFile:      "currency_data.txt",
		Locale:            "de-DE",
	}
}

// LoadConfig returns the run parameters for the given working directory:
// the defaults, overridden by a slicer.yaml file if one is present.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()

	content, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", ConfigFile, err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", ConfigFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is complete and consistent.
func (c Config) Validate() error {
	if c.ReportingCurrency == "" {
		return errors.New("reporting currency must not be empty")
	}
	if c.RateDataFile == "" {
		return errors.New("rate data file must not be empty")
	}
	_, err := LookupLocale(c.Locale)
	return err
}

// locale returns the display conventions selected by the configuration.
func (c Config) locale() (Locale, error) {
	return LookupLocale(c.Locale)
}
