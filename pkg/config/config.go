// Package config resolves licet's configuration: baked-in defaults, an
// optional config file, and LICET_* environment overrides, in that order.
// Command flags override at the CLI layer; the render core never reads
// ambient configuration — resolved values are passed in explicitly.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for licet
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Filter FilterConfig `mapstructure:"filter"`
	Policy PolicyConfig `mapstructure:"policy"`
}

// OutputConfig holds report destination and format options
type OutputConfig struct {
	Dir         string   `mapstructure:"dir"`
	FileName    string   `mapstructure:"file_name"`
	Formats     []string `mapstructure:"formats"`
	AllLicenses bool     `mapstructure:"all_licenses"`
	Title       string   `mapstructure:"title"`
}

// FilterConfig holds pre-render adjustment options
type FilterConfig struct {
	Exclude   []string `mapstructure:"exclude"`
	Normalize bool     `mapstructure:"normalize"`
}

// PolicyConfig holds compliance gate options
type PolicyConfig struct {
	Path   string `mapstructure:"path"`
	FailOn string `mapstructure:"fail_on"`
}

var defaultConfig = Config{
	Output: OutputConfig{
		Dir:      "reports/licenses",
		FileName: "index.json",
		Formats:  []string{"json"},
		Title:    "License Report",
	},
	Filter: FilterConfig{
		Normalize: false,
	},
	Policy: PolicyConfig{
		FailOn: "high",
	},
}

// DefaultConfig returns a copy of the baked-in defaults.
func DefaultConfig() *Config {
	c := defaultConfig
	return &c
}

// LoadConfig loads configuration from defaults, an optional licet.yaml in
// the search path, and LICET_* environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("output.dir", defaultConfig.Output.Dir)
	v.SetDefault("output.file_name", defaultConfig.Output.FileName)
	v.SetDefault("output.formats", defaultConfig.Output.Formats)
	v.SetDefault("output.all_licenses", defaultConfig.Output.AllLicenses)
	v.SetDefault("output.title", defaultConfig.Output.Title)
	v.SetDefault("filter.exclude", defaultConfig.Filter.Exclude)
	v.SetDefault("filter.normalize", defaultConfig.Filter.Normalize)
	v.SetDefault("policy.path", defaultConfig.Policy.Path)
	v.SetDefault("policy.fail_on", defaultConfig.Policy.FailOn)

	v.SetConfigName("licet")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("LICET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; defaults apply when none is found
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	return &config, nil
}

// LoadProjectConfig loads global config, then merges the first readable
// project-level config file on top of it.
func LoadProjectConfig() (*Config, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	projectConfigs := []string{
		".licet.yaml",
		".licet.yml",
		"licet.yaml",
		"licet.yml",
	}

	for _, configFile := range projectConfigs {
		if _, err := os.Stat(configFile); err == nil {
			v := viper.New()
			v.SetConfigFile(configFile)

			if err := v.ReadInConfig(); err != nil {
				continue // Try next config file
			}

			if err := v.Unmarshal(config); err != nil {
				continue
			}
			break
		}
	}

	return config, nil
}
