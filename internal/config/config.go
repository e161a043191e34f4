/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads errtype CLI configuration from an optional
// .errtype.yaml file, environment variables, and flag overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the generator settings the CLI runs with.
type Config struct {
	// Package is the fallback package name for inputs that carry no
	// package line of their own.
	Package string `mapstructure:"package"`

	// Header is an optional comment block prepended to each generated
	// file, e.g. a license header.
	Header string `mapstructure:"header"`

	// OutSuffix is appended to the input basename to form the output
	// file name: app.errtype -> app<out_suffix>.
	OutSuffix string `mapstructure:"out_suffix"`

	// Logger controls CLI diagnostics.
	Logger LoggerConfig `mapstructure:"logger"`
}

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from path (optional when empty) and ERRTYPE_*
// environment variables, falling back to defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("errtype")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("out_suffix", "_errtype.go")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
}

// Validate checks the settings for internal consistency.
func (c *Config) Validate() error {
	if !strings.HasSuffix(c.OutSuffix, ".go") {
		return fmt.Errorf("out_suffix %q must end in .go", c.OutSuffix)
	}
	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logger format %q must be json or console", c.Logger.Format)
	}
	return nil
}
