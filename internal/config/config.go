/*
 * config.go, part of gospg
 *
 *
 * Copyright 2024 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation; either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License along
 *  with this program; if not, write to the Free Software Foundation, Inc.,
 *  51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 *
 *
 */

//Package config loads the gospg settings from a YAML file, GOSPG_*
//environment variables and command line flags, in increasing priority.
package config

import (
	"fmt"
	"math"
	"strings"

	spg "github.com/rmera/gospg"
	"github.com/rmera/gospg/logging"
	"github.com/spf13/viper"
)

const envPrefix = "GOSPG"

//Config holds every setting of the command line tool.
type Config struct {
	Symmetry SymmetryConfig    `mapstructure:"symmetry"`
	Log      logging.LogConfig `mapstructure:"log"`
	Batch    BatchConfig       `mapstructure:"batch"`
	Metrics  MetricsConfig     `mapstructure:"metrics"`
}

//SymmetryConfig are the options of the space group search.
type SymmetryConfig struct {
	Precision          float64 `mapstructure:"precision"`
	PartialOccupancies bool    `mapstructure:"partial_occupancies"`
	OverlappingTypes   bool    `mapstructure:"overlapping_types"`
}

type BatchConfig struct {
	//Workers is the number of structures processed at the same time.
	Workers int `mapstructure:"workers"`
}

type MetricsConfig struct {
	//Addr is where /metrics is served. Empty disables it.
	Addr string `mapstructure:"addr"`
}

//defaults, by key
var defaults = map[string]interface{}{
	"symmetry.precision":           spg.DefaultPrecision,
	"symmetry.partial_occupancies": false,
	"symmetry.overlapping_types":   false,
	"log.level":                    "info",
	"log.format":                   "console",
	"batch.workers":                spg.DefaultWorkers,
	"metrics.addr":                 "",
}

//New returns a viper instance with the gospg defaults, the GOSPG_ prefix
//and the "." to "_" key replacement, so symmetry.precision is read from
//GOSPG_SYMMETRY_PRECISION.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	return v
}

//Load reads the YAML file at path, if path is not empty, and returns the
//validated configuration.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %q: %w", path, err)
		}
	}
	return FromViper(v)
}

//FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

//Validate checks the ranges of the settings.
func (c *Config) Validate() error {
	p := c.Symmetry.Precision
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return fmt.Errorf("symmetry.precision must be a positive number, got %v", p)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}
