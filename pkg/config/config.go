// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/slicefeed/pkg/slice"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultTR is the transfer window for one volume
	DefaultTR = 2 * time.Second
	// DefaultSlices is the expected number of slices per volume
	DefaultSlices = 40
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes, starting from the defaults
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config holds the pacing and selection settings for a copy run
type Config struct {
	TR      time.Duration // Transfer window per volume
	Slices  int           // Expected slices per volume
	Include string        // Optional glob a name must match to be copied
	Ignore  []string      // Globs for names to skip
}

// 🏭 Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		TR:     DefaultTR,
		Slices: DefaultSlices,
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Slices <= 0 {
		return errors.Errorf("slices must be positive, got %d", cfg.Slices)
	}
	if cfg.TR < 0 {
		return errors.Errorf("tr must not be negative, got %s", cfg.TR)
	}
	if err := cfg.Filter().Validate(); err != nil {
		return errors.Errorf("validating filter: %w", err)
	}
	return nil
}

// ⏱️ Interval returns the pause between two copied slices
func (cfg *Config) Interval() time.Duration {
	if cfg.Slices <= 0 {
		return 0
	}
	return cfg.TR / time.Duration(cfg.Slices)
}

// 🧹 Filter returns the name filter described by the configuration
func (cfg *Config) Filter() slice.Filter {
	return slice.Filter{
		Include: cfg.Include,
		Ignore:  cfg.Ignore,
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("tr=%s slices=%d interval=%s", cfg.TR, cfg.Slices, cfg.Interval())
}

// 📦 fileSchema is the on-disk shape shared by every format.
// Absent fields keep their default values.
type fileSchema struct {
	TR      *string  `json:"tr,omitempty" yaml:"tr,omitempty" hcl:"tr,optional"`
	Slices  *int     `json:"slices,omitempty" yaml:"slices,omitempty" hcl:"slices,optional"`
	Include *string  `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Ignore  []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
}

// toConfig overlays the file values on the defaults
func (s *fileSchema) toConfig() (*Config, error) {
	cfg := Default()
	if s.TR != nil {
		tr, err := time.ParseDuration(*s.TR)
		if err != nil {
			return nil, errors.Errorf("parsing tr %q: %w", *s.TR, err)
		}
		cfg.TR = tr
	}
	if s.Slices != nil {
		cfg.Slices = *s.Slices
	}
	if s.Include != nil {
		cfg.Include = *s.Include
	}
	if len(s.Ignore) > 0 {
		cfg.Ignore = s.Ignore
	}
	return cfg, nil
}
