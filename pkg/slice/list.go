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

package slice

import (
	"context"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📂 List returns the names of every entry in dir, in the order the OS reports them.
// No filtering by entry type is done.
func List(ctx context.Context, dir string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	logger.Debug().Str("dir", dir).Int("entries", len(names)).Msg("listed input directory")
	return names, nil
}

// 🧹 Filter selects names by glob. The zero value keeps everything.
type Filter struct {
	// Include, when set, keeps only names matching the pattern (e.g. "*.dcm")
	Include string
	// Ignore drops names matching any of the patterns
	Ignore []string
}

// Validate checks that every pattern is well formed
func (f Filter) Validate() error {
	if f.Include != "" && !doublestar.ValidatePattern(f.Include) {
		return errors.Errorf("invalid include pattern %q", f.Include)
	}
	for _, p := range f.Ignore {
		if !doublestar.ValidatePattern(p) {
			return errors.Errorf("invalid ignore pattern %q", p)
		}
	}
	return nil
}

// IsZero reports whether the filter keeps every name
func (f Filter) IsZero() bool {
	return f.Include == "" && len(f.Ignore) == 0
}

// 🔍 Apply returns the names kept by the filter, preserving order
func (f Filter) Apply(ctx context.Context, names []string) []string {
	if f.IsZero() {
		return names
	}

	kept := make([]string, 0, len(names))
	for _, name := range names {
		if f.skip(ctx, name) {
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

func (f Filter) skip(ctx context.Context, name string) bool {
	logger := zerolog.Ctx(ctx)

	if f.Include != "" {
		matched, err := doublestar.Match(f.Include, name)
		if err != nil || !matched {
			logger.Debug().Str("file", name).Str("pattern", f.Include).Msg("file not included by pattern")
			return true
		}
	}

	for _, pattern := range f.Ignore {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("file", name).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", name).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}

	return false
}
