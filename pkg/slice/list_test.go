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
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

func TestList(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	for _, name := range []string{"s.1.2.dcm", "s.1.1.dcm", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	names, err := List(ctx, dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"s.1.2.dcm", "s.1.1.dcm", "notes.txt", "sub"}, names, "directories are listed too")
}

func TestListEmpty(t *testing.T) {
	names, err := List(testContext(t), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListMissingDir(t *testing.T) {
	_, err := List(testContext(t), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "reading directory")
}

func TestFilter(t *testing.T) {
	names := []string{"s.1.2.dcm", "s.1.1.DCM", "notes.txt", ".DS_Store", "s.1.3.dcm"}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "zero_value_keeps_everything",
			filter: Filter{},
			want:   names,
		},
		{
			name:   "include_extension",
			filter: Filter{Include: "*.{dcm,DCM}"},
			want:   []string{"s.1.2.dcm", "s.1.1.DCM", "s.1.3.dcm"},
		},
		{
			name:   "ignore_patterns",
			filter: Filter{Ignore: []string{".*", "*.txt"}},
			want:   []string{"s.1.2.dcm", "s.1.1.DCM", "s.1.3.dcm"},
		},
		{
			name:   "include_and_ignore",
			filter: Filter{Include: "*.dcm", Ignore: []string{"s.1.3.*"}},
			want:   []string{"s.1.2.dcm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(testContext(t), names)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterValidate(t *testing.T) {
	assert.NoError(t, Filter{}.Validate())
	assert.NoError(t, Filter{Include: "*.dcm", Ignore: []string{"**/*.tmp"}}.Validate())
	assert.Error(t, Filter{Include: "[abc"}.Validate())
	assert.Error(t, Filter{Ignore: []string{"ok", "{broken"}}.Validate())
}
