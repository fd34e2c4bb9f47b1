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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []string
		wantErr error
	}{
		{
			name:  "empty",
			input: nil,
			want:  []string{},
		},
		{
			name:  "flyview_scenario",
			input: []string{"scanA.1.005.dcm", "scanA.1.002.dcm", "scanA.1.010.dcm"},
			want:  []string{"scanA.1.002.dcm", "scanA.1.005.dcm", "scanA.1.010.dcm"},
		},
		{
			name:  "flyview_padding_beats_plain_string_order",
			input: []string{"s.1.10.dcm", "s.1.9.dcm", "s.1.100.dcm"},
			want:  []string{"s.1.9.dcm", "s.1.10.dcm", "s.1.100.dcm"},
		},
		{
			name:  "flyview_series_token_first",
			input: []string{"s.2.001.dcm", "s.1.003.dcm", "s.1.001.dcm"},
			want:  []string{"s.1.001.dcm", "s.1.003.dcm", "s.2.001.dcm"},
		},
		{
			name:  "flyview_equal_keys_keep_listing_order",
			input: []string{"b.1.5.dcm", "a.1.005.dcm", "c.1.2.dcm"},
			want:  []string{"c.1.2.dcm", "b.1.5.dcm", "a.1.005.dcm"},
		},
		{
			name:  "mrdc_scenario",
			input: []string{"img.MRDC.3", "img.MRDC.1", "img.MRDC.2"},
			want:  []string{"img.MRDC.1", "img.MRDC.2", "img.MRDC.3"},
		},
		{
			name:  "mrdc_zero_based",
			input: []string{"img.MRDC.2", "img.MRDC.0", "img.MRDC.1"},
			want:  []string{"img.MRDC.0", "img.MRDC.1", "img.MRDC.2"},
		},
		{
			name:  "mrdc_numeric_not_lexical",
			input: []string{"img.MRDC.10", "img.MRDC.9", "img.MRDC.1", "img.MRDC.2", "img.MRDC.3", "img.MRDC.4", "img.MRDC.5", "img.MRDC.6", "img.MRDC.7", "img.MRDC.8"},
			want:  []string{"img.MRDC.1", "img.MRDC.2", "img.MRDC.3", "img.MRDC.4", "img.MRDC.5", "img.MRDC.6", "img.MRDC.7", "img.MRDC.8", "img.MRDC.9", "img.MRDC.10"},
		},
		{
			name:    "mrdc_gap",
			input:   []string{"img.MRDC.1", "img.MRDC.3"},
			wantErr: ErrIndexGap,
		},
		{
			name:    "mrdc_starts_too_high",
			input:   []string{"img.MRDC.2", "img.MRDC.3"},
			wantErr: ErrIndexGap,
		},
		{
			name:    "mrdc_negative_start",
			input:   []string{"img.MRDC.-1", "img.MRDC.0"},
			wantErr: ErrIndexGap,
		},
		{
			name:    "mrdc_duplicate",
			input:   []string{"a.MRDC.1", "b.MRDC.1"},
			wantErr: ErrDuplicateIndex,
		},
		{
			name:    "mixed_conventions",
			input:   []string{"img.MRDC.1", "scanA.1.002.dcm"},
			wantErr: ErrMixedConventions,
		},
		{
			name:    "malformed_aborts",
			input:   []string{"scanA.1.002.dcm", "notes.txt"},
			wantErr: ErrMalformedName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Order(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderIsIdempotent(t *testing.T) {
	input := []string{"s.3.7.dcm", "s.1.12.dcm", "s.1.2.dcm", "s.2.001.dcm", "s.1.012.dcm"}

	first, err := Order(input)
	require.NoError(t, err)

	second, err := Order(first)
	require.NoError(t, err)
	assert.Equal(t, first, second, "ordering an ordered list should not change it")

	again, err := Order(input)
	require.NoError(t, err)
	assert.Equal(t, first, again, "same input should give the same order")
}

func TestOrderDoesNotModifyInput(t *testing.T) {
	input := []string{"s.1.3.dcm", "s.1.1.dcm", "s.1.2.dcm"}
	snapshot := append([]string(nil), input...)

	_, err := Order(input)
	require.NoError(t, err)
	assert.Equal(t, snapshot, input)
}

func TestArrangeKeepsKeys(t *testing.T) {
	entries, err := ParseAll([]string{"img.MRDC.2", "img.MRDC.1"})
	require.NoError(t, err)

	arranged, err := Arrange(entries)
	require.NoError(t, err)
	require.Len(t, arranged, 2)
	assert.Equal(t, Entry{Name: "img.MRDC.1", Key: Key{Kind: KindIndex, Index: 1}}, arranged[0])
	assert.Equal(t, Entry{Name: "img.MRDC.2", Key: Key{Kind: KindIndex, Index: 2}}, arranged[1])
}
