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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalPacer(t *testing.T) {
	const interval = 20 * time.Millisecond
	const waits = 5

	pacer := NewIntervalPacer(interval)
	start := time.Now()
	for i := 0; i < waits; i++ {
		require.NoError(t, pacer.Wait(context.Background()))
	}
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, waits*interval-2*time.Millisecond, "every wait should pause, including the first")
	assert.Less(t, elapsed, waits*interval+2*time.Second, "pacer should not stall")
}

func TestIntervalPacerPausesAfterSlowCopy(t *testing.T) {
	const interval = 20 * time.Millisecond

	tests := []struct {
		name string
		copy time.Duration
	}{
		{name: "copy_longer_than_interval", copy: 30 * time.Millisecond},
		{name: "copy_shorter_than_interval", copy: 10 * time.Millisecond},
		{name: "instant_copy", copy: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pacer := NewIntervalPacer(interval)
			for i := 0; i < 4; i++ {
				time.Sleep(tt.copy)

				start := time.Now()
				require.NoError(t, pacer.Wait(context.Background()))
				paused := time.Since(start)

				assert.GreaterOrEqual(t, paused, interval-2*time.Millisecond, "wait %d should pause a full interval", i+1)
				assert.Less(t, paused, interval+2*time.Second, "wait %d should not stall", i+1)
			}
		})
	}
}

func TestIntervalPacerZero(t *testing.T) {
	pacer := NewIntervalPacer(0)

	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, pacer.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestIntervalPacerCancel(t *testing.T) {
	pacer := NewIntervalPacer(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.Error(t, pacer.Wait(ctx), "an hour-long wait cannot finish before the deadline")
}

func TestRunTimingFollowsInterval(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		"img.MRDC.1": "1",
		"img.MRDC.2": "2",
		"img.MRDC.3": "3",
		"img.MRDC.4": "4",
	})

	// TR = 200ms over 10 slices
	const interval = 20 * time.Millisecond

	opts := env.options()
	opts.Pacer = nil
	opts.Interval = interval

	start := time.Now()
	require.NoError(t, NewRenameOperation(opts).Execute(env.ctx))
	elapsed := time.Since(start)

	entries, err := os.ReadDir(env.output)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	assert.FileExists(t, filepath.Join(env.output, "i1539874512004.MRDC.4"))

	assert.GreaterOrEqual(t, elapsed, 4*interval-2*time.Millisecond, "a run of N slices should take about N intervals")
	assert.Less(t, elapsed, 4*interval+2*time.Second)
}
