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
	"time"

	"golang.org/x/time/rate"
)

// ⏱️ Pacer blocks between copied slices
type Pacer interface {
	Wait(ctx context.Context) error
}

// 🪣 IntervalPacer pauses a full interval on every Wait.
// Time spent copying between two Waits does not shorten the next pause.
type IntervalPacer struct {
	limiter *rate.Limiter
}

// 🏗️ NewIntervalPacer creates a pacer for the given interval.
// A non-positive interval gives a pacer that never blocks.
func NewIntervalPacer(interval time.Duration) Pacer {
	if interval <= 0 {
		return noWait{}
	}
	return &IntervalPacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks for one interval or until ctx is done
func (p *IntervalPacer) Wait(ctx context.Context) error {
	p.drain(time.Now())
	return p.limiter.Wait(ctx)
}

// drain drops whatever credit built up since the last Wait.
// Advancing with a zero burst caps the bucket at zero tokens.
func (p *IntervalPacer) drain(now time.Time) {
	p.limiter.SetBurstAt(now, 0)
	p.limiter.SetBurstAt(now, 1)
}

type noWait struct{}

func (noWait) Wait(ctx context.Context) error {
	return ctx.Err()
}
