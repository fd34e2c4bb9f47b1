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
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/slicefeed/pkg/slice"
	"github.com/walteh/slicefeed/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single copy run over an input directory
type Operation interface {
	// Name identifies the operation in logs and output
	Name() string
	// Plan lists the copies Execute would perform, without touching the output
	Plan(ctx context.Context) ([]Step, error)
	// Execute performs the copies
	Execute(ctx context.Context) error
}

// 📄 Step is one planned slice copy
type Step struct {
	Position int    // 1-based position in the copy order
	Source   string // Name in the input directory
	Dest     string // Name in the output directory
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Input is the directory the slices are read from
	Input string
	// Output is the directory the slices are written to; created if missing
	Output string
	// Interval is the pause after each copied slice (TR / slices)
	Interval time.Duration
	// Filter selects which listed names are copied
	Filter slice.Filter
	// Clock supplies output timestamps; defaults to the system clock
	Clock Clock
	// Pacer enforces Interval; defaults to a fresh interval pacer per run
	Pacer Pacer
	// Reporter receives progress; defaults to a no-op
	Reporter status.Reporter
}

// 🧱 BaseOperation holds the behaviour shared by every copy operation
type BaseOperation struct {
	Options
}

// 🏗️ NewBaseOperation fills in defaults for unset options
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}
	return BaseOperation{Options: opts}
}

// 📂 listInput returns the filtered input listing in OS order
func (op *BaseOperation) listInput(ctx context.Context) ([]string, error) {
	names, err := slice.List(ctx, op.Input)
	if err != nil {
		return nil, errors.Errorf("listing input: %w", err)
	}
	return op.Filter.Apply(ctx, names), nil
}

func (op *BaseOperation) pacer() Pacer {
	if op.Pacer != nil {
		return op.Pacer
	}
	return NewIntervalPacer(op.Interval)
}

// 🔁 copyAll copies every step in order, pausing after each one.
// The first failure aborts the run; files already written are left in place.
func (op *BaseOperation) copyAll(ctx context.Context, name string, sources []string, dest func(position int, source string) string) error {
	logger := zerolog.Ctx(ctx)

	if err := os.MkdirAll(op.Output, 0755); err != nil {
		return errors.Errorf("creating output directory: %w", err)
	}

	pacer := op.pacer()

	op.Reporter.StartOperation(ctx, name, len(sources))
	defer op.Reporter.FinishOperation(ctx)

	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation cancelled: %w", err)
		}

		info := status.FileInfo{
			Position: i + 1,
			Source:   source,
			Dest:     dest(i+1, source),
		}

		n, err := copyFile(filepath.Join(op.Input, info.Source), filepath.Join(op.Output, info.Dest))
		info.Size = n
		if err != nil {
			info.Status = status.StatusFailed
			info.Error = err
			op.Reporter.TrackFile(ctx, info)
			return errors.Errorf("copying %s: %w", source, err)
		}

		info.Status = status.StatusCopied
		op.Reporter.TrackFile(ctx, info)
		logger.Debug().Str("source", info.Source).Str("dest", info.Dest).Int64("size", n).Msg("slice copied")

		if err := pacer.Wait(ctx); err != nil {
			return errors.Errorf("waiting after %s: %w", source, err)
		}
	}

	return nil
}

// 🔇 nopReporter drops all progress
type nopReporter struct{}

func (nopReporter) StartOperation(context.Context, string, int) {}
func (nopReporter) TrackFile(context.Context, status.FileInfo)   {}
func (nopReporter) FinishOperation(context.Context)               {}
