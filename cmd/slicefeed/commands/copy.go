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

package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/slicefeed/cmd/slicefeed/opts"
	"github.com/walteh/slicefeed/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// OperationFactory builds an operation from options
type OperationFactory func(operation.Options) operation.Operation

// RunCopy copies input to output with the operation built by newOp.
// Fewer than two directories is not an error; nothing is done.
func RunCopy(ctx context.Context, o *opts.RootOpts, newOp OperationFactory, args []string) error {
	if len(args) < 2 {
		zerolog.Ctx(ctx).Debug().Int("args", len(args)).Msg("need an input and an output directory, nothing to do")
		return nil
	}

	op := newOp(operation.Options{
		Input:    args[0],
		Output:   args[1],
		Interval: o.Config.Interval(),
		Filter:   o.Config.Filter(),
		Reporter: o.Reporter,
	})

	zerolog.Ctx(ctx).Debug().
		Str("input", args[0]).
		Str("output", args[1]).
		Stringer("config", o.Config).
		Msg("starting copy")

	if _, err := operation.NewRunner(o.Logger, false).Run(ctx, op); err != nil {
		return errors.Errorf("copying slices: %w", err)
	}
	return nil
}
