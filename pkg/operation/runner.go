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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations
type OperationRunner struct {
	logger *zerolog.Logger
	dryRun bool
}

// 🏗️ NewRunner creates a new runner. A dry-run runner only plans.
func NewRunner(logger *zerolog.Logger, dryRun bool) *OperationRunner {
	return &OperationRunner{
		logger: logger,
		dryRun: dryRun,
	}
}

// 🏃 Run executes an operation, or plans it when the runner is in dry-run mode
func (r *OperationRunner) Run(ctx context.Context, op Operation) ([]Step, error) {
	ctx = r.logger.With().Str("operation", op.Name()).Logger().WithContext(ctx)
	if r.dryRun {
		return r.runPlan(ctx, op)
	}
	return nil, r.runExecute(ctx, op)
}

// 📋 runPlan only lists what would be copied
func (r *OperationRunner) runPlan(ctx context.Context, op Operation) ([]Step, error) {
	steps, err := op.Plan(ctx)
	if err != nil {
		return nil, errors.Errorf("planning %s: %w", op.Name(), err)
	}
	zerolog.Ctx(ctx).Debug().Int("steps", len(steps)).Msg("operation planned")
	return steps, nil
}

// 🔄 runExecute runs an operation to completion
func (r *OperationRunner) runExecute(ctx context.Context, op Operation) error {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	logger.Debug().Msg("operation starting")
	if err := op.Execute(ctx); err != nil {
		logger.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("operation failed")
		return errors.Errorf("running %s: %w", op.Name(), err)
	}
	logger.Debug().Dur("elapsed", time.Since(start)).Msg("operation finished")

	return nil
}
