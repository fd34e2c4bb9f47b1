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
)

// PassthroughName is the operation name of the passthrough copier
const PassthroughName = "passthrough"

// 📦 NewPassthroughOperation creates the passthrough copier.
// Slices keep their names and are copied in listing order.
func NewPassthroughOperation(opts Options) Operation {
	return &passthroughOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

type passthroughOperation struct {
	BaseOperation
}

func (op *passthroughOperation) Name() string {
	return PassthroughName
}

func (op *passthroughOperation) Plan(ctx context.Context) ([]Step, error) {
	names, err := op.listInput(ctx)
	if err != nil {
		return nil, err
	}

	steps := make([]Step, len(names))
	for i, name := range names {
		steps[i] = Step{Position: i + 1, Source: name, Dest: name}
	}
	return steps, nil
}

// 🏃 Execute runs the passthrough copy
func (op *passthroughOperation) Execute(ctx context.Context) error {
	names, err := op.listInput(ctx)
	if err != nil {
		return err
	}

	return op.copyAll(ctx, op.Name(), names, func(_ int, source string) string {
		return source
	})
}
