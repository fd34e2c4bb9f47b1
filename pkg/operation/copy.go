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
	"fmt"
	"io"
	"os"

	"github.com/walteh/slicefeed/pkg/slice"
	"gitlab.com/tozd/go/errors"
)

// RenameName is the operation name of the renaming copier
const RenameName = "rename"

// 📦 NewRenameOperation creates the renaming copier.
// Slices are copied in slice order and written as i<epoch-ms>.MRDC.<position>.
func NewRenameOperation(opts Options) Operation {
	return &renameOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 📦 renameOperation implements the renaming copy
type renameOperation struct {
	BaseOperation
}

func (op *renameOperation) Name() string {
	return RenameName
}

// 🔢 ordered lists, filters and orders the input
func (op *renameOperation) ordered(ctx context.Context) ([]string, error) {
	names, err := op.listInput(ctx)
	if err != nil {
		return nil, err
	}

	ordered, err := slice.Order(names)
	if err != nil {
		return nil, errors.Errorf("ordering slices: %w", err)
	}
	return ordered, nil
}

// 📋 Plan returns the ordered copies, stamped with the current time
func (op *renameOperation) Plan(ctx context.Context) ([]Step, error) {
	ordered, err := op.ordered(ctx)
	if err != nil {
		return nil, err
	}

	steps := make([]Step, len(ordered))
	for i, name := range ordered {
		steps[i] = Step{Position: i + 1, Source: name, Dest: op.outputName(i + 1)}
	}
	return steps, nil
}

// 🏃 Execute runs the renaming copy
func (op *renameOperation) Execute(ctx context.Context) error {
	ordered, err := op.ordered(ctx)
	if err != nil {
		return err
	}

	return op.copyAll(ctx, op.Name(), ordered, func(position int, _ string) string {
		return op.outputName(position)
	})
}

// outputName takes a fresh timestamp on every call
func (op *renameOperation) outputName(position int) string {
	return MRDCName(op.Clock.Now().UnixMilli(), position)
}

// 🏷️ MRDCName formats an output name in the MRDC scheme
func MRDCName(epochMillis int64, position int) string {
	return fmt.Sprintf("i%d.MRDC.%d", epochMillis, position)
}

// 📄 copyFile copies src to dst byte for byte, creating or truncating dst
func copyFile(src, dst string) (int64, error) {
	source, err := os.Open(src)
	if err != nil {
		return 0, errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	// fail before the destination is created, as opening a directory for reading would
	if info, err := source.Stat(); err == nil && info.IsDir() {
		return 0, errors.Errorf("opening source file: %s is a directory", src)
	}

	destination, err := os.Create(dst)
	if err != nil {
		return 0, errors.Errorf("creating destination file: %w", err)
	}

	n, err := io.Copy(destination, source)
	if err != nil {
		destination.Close()
		return n, errors.Errorf("copying file content: %w", err)
	}

	if err := destination.Close(); err != nil {
		return n, errors.Errorf("closing destination file: %w", err)
	}

	return n, nil
}
