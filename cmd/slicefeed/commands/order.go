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

	"github.com/spf13/cobra"
	"github.com/walteh/slicefeed/cmd/slicefeed/opts"
	"github.com/walteh/slicefeed/pkg/log"
	"github.com/walteh/slicefeed/pkg/operation"
	"github.com/walteh/slicefeed/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// OrderName is the name reported for a planned run
const OrderName = "order"

// NewOrderCmd creates the order command
func NewOrderCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order <input>",
		Short: "Show the order slices would be copied in, without copying",
		Long: `Order lists the input directory, sorts it by the slice position embedded
in each filename and prints the resulting MRDC output names.
Nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithCommand(cmd.Context(), OrderName)
			_, err := RunOrder(ctx, o, args[0])
			return err
		},
	}

	return cmd
}

// RunOrder plans a renaming copy of input and reports each planned slice
func RunOrder(ctx context.Context, o *opts.RootOpts, input string) ([]operation.Step, error) {
	op := operation.NewRenameOperation(operation.Options{
		Input:  input,
		Filter: o.Config.Filter(),
	})

	steps, err := operation.NewRunner(o.Logger, true).Run(ctx, op)
	if err != nil {
		return nil, errors.Errorf("ordering slices: %w", err)
	}

	o.Reporter.StartOperation(ctx, OrderName, len(steps))
	for _, s := range steps {
		o.Reporter.TrackFile(ctx, status.FileInfo{
			Position: s.Position,
			Source:   s.Source,
			Dest:     s.Dest,
			Status:   status.StatusPlanned,
		})
	}
	o.Reporter.FinishOperation(ctx)

	return steps, nil
}
