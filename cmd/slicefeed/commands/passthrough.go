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
	"github.com/spf13/cobra"
	"github.com/walteh/slicefeed/cmd/slicefeed/opts"
	"github.com/walteh/slicefeed/pkg/log"
	"github.com/walteh/slicefeed/pkg/operation"
)

// NewPassthroughCmd creates the passthrough command
func NewPassthroughCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passthrough <input> <output>",
		Short: "Copy slices under their own names, in listing order",
		Long: `Passthrough copies every entry of the input directory into the output
directory without renaming or reordering, pausing TR/slices after each file.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithCommand(cmd.Context(), operation.PassthroughName)
			return RunCopy(ctx, o, operation.NewPassthroughOperation, args)
		},
	}

	return cmd
}
