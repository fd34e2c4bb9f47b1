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

package main

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/slicefeed/cmd/slicefeed/commands"
	"github.com/walteh/slicefeed/cmd/slicefeed/opts"
	"github.com/walteh/slicefeed/pkg/config"
	"github.com/walteh/slicefeed/pkg/log"
	"github.com/walteh/slicefeed/pkg/operation"
	"github.com/walteh/slicefeed/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	configFile string
	debug      bool
	tr         time.Duration
	slices     int
	include    string
	ignore     []string
}

// newRootCmd builds the command tree. Logs go to logOut, user output to userOut.
func newRootCmd(o *opts.RootOpts, logOut, userOut io.Writer) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "slicefeed <input> <output>",
		Short: "Feed scanner slices into a directory at acquisition pace",
		Long: `slicefeed copies the slices found in <input> into <output> one at a time,
pausing TR/slices after each one to mimic a scanner writing a volume.

Without a subcommand the slices are ordered by the position embedded in their
names and written as i<epoch-ms>.MRDC.<n>. With fewer than two directories
nothing is done.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.Setup(cmd.Context(), log.Options{Out: logOut, Debug: flags.debug})
			cmd.SetContext(ctx)

			cfg, err := loadConfig(ctx, cmd, flags)
			if err != nil {
				return err
			}

			o.Config = cfg
			o.Logger = zerolog.Ctx(ctx)
			o.UserLogger = status.NewUserLoggerWithWriter(ctx, userOut)
			o.Reporter = status.NewManager(o.UserLogger, status.NewDefaultFileFormatter())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithCommand(cmd.Context(), operation.RenameName)
			return commands.RunCopy(ctx, o, operation.NewRenameOperation, args)
		},
	}

	addRootFlags(rootCmd, flags)

	rootCmd.AddCommand(
		commands.NewPassthroughCmd(o),
		commands.NewOrderCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (.yaml, .hcl or .json)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().DurationVar(&flags.tr, "tr", config.DefaultTR, "transfer window for one volume")
	cmd.PersistentFlags().IntVar(&flags.slices, "slices", config.DefaultSlices, "expected slices per volume")
	cmd.PersistentFlags().StringVar(&flags.include, "include", "", "only copy names matching this glob")
	cmd.PersistentFlags().StringSliceVar(&flags.ignore, "ignore", nil, "skip names matching these globs")
}

// loadConfig starts from the defaults or the config file, then applies explicit flags
func loadConfig(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.configFile != "" {
		loaded, err := config.Load(ctx, flags.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("tr") {
		cfg.TR = flags.tr
	}
	if cmd.Flags().Changed("slices") {
		cfg.Slices = flags.slices
	}
	if cmd.Flags().Changed("include") {
		cfg.Include = flags.include
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Stringer("config", cfg).Msg("configuration loaded")
	return cfg, nil
}
