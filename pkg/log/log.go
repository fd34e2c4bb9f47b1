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

// Package log builds the diagnostic zerolog logger used by slicefeed.
// User-facing progress goes through pkg/status instead.
package log

import (
	"context"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	// DefaultLevel keeps diagnostics quiet unless something goes wrong
	DefaultLevel = zerolog.WarnLevel
	// DebugLevel is used when --debug is set
	DebugLevel = zerolog.DebugLevel
)

// 🎯 Options configures the diagnostic logger
type Options struct {
	Out     io.Writer // destination, usually stderr
	Debug   bool      // lower the level to debug
	NoColor bool      // disable ANSI colors
	Command string    // attached to every event when set
}

// 🎯 Level returns the level selected by the options
func (o Options) Level() zerolog.Level {
	if o.Debug {
		return DebugLevel
	}
	return DefaultLevel
}

// 🏭 New creates a console logger writing to opts.Out
func New(opts Options) zerolog.Logger {
	noColor := opts.NoColor || color.NoColor
	writer := zerolog.ConsoleWriter{
		Out:        opts.Out,
		TimeFormat: time.StampMilli,
		NoColor:    noColor,
	}

	zctx := zerolog.New(writer).Level(opts.Level()).With().Timestamp()
	if opts.Command != "" {
		zctx = zctx.Str("command", opts.Command)
	}
	return zctx.Logger()
}

// 🎯 Setup attaches a new logger to ctx
func Setup(ctx context.Context, opts Options) context.Context {
	logger := New(opts)
	return logger.WithContext(ctx)
}

// 🎯 WithCommand returns ctx with its logger tagged by command name
func WithCommand(ctx context.Context, command string) context.Context {
	return zerolog.Ctx(ctx).With().Str("command", command).Logger().WithContext(ctx)
}
