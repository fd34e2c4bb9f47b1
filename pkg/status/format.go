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

package status

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	nameWidth = 35 // Base width for the source filename
)

// FileFormatter defines how slice operations and progress should be formatted
type FileFormatter interface {
	// FormatStart formats the line announcing an operation
	FormatStart(name string, total int) string

	// FormatFileOperation formats a single slice line
	FormatFileOperation(info FileInfo, total int) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatSummary formats the closing line of an operation
	FormatSummary(name string, current, total int, bytes int64, elapsed time.Duration) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatStart formats the operation header
func (f *DefaultFileFormatter) FormatStart(name string, total int) string {
	return fmt.Sprintf("%s %s", color.New(color.Bold).Sprint(name), color.New(color.Faint).Sprintf("• %d slices", total))
}

// FormatFileOperation formats a slice as "[pos/total] source → dest"
func (f *DefaultFileFormatter) FormatFileOperation(info FileInfo, total int) string {
	width := len(fmt.Sprint(total))
	pos := fmt.Sprintf("[%*d/%d]", width, info.Position, total)

	var arrow string
	switch info.Status {
	case StatusCopied:
		arrow = color.GreenString("→")
	case StatusPlanned:
		arrow = color.CyanString("⇢")
	case StatusFailed:
		arrow = color.RedString("✗")
	default:
		arrow = color.HiBlackString("-")
	}

	return fmt.Sprintf("%s %-*s %s %s",
		color.New(color.Faint).Sprint(pos),
		nameWidth, info.Source,
		arrow,
		info.Dest,
	)
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatSummary formats the closing line with byte count and duration
func (f *DefaultFileFormatter) FormatSummary(name string, current, total int, bytes int64, elapsed time.Duration) string {
	return fmt.Sprintf("%s: %d/%d slices, %s in %s",
		name, current, total, humanize.Bytes(uint64(bytes)), elapsed.Round(time.Millisecond))
}
