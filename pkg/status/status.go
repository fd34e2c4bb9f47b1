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
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// 📊 FileStatus represents the outcome for a single slice
type FileStatus int

const (
	StatusUnknown FileStatus = iota
	StatusCopied             // Written to the output directory
	StatusPlanned            // Would be written (dry run)
	StatusFailed             // Copy failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusPlanned:
		return "planned"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo describes one slice moving through a run
type FileInfo struct {
	Position int        // 1-based position in the copy order
	Source   string     // Input filename
	Dest     string     // Output filename
	Size     int64      // Bytes written
	Status   FileStatus // Outcome
	Error    error      // Any error associated with this file
}

// 📈 Reporter tracks slice status and reports progress
type Reporter interface {
	StartOperation(ctx context.Context, name string, total int)
	TrackFile(ctx context.Context, info FileInfo)
	FinishOperation(ctx context.Context)
}

// 🔧 Manager implements Reporter, printing through a UserLogger
type Manager struct {
	user      *UserLogger
	formatter FileFormatter

	mu        sync.Mutex
	name      string
	files     []FileInfo
	total     int
	bytes     int64
	startedAt time.Time
	now       func() time.Time
}

// 🏭 NewManager creates a new status manager
func NewManager(user *UserLogger, formatter FileFormatter) *Manager {
	return &Manager{
		user:      user,
		formatter: formatter,
		now:       time.Now,
	}
}

func (m *Manager) StartOperation(ctx context.Context, name string, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.name = name
	m.total = total
	m.files = nil
	m.bytes = 0
	m.startedAt = m.now()

	m.user.LogStateChange(m.formatter.FormatStart(name, total))
	zerolog.Ctx(ctx).Debug().Str("operation", name).Int("total", total).Msg("operation started")
}

func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files = append(m.files, info)
	m.bytes += info.Size

	change := FileChange{
		Path:        info.Dest,
		Description: m.formatter.FormatFileOperation(info, m.total),
		Error:       info.Error,
	}
	switch info.Status {
	case StatusCopied:
		change.Type = FileAdded
	case StatusPlanned:
		change.Type = FileSkipped
	default:
		change.Type = FileError
	}
	m.user.LogFileChange(change)

	zerolog.Ctx(ctx).Debug().
		Int("position", info.Position).
		Str("source", info.Source).
		Str("dest", info.Dest).
		Int64("size", info.Size).
		Str("status", info.Status.String()).
		Msg(m.formatter.FormatProgress(len(m.files), m.total))
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elapsed := m.now().Sub(m.startedAt)
	ok := true
	for _, f := range m.files {
		if f.Status == StatusFailed {
			ok = false
			break
		}
	}

	m.user.LogValidation(ok && len(m.files) == m.total, m.formatter.FormatSummary(m.name, len(m.files), m.total, m.bytes, elapsed), nil)
	zerolog.Ctx(ctx).Info().
		Str("operation", m.name).
		Int("processed", len(m.files)).
		Int("total", m.total).
		Int64("bytes", m.bytes).
		Dur("elapsed", elapsed).
		Msg("operation finished")
}

// 📋 Files returns a copy of everything tracked since the last StartOperation
func (m *Manager) Files() []FileInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]FileInfo, len(m.files))
	copy(out, m.files)
	return out
}
