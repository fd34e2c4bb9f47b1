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

package slice

import "gitlab.com/tozd/go/errors"

var (
	// ErrMalformedName is returned when a filename lacks the tokens its convention needs
	ErrMalformedName = errors.Base("malformed slice filename")
	// ErrDuplicateIndex is returned when two MRDC files carry the same index
	ErrDuplicateIndex = errors.Base("duplicate slice index")
	// ErrIndexGap is returned when MRDC indices do not form a run starting at 0 or 1
	ErrIndexGap = errors.Base("slice indices are not contiguous")
	// ErrMixedConventions is returned when MRDC and Flyview names appear in one listing
	ErrMixedConventions = errors.Base("mixed slice naming conventions")
)
