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

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// mrdcMarker marks a filename as following the MRDC convention
const mrdcMarker = "MRDC"

// 🏷️ Kind identifies the naming convention a filename was parsed with
type Kind int

const (
	KindUnknown   Kind = iota
	KindIndex          // MRDC: explicit slice index in the last token
	KindComposite      // Flyview: series token + padded number
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "mrdc"
	case KindComposite:
		return "flyview"
	default:
		return "unknown"
	}
}

// 🔑 Key is the sort key derived from a single filename.
// Only one of Index or Composite is meaningful, depending on Kind.
type Key struct {
	Kind      Kind
	Index     int
	Composite string
}

// String returns a string representation of the key
func (k Key) String() string {
	switch k.Kind {
	case KindIndex:
		return fmt.Sprintf("%s:%d", k.Kind, k.Index)
	case KindComposite:
		return fmt.Sprintf("%s:%s", k.Kind, k.Composite)
	default:
		return k.Kind.String()
	}
}

// 🔍 Parse derives the sort key for a filename.
//
// Filenames containing "MRDC" anywhere use the last dot-separated token as an
// integer index. All other filenames build a composite key from the
// third-to-last token followed by the second-to-last token as a 3 digit
// zero-padded integer.
func Parse(name string) (Key, error) {
	tokens := strings.Split(name, ".")

	if strings.Contains(name, mrdcMarker) {
		if len(tokens) < 2 {
			return Key{}, errors.Errorf("%w: %q has no index token", ErrMalformedName, name)
		}
		idx, err := strconv.Atoi(tokens[len(tokens)-1])
		if err != nil {
			return Key{}, errors.Errorf("%w: %q: parsing index: %s", ErrMalformedName, name, err.Error())
		}
		return Key{Kind: KindIndex, Index: idx}, nil
	}

	if len(tokens) < 3 {
		return Key{}, errors.Errorf("%w: %q needs at least 3 dot-separated tokens", ErrMalformedName, name)
	}
	n, err := strconv.Atoi(tokens[len(tokens)-2])
	if err != nil {
		return Key{}, errors.Errorf("%w: %q: parsing slice number: %s", ErrMalformedName, name, err.Error())
	}

	return Key{
		Kind:      KindComposite,
		Composite: fmt.Sprintf("%s%03d", tokens[len(tokens)-3], n),
	}, nil
}
