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
	"sort"

	"gitlab.com/tozd/go/errors"
)

// 📄 Entry pairs a filename with its parsed sort key
type Entry struct {
	Name string
	Key  Key
}

// 📋 Order returns names arranged by their embedded slice position.
//
// MRDC names are placed by explicit index; the indices must be unique and
// contiguous starting at 0 or 1. Flyview names are stably sorted by
// composite key. A listing mixing both conventions is rejected.
func Order(names []string) ([]string, error) {
	entries, err := ParseAll(names)
	if err != nil {
		return nil, err
	}

	ordered, err := Arrange(entries)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(ordered))
	for i, e := range ordered {
		out[i] = e.Name
	}
	return out, nil
}

// 🔍 ParseAll parses every name, stopping at the first malformed one
func ParseAll(names []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		key, err := Parse(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: name, Key: key})
	}
	return entries, nil
}

// 🧮 Arrange places parsed entries in slice order, dispatching on the key kind
func Arrange(entries []Entry) ([]Entry, error) {
	if len(entries) == 0 {
		return []Entry{}, nil
	}

	kind := entries[0].Key.Kind
	for _, e := range entries[1:] {
		if e.Key.Kind != kind {
			return nil, errors.Errorf("%w: %q is %s but %q is %s",
				ErrMixedConventions, entries[0].Name, kind, e.Name, e.Key.Kind)
		}
	}

	switch kind {
	case KindIndex:
		return placeByIndex(entries)
	case KindComposite:
		return sortByComposite(entries), nil
	default:
		return nil, errors.Errorf("unknown key kind %d", kind)
	}
}

// placeByIndex materialises MRDC entries once the index set is known to be dense
func placeByIndex(entries []Entry) ([]Entry, error) {
	byIndex := make(map[int]Entry, len(entries))
	lowest := entries[0].Key.Index
	for _, e := range entries {
		if prev, ok := byIndex[e.Key.Index]; ok {
			return nil, errors.Errorf("%w: %d used by %q and %q", ErrDuplicateIndex, e.Key.Index, prev.Name, e.Name)
		}
		byIndex[e.Key.Index] = e
		if e.Key.Index < lowest {
			lowest = e.Key.Index
		}
	}

	if lowest != 0 && lowest != 1 {
		return nil, errors.Errorf("%w: first index is %d, want 0 or 1", ErrIndexGap, lowest)
	}

	out := make([]Entry, 0, len(entries))
	for i := lowest; i < lowest+len(entries); i++ {
		e, ok := byIndex[i]
		if !ok {
			return nil, errors.Errorf("%w: index %d missing", ErrIndexGap, i)
		}
		out = append(out, e)
	}
	return out, nil
}

func sortByComposite(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key.Composite < out[j].Key.Composite
	})
	return out
}
