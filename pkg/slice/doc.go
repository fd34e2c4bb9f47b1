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

/*
Package slice turns a directory listing of scanner slice files into an ordered sequence.

	+-------------+     +-------------+     +-------------+
	|    List     | --> |   Filter    | --> |    Order    |
	| (readdir)   |     |  (globs)    |     | (Parse+Arr) |
	+-------------+     +-------------+     +-------------+

🎯 Purpose:
- Derive a sort key from each filename
- Place files by the slice position embedded in their names

🏷️ Naming conventions:

MRDC names carry an explicit index as their last dot-separated token:

	i1539874512345.MRDC.17   -> index 17

Flyview names carry a series token and a slice number in the third and second
to last tokens. The number is zero padded to 3 digits and appended to the
series token, and the resulting strings are compared lexicographically:

	scanA.1.5.dcm            -> "1005"
	scanA.1.010.dcm          -> "1010"

⚠️ Rules:
- One listing must use one convention; mixing them is an error
- MRDC indices must be unique and contiguous, starting at 0 or 1
- Flyview ordering is stable for equal keys

🔍 Example:

	names, err := slice.List(ctx, "/data/series01")
	names = slice.Filter{Include: "*.dcm"}.Apply(ctx, names)
	ordered, err := slice.Order(names)
*/
package slice
