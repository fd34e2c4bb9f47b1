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
Package operation implements the copy runs that feed slices into an output directory.

	+-------------+     +-------------+     +-------------+
	|   slice     | --> |  Operation  | --> |   status    |
	| (List/Order)|     | (copy+pace) |     | (Reporter)  |
	+-------------+     +------+------+     +-------------+
	                           |
	                    +------+------+
	                    |    Pacer    |
	                    | (TR/slices) |
	                    +-------------+

🎯 Purpose:
- Copies slices one at a time, pausing after each to mimic scanner throughput
- Renames slices into the MRDC scheme, or keeps their names

🔄 Operations:
1. rename: list, order by slice position, write i<epoch-ms>.MRDC.<n>
2. passthrough: list, write each slice under its own name

⚡ Behaviour:
- The output directory is created if missing; existing files are never removed
- Each copy is byte for byte; there is no verification pass
- The first error aborts the run, leaving already copied slices in place
- Copying is strictly sequential

🔍 Example:

	op := operation.NewRenameOperation(operation.Options{
		Input:    "/data/series01",
		Output:   "/feed/series01",
		Interval: cfg.Interval(),
		Reporter: statusMgr,
	})
	_, err := operation.NewRunner(&logger, false).Run(ctx, op)
*/
package operation
