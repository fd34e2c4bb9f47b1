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
Package status reports the progress of a copy run to the user.

	            +-------------+
	            |   Manager   |
	            | (Reporter)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+------+           +------+-----+
	| Formatter  |           | UserLogger |
	|  (color)   |           |  (pterm)   |
	+------------+           +------------+

🎯 Purpose:
- Tracks every slice written during an operation
- Prints one line per slice plus a summary
- Mirrors everything to zerolog for debugging

🔄 Flow:
1. StartOperation announces the operation and the slice count
2. TrackFile records and prints each slice as it is written
3. FinishOperation prints the byte count and elapsed time

🔍 Example:

	mgr := status.NewManager(status.NewUserLogger(ctx), status.NewDefaultFileFormatter())
	mgr.StartOperation(ctx, "rename", len(files))
	mgr.TrackFile(ctx, status.FileInfo{Position: 1, Source: src, Dest: dst, Status: status.StatusCopied})
	mgr.FinishOperation(ctx)
*/
package status
