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
Package config holds the pacing and selection settings for slicefeed.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Replaces the fixed transfer window and slice count with explicit values
- Loads optional overrides from a file
- Validates values before a run starts

⏱️ Pacing:

The pause between two copied slices is TR / Slices. With the defaults
(TR = 2s, Slices = 40) a slice is written every 50ms.

📄 File format (YAML shown, HCL and JSON use the same keys):

	tr: 3s
	slices: 60
	include: "*.dcm"
	ignore:
	  - ".*"

HCL files can refer to the defaults:

	slices = default_slices * 2
	tr     = default_tr

🔍 Example:

	cfg, err := config.Load(ctx, "slicefeed.yaml")
	if err != nil {
		return err
	}
	pause := cfg.Interval()
*/
package config
