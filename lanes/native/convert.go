// Copyright 2025 go-highway Authors
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

package native

import "math"

// Float to integer conversions round to nearest even and saturate at the
// bounds of the destination type; NaN converts to 0.

func roundInt32(x float64) int32 {
	r := math.RoundToEven(x)
	switch {
	case r != r:
		return 0
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	}
	return int32(r)
}

func roundUint32(x float64) uint32 {
	r := math.RoundToEven(x)
	switch {
	case r != r || r <= 0:
		return 0
	case r >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(r)
}

func roundInt64(x float64) int64 {
	r := math.RoundToEven(x)
	switch {
	case r != r:
		return 0
	case r >= 1<<63:
		return math.MaxInt64
	case r <= -1<<63:
		return math.MinInt64
	}
	return int64(r)
}

func roundUint64(x float64) uint64 {
	r := math.RoundToEven(x)
	switch {
	case r != r || r <= 0:
		return 0
	case r >= 1<<64:
		return math.MaxUint64
	}
	return uint64(r)
}
