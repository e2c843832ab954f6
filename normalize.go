/* Copyright (C) 2024 Zoe Chen
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package v4c

/* -------------------------------------------------------------------------- */

import "fmt"
import "math"

/* -------------------------------------------------------------------------- */

type NormalizationMode int

const (
  // pass profiles through unchanged
  NormNone NormalizationMode = iota
  // rescale finite values to [0, 1]
  NormMinMax
  // divide by the value at the viewpoint bin
  NormSelf
)

func ParseNormalizationMode(str string) (NormalizationMode, error) {
  switch str {
  case "none":
    return NormNone, nil
  case "minmax":
    return NormMinMax, nil
  case "self":
    return NormSelf, nil
  }
  return NormNone, fmt.Errorf("invalid normalization mode `%s' (expected minmax, self, or none)", str)
}

func (mode NormalizationMode) String() string {
  switch mode {
  case NormMinMax:
    return "minmax"
  case NormSelf:
    return "self"
  default:
    return "none"
  }
}

/* -------------------------------------------------------------------------- */

// Apply a normalization mode to a profile vector. The result is a new
// vector of the same length and position alignment; NaN entries stay NaN.
// The anchor argument is the index of the viewpoint bin within the vector
// and is only used for self-normalization.
func Normalize(values []float64, mode NormalizationMode, anchor int) ([]float64, error) {
  switch mode {
  case NormMinMax:
    return normalizeMinMax(values), nil
  case NormSelf:
    return normalizeSelf(values, anchor)
  default:
    result := make([]float64, len(values))
    copy(result, values)
    return result, nil
  }
}

// Min-max normalization over the finite values of the vector. If all
// finite values are equal (or none are finite) every finite value maps to
// 0.0 rather than producing NaN through a zero division.
func normalizeMinMax(values []float64) []float64 {
  min := math.Inf(+1)
  max := math.Inf(-1)
  for _, v := range values {
    if math.IsNaN(v) {
      continue
    }
    if v < min {
      min = v
    }
    if v > max {
      max = v
    }
  }
  result := make([]float64, len(values))
  for i, v := range values {
    if math.IsNaN(v) {
      result[i] = v
      continue
    }
    if max > min {
      result[i] = (v - min)/(max - min)
    } else {
      result[i] = 0.0
    }
  }
  return result
}

// Viewpoint-relative normalization. Returns a
// ZeroViewpointNormalizationError if the value at the viewpoint bin is
// zero or NaN, since the result is undefined in that case.
func normalizeSelf(values []float64, anchor int) ([]float64, error) {
  if anchor < 0 || anchor >= len(values) {
    return nil, ZeroViewpointNormalizationError{anchor}
  }
  v0 := values[anchor]
  if v0 == 0.0 || math.IsNaN(v0) {
    return nil, ZeroViewpointNormalizationError{anchor}
  }
  result := make([]float64, len(values))
  for i, v := range values {
    result[i] = v/v0
  }
  return result, nil
}
