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

import "math"
import "testing"

/* -------------------------------------------------------------------------- */

func TestNormalizeMinMax1(t *testing.T) {

  values, err := Normalize([]float64{2.0, 4.0, 8.0, 6.0}, NormMinMax, 0)
  if err != nil {
    t.Fatal(err)
  }
  // given at least two distinct finite values the result spans [0, 1]
  min := math.Inf(+1)
  max := math.Inf(-1)
  for _, v := range values {
    min = math.Min(min, v)
    max = math.Max(max, v)
  }
  if min != 0.0 || max != 1.0 {
    t.Error("TestNormalizeMinMax1 failed!")
  }
  if values[0] != 0.0 || values[1] != 1.0/3.0 || values[2] != 1.0 {
    t.Error("TestNormalizeMinMax1 failed!")
  }
}

func TestNormalizeMinMax2(t *testing.T) {

  // uniform profiles map to zero instead of dividing by zero
  values, err := Normalize([]float64{3.0, 3.0, 3.0}, NormMinMax, 0)
  if err != nil {
    t.Fatal(err)
  }
  for _, v := range values {
    if v != 0.0 {
      t.Error("TestNormalizeMinMax2 failed!")
    }
  }
}

func TestNormalizeMinMax3(t *testing.T) {

  // NaN entries are preserved in place
  values, err := Normalize([]float64{2.0, math.NaN(), 4.0}, NormMinMax, 0)
  if err != nil {
    t.Fatal(err)
  }
  if values[0] != 0.0 || !math.IsNaN(values[1]) || values[2] != 1.0 {
    t.Error("TestNormalizeMinMax3 failed!")
  }
  // all-NaN input stays all NaN
  values, err = Normalize([]float64{math.NaN(), math.NaN()}, NormMinMax, 0)
  if err != nil {
    t.Fatal(err)
  }
  if !math.IsNaN(values[0]) || !math.IsNaN(values[1]) {
    t.Error("TestNormalizeMinMax3 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestNormalizeSelf1(t *testing.T) {

  values, err := Normalize([]float64{2.0, 4.0, 8.0}, NormSelf, 1)
  if err != nil {
    t.Fatal(err)
  }
  if values[0] != 0.5 || values[1] != 1.0 || values[2] != 2.0 {
    t.Error("TestNormalizeSelf1 failed!")
  }
}

func TestNormalizeSelf2(t *testing.T) {

  // self-normalization is invariant under positive rescaling
  x := []float64{2.0, 4.0, 8.0, 6.0}
  y := make([]float64, len(x))
  for i := 0; i < len(x); i++ {
    y[i] = 7.5*x[i]
  }
  vx, err := Normalize(x, NormSelf, 2)
  if err != nil {
    t.Fatal(err)
  }
  vy, err := Normalize(y, NormSelf, 2)
  if err != nil {
    t.Fatal(err)
  }
  for i := 0; i < len(vx); i++ {
    if math.Abs(vx[i]-vy[i]) > 1e-12 {
      t.Error("TestNormalizeSelf2 failed!")
    }
  }
}

func TestNormalizeSelf3(t *testing.T) {

  // zero or NaN viewpoint values have no defined output
  if _, err := Normalize([]float64{2.0, 0.0, 8.0}, NormSelf, 1); err == nil {
    t.Error("TestNormalizeSelf3 failed!")
  } else if _, ok := err.(ZeroViewpointNormalizationError); !ok {
    t.Error("TestNormalizeSelf3 failed!")
  }
  if _, err := Normalize([]float64{2.0, math.NaN(), 8.0}, NormSelf, 1); err == nil {
    t.Error("TestNormalizeSelf3 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestNormalizeNone(t *testing.T) {

  x := []float64{2.0, 4.0, 8.0}

  values, err := Normalize(x, NormNone, 0)
  if err != nil {
    t.Fatal(err)
  }
  for i := 0; i < len(x); i++ {
    if values[i] != x[i] {
      t.Error("TestNormalizeNone failed!")
    }
  }
  // the result is a copy
  values[0] = -1.0
  if x[0] != 2.0 {
    t.Error("TestNormalizeNone failed!")
  }
}

func TestParseNormalizationMode(t *testing.T) {

  for _, str := range []string{"minmax", "self", "none"} {
    mode, err := ParseNormalizationMode(str)
    if err != nil {
      t.Error(err)
    }
    if mode.String() != str {
      t.Error("TestParseNormalizationMode failed!")
    }
  }
  if _, err := ParseNormalizationMode("zscore"); err == nil {
    t.Error("TestParseNormalizationMode failed!")
  }
}
