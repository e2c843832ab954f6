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

func TestBinIndex(t *testing.T) {

  for _, resolution := range []int{1000, 5000, 10000} {
    for _, position := range []int{0, 1, 999, 1000, 12345, 999999} {
      if BinIndex(position, resolution) != position/resolution {
        t.Error("TestBinIndex failed!")
      }
    }
  }
}

/* -------------------------------------------------------------------------- */

func TestSimpleContactMatrix1(t *testing.T) {

  genome := NewGenome([]string{"chrT"}, []int{20000})
  matrix := NewSimpleContactMatrix(genome, 1000)

  matrix.AddCount("chrT", 5, 4, 4.0)
  matrix.AddCount("chrT", 5, 5, 8.0)
  matrix.AddCount("chrT", 5, 6, 2.0)

  // pairs are stored symmetrically, absent pairs read as zero
  values, err := matrix.Row("chrT", 5, 4, 6, false)
  if err != nil {
    t.Fatal(err)
  }
  if len(values) != 3 || values[0] != 4.0 || values[1] != 8.0 || values[2] != 2.0 {
    t.Error("TestSimpleContactMatrix1 failed!")
  }
  values, err = matrix.Row("chrT", 4, 3, 7, false)
  if err != nil {
    t.Fatal(err)
  }
  if len(values) != 5 || values[0] != 0.0 || values[2] != 4.0 {
    t.Error("TestSimpleContactMatrix1 failed!")
  }
}

func TestSimpleContactMatrix2(t *testing.T) {

  genome := NewGenome([]string{"chrT"}, []int{20000})
  matrix := NewSimpleContactMatrix(genome, 1000)

  matrix.AddCount("chrT", 4, 5, 4.0)

  // balancing without weights is an error
  if _, err := matrix.Row("chrT", 4, 4, 6, true); err == nil {
    t.Error("TestSimpleContactMatrix2 failed!")
  } else if _, ok := err.(MissingWeightsError); !ok {
    t.Error("TestSimpleContactMatrix2 failed!")
  }

  weights := make([]float64, 20)
  for i := 0; i < 20; i++ {
    weights[i] = 1.0
  }
  weights[5] = math.NaN()
  if err := matrix.SetWeights("chrT", weights); err != nil {
    t.Fatal(err)
  }
  // masked bins yield NaN, not zero
  values, err := matrix.Row("chrT", 4, 4, 6, true)
  if err != nil {
    t.Fatal(err)
  }
  if values[0] != 0.0 || !math.IsNaN(values[1]) || values[2] != 0.0 {
    t.Error("TestSimpleContactMatrix2 failed!")
  }
}

func TestSimpleContactMatrix3(t *testing.T) {

  genome := NewGenome([]string{"chrT"}, []int{20000})
  matrix := NewSimpleContactMatrix(genome, 1000)

  // anchor bin outside the matrix bin range
  if _, err := matrix.Row("chrT", 20, 18, 19, false); err == nil {
    t.Error("TestSimpleContactMatrix3 failed!")
  } else if _, ok := err.(ViewpointOutOfRangeError); !ok {
    t.Error("TestSimpleContactMatrix3 failed!")
  }
  if _, err := matrix.Row("chrMissing", 0, 0, 1, false); err == nil {
    t.Error("TestSimpleContactMatrix3 failed!")
  } else if _, ok := err.(UnknownSeqnameError); !ok {
    t.Error("TestSimpleContactMatrix3 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestContactTableFile1(t *testing.T) {

  file, err := OpenContactFile("matrix_test.tsv")
  if err != nil {
    t.Fatal(err)
  }
  defer file.Close()

  if length, err := file.Genome().SeqLength("chrT"); err != nil || length != 20000 {
    t.Error("TestContactTableFile1 failed!")
  }
  resolutions := file.Resolutions()
  if len(resolutions) != 2 || resolutions[0] != 1000 || resolutions[1] != 2000 {
    t.Error("TestContactTableFile1 failed!")
  }

  matrix, err := file.Open(1000)
  if err != nil {
    t.Fatal(err)
  }
  values, err := matrix.Row("chrT", 5, 4, 6, false)
  if err != nil {
    t.Fatal(err)
  }
  if values[0] != 4.0 || values[1] != 8.0 || values[2] != 2.0 {
    t.Error("TestContactTableFile1 failed!")
  }
  // the weight of bin 5 is NaN, balancing masks the whole row
  values, err = matrix.Row("chrT", 5, 4, 6, true)
  if err != nil {
    t.Fatal(err)
  }
  if !math.IsNaN(values[0]) || !math.IsNaN(values[1]) || !math.IsNaN(values[2]) {
    t.Error("TestContactTableFile1 failed!")
  }
}

func TestContactTableFile2(t *testing.T) {

  file, err := OpenContactFile("matrix_test.tsv")
  if err != nil {
    t.Fatal(err)
  }
  defer file.Close()

  // counts are aggregated by summation when coarsening
  matrix, err := file.Open(2000)
  if err != nil {
    t.Fatal(err)
  }
  if matrix.Resolution() != 2000 {
    t.Error("TestContactTableFile2 failed!")
  }
  values, err := matrix.Row("chrT", 2, 2, 3, false)
  if err != nil {
    t.Fatal(err)
  }
  if values[0] != 12.0 || values[1] != 2.0 {
    t.Error("TestContactTableFile2 failed!")
  }
  // weights declared for resolution 2000 apply to the coarsened matrix
  values, err = matrix.Row("chrT", 2, 2, 3, true)
  if err != nil {
    t.Fatal(err)
  }
  if values[0] != 3.0 || values[1] != 1.0 {
    t.Error("TestContactTableFile2 failed!")
  }
}

func TestContactTableFile3(t *testing.T) {

  file, err := OpenContactFile("matrix_test.tsv")
  if err != nil {
    t.Fatal(err)
  }

  // resolutions that are no multiple of the base bin size do not exist
  if _, err := file.Open(1500); err == nil {
    t.Error("TestContactTableFile3 failed!")
  } else if _, ok := err.(UnknownResolutionError); !ok {
    t.Error("TestContactTableFile3 failed!")
  }
  if _, err := file.Open(500); err == nil {
    t.Error("TestContactTableFile3 failed!")
  }

  file.Close()
  if _, err := file.Open(1000); err == nil {
    t.Error("TestContactTableFile3 failed!")
  }
}

func TestContactTableFileThreads(t *testing.T) {

  file, err := OpenContactFile("matrix_test.tsv")
  if err != nil {
    t.Fatal(err)
  }
  defer file.Close()

  file.Threads = 4

  matrix, err := file.Open(4000)
  if err != nil {
    t.Fatal(err)
  }
  values, err := matrix.Row("chrT", 1, 1, 1, false)
  if err != nil {
    t.Fatal(err)
  }
  // (4,5), (5,5), (5,6) all collapse into bin pair (1,1)
  if values[0] != 14.0 {
    t.Error("TestContactTableFileThreads failed!")
  }
}
