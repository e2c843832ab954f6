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
import "sort"

/* -------------------------------------------------------------------------- */

type binPair struct {
  i, j int
}

// In-memory symmetric contact matrix at a single resolution. Counts are
// stored sparsely per chromosome with the upper triangle convention
// (i <= j); absent pairs read as zero. Balancing weights are optional and
// stored per bin, with NaN marking masked bins.
type SimpleContactMatrix struct {
  genome  Genome
  binsize int
  counts  map[string]map[binPair]float64
  weights map[string][]float64
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewSimpleContactMatrix(genome Genome, binsize int) *SimpleContactMatrix {
  if binsize <= 0 {
    panic("NewSimpleContactMatrix(): invalid bin size")
  }
  counts := make(map[string]map[binPair]float64)
  for i := 0; i < genome.Length(); i++ {
    counts[genome.Seqnames[i]] = make(map[binPair]float64)
  }
  return &SimpleContactMatrix{genome, binsize, counts, make(map[string][]float64)}
}

/* population
 * -------------------------------------------------------------------------- */

// Add a contact count between two bins of the same chromosome. The pair
// is stored symmetrically; repeated calls accumulate.
func (matrix *SimpleContactMatrix) AddCount(seqname string, bin1, bin2 int, count float64) error {
  seq, ok := matrix.counts[seqname]
  if !ok {
    return UnknownSeqnameError{seqname}
  }
  if bin1 > bin2 {
    bin1, bin2 = bin2, bin1
  }
  seq[binPair{bin1, bin2}] += count

  return nil
}

// Attach balancing weights to a chromosome. The vector must have one
// entry per bin; NaN entries mark masked bins.
func (matrix *SimpleContactMatrix) SetWeights(seqname string, weights []float64) error {
  n, err := matrix.NumBins(seqname)
  if err != nil {
    return err
  }
  if len(weights) != n {
    return fmt.Errorf("SetWeights(): expected %d weights for sequence `%s', got %d", n, seqname, len(weights))
  }
  matrix.weights[seqname] = weights

  return nil
}

/* access methods
 * -------------------------------------------------------------------------- */

func (matrix *SimpleContactMatrix) Genome() Genome {
  return matrix.genome
}

func (matrix *SimpleContactMatrix) Resolution() int {
  return matrix.binsize
}

func (matrix *SimpleContactMatrix) NumBins(seqname string) (int, error) {
  return matrix.genome.NumBins(seqname, matrix.binsize)
}

func (matrix *SimpleContactMatrix) Row(seqname string, anchorBin, binFrom, binTo int, balance bool) ([]float64, error) {
  seq, ok := matrix.counts[seqname]
  if !ok {
    return nil, UnknownSeqnameError{seqname}
  }
  n, err := matrix.NumBins(seqname)
  if err != nil {
    return nil, err
  }
  if anchorBin < 0 || anchorBin >= n {
    return nil, ViewpointOutOfRangeError{seqname, anchorBin, matrix.binsize}
  }
  if binFrom < 0 || binTo >= n || binTo < binFrom {
    return nil, fmt.Errorf("Row(): bin range [%d, %d] is outside sequence `%s'", binFrom, binTo, seqname)
  }
  var weights []float64
  if balance {
    weights = matrix.weights[seqname]
    if weights == nil {
      return nil, MissingWeightsError{seqname, matrix.binsize}
    }
  }
  values := make([]float64, binTo-binFrom+1)
  for j := binFrom; j <= binTo; j++ {
    i1, i2 := anchorBin, j
    if i1 > i2 {
      i1, i2 = i2, i1
    }
    v := seq[binPair{i1, i2}]
    if balance {
      // NaN weights propagate and mark the bin as masked
      v = v*weights[anchorBin]*weights[j]
    }
    values[j-binFrom] = v
  }
  return values, nil
}

/* contact file wrapper
 * -------------------------------------------------------------------------- */

// A contact file assembled from in-memory matrices, one per resolution.
type SimpleContactFile struct {
  name     string
  matrices map[int]*SimpleContactMatrix
}

func NewSimpleContactFile(name string, matrices ...*SimpleContactMatrix) *SimpleContactFile {
  m := make(map[int]*SimpleContactMatrix)
  for _, matrix := range matrices {
    m[matrix.Resolution()] = matrix
  }
  return &SimpleContactFile{name, m}
}

func (file *SimpleContactFile) Name() string {
  return file.name
}

func (file *SimpleContactFile) Resolutions() []int {
  resolutions := []int{}
  for resolution, _ := range file.matrices {
    resolutions = append(resolutions, resolution)
  }
  sort.Ints(resolutions)
  return resolutions
}

func (file *SimpleContactFile) Open(resolution int) (ContactMatrix, error) {
  matrix, ok := file.matrices[resolution]
  if !ok {
    return nil, UnknownResolutionError{file.name, resolution}
  }
  return matrix, nil
}

func (file *SimpleContactFile) Close() error {
  return nil
}
