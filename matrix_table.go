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

import "bufio"
import "compress/gzip"
import "fmt"
import "os"
import "sort"
import "strconv"
import "strings"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// A contact file backed by a text dump of contact pairs, i.e. the format
// produced by `cooler dump --join' style exports. Header lines declare the
// base bin size, the chromosome sizes, and optional per-resolution
// balancing weights:
//
//   #binsize  <int>
//   #chrom    <name> <length>
//   #weights  <resolution> <name> <w1,w2,...>
//
// Data rows follow with five whitespace separated columns:
//
//   <chrom1> <start1> <chrom2> <start2> <count>
//
// where start positions refer to bins at the base bin size. Interchromosomal
// pairs are ignored since virtual 4C profiles are read out in cis. The file
// may be gzip compressed. Matrices at resolutions that are multiples of the
// base bin size are derived by summing counts; balancing weights are only
// available at resolutions for which the file declares them.
type ContactTableFile struct {
  name    string
  genome  Genome
  binsize int
  base    *SimpleContactMatrix
  weights map[int]map[string][]float64
  cache   map[int]*SimpleContactMatrix
  // number of worker threads used when aggregating counts to a coarser
  // resolution
  Threads int
}

/* constructor
 * -------------------------------------------------------------------------- */

// Open a contact table file. The file is read eagerly; Close releases the
// matrices.
func OpenContactFile(filename string) (*ContactTableFile, error) {
  var scanner *bufio.Scanner
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()
  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return nil, err
    }
    defer g.Close()
    scanner = bufio.NewScanner(g)
  } else {
    scanner = bufio.NewScanner(f)
  }

  file := &ContactTableFile{
    name   : filename,
    weights: make(map[int]map[string][]float64),
    cache  : make(map[int]*SimpleContactMatrix),
    Threads: 1 }

  for line := 1; scanner.Scan(); line++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    switch fields[0] {
    case "#binsize":
      if len(fields) != 2 {
        return nil, fmt.Errorf("%s: invalid #binsize header at line %d", filename, line)
      }
      t, err := strconv.ParseInt(fields[1], 10, 64)
      if err != nil || t <= 0 {
        return nil, fmt.Errorf("%s: invalid #binsize header at line %d", filename, line)
      }
      file.binsize = int(t)
    case "#chrom":
      if len(fields) != 3 {
        return nil, fmt.Errorf("%s: invalid #chrom header at line %d", filename, line)
      }
      t, err := strconv.ParseInt(fields[2], 10, 64)
      if err != nil || t <= 0 {
        return nil, fmt.Errorf("%s: invalid #chrom header at line %d", filename, line)
      }
      file.genome.AddSequence(fields[1], int(t))
    case "#weights":
      if len(fields) != 4 {
        return nil, fmt.Errorf("%s: invalid #weights header at line %d", filename, line)
      }
      t, err := strconv.ParseInt(fields[1], 10, 64)
      if err != nil || t <= 0 {
        return nil, fmt.Errorf("%s: invalid #weights header at line %d", filename, line)
      }
      resolution := int(t)
      values := strings.Split(fields[3], ",")
      w := make([]float64, len(values))
      for i := 0; i < len(values); i++ {
        v, err := strconv.ParseFloat(values[i], 64)
        if err != nil {
          return nil, fmt.Errorf("%s: invalid weight value at line %d: %v", filename, line, err)
        }
        w[i] = v
      }
      if file.weights[resolution] == nil {
        file.weights[resolution] = make(map[string][]float64)
      }
      file.weights[resolution][fields[2]] = w
    default:
      if strings.HasPrefix(fields[0], "#") {
        // unrecognized comment line
        continue
      }
      if file.binsize == 0 || file.genome.Length() == 0 {
        return nil, fmt.Errorf("%s: data row at line %d before #binsize and #chrom headers", filename, line)
      }
      if file.base == nil {
        file.base = NewSimpleContactMatrix(file.genome, file.binsize)
      }
      if len(fields) != 5 {
        return nil, fmt.Errorf("%s: invalid contact row at line %d", filename, line)
      }
      // interchromosomal pairs are not used
      if fields[0] != fields[2] {
        continue
      }
      t1, e1 := strconv.ParseInt  (fields[1], 10, 64)
      t2, e2 := strconv.ParseInt  (fields[3], 10, 64)
      c , e3 := strconv.ParseFloat(fields[4], 64)
      if e1 != nil || e2 != nil || e3 != nil || t1 < 0 || t2 < 0 {
        return nil, fmt.Errorf("%s: invalid contact row at line %d", filename, line)
      }
      bin1 := BinIndex(int(t1), file.binsize)
      bin2 := BinIndex(int(t2), file.binsize)
      if err := file.base.AddCount(fields[0], bin1, bin2, c); err != nil {
        return nil, fmt.Errorf("%s: line %d: %v", filename, line, err)
      }
    }
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  if file.binsize == 0 || file.genome.Length() == 0 {
    return nil, fmt.Errorf("%s: missing #binsize or #chrom headers", filename)
  }
  if file.base == nil {
    file.base = NewSimpleContactMatrix(file.genome, file.binsize)
  }
  return file, nil
}

/* access methods
 * -------------------------------------------------------------------------- */

func (file *ContactTableFile) Name() string {
  return file.name
}

func (file *ContactTableFile) Genome() Genome {
  return file.genome
}

// Resolutions explicitly present in the file: the base bin size and every
// resolution with declared balancing weights. Matrices at other multiples
// of the base bin size can still be opened; they support raw counts only.
func (file *ContactTableFile) Resolutions() []int {
  resolutions := []int{file.binsize}
  for resolution, _ := range file.weights {
    if resolution != file.binsize {
      resolutions = append(resolutions, resolution)
    }
  }
  sort.Ints(resolutions)
  return resolutions
}

func (file *ContactTableFile) Open(resolution int) (ContactMatrix, error) {
  if file.base == nil {
    return nil, fmt.Errorf("%s: file is closed", file.name)
  }
  if matrix, ok := file.cache[resolution]; ok {
    return matrix, nil
  }
  if resolution < file.binsize || resolution % file.binsize != 0 {
    return nil, UnknownResolutionError{file.name, resolution}
  }
  var matrix *SimpleContactMatrix
  if resolution == file.binsize {
    matrix = file.base
  } else {
    matrix = file.coarsen(resolution)
  }
  for seqname, w := range file.weights[resolution] {
    if err := matrix.SetWeights(seqname, w); err != nil {
      return nil, fmt.Errorf("%s: %v", file.name, err)
    }
  }
  file.cache[resolution] = matrix

  return matrix, nil
}

func (file *ContactTableFile) Close() error {
  file.base  = nil
  file.cache = make(map[int]*SimpleContactMatrix)
  return nil
}

/* coarsening
 * -------------------------------------------------------------------------- */

// Aggregate the base matrix to a coarser resolution by summing counts.
// Chromosomes are processed independently on a worker pool.
func (file *ContactTableFile) coarsen(resolution int) *SimpleContactMatrix {
  factor := resolution/file.binsize
  matrix := NewSimpleContactMatrix(file.genome, resolution)

  threads := file.Threads
  if threads < 1 {
    threads = 1
  }
  pool := threadpool.New(threads, 100*threads)
  g    := pool.NewJobGroup()

  for i := 0; i < file.genome.Length(); i++ {
    // make a thread safe copy of the sequence name
    seqname := file.genome.Seqnames[i]
    pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      src := file.base.counts[seqname]
      dst := matrix.counts[seqname]
      for pair, count := range src {
        i1 := pair.i/factor
        i2 := pair.j/factor
        dst[binPair{i1, i2}] += count
      }
      return nil
    })
  }
  pool.Wait(g)

  return matrix
}
