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
import "strconv"
import "strings"

/* import genes from a text table
 * -------------------------------------------------------------------------- */

// Import genes from UCSC text files. The format is a whitespace separated
// table with columns: Name, Seqname, Strand, TranscriptStart, TranscriptEnd,
// CodingStart, and CodingEnd. The coding region columns are accepted for
// compatibility but not retained.
func ReadGenesTable(filename string) (Genes, error) {
  var genes Genes
  var scanner *bufio.Scanner
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return genes, err
  }
  defer f.Close()
  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return genes, err
    }
    defer g.Close()
    scanner = bufio.NewScanner(g)
  } else {
    scanner = bufio.NewScanner(f)
  }

  names    := []string{}
  seqnames := []string{}
  txFrom   := []int{}
  txTo     := []int{}
  strand   := []byte{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 7 {
      return genes, fmt.Errorf("%s: gene table must have seven columns", filename)
    }
    t1, e := strconv.ParseInt(fields[3], 10, 64)
    if e != nil {
      return genes, e
    }
    t2, e := strconv.ParseInt(fields[4], 10, 64)
    if e != nil {
      return genes, e
    }
    names    = append(names,    fields[0])
    seqnames = append(seqnames, fields[1])
    txFrom   = append(txFrom,   int(t1))
    txTo     = append(txTo,     int(t2))
    strand   = append(strand,   fields[2][0])
  }
  return NewGenes(names, seqnames, txFrom, txTo, strand), nil
}
