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

import "bytes"
import "fmt"

/* -------------------------------------------------------------------------- */

// Container for gene annotations. Ranges contains the transcript start and
// end positions. The gene name index allows constant time lookups.
type Genes struct {
  Names    []string
  Seqnames []string
  Ranges   []Range
  Strand   []byte
  index    map[string]int
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewGenes(names, seqnames []string, txFrom, txTo []int, strand []byte) Genes {
  n := len(names)
  if len(seqnames) != n || len(txFrom) != n || len(txTo) != n || len(strand) != n {
    panic("NewGenes(): invalid parameters")
  }
  ranges := make([]Range, n)
  index  := map[string]int{}
  for i := 0; i < n; i++ {
    // check if strand is valid
    if strand[i] != '+' && strand[i] != '-' {
      panic("NewGenes(): invalid strand")
    }
    ranges[i] = NewRange(txFrom[i], txTo[i])
    index[names[i]] = i
  }
  return Genes{names, seqnames, ranges, strand, index}
}

/* -------------------------------------------------------------------------- */

// Number of genes in the container.
func (genes Genes) Length() int {
  return len(genes.Names)
}

// Returns the index of a gene.
func (genes Genes) FindGene(name string) (int, bool) {
  i, ok := genes.index[name]
  return i, ok
}

// Transcription start site of the given gene. For genes on the minus
// strand this is the last position of the transcript.
func (genes Genes) TSS(i int) int {
  if genes.Strand[i] == '+' {
    return genes.Ranges[i].From
  } else {
    return genes.Ranges[i].To - 1
  }
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (genes Genes) String() string {
  var buffer bytes.Buffer

  buffer.WriteString(
    fmt.Sprintf("%14s %10s %10s %10s %6s\n", "names", "seqnames", "txFrom", "txTo", "strand"))

  for i := 0; i < genes.Length(); i++ {
    if i != 0 {
      buffer.WriteString("\n")
    }
    buffer.WriteString(
      fmt.Sprintf("%14s %10s %10d %10d %6c",
        genes.Names   [i],
        genes.Seqnames[i],
        genes.Ranges  [i].From,
        genes.Ranges  [i].To,
        genes.Strand  [i]))
  }
  return buffer.String()
}
