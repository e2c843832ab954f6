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
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// A viewpoint identifies the genomic position whose contact profile is
// extracted, e.g. a gene promoter. The interval is interpreted as
// [From, To). Name is empty when no label is available.
type Viewpoint struct {
  Seqname string
  Range
  Name    string
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewViewpoint(seqname string, from, to int, name string) Viewpoint {
  if from < 0 || to <= from {
    panic("NewViewpoint(): invalid interval")
  }
  return Viewpoint{seqname, NewRange(from, to), name}
}

/* -------------------------------------------------------------------------- */

// Anchor position of the viewpoint. By default this is the From position,
// which for gene viewpoints is the transcription start site. With
// fixedCenter the midpoint of the interval is used instead, regardless of
// strand or annotation.
func (vp Viewpoint) Anchor(fixedCenter bool) int {
  if fixedCenter {
    return (vp.From + vp.To)/2
  }
  return vp.From
}

func (vp Viewpoint) String() string {
  if vp.Name == "" {
    return fmt.Sprintf("%s:%d-%d", vp.Seqname, vp.From, vp.To)
  }
  return fmt.Sprintf("%s:%d-%d (%s)", vp.Seqname, vp.From, vp.To, vp.Name)
}

/* coordinate strings
 * -------------------------------------------------------------------------- */

// Parse a coordinate string of the form `chrom:start-end'. Returns a
// MalformedCoordinateError if the pattern does not match or start >= end.
func ParseCoordinates(coord string) (Viewpoint, error) {
  vp  := Viewpoint{}
  tmp := strings.SplitN(coord, ":", 2)
  if len(tmp) != 2 || tmp[0] == "" {
    return vp, MalformedCoordinateError{coord}
  }
  seqname := tmp[0]
  tmp      = strings.SplitN(tmp[1], "-", 2)
  if len(tmp) != 2 {
    return vp, MalformedCoordinateError{coord}
  }
  t1, e1 := strconv.ParseInt(strings.ReplaceAll(tmp[0], ",", ""), 10, 64)
  t2, e2 := strconv.ParseInt(strings.ReplaceAll(tmp[1], ",", ""), 10, 64)
  if e1 != nil || e2 != nil {
    return vp, MalformedCoordinateError{coord}
  }
  if t1 < 0 || t1 >= t2 {
    return vp, MalformedCoordinateError{coord}
  }
  return NewViewpoint(seqname, int(t1), int(t2), ""), nil
}

/* flank windows
 * -------------------------------------------------------------------------- */

// The genomic interval actually queried for a viewpoint: the flank size
// extended in both directions around the anchor position and clipped
// silently at the chromosome boundaries.
type FlankWindow struct {
  Seqname string
  Range
}

// Derive the flank window of a viewpoint. Returns an OutOfBoundsError if
// the anchor position itself lies beyond the chromosome end; clipping of
// the window edges is not an error.
func NewFlankWindow(vp Viewpoint, flank int, fixedCenter bool, genome Genome) (FlankWindow, error) {
  window := FlankWindow{}

  length, err := genome.SeqLength(vp.Seqname)
  if err != nil {
    return window, err
  }
  pos := vp.Anchor(fixedCenter)
  if pos >= length {
    return window, OutOfBoundsError{vp.Seqname, pos}
  }
  from := iMax(0,      pos - flank)
  to   := iMin(length, pos + flank)

  return FlankWindow{vp.Seqname, NewRange(from, to)}, nil
}

/* viewpoint sources
 * -------------------------------------------------------------------------- */

// A viewpoint source produces the list of viewpoints to extract. The three
// implementations (genes, coordinate strings, bed file) are mutually
// exclusive inputs; SelectViewpointSource constructs the right variant
// from raw command line arguments.
type ViewpointSource interface {
  Viewpoints() ([]Viewpoint, error)
}

/* -------------------------------------------------------------------------- */

// Viewpoints given as explicit coordinate strings.
type CoordSource struct {
  Coords []string
}

func (src CoordSource) Viewpoints() ([]Viewpoint, error) {
  viewpoints := []Viewpoint{}
  for _, coord := range src.Coords {
    vp, err := ParseCoordinates(coord)
    if err != nil {
      return nil, err
    }
    viewpoints = append(viewpoints, vp)
  }
  return viewpoints, nil
}

/* -------------------------------------------------------------------------- */

// Viewpoints given as rows of a bed file.
type BedSource struct {
  Filename string
}

func (src BedSource) Viewpoints() ([]Viewpoint, error) {
  return ReadBedViewpoints(src.Filename)
}

/* -------------------------------------------------------------------------- */

// Viewpoints given as gene names. The transcription start site of each
// gene is looked up in a local annotation table if Table is set, and in
// the UCSC public database for the given assembly otherwise.
type GeneSource struct {
  Names    []string
  Assembly string
  Table    string
}

func (src GeneSource) Viewpoints() ([]Viewpoint, error) {
  var genes Genes
  var err   error

  if src.Assembly != "" {
    if err := CheckAssembly(src.Assembly); err != nil {
      return nil, err
    }
  }
  if src.Table != "" {
    genes, err = ReadGenesTable(src.Table)
  } else {
    genes, err = ImportGenesFromUCSC(src.Assembly, "refGene")
  }
  if err != nil {
    return nil, err
  }
  viewpoints := []Viewpoint{}
  for _, name := range src.Names {
    i, ok := genes.FindGene(name)
    if !ok {
      return nil, UnknownGeneError{name}
    }
    tss := genes.TSS(i)
    viewpoints = append(viewpoints, NewViewpoint(genes.Seqnames[i], tss, tss+1, name))
  }
  return viewpoints, nil
}

/* -------------------------------------------------------------------------- */

// Construct a viewpoint source from raw command line inputs. Exactly one
// of genes, coords, or bed must be non-empty; otherwise a
// ConflictingInputError or ErrNoViewpointSource is returned.
func SelectViewpointSource(genes []string, assembly, genesTable string, coords []string, bed string) (ViewpointSource, error) {
  supplied := []string{}
  if len(genes) > 0 {
    supplied = append(supplied, "genes")
  }
  if len(coords) > 0 {
    supplied = append(supplied, "coordinates")
  }
  if bed != "" {
    supplied = append(supplied, "bed")
  }
  if len(supplied) == 0 {
    return nil, ErrNoViewpointSource
  }
  if len(supplied) > 1 {
    return nil, ConflictingInputError{supplied}
  }
  switch supplied[0] {
  case "genes":
    return GeneSource{genes, assembly, genesTable}, nil
  case "coordinates":
    return CoordSource{coords}, nil
  default:
    return BedSource{bed}, nil
  }
}
