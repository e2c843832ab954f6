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

import "testing"

/* -------------------------------------------------------------------------- */

func TestParseCoordinates1(t *testing.T) {

  vp, err := ParseCoordinates("chr17:45878152-46000000")
  if err != nil {
    t.Fatal(err)
  }
  if vp.Seqname != "chr17" || vp.From != 45878152 || vp.To != 46000000 || vp.Name != "" {
    t.Error("TestParseCoordinates1 failed!")
  }
  // thousands separators are accepted
  vp, err = ParseCoordinates("chr17:45,878,152-46,000,000")
  if err != nil {
    t.Fatal(err)
  }
  if vp.From != 45878152 || vp.To != 46000000 {
    t.Error("TestParseCoordinates1 failed!")
  }
}

func TestParseCoordinates2(t *testing.T) {

  for _, coord := range []string{
    "invalid_coords",
    "chr17",
    "chr17:100",
    "chr17:abc-200",
    ":100-200",
    "chr17:46000000-45878152",
    "chr17:100-100" } {
    if _, err := ParseCoordinates(coord); err == nil {
      t.Errorf("TestParseCoordinates2 failed for `%s'!", coord)
    } else if _, ok := err.(MalformedCoordinateError); !ok {
      t.Errorf("TestParseCoordinates2 failed for `%s'!", coord)
    }
  }
}

/* -------------------------------------------------------------------------- */

func TestBedViewpoints1(t *testing.T) {

  viewpoints, err := ReadBedViewpoints("viewpoint_test.bed")
  if err != nil {
    t.Fatal(err)
  }
  if len(viewpoints) != 3 {
    t.Fatal("TestBedViewpoints1 failed!")
  }
  if viewpoints[0].Name != "vpA" {
    t.Error("TestBedViewpoints1 failed!")
  }
  // three column rows yield unnamed viewpoints
  if viewpoints[1].Name != "" {
    t.Error("TestBedViewpoints1 failed!")
  }
  if viewpoints[2].Seqname != "chrTiny" || viewpoints[2].From != 20000 || viewpoints[2].To != 24000 {
    t.Error("TestBedViewpoints1 failed!")
  }
}

func TestBedViewpoints2(t *testing.T) {

  if _, err := ReadBedViewpoints("viewpoint_bad_test.bed"); err == nil {
    t.Error("TestBedViewpoints2 failed!")
  } else if e, ok := err.(MalformedBedRowError); !ok || e.Line != 2 {
    t.Error("TestBedViewpoints2 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestViewpointAnchor(t *testing.T) {

  vp := NewViewpoint("chrTest", 100000, 110000, "vp")

  if vp.Anchor(false) != 100000 {
    t.Error("TestViewpointAnchor failed!")
  }
  if vp.Anchor(true) != 105000 {
    t.Error("TestViewpointAnchor failed!")
  }
}

func TestFlankWindow1(t *testing.T) {

  genome := NewGenome([]string{"chrTest"}, []int{1000000})

  // window fully inside the chromosome
  vp := NewViewpoint("chrTest", 500000, 500001, "")
  if window, err := NewFlankWindow(vp, 100000, false, genome); err != nil {
    t.Error(err)
  } else if window.From != 400000 || window.To != 600000 {
    t.Error("TestFlankWindow1 failed!")
  }
  // window clipped at the chromosome start
  vp = NewViewpoint("chrTest", 50000, 50001, "")
  if window, err := NewFlankWindow(vp, 100000, false, genome); err != nil {
    t.Error(err)
  } else if window.From != 0 || window.To != 150000 {
    t.Error("TestFlankWindow1 failed!")
  }
  // window clipped at the chromosome end
  vp = NewViewpoint("chrTest", 950000, 950001, "")
  if window, err := NewFlankWindow(vp, 100000, false, genome); err != nil {
    t.Error(err)
  } else if window.From != 850000 || window.To != 1000000 {
    t.Error("TestFlankWindow1 failed!")
  }
}

func TestFlankWindow2(t *testing.T) {

  genome := NewGenome([]string{"chrTest"}, []int{1000000})

  // the viewpoint itself beyond the chromosome end is an error
  vp := NewViewpoint("chrTest", 1000000, 1000001, "")
  if _, err := NewFlankWindow(vp, 100000, false, genome); err == nil {
    t.Error("TestFlankWindow2 failed!")
  } else if _, ok := err.(OutOfBoundsError); !ok {
    t.Error("TestFlankWindow2 failed!")
  }
  // unknown chromosome
  vp = NewViewpoint("chrMissing", 100, 200, "")
  if _, err := NewFlankWindow(vp, 100000, false, genome); err == nil {
    t.Error("TestFlankWindow2 failed!")
  } else if _, ok := err.(UnknownSeqnameError); !ok {
    t.Error("TestFlankWindow2 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestSelectViewpointSource(t *testing.T) {

  if _, err := SelectViewpointSource(nil, "", "", nil, ""); err != ErrNoViewpointSource {
    t.Error("TestSelectViewpointSource failed!")
  }
  if _, err := SelectViewpointSource([]string{"MYC"}, "hg38", "", []string{"chr1:1-100"}, ""); err == nil {
    t.Error("TestSelectViewpointSource failed!")
  } else if _, ok := err.(ConflictingInputError); !ok {
    t.Error("TestSelectViewpointSource failed!")
  }
  if src, err := SelectViewpointSource(nil, "", "", []string{"chr1:1-100"}, ""); err != nil {
    t.Error(err)
  } else if _, ok := src.(CoordSource); !ok {
    t.Error("TestSelectViewpointSource failed!")
  }
  if src, err := SelectViewpointSource(nil, "", "", nil, "viewpoint_test.bed"); err != nil {
    t.Error(err)
  } else if _, ok := src.(BedSource); !ok {
    t.Error("TestSelectViewpointSource failed!")
  }
  if src, err := SelectViewpointSource([]string{"MYC"}, "hg38", "genes_test.txt", nil, ""); err != nil {
    t.Error(err)
  } else if _, ok := src.(GeneSource); !ok {
    t.Error("TestSelectViewpointSource failed!")
  }
}
