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

import "errors"
import "fmt"
import "strings"

/* -------------------------------------------------------------------------- */

var (
  // ErrNoViewpointSource indicates that neither genes, coordinates, nor a
  // bed file were given as viewpoint input.
  ErrNoViewpointSource = errors.New("v4c: no viewpoint source given (expected genes, coordinates, or a bed file)")
)

/* viewpoint resolution errors
 * -------------------------------------------------------------------------- */

// UnknownGeneError indicates that a gene name is missing from the
// annotation used for viewpoint resolution.
type UnknownGeneError struct {
  Name string
}

func (e UnknownGeneError) Error() string {
  return fmt.Sprintf("gene `%s' not found in annotation", e.Name)
}

// UnsupportedAssemblyError indicates an unrecognized genome assembly tag.
type UnsupportedAssemblyError struct {
  Assembly string
}

func (e UnsupportedAssemblyError) Error() string {
  return fmt.Sprintf("genome assembly `%s' is not supported", e.Assembly)
}

// MalformedCoordinateError indicates a coordinate string that does not
// match the pattern `chrom:start-end' or has start >= end.
type MalformedCoordinateError struct {
  Coord string
}

func (e MalformedCoordinateError) Error() string {
  return fmt.Sprintf("malformed coordinate string `%s' (expected chrom:start-end with start < end)", e.Coord)
}

// MalformedBedRowError indicates a bed row with fewer than three fields
// or non-numeric start/end positions.
type MalformedBedRowError struct {
  Filename string
  Line     int
}

func (e MalformedBedRowError) Error() string {
  return fmt.Sprintf("%s: malformed bed row at line %d", e.Filename, e.Line)
}

// ConflictingInputError indicates that more than one of the mutually
// exclusive viewpoint sources was supplied.
type ConflictingInputError struct {
  Sources []string
}

func (e ConflictingInputError) Error() string {
  return fmt.Sprintf("conflicting viewpoint sources: %s are mutually exclusive", strings.Join(e.Sources, ", "))
}

/* extraction errors (recovered per combination)
 * -------------------------------------------------------------------------- */

// UnknownSeqnameError indicates a viewpoint on a chromosome that does not
// exist in the matrix genome.
type UnknownSeqnameError struct {
  Seqname string
}

func (e UnknownSeqnameError) Error() string {
  return fmt.Sprintf("sequence `%s' not found", e.Seqname)
}

// OutOfBoundsError indicates a viewpoint position beyond the end of its
// chromosome.
type OutOfBoundsError struct {
  Seqname  string
  Position int
}

func (e OutOfBoundsError) Error() string {
  return fmt.Sprintf("position %d is outside the bounds of sequence `%s'", e.Position, e.Seqname)
}

// ViewpointOutOfRangeError indicates that the viewpoint bin lies outside
// the matrix bin range for its chromosome at the requested resolution.
type ViewpointOutOfRangeError struct {
  Seqname    string
  Bin        int
  Resolution int
}

func (e ViewpointOutOfRangeError) Error() string {
  return fmt.Sprintf("viewpoint bin %d is outside the matrix bin range of sequence `%s' at resolution %d", e.Bin, e.Seqname, e.Resolution)
}

// UnknownResolutionError indicates that a contact file does not provide
// data at the requested resolution.
type UnknownResolutionError struct {
  Filename   string
  Resolution int
}

func (e UnknownResolutionError) Error() string {
  return fmt.Sprintf("%s: no matrix available at resolution %d", e.Filename, e.Resolution)
}

// MissingWeightsError indicates that balanced values were requested at a
// resolution for which no balancing weights are available.
type MissingWeightsError struct {
  Seqname    string
  Resolution int
}

func (e MissingWeightsError) Error() string {
  return fmt.Sprintf("no balancing weights for sequence `%s' at resolution %d", e.Seqname, e.Resolution)
}

/* normalization errors (recovered per combination)
 * -------------------------------------------------------------------------- */

// ZeroViewpointNormalizationError indicates that self-normalization was
// requested but the value at the viewpoint bin is zero or NaN.
type ZeroViewpointNormalizationError struct {
  Bin int
}

func (e ZeroViewpointNormalizationError) Error() string {
  return fmt.Sprintf("cannot self-normalize: value at viewpoint bin %d is zero or NaN", e.Bin)
}
