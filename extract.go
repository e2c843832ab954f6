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
import "os"

/* -------------------------------------------------------------------------- */

type ExtractConfig struct {
  // flank size in base pairs extended around the viewpoint anchor
  Flank         int
  // request balanced instead of raw contact values
  Balance       bool
  Normalization NormalizationMode
  // anchor profiles at the interval midpoint instead of the From position
  FixedCenter   bool
  Verbose       int
}

func DefaultExtractConfig() ExtractConfig {
  return ExtractConfig{
    Flank        : 500000,
    Balance      : true,
    Normalization: NormMinMax }
}

func (config ExtractConfig) PrintStderr(level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

// The extracted, normalized contact profile of a single viewpoint at a
// single matrix and resolution. From and To are the bin-aligned bounds of
// the extracted window, so that the genomic start coordinate of value i is
// From + i*Resolution. NaN values mark masked bins; they are kept in place
// to preserve position alignment.
type ContactProfile struct {
  Matrix     string
  Resolution int
  Seqname    string
  From, To   int
  Name       string
  Values     []float64
}

// Genomic start coordinate of each bin of the profile.
func (profile ContactProfile) BinCoordinates() []int {
  coordinates := make([]int, len(profile.Values))
  for i := 0; i < len(profile.Values); i++ {
    coordinates[i] = profile.From + i*profile.Resolution
  }
  return coordinates
}

/* profile extraction
 * -------------------------------------------------------------------------- */

// Extract the contact profile of a single viewpoint from a single matrix.
// The flank range is centered on the anchor bin so that an unclipped
// profile spans exactly 2*ceil(flank/resolution) bins; at chromosome
// boundaries the range is clipped silently and the profile is shorter.
func ExtractProfile(matrix ContactMatrix, matrixName string, viewpoint Viewpoint, config ExtractConfig) (ContactProfile, error) {
  profile := ContactProfile{}
  binsize := matrix.Resolution()

  window, err := NewFlankWindow(viewpoint, config.Flank, config.FixedCenter, matrix.Genome())
  if err != nil {
    return profile, err
  }
  length, err := matrix.Genome().SeqLength(viewpoint.Seqname)
  if err != nil {
    return profile, err
  }
  numBins, err := matrix.NumBins(viewpoint.Seqname)
  if err != nil {
    return profile, err
  }
  anchorBin := BinIndex(viewpoint.Anchor(config.FixedCenter), binsize)
  if anchorBin >= numBins {
    return profile, ViewpointOutOfRangeError{viewpoint.Seqname, anchorBin, binsize}
  }
  flankBins := divIntUp(config.Flank, binsize)
  binFrom   := iMax(0,         anchorBin - flankBins)
  binTo     := iMin(numBins-1, anchorBin + flankBins - 1)

  values, err := matrix.Row(window.Seqname, anchorBin, binFrom, binTo, config.Balance)
  if err != nil {
    return profile, err
  }
  values, err = Normalize(values, config.Normalization, anchorBin - binFrom)
  if err != nil {
    return profile, err
  }
  profile.Matrix     = matrixName
  profile.Resolution = binsize
  profile.Seqname    = viewpoint.Seqname
  profile.From       = binFrom*binsize
  profile.To         = iMin((binTo+1)*binsize, length)
  profile.Name       = viewpoint.Name
  profile.Values     = values

  return profile, nil
}

/* error classification
 * -------------------------------------------------------------------------- */

// Errors recovered per combination: the affected (matrix, resolution,
// viewpoint) combination is skipped with a warning while the rest of the
// batch continues.
func recoverable(err error) bool {
  switch err.(type) {
  case UnknownSeqnameError:
    return true
  case OutOfBoundsError:
    return true
  case ViewpointOutOfRangeError:
    return true
  case MissingWeightsError:
    return true
  case ZeroViewpointNormalizationError:
    return true
  }
  return false
}

/* orchestration
 * -------------------------------------------------------------------------- */

// Extract one contact profile per (matrix, resolution, viewpoint)
// combination, iterating matrices in the outer loop, then resolutions,
// then viewpoints. The ordering is deterministic to keep output tables
// reproducible. Recoverable failures are logged to stderr and the
// combination skipped; any other failure from the matrix service abandons
// the remaining combinations of the current file only.
func Extract(config ExtractConfig, files []ContactFile, resolutions []int, viewpoints []Viewpoint) []ContactProfile {
  profiles := []ContactProfile{}

  for _, file := range files {
  fileLoop:
    for _, resolution := range resolutions {
      matrix, err := file.Open(resolution)
      if err != nil {
        fmt.Fprintf(os.Stderr, "Warning: skipping %s at resolution %d: %v\n", file.Name(), resolution, err)
        continue
      }
      for _, viewpoint := range viewpoints {
        config.PrintStderr(1, "Extracting %s from `%s' at resolution %d... ", viewpoint.String(), file.Name(), resolution)
        profile, err := ExtractProfile(matrix, file.Name(), viewpoint, config)
        if err != nil {
          config.PrintStderr(1, "failed\n")
          if recoverable(err) {
            fmt.Fprintf(os.Stderr, "Warning: skipping %s in `%s' at resolution %d: %v\n", viewpoint.String(), file.Name(), resolution, err)
            continue
          }
          fmt.Fprintf(os.Stderr, "Warning: abandoning `%s': %v\n", file.Name(), err)
          break fileLoop
        }
        config.PrintStderr(1, "done\n")
        profiles = append(profiles, profile)
      }
    }
  }
  return profiles
}

// Extract profiles from a set of contact table files. Each file is opened
// read-only for the duration of its own extraction pass and closed before
// the next file is touched, also on per-region failures. A file that
// cannot be opened or parsed aborts the run.
func ExtractFiles(config ExtractConfig, filenames []string, resolutions []int, viewpoints []Viewpoint, threads int) ([]ContactProfile, error) {
  profiles := []ContactProfile{}

  for _, filename := range filenames {
    config.PrintStderr(1, "Reading contact matrix `%s'... ", filename)
    file, err := OpenContactFile(filename)
    if err != nil {
      config.PrintStderr(1, "failed\n")
      return nil, err
    }
    config.PrintStderr(1, "done\n")
    file.Threads = threads

    profiles = append(profiles, Extract(config, []ContactFile{file}, resolutions, viewpoints)...)

    file.Close()
  }
  return profiles, nil
}
