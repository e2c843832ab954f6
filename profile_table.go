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
import "bytes"
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Profiles are exported as a tab separated table with one row per profile:
//
//   mcool  res  chrom  start  end  name  <value> <value> ...
//
// start and end are the bin-aligned window bounds, which makes every row
// self-describing: the genomic start coordinate of value column i is
// start + i*res. The header names the value columns with the bin start
// coordinates of the first profile; profiles with other windows or
// resolutions recompute their coordinates from start and res. The name
// column is empty when no label is available. NaN values are written as
// the literal `NaN' so that the table round trips losslessly.

/* export
 * -------------------------------------------------------------------------- */

func WriteProfileTable(w io.Writer, profiles []ContactProfile) error {
  // print header
  if _, err := fmt.Fprintf(w, "mcool\tres\tchrom\tstart\tend\tname"); err != nil {
    return err
  }
  if len(profiles) > 0 {
    for _, coordinate := range profiles[0].BinCoordinates() {
      if _, err := fmt.Fprintf(w, "\t%d", coordinate); err != nil {
        return err
      }
    }
  }
  if _, err := fmt.Fprintf(w, "\n"); err != nil {
    return err
  }
  // print data
  for _, profile := range profiles {
    if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%s",
      profile.Matrix,
      profile.Resolution,
      profile.Seqname,
      profile.From,
      profile.To,
      profile.Name); err != nil {
      return err
    }
    for _, value := range profile.Values {
      if _, err := fmt.Fprintf(w, "\t%s", strconv.FormatFloat(value, 'g', -1, 64)); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func ExportProfileTable(filename string, profiles []ContactProfile, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := WriteProfileTable(w, profiles); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

/* import
 * -------------------------------------------------------------------------- */

func ReadProfileTable(r io.Reader) ([]ContactProfile, error) {
  scanner  := bufio.NewScanner(r)
  profiles := []ContactProfile{}

  // skip header
  if !scanner.Scan() {
    if err := scanner.Err(); err != nil {
      return nil, err
    }
    return profiles, nil
  }
  for line := 2; scanner.Scan(); line++ {
    text := scanner.Text()
    if len(strings.TrimSpace(text)) == 0 {
      continue
    }
    // split on tabs to preserve empty name columns
    fields := strings.Split(text, "\t")
    if len(fields) < 6 {
      return nil, fmt.Errorf("invalid profile table row at line %d", line)
    }
    resolution, e1 := strconv.ParseInt(fields[1], 10, 64)
    from      , e2 := strconv.ParseInt(fields[3], 10, 64)
    to        , e3 := strconv.ParseInt(fields[4], 10, 64)
    if e1 != nil || e2 != nil || e3 != nil {
      return nil, fmt.Errorf("invalid profile table row at line %d", line)
    }
    values := make([]float64, len(fields)-6)
    for i := 6; i < len(fields); i++ {
      v, err := strconv.ParseFloat(fields[i], 64)
      if err != nil {
        return nil, fmt.Errorf("invalid value at line %d: %v", line, err)
      }
      values[i-6] = v
    }
    profiles = append(profiles, ContactProfile{
      Matrix    : fields[0],
      Resolution: int(resolution),
      Seqname   : fields[2],
      From      : int(from),
      To        : int(to),
      Name      : fields[5],
      Values    : values })
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  return profiles, nil
}

func ImportProfileTable(filename string) ([]ContactProfile, error) {
  var reader io.Reader
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
    reader = g
  } else {
    reader = f
  }
  return ReadProfileTable(reader)
}
