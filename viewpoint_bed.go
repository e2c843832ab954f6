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
import "os"
import "strconv"
import "strings"

/* import viewpoints from bed files
 * -------------------------------------------------------------------------- */

// Import viewpoints from a bed file. Rows with three columns yield
// unnamed viewpoints; rows with four or more columns take the fourth
// column as the viewpoint name. Returns a MalformedBedRowError on rows
// with fewer than three fields, non-numeric positions, or start >= end.
func ReadBedViewpoints(filename string) ([]Viewpoint, error) {
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

  viewpoints := []Viewpoint{}

  for line := 1; scanner.Scan(); line++ {
    text := scanner.Text()
    if len(strings.TrimSpace(text)) == 0 {
      continue
    }
    // skip track definition and browser lines
    if strings.HasPrefix(text, "track") || strings.HasPrefix(text, "browser") || strings.HasPrefix(text, "#") {
      continue
    }
    fields := strings.Fields(text)
    if len(fields) < 3 {
      return nil, MalformedBedRowError{filename, line}
    }
    t1, e1 := strconv.ParseInt(fields[1], 10, 64)
    t2, e2 := strconv.ParseInt(fields[2], 10, 64)
    if e1 != nil || e2 != nil {
      return nil, MalformedBedRowError{filename, line}
    }
    if t1 < 0 || t1 >= t2 {
      return nil, MalformedBedRowError{filename, line}
    }
    name := ""
    if len(fields) >= 4 {
      name = fields[3]
    }
    viewpoints = append(viewpoints, NewViewpoint(fields[0], int(t1), int(t2), name))
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  return viewpoints, nil
}
