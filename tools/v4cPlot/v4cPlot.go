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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "math"
import   "os"
import   "path/filepath"
import   "strings"

import   "github.com/pborman/getopt"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

import . "github.com/zoechen0717/V4C"

/* -------------------------------------------------------------------------- */

type Config struct {
  YLim    float64
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func profileXYs(profile ContactProfile) plotter.XYs {
  coordinates := profile.BinCoordinates()

  xy := plotter.XYs{}
  for i, value := range profile.Values {
    // gaps from masked bins are dropped from the line
    if math.IsNaN(value) {
      continue
    }
    xy = append(xy, plotter.XY{X: float64(coordinates[i]), Y: value})
  }
  return xy
}

func plotMatrix(config Config, matrix string, profiles []ContactProfile, filename string) {
  p := plot.New()
  p.Title.Text   = fmt.Sprintf("Virtual 4C - %s", matrix)
  p.X.Label.Text = "Genomic Position (bp)"
  p.Y.Label.Text = "Hi-C Contact Frequency"
  p.Y.Min        = 0.0
  p.Y.Max        = config.YLim

  args := []interface{}{}
  for _, profile := range profiles {
    label := fmt.Sprintf("Resolution %d", profile.Resolution)
    if profile.Name != "" {
      label = fmt.Sprintf("%s (Resolution %d)", profile.Name, profile.Resolution)
    }
    args = append(args, label, profileXYs(profile))
  }
  if err := plotutil.AddLines(p, args...); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(10*vg.Inch, 6*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote plot to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func plotProfiles(config Config, filenameIn, basename string) {
  profiles, err := ImportProfileTable(filenameIn)
  if err != nil {
    log.Fatal(err)
  }
  if len(profiles) == 0 {
    log.Fatal("no profiles found in input table")
  }
  // group profiles by matrix, one plot per matrix
  matrices := []string{}
  groups   := map[string][]ContactProfile{}
  for _, profile := range profiles {
    if _, ok := groups[profile.Matrix]; !ok {
      matrices = append(matrices, profile.Matrix)
    }
    groups[profile.Matrix] = append(groups[profile.Matrix], profile)
  }
  for _, matrix := range matrices {
    tag := strings.TrimSuffix(filepath.Base(matrix), filepath.Ext(matrix))
    plotMatrix(config, matrix, groups[matrix], fmt.Sprintf("%s.%s.pdf", basename, tag))
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}

  options := getopt.New()

  optYLim    := options. StringLong("ylim",    0 , "0.4", "maximum y-axis value [default: 0.4]")
  optHelp    := options.   BoolLong("help",   'h',        "print help")
  optVerbose := options.CounterLong("verbose",'v',        "be verbose")

  options.SetParameters("<INPUT.tsv> <OUTPUT-BASENAME>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if _, err := fmt.Sscanf(*optYLim, "%f", &config.YLim); err != nil {
    log.Fatalf("parsing ylim failed: %v", err)
  }
  config.Verbose = *optVerbose

  plotProfiles(config, options.Args()[0], options.Args()[1])
}
