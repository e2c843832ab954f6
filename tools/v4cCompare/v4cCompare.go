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
import   "strings"

import   "github.com/pborman/getopt"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

import . "github.com/zoechen0717/V4C"

/* -------------------------------------------------------------------------- */

type Config struct {
  Scale   bool
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

func profileXYs(config Config, profile ContactProfile) plotter.XYs {
  values := profile.Values
  if config.Scale {
    // rescaling profiles from different experiments to [0, 1] makes
    // their shapes comparable
    values, _ = Normalize(values, NormMinMax, 0)
  }
  coordinates := profile.BinCoordinates()

  xy := plotter.XYs{}
  for i, value := range values {
    if math.IsNaN(value) {
      continue
    }
    xy = append(xy, plotter.XY{X: float64(coordinates[i]), Y: value})
  }
  return xy
}

func compare(config Config, filenamesIn []string, filenameOut string) {
  p := plot.New()
  p.Title.Text   = "Virtual 4C Comparison"
  p.X.Label.Text = "Genomic Position (bp)"
  p.Y.Label.Text = "Hi-C Contact Frequency"
  p.Y.Min        = 0.0
  p.Y.Max        = config.YLim

  args := []interface{}{}
  for _, filename := range filenamesIn {
    PrintStderr(config, 1, "Reading table `%s'... ", filename)
    profiles, err := ImportProfileTable(filename)
    if err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")

    for _, profile := range profiles {
      label := profile.Matrix
      if profile.Name != "" {
        label = fmt.Sprintf("%s %s", profile.Matrix, profile.Name)
      }
      args = append(args, label, profileXYs(config, profile))
    }
  }
  if err := plotutil.AddLines(p, args...); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(10*vg.Inch, 6*vg.Inch, filenameOut); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote plot to `%s'\n", filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}

  options := getopt.New()

  optYLim    := options. StringLong("ylim",     0 , "1.0", "maximum y-axis value [default: 1.0]")
  optNoScale := options.   BoolLong("no-scale", 0 ,        "do not rescale profiles to [0, 1]")
  optHelp    := options.   BoolLong("help",    'h',        "print help")
  optVerbose := options.CounterLong("verbose", 'v',        "be verbose")

  options.SetParameters("<INPUT.tsv,INPUT.tsv,...> <OUTPUT.pdf>")
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
  config.Scale   = !*optNoScale
  config.Verbose = *optVerbose

  compare(config, strings.Split(options.Args()[0], ","), options.Args()[1])
}
