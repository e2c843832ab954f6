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
import   "os"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/zoechen0717/V4C"

/* -------------------------------------------------------------------------- */

type Config struct {
  Extract ExtractConfig
  Threads int
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func parseResolutions(str string) []int {
  resolutions := []int{}
  for _, field := range strings.Split(str, ",") {
    t, err := strconv.ParseInt(field, 10, 64)
    if err != nil || t <= 0 {
      log.Fatalf("invalid resolution `%s'", field)
    }
    resolutions = append(resolutions, int(t))
  }
  return resolutions
}

func parseList(str string) []string {
  if str == "" {
    return nil
  }
  return strings.Split(str, ",")
}

/* -------------------------------------------------------------------------- */

func resolveViewpoints(config Config, source ViewpointSource) []Viewpoint {
  // resolve all viewpoints up front so that gene lookups are not repeated
  // on every matrix/resolution iteration
  PrintStderr(config, 1, "Resolving viewpoints... ")
  viewpoints, err := source.Viewpoints()
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  if len(viewpoints) == 0 {
    log.Fatal("no viewpoints resolved")
  }
  return viewpoints
}

func extract(config Config, filenames []string, resolutions []int, viewpoints []Viewpoint, filenameOut string) {
  profiles, err := ExtractFiles(config.Extract, filenames, resolutions, viewpoints, config.Threads)
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Writing table `%s'... ", filenameOut)
  if err := ExportProfileTable(filenameOut, profiles, false); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{Extract: DefaultExtractConfig()}

  options := getopt.New()

  optResolutions := options. StringLong("resolutions",      0 , "",        "comma separated list of resolutions [required]")
  optGenes       := options. StringLong("genes",            0 , "",        "comma separated list of gene names")
  optCoords      := options. StringLong("coords",           0 , "",        "comma separated list of coordinates [chrom:start-end]")
  optBed         := options. StringLong("bed",              0 , "",        "bed file with viewpoint regions")
  optGenome      := options. StringLong("genome",           0 , "",        "genome assembly for gene lookups [hg19, hg38, mm9, mm10]")
  optGenesTable  := options. StringLong("genes-table",      0 , "",        "local gene annotation table instead of the UCSC database")
  optFlank       := options.    IntLong("flank",            0 , 500000,    "flank size in bp around the viewpoint [default: 500000]")
  optNorm        := options. StringLong("normalization",    0 , "minmax",  "normalization mode [minmax (default), self, none]")
  optFixedCenter := options.   BoolLong("use-fixed-center", 0 ,            "anchor profiles at the interval midpoint")
  optNoBalance   := options.   BoolLong("no-balance",       0 ,            "use raw instead of balanced contact values")
  optNoScale     := options.   BoolLong("no-scale",         0 ,            "do not normalize profiles")
  optThreads     := options.    IntLong("threads",          0 , 1,         "number of threads for matrix aggregation")
  optOutput      := options. StringLong("output",           0 , "extracted_data.tsv", "output table")
  optHelp        := options.   BoolLong("help",            'h',            "print help")
  optVerbose     := options.CounterLong("verbose",         'v',            "be verbose")

  options.SetParameters("<MATRIX.tsv[.gz]>...")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) == 0 || *optResolutions == "" {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose         = *optVerbose
  config.Threads         = *optThreads
  config.Extract.Verbose = *optVerbose
  config.Extract.Flank   = *optFlank
  config.Extract.Balance = !*optNoBalance
  config.Extract.FixedCenter = *optFixedCenter

  if mode, err := ParseNormalizationMode(*optNorm); err != nil {
    log.Fatal(err)
  } else {
    config.Extract.Normalization = mode
  }
  if *optNoScale {
    config.Extract.Normalization = NormNone
  }

  source, err := SelectViewpointSource(
    parseList(*optGenes), *optGenome, *optGenesTable, parseList(*optCoords), *optBed)
  if err != nil {
    log.Fatal(err)
  }
  resolutions := parseResolutions(*optResolutions)
  viewpoints  := resolveViewpoints(config, source)

  extract(config, options.Args(), resolutions, viewpoints, *optOutput)
}
