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

// A contact matrix holds Hi-C contact counts for a single resolution,
// binned along each chromosome. Bin i covers the genomic interval
// [i*Resolution, (i+1)*Resolution); a partial bin at the chromosome end
// counts as a full bin.
type ContactMatrix interface {
  // Chromosome names and sizes of the matrix.
  Genome() Genome
  // Bin size in base pairs.
  Resolution() int
  // Number of bins on the given chromosome.
  NumBins(seqname string) (int, error)
  // Dense row of contact values between the anchor bin and every bin in
  // the inclusive range [binFrom, binTo], in ascending genomic order. If
  // balance is set, values are corrected with the balancing weights
  // (value * w[anchor] * w[j]); masked bins yield NaN, never zero. Raw
  // values report plain counts, where zero is a legitimate observation.
  Row(seqname string, anchorBin, binFrom, binTo int, balance bool) ([]float64, error)
}

// A contact file provides matrices of the same experiment at multiple
// resolutions. Implementations must be safe to Close after every Open,
// regardless of per-region failures during extraction.
type ContactFile interface {
  Name() string
  Resolutions() []int
  Open(resolution int) (ContactMatrix, error)
  Close() error
}

/* bin mapping
 * -------------------------------------------------------------------------- */

// Index of the bin containing the given position.
func BinIndex(position, binsize int) int {
  if position < 0 {
    panic("BinIndex(): negative position")
  }
  return position/binsize
}
