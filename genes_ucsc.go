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

import "database/sql"
import "fmt"

import _ "github.com/go-sql-driver/mysql"

/* import genes from ucsc
 * -------------------------------------------------------------------------- */

// Genome assemblies served by the UCSC public database that can be used
// for gene name resolution.
var ucscAssemblies = map[string]bool{
  "hg19": true,
  "hg38": true,
  "mm9" : true,
  "mm10": true,
}

// Check if the given assembly tag is recognized. Returns an
// UnsupportedAssemblyError otherwise.
func CheckAssembly(assembly string) error {
  if !ucscAssemblies[assembly] {
    return UnsupportedAssemblyError{assembly}
  }
  return nil
}

// Import gene annotations from the UCSC public MySQL server. The assembly
// tag selects the database, table is usually `refGene'.
func ImportGenesFromUCSC(assembly, table string) (Genes, error) {
  genes := Genes{}

  if err := CheckAssembly(assembly); err != nil {
    return genes, err
  }

  /* variables for storing a single database row */
  var i_name, i_seqname, i_strand string
  var i_txFrom, i_txTo int

  names    := []string{}
  seqnames := []string{}
  txFrom   := []int{}
  txTo     := []int{}
  strand   := []byte{}
  seen     := map[string]bool{}

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", assembly))
  if err != nil {
    return genes, err
  }
  defer db.Close()

  err = db.Ping()
  if err != nil {
    return genes, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT name2, chrom, strand, txStart, txEnd FROM %s", table))
  if err != nil {
    return genes, err
  }
  defer rows.Close()
  for rows.Next() {
    err := rows.Scan(&i_name, &i_seqname, &i_strand, &i_txFrom, &i_txTo)
    if err != nil {
      return genes, err
    }
    // keep the first transcript of each gene
    if seen[i_name] {
      continue
    }
    seen[i_name] = true
    names    = append(names,    i_name)
    seqnames = append(seqnames, i_seqname)
    txFrom   = append(txFrom,   i_txFrom)
    txTo     = append(txTo,     i_txTo)
    strand   = append(strand,   i_strand[0])
  }
  return NewGenes(names, seqnames, txFrom, txTo, strand), nil
}
