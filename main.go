// Command seqalign computes optimal global alignments of two sequences.
//
//	seqalign align ACGTAGCTAG ACGTTAGCTAG
//	seqalign align GATTACA GCATGCU --match=2 --gap=-2 --format json
//	seqalign grid AC AG
package main

import "github.com/katalvlaran/seqalign/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
