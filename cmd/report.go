package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/seqalign/config"
	"github.com/katalvlaran/seqalign/nw"
)

// report is the printable outcome of one alignment.
type report struct {
	seq1, seq2 string
	res        nw.Result
	grid       *nw.Grid // nil unless requested
}

type jsonReport struct {
	Score int     `json:"score"`
	Seq1  string  `json:"seq1"`
	Seq2  string  `json:"seq2"`
	Grid  [][]int `json:"grid,omitempty"`
}

func (r report) write(w io.Writer, format string) error {
	if format == config.FormatJSON {
		return r.writeJSON(w)
	}
	if r.grid != nil {
		fmt.Fprintln(w, "Alignment Grid:")
		if err := r.grid.Format(w, r.seq1, r.seq2); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	_, err := fmt.Fprintf(w, "Optimal Alignment Score: %d\n\nAligned Sequences:\n%s\n%s\n",
		r.res.Score, r.res.Alignment.Seq1, r.res.Alignment.Seq2)
	return err
}

func (r report) writeJSON(w io.Writer) error {
	out := jsonReport{
		Score: r.res.Score,
		Seq1:  r.res.Alignment.Seq1,
		Seq2:  r.res.Alignment.Seq2,
	}
	if r.grid != nil {
		out.Grid = make([][]int, r.grid.Rows())
		for i := range out.Grid {
			out.Grid[i] = r.grid.Row(i)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
