// core/adapters/report.go
package adapters

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// ColumnWidth is the width of the identifier column in WriteTable.
const ColumnWidth = 23

// WriteTable prints bars as a two-column table headed by label:
//
//	Adapter:               Sequence:
//	ad1                    ACGT
//
// Identifiers wider than the column keep a two-space gap. The table ends
// with a blank line.
func WriteTable(w io.Writer, label string, bars []Bar) error {
	bw := bufio.NewWriter(w)

	n := utf8.RuneCountInString(label) + 1
	if n+2 > ColumnWidth {
		n = ColumnWidth - 2
	}
	bw.WriteString(label)
	bw.WriteString(":")
	bw.WriteString(strings.Repeat(" ", ColumnWidth-n))
	bw.WriteString("Sequence:\n")

	for _, b := range bars {
		pad := ColumnWidth - utf8.RuneCountInString(b.ID)
		if pad < 2 {
			pad = 2
		}
		bw.WriteString(b.ID)
		bw.WriteString(strings.Repeat(" ", pad))
		bw.WriteString(b.Seq)
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
