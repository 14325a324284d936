// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
)

// valid holds the IUPAC nucleotide symbols accepted in sequence lines.
var valid [256]bool

func init() {
	for _, c := range []byte("ACGTRYSWKMBDHVN") {
		valid[c] = true
		valid[c+'a'-'A'] = true
	}
}

// Scan parses FASTA from r and calls emit once per record, in input order.
// The identifier is the full header text after '>' with trailing blanks
// removed. Multi-line sequences are joined and uppercased.
//
// name is only used in error messages. Malformed input yields *ParseError;
// an error returned by emit stops the scan and is returned unchanged.
func Scan(r io.Reader, name string, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id      string
		idLine  int
		inRec   bool
		seq     = make([]byte, 0, 256)
		ln      int
		parseAt = func(msg string) error { return &ParseError{Path: name, Line: ln, Msg: msg} }
	)

	flush := func() error {
		if !inRec {
			return nil
		}
		if len(seq) == 0 {
			return &ParseError{Path: name, Line: idLine, Msg: "record " + strconv.Quote(id) + " has an empty sequence"}
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		ln++
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			hdr := bytes.TrimRight(line[1:], " \t\r")
			if len(hdr) == 0 {
				return parseAt("empty sequence identifier")
			}
			id, idLine, inRec = string(hdr), ln, true
			seq = seq[:0]
			continue
		}
		if !inRec {
			return parseAt("sequence data before first '>' header")
		}
		line = bytes.TrimSpace(line)
		for _, c := range line {
			if !valid[c] {
				return parseAt("invalid sequence symbol " + strconv.Quote(string(c)))
			}
		}
		seq = append(seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return &ParseError{Path: name, Line: ln + 1, Msg: "fasta scan", Err: err}
	}
	return flush()
}

