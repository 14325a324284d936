// core/fasta/reader.go
package fasta

import "io"

// Record represents a parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// ReadAll parses every record from r.
func ReadAll(r io.Reader, name string) ([]Record, error) {
	var out []Record
	err := Scan(r, name, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile opens path (see Open) and parses every record. The file is
// closed before returning, on success and on failure.
func ReadFile(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadAll(rc, path)
}
