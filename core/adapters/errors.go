// core/adapters/errors.go
package adapters

import (
	"errors"
	"fmt"

	"seqload/core/fasta"
)

// Load failures. Every error returned by Loader.Load matches exactly one of
// ErrOpen, ErrParse or ErrDuplicateID through errors.Is.
type (
	OpenError  = fasta.OpenError
	ParseError = fasta.ParseError
)

var (
	ErrOpen        = fasta.ErrOpen
	ErrParse       = fasta.ErrParse
	ErrDuplicateID = errors.New("duplicate sequence identifier")

	ErrUnknownPreset = errors.New("unknown adapter preset")
)

// DuplicateIdentifierError reports two records of one batch sharing an
// identifier. Appended counts the bars that reached the store before the
// duplicate was found (always 0 for transactional loads).
type DuplicateIdentifierError struct {
	Role     Role
	ID       string
	Source   string
	Appended int
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("two %s have the same name %q in %s; please use unique names",
		e.Role.Plural(), e.ID, e.Source)
}

func (e *DuplicateIdentifierError) Is(target error) bool { return target == ErrDuplicateID }

// IsFatal reports whether err belongs to the load failure taxonomy.
func IsFatal(err error) bool {
	return errors.Is(err, ErrOpen) || errors.Is(err, ErrParse) || errors.Is(err, ErrDuplicateID)
}
