package tag

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedTag = errors.New("malformed tag")
	ErrNoExtensions = errors.New("empty extension set")
)

// MalformedTagError reports a START marker with no matching END
// before end of file. It aborts the whole extraction run: a dropped
// tag would make the downstream diff silently wrong.
type MalformedTagError struct {
	File      string
	Name      string
	StartLine int
}

func (e *MalformedTagError) Unwrap() error {
	return ErrMalformedTag
}

func (e *MalformedTagError) Error() string {
	return fmt.Sprintf("%s: [START %s] at %s:%d has no matching [END %s]",
		ErrMalformedTag.Error(), e.Name, e.File, e.StartLine, e.Name)
}
