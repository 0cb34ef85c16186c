package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Join combines errors so callers can test any of them with errors.Is.
func Join(errors ...error) error {
	return cr.Join(errors...)
}
