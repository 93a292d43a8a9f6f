package app

import "github.com/llehouerou/chorus/internal/errmsg"

// Error is a failure that ends the terminal UI, such as a dataset that can no
// longer be read.
type Error struct {
	Op      errmsg.Op
	Subject string
	Err     error
}

func (e *Error) Error() string {
	return errmsg.FormatWith(e.Op, e.Subject, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
