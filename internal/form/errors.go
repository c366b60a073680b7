package form

import "errors"

var (
	// ErrCategoryImmutable rejects category switches outside create mode.
	ErrCategoryImmutable = errors.New("form: category is immutable once a record exists")
	// ErrSubmitInFlight rejects a submit while an earlier one is still running.
	ErrSubmitInFlight = errors.New("form: submit already in flight")
	// ErrFieldMismatch flags a setter called for a field the draft's category
	// does not define. This is a programmer error, not user input.
	ErrFieldMismatch = errors.New("form: field not defined for draft category")
	// ErrUnknownItem flags a banner item key that is not in the draft.
	ErrUnknownItem = errors.New("form: unknown banner item key")
)
