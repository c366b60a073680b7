package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCategory   = errors.New("content: unknown category")
	ErrRecordIDRequired  = errors.New("content: record id is required")
	ErrDraftCategorySkew = errors.New("content: draft variant does not match its category tag")
)

// UnknownCategoryError carries the offending discriminant value for decode and
// dispatch failures. These are programmer or contract errors, not user input
// problems.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	if e == nil || strings.TrimSpace(e.Category) == "" {
		return ErrUnknownCategory.Error()
	}
	return fmt.Sprintf("%s: %q", ErrUnknownCategory.Error(), e.Category)
}

func (e *UnknownCategoryError) Unwrap() error {
	return ErrUnknownCategory
}
