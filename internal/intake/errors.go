package intake

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDrugName = errors.New("drug name is empty")
	ErrNotPositive   = errors.New("tablets, doses and days must be greater than 0")
	ErrNegativeCost  = errors.New("cost per tablet is negative")
	ErrTooLarge      = errors.New("total quantity exceeds the supported range")
	errNotFinite     = errors.New("not a finite number")
)

// ParseError reports a field whose text is not a valid number.
type ParseError struct {
	Field Field
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
