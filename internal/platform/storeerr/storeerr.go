// Package storeerr carries the typed failure kinds surfaced by the storage
// layer: validation, uniqueness, foreign key, not found, and token
// exhaustion. Callers branch on Kind rather than on engine-specific errors.
package storeerr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Kind string

const (
	KindValidation     Kind = "validation"
	KindUniqueness     Kind = "uniqueness"
	KindForeignKey     Kind = "foreign_key"
	KindNotFound       Kind = "not_found"
	KindTokenExhausted Kind = "token_exhausted"
)

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind of err, or "" when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Classify wraps GORM's translated errors with the matching Kind. The engine
// must be opened with TranslateError so dialect errors arrive normalized.
// Errors that already carry a Kind, and unrecognized errors, pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return New(KindNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return New(KindUniqueness, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return New(KindForeignKey, err)
	}
	return err
}
