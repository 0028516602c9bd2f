// Package apperr classifies domain failures so the HTTP boundary can translate
// them in one place. Services raise errors at the point of detection; handlers
// never inspect message strings.
package apperr

import "errors"

type Kind int

const (
	// KindInternal is the default for anything unclassified. Detail is logged,
	// never returned to the caller.
	KindInternal Kind = iota
	// KindValidation covers malformed or missing input.
	KindValidation
	// KindBusinessRule covers domain constraint failures: duplicate title,
	// duplicate review, self-like, weak password, identity already taken.
	KindBusinessRule
	// KindNotFound covers lookups of missing books/reviews/comments/users.
	KindNotFound
	// KindForbidden covers acting users that are neither resource author nor admin.
	KindForbidden
)

// Error carries a user-facing message and its classification.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error   { return New(KindValidation, message) }
func BusinessRule(message string) *Error { return New(KindBusinessRule, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }

// Wrap attaches a classification to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the classification of err, KindInternal if it has none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
