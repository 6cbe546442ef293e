package core

import (
	"errors"
)

type Kind int

const (
	KindInternal Kind = iota
	KindConflict
	KindUnauthorized
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is the only error type the service hands to its callers. Message is safe to show
// to clients; for internal errors it is empty and the wrapped error text is used instead.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidCredentials = &Error{Kind: KindUnauthorized, Message: "Invalid username or password"}
	ErrUserExists         = &Error{Kind: KindConflict, Message: "Username or email already exists"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "User not found"}
)

// KindOf reports the kind of err, treating anything that is not an *Error as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}
