// Package apperror is the error taxonomy every route boundary maps to.
// Services return these; controllers and the error-handler middleware turn
// them into HTTP responses without leaking internal detail.
package apperror

import "errors"

type Kind int

const (
	KindInternal   Kind = iota // unclassified; 500, generic message
	KindValidation             // missing/empty required input; 400
	KindConflict               // duplicate username/email; 400
	KindAuth                   // bad credentials or missing session; 401
	KindNotFound               // lookup yielded nothing; route decides 404 vs soft 200
	KindUpstream               // external AI or store failure; 500, generic message
)

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
	return "internal error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Upstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: msg, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf classifies err; anything that is not an *Error is internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err classifies as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
