package errors

import (
	"fmt"
)

// Error carries an HTTP-ish code alongside the message so transport layers
// can map service failures to a status without inspecting text.
type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode is used when no enricher sets a code. 500, Internal Server
// Error.
var DefaultCode = 500

type codedError struct {
	code  int
	msg   string
	cause *codedError
}

func (err *codedError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *codedError) Code() int {
	return err.code
}

func (err *codedError) Message() string {
	return err.msg
}

func (err *codedError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

type ErrorEnricher func(error) error

func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if err, ok := err.(*codedError); ok {
			err.code = code
			return err
		}

		return &codedError{
			msg:  err.Error(),
			code: code,
		}
	}
}

func WithCause(cause error) ErrorEnricher {
	var inner *codedError
	switch cause := cause.(type) {
	case *codedError:
		inner = cause
	default:
		inner = &codedError{msg: cause.Error(), code: DefaultCode}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if err, ok := err.(*codedError); ok {
			err.cause = inner
			return err
		}

		return &codedError{
			msg:   err.Error(),
			code:  inner.code,
			cause: inner,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error
	err = &codedError{
		msg:  msg,
		code: DefaultCode,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}
