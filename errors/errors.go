package errors

import (
	"fmt"
)

type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// Default code defines the code that will be used by default when
// none is given. It is set to 500, Internal Server Error
var DefaultCode = 500

type myError struct {
	code  int
	msg   string
	cause *myError
}

func (err *myError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *myError) Code() int {
	return err.code
}

func (err *myError) Message() string {
	return err.msg
}

func (err *myError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

type ErrorEnricher func(error) error

func WithCode(code int) func(error) error {
	return func(err error) error {
		switch err := err.(type) {
		case nil:
			return nil
		case *myError:
			err.code = code
			return err
		}

		// default
		return &myError{
			msg:   err.Error(),
			code:  code,
			cause: nil,
		}
	}
}

// WithCause sets cause as the cause of the error. A nil cause leaves the
// error unchanged.
func WithCause(cause error) func(error) error {
	if cause == nil {
		return func(err error) error { return err }
	}

	var myCause *myError
	switch cause := cause.(type) {
	case *myError:
		myCause = cause
	case Error:
		myCause = &myError{msg: cause.Error(), code: cause.Code(), cause: nil}
	default:
		myCause = &myError{msg: cause.Error(), code: DefaultCode, cause: nil}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if myErr, ok := err.(*myError); ok {
			myErr.cause = myCause
			return myErr
		}

		return &myError{
			msg:   err.Error(),
			code:  myCause.code,
			cause: myCause,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error
	err = &myError{
		msg:   msg,
		code:  DefaultCode,
		cause: nil,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

// Fallback normalizes err for display: the result always carries a non empty
// message. When err is an Error with a message it is returned untouched,
// otherwise msg is used and err becomes the cause.
func Fallback(err error, msg string) error {
	if err == nil {
		return nil
	}

	if e, ok := err.(Error); ok && e.Message() != "" {
		return err
	}

	code := DefaultCode
	if e, ok := err.(Error); ok {
		code = e.Code()
	}
	return New(msg, WithCause(err), WithCode(code))
}
