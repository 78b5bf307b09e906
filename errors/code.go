package errors

import (
	"net/http"
)

func BadRequest() ErrorEnricher   { return WithCode(http.StatusBadRequest) }
func Unauthorized() ErrorEnricher { return WithCode(http.StatusUnauthorized) }
func Forbidden() ErrorEnricher    { return WithCode(http.StatusForbidden) }
func NotFound() ErrorEnricher     { return WithCode(http.StatusNotFound) }

// CodeOf returns the code carried by err, DefaultCode if err is not an Error
// and 0 if err is nil.
func CodeOf(err error) int {
	switch err := err.(type) {
	case nil:
		return 0
	case Error:
		return err.Code()
	}
	return DefaultCode
}

// MessageOf returns the message that should be shown to a user for err:
// the message of an Error without its causes, or err.Error() otherwise.
func MessageOf(err error) string {
	switch err := err.(type) {
	case nil:
		return ""
	case Error:
		return err.Message()
	}
	return err.Error()
}
