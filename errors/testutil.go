package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertCode checks that err carries code. Errors that are not Error are
// expected to carry DefaultCode.
func AssertCode(t *testing.T, err error, code int) {
	t.Helper()

	switch err := err.(type) {
	case nil:
		assert.Fail(t, fmt.Sprintf("expected an error with code %d, got nil", code))
	case Error:
		assert.Equal(t, code, err.Code(), "code should be equal")
	default:
		if code != DefaultCode {
			assert.Fail(t, fmt.Sprintf("error is not Error and expected code != %d (default)", DefaultCode))
		}
	}
}

// AssertMessage checks the message a user would be shown for err.
func AssertMessage(t *testing.T, err error, msg string) {
	t.Helper()

	assert.Error(t, err)
	assert.Equal(t, msg, MessageOf(err), "message should be equal")
}
