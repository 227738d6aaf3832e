// Wrappers around testify assertions so tests keep a stable import.
package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func NoError(t *testing.T, err error, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.NoError(t, err, msgAndArgs...)
}

func Error(t *testing.T, err error, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.Error(t, err, msgAndArgs...)
}

func ErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.ErrorIs(t, err, target, msgAndArgs...)
}

func Equal(t *testing.T, expected, actual interface{},
	msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.Equal(t, expected, actual, msgAndArgs...)
}

func True(t *testing.T, value bool, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.True(t, value, msgAndArgs...)
}

func False(t *testing.T, value bool, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.False(t, value, msgAndArgs...)
}

func Nil(t *testing.T, object interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.Nil(t, object, msgAndArgs...)
}

func NotNil(t *testing.T, object interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.NotNil(t, object, msgAndArgs...)
}

func Contains(t *testing.T, s, contains interface{},
	msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.Contains(t, s, contains, msgAndArgs...)
}
