package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Required("username", "testuser"))
	assert.NotNil(t, Required("username", ""))
	assert.NotNil(t, Required("username", "   "))
}

func TestMinLen(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MinLen("password", "abc", 3))
	assert.NotNil(t, MinLen("password", "ab", 3))
}

func TestErrsMessage(t *testing.T) {
	t.Parallel()

	errs := Errs{
		{Field: "username", Msg: "required"},
		{Field: "password", Msg: "required"},
	}
	assert.Equal(t, "username: required; password: required", errs.Error())
}
