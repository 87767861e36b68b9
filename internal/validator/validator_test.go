package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageParams struct {
	Page    int `schema:"page" validate:"gte=1"`
	Size    int `schema:"size,omitempty" validate:"gte=1,ltefield=MaxSize"`
	MaxSize int `schema:"-"`
	Unnamed string
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Validate(pageParams{Page: 1, Size: 50, MaxSize: 100}))
	require.NoError(t, v.Validate(pageParams{Page: 3, Size: 100, MaxSize: 100}))

	err := v.Validate(pageParams{Page: 0, Size: 50, MaxSize: 100})
	require.Error(t, err)
	assert.Equal(t, "page should be greater than or equal to 1", ValidationMessages(err))

	err = v.Validate(pageParams{Page: 1, Size: 101, MaxSize: 100})
	require.Error(t, err)
	assert.Equal(t, "size is too large", ValidationMessages(err))

	err = v.Validate(pageParams{Page: -1, Size: 0, MaxSize: 100})
	require.Error(t, err)
	assert.Equal(t, "page should be greater than or equal to 1 ; size should be greater than or equal to 1", ValidationMessages(err))
}

func TestVar(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Var(5, "max=10"))

	err := v.Var(11, "max=10")
	require.Error(t, err)
	assert.Contains(t, ValidationMessages(err), "should be less than or equal to 10")
}

func TestValidationMessagesPlainError(t *testing.T) {
	assert.Equal(t, "boom", ValidationMessages(errors.New("boom")))
}
