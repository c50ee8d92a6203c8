package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carrego/internal/domain"
)

func TestRequestLifecycle(t *testing.T) {
	var r Request

	assert.False(t, r.Loading())
	assert.Nil(t, r.Err())

	assert.True(t, r.Begin())
	assert.True(t, r.Loading())

	r.Succeed()
	assert.False(t, r.Loading())
	assert.Nil(t, r.Err())
}

func TestRequestBeginGuardsDuplicateDispatch(t *testing.T) {
	var r Request

	assert.True(t, r.Begin())
	assert.False(t, r.Begin(), "second dispatch while pending must be dropped")

	r.Succeed()
	assert.True(t, r.Begin(), "guard releases after the request settles")
}

func TestRequestBeginClearsPreviousError(t *testing.T) {
	var r Request

	r.Begin()
	r.Fail(&domain.APIError{Code: 500, Message: "boom"})
	assert.NotNil(t, r.Err())
	assert.False(t, r.Loading())

	assert.True(t, r.Begin())
	assert.Nil(t, r.Err(), "retry must not show the stale error")
}

func TestFinishSkipsMutationOnError(t *testing.T) {
	var r Request
	mutated := false

	r.Begin()
	r.finish(&domain.APIError{Code: 500, Message: "boom"}, func() { mutated = true })

	assert.False(t, mutated, "rejected requests must not touch the snapshot")
	assert.Equal(t, 500, r.Err().Code)

	r.Begin()
	r.finish(nil, func() { mutated = true })
	assert.True(t, mutated)
}
