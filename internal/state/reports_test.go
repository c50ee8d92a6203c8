package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carrego/internal/domain"
)

func TestReportsSubmitNeverAppendsLocally(t *testing.T) {
	s := NewReportsStore()
	s.Fetch.Begin()
	s.FinishFetch([]domain.Report{{ID: "r1"}}, nil)

	s.Submit.Begin()
	s.FinishSubmit(nil)

	assert.Len(t, s.Reports(), 1, "the pending list is server-authoritative")
	assert.False(t, s.Submit.Loading())
	assert.Nil(t, s.Submit.Err())
}

func TestReportsFailedSubmitRecordsError(t *testing.T) {
	s := NewReportsStore()

	s.Submit.Begin()
	s.FinishSubmit(&domain.APIError{Code: 422, Message: "Description too short"})

	assert.Equal(t, 422, s.Submit.Err().Code)
	assert.Empty(t, s.Reports())
}
