package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestMergeLeavesAbsentFieldsUntouched(t *testing.T) {
	draft := ProfileDraft{
		FirstName: "Ana",
		LastName:  "Costa",
		BankName:  "First Bank",
	}

	merged := draft.Merge(ProfilePatch{LastName: strp("Souza")})

	assert.Equal(t, "Ana", merged.FirstName)
	assert.Equal(t, "Souza", merged.LastName)
	assert.Equal(t, "First Bank", merged.BankName)
}

func TestMergeDoesNotMutateReceiver(t *testing.T) {
	draft := ProfileDraft{FirstName: "Ana"}

	_ = draft.Merge(ProfilePatch{FirstName: strp("Bea")})

	assert.Equal(t, "Ana", draft.FirstName)
}

func TestMergeReplacesLocationWholesale(t *testing.T) {
	draft := ProfileDraft{
		Location: &Location{Address: "Rua A", City: "Lisboa", Country: "PT"},
	}

	merged := draft.Merge(ProfilePatch{
		Location: &Location{City: "Porto", Country: "PT"},
	})

	require.NotNil(t, merged.Location)
	assert.Empty(t, merged.Location.Address, "old address must not survive a location replace")
	assert.Equal(t, "Porto", merged.Location.City)
}

func TestMergeCopiesLocation(t *testing.T) {
	loc := &Location{City: "Porto"}
	merged := ProfileDraft{}.Merge(ProfilePatch{Location: loc})

	loc.City = "Faro"
	assert.Equal(t, "Porto", merged.Location.City, "draft must not alias the patch's location")
}

func TestMergeAccumulatesAcrossSteps(t *testing.T) {
	personal := ProfilePatch{
		FirstName:   strp("Ana"),
		LastName:    strp("Costa"),
		DateOfBirth: strp("1990-04-21"),
	}
	documents := ProfilePatch{
		IDType:        strp("passport"),
		IDNumber:      strp("X123"),
		IDDocumentURL: strp("https://cdn.example.com/id.png"),
	}
	payment := ProfilePatch{
		BankName:      strp("First Bank"),
		AccountNumber: strp("0001"),
		AccountName:   strp("Ana Costa"),
	}

	draft := ProfileDraft{}.Merge(personal).Merge(documents).Merge(payment)

	assert.Equal(t, "Ana", draft.FirstName)
	assert.Equal(t, "passport", draft.IDType)
	assert.Equal(t, "First Bank", draft.BankName)

	_, err := draft.Finalize()
	assert.NoError(t, err)
}

func TestFinalizeReportsAllMissingFields(t *testing.T) {
	draft := ProfileDraft{
		FirstName: "Ana",
		LastName:  "Costa",
	}

	_, err := draft.Finalize()
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Missing, "date of birth")
	assert.Contains(t, vErr.Missing, "ID document")
	assert.Contains(t, vErr.Missing, "bank name")
	assert.NotContains(t, vErr.Missing, "first name")
}

func TestFinalizeBlankFieldsCountAsMissing(t *testing.T) {
	draft := completeDraft()
	draft.IDNumber = "   "

	_, err := draft.Finalize()
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"ID number"}, vErr.Missing)
}

func TestFinalizeProducesPayload(t *testing.T) {
	draft := completeDraft()
	draft.Location = &Location{Address: "Rua A", City: "Lisboa", Country: "PT"}

	payload, err := draft.Finalize()
	require.NoError(t, err)
	assert.Equal(t, draft.FirstName, payload.FirstName)
	assert.Equal(t, draft.IDDocumentURL, payload.IDDocumentURL)
	require.NotNil(t, payload.Location)
	assert.Equal(t, "Lisboa", payload.Location.City)
}

func completeDraft() ProfileDraft {
	return ProfileDraft{
		FirstName:     "Ana",
		LastName:      "Costa",
		DateOfBirth:   "1990-04-21",
		Gender:        "female",
		IDType:        "passport",
		IDNumber:      "X123",
		IDDocumentURL: "https://cdn.example.com/id.png",
		BankName:      "First Bank",
		AccountNumber: "0001",
		AccountName:   "Ana Costa",
	}
}
