package state

import "carrego/internal/domain"

// ProfileStore is the profile-draft container backing the three-step KYC
// wizard. Patches merge into the draft so earlier-step fields survive
// navigation to later steps.
type ProfileStore struct {
	Submit Request
	Upload Request

	draft domain.ProfileDraft
}

// NewProfileStore creates an empty ProfileStore
func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// ApplyPatch merges a step's fields into the draft
func (s *ProfileStore) ApplyPatch(patch domain.ProfilePatch) {
	s.draft = s.draft.Merge(patch)
}

// Draft returns the accumulated draft
func (s *ProfileStore) Draft() domain.ProfileDraft { return s.draft }

// FinishSubmit applies a complete-profile result; the draft is cleared on
// success so a new edit starts fresh.
func (s *ProfileStore) FinishSubmit(err *domain.APIError) {
	s.Submit.finish(err, func() {
		s.draft = domain.ProfileDraft{}
	})
}

// FinishUpload applies a document upload result
func (s *ProfileStore) FinishUpload(err *domain.APIError) {
	s.Upload.finish(err, nil)
}
