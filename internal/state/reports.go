package state

import "carrego/internal/domain"

// ReportsStore is the report container. Submitting never appends locally;
// the server is the source of truth and the list refreshes on the next fetch.
type ReportsStore struct {
	Fetch  Request
	Submit Request

	reports []domain.Report
}

// NewReportsStore creates an empty ReportsStore
func NewReportsStore() *ReportsStore {
	return &ReportsStore{}
}

// FinishFetch applies a list result: full-list replace on success
func (s *ReportsStore) FinishFetch(reports []domain.Report, err *domain.APIError) {
	s.Fetch.finish(err, func() {
		s.reports = reports
	})
}

// FinishSubmit applies a submit result. The snapshot is left unchanged even
// on success.
func (s *ReportsStore) FinishSubmit(err *domain.APIError) {
	s.Submit.finish(err, nil)
}

// SetCached seeds the snapshot from the offline cache
func (s *ReportsStore) SetCached(reports []domain.Report) {
	if len(s.reports) == 0 {
		s.reports = reports
	}
}

// Reports returns the current report snapshot
func (s *ReportsStore) Reports() []domain.Report { return s.reports }
