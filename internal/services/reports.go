package services

import (
	"context"

	"carrego/internal/domain"
	"carrego/internal/logging"
	"carrego/internal/ports"
)

// ReportService coordinates report filing and listing with the offline cache
type ReportService struct {
	gateway ports.ReportGateway
	cache   ports.ListingCache
}

// NewReportService creates a new ReportService
func NewReportService(gateway ports.ReportGateway, cache ports.ListingCache) *ReportService {
	return &ReportService{
		gateway: gateway,
		cache:   cache,
	}
}

// SubmitReport files a report. The local listing is not updated; the server
// is the source of truth and the next fetch picks it up.
func (s *ReportService) SubmitReport(ctx context.Context, report domain.NewReport) (*domain.Report, error) {
	logging.Logger.Info("Submitting report", "type", report.ReportType)

	filed, err := s.gateway.SubmitReport(ctx, report)
	if err != nil {
		logging.Logger.Error("Failed to submit report", "type", report.ReportType, "error", err)
		return nil, err
	}

	logging.Logger.Info("Report filed", "report_id", filed.ID)
	return filed, nil
}

// PendingReports fetches unresolved reports and refreshes the cache on success
func (s *ReportService) PendingReports(ctx context.Context) ([]domain.Report, error) {
	reports, err := s.gateway.PendingReports(ctx)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.PutReports(ctx, reports); cacheErr != nil {
		logging.Logger.Warn("Failed to cache reports", "error", cacheErr)
	}
	return reports, nil
}

// CachedReports returns the last successfully fetched report listing
func (s *ReportService) CachedReports(ctx context.Context) ([]domain.Report, error) {
	return s.cache.Reports(ctx)
}
