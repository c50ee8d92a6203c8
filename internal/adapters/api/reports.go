package api

import (
	"context"

	"carrego/internal/domain"
	"carrego/internal/ports"
)

var _ ports.ReportGateway = (*Client)(nil)

// SubmitReport files an issue report
func (c *Client) SubmitReport(ctx context.Context, report domain.NewReport) (*domain.Report, error) {
	var filed domain.Report
	if err := c.Post(ctx, "/issue/log/report", report, &filed); err != nil {
		return nil, err
	}
	return &filed, nil
}

// PendingReports lists the caller's unresolved reports
func (c *Client) PendingReports(ctx context.Context) ([]domain.Report, error) {
	var reports []domain.Report
	if err := c.Get(ctx, "/issue/pending/reports", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
