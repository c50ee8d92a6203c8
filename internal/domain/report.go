package domain

import "time"

// ReportStatus is the resolution state of a filed report
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
)

// Report is a filed issue report
type Report struct {
	ID          string       `json:"id"`
	ReportType  string       `json:"reportType"`
	Description string       `json:"description"`
	Status      ReportStatus `json:"status"`
	Evidence    string       `json:"evidence,omitempty"` // storage URL
	CreatedAt   time.Time    `json:"createdAt"`
}

// NewReport is the submit-report payload
type NewReport struct {
	ReportType  string `json:"reportType"`
	Description string `json:"description"`
	Evidence    string `json:"evidence,omitempty"`
}
