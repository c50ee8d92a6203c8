package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"carrego/internal/domain"
)

// reportTypes are the categories accepted by the backend
var reportTypes = []string{
	"delivery-issue",
	"damaged-package",
	"payment-issue",
	"traveler-conduct",
	"other",
}

// ReportForm collects a new issue report
type ReportForm struct {
	Completed bool
	Cancelled bool

	form        *huh.Form
	reportType  string
	description string
	evidence    string
}

// NewReportForm creates the submit-report form
func NewReportForm() *ReportForm {
	rf := &ReportForm{}

	options := make([]huh.Option[string], 0, len(reportTypes))
	for _, t := range reportTypes {
		options = append(options, huh.NewOption(t, t))
	}

	rf.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Report type").
			Options(options...).
			Value(&rf.reportType),
		huh.NewText().
			Title("Description").
			Value(&rf.description).
			Validate(func(s string) error {
				if len(strings.TrimSpace(s)) < 10 {
					return fmt.Errorf("describe the issue in at least 10 characters")
				}
				return nil
			}),
		huh.NewInput().
			Title("Evidence URL (optional)").
			Description("Upload a file first with 'carrego upload' to get a URL").
			Value(&rf.evidence),
	))

	return rf
}

func (rf *ReportForm) Init() tea.Cmd {
	return rf.form.Init()
}

func (rf *ReportForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			rf.Completed = true
			rf.Cancelled = true
			return nil
		}
	}

	form, cmd := rf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		rf.form = f
	}
	if rf.form.State == huh.StateCompleted {
		rf.Completed = true
	}
	return cmd
}

func (rf *ReportForm) View() string {
	return rf.form.View()
}

// Report returns the collected submit-report payload
func (rf *ReportForm) Report() domain.NewReport {
	return domain.NewReport{
		ReportType:  rf.reportType,
		Description: strings.TrimSpace(rf.description),
		Evidence:    strings.TrimSpace(rf.evidence),
	}
}
