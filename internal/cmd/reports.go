package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"carrego/internal/domain"
)

// ReportsCmd groups the issue-report subcommands
type ReportsCmd struct {
	List   ReportsListCmd   `cmd:"list" help:"List my pending reports" default:"1"`
	Submit ReportsSubmitCmd `cmd:"submit" help:"File an issue report"`
}

// ReportsListCmd lists the signed-in user's pending reports
type ReportsListCmd struct {
	Cached bool `help:"Read the offline cache instead of the API"`
}

// Run executes reports list
func (r *ReportsListCmd) Run(cli *CLI) error {
	ctx := context.Background()

	var reports []domain.Report
	var err error
	if r.Cached {
		reports, err = cli.Container.ReportService.CachedReports(ctx)
	} else {
		if _, err = restoreSession(cli); err != nil {
			return err
		}
		reports, err = cli.Container.ReportService.PendingReports(ctx)
	}
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("No pending reports")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tFILED\tDESCRIPTION")
	for _, report := range reports {
		desc := report.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			report.ID, report.ReportType,
			report.CreatedAt.Format("2006-01-02"), desc)
	}
	return w.Flush()
}

// ReportsSubmitCmd files an issue report
type ReportsSubmitCmd struct {
	Type        string `help:"Report type (delivery-issue, damaged-package, payment-issue, traveler-conduct, other)" required:""`
	Description string `help:"What happened" required:""`
	Evidence    string `help:"Evidence URL (optional)"`
}

// Run executes reports submit
func (r *ReportsSubmitCmd) Run(cli *CLI) error {
	if _, err := restoreSession(cli); err != nil {
		return err
	}
	report, err := cli.Container.ReportService.SubmitReport(context.Background(), domain.NewReport{
		ReportType:  r.Type,
		Description: r.Description,
		Evidence:    r.Evidence,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Report filed: %s (%s)\n", report.ID, report.Status)
	return nil
}
