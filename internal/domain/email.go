package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TotalsReportEmailData holds data for the daily totals report email.
type TotalsReportEmailData struct {
	Email   string
	Date    string
	Format  string
	Movies  Tally
	Formats Tally
	Cinemas Tally
	Total   int
}

// ReportService builds and delivers totals reports.
type ReportService interface {
	SendTotalsReport(ctx context.Context, email, date, format string) (*TotalsReportEmailData, error)
}
