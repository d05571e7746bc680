package services

import (
	"context"
	"fmt"
	"log/slog"

	"cinemashowings/internal/domain"
)

const totalsReportTemplate = "totals_report"

type reportService struct {
	showings domain.ShowingsService
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewReportService returns a ReportService that mails totals computed by showings.
func NewReportService(showings domain.ShowingsService, mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.ReportService {
	return &reportService{showings: showings, mailer: mailer, renderer: renderer, logger: logger}
}

// SendTotalsReport computes the movie, format and cinema totals for date and mails them
// using the "totals_report" template.
func (s *reportService) SendTotalsReport(ctx context.Context, email, date, format string) (*domain.TotalsReportEmailData, error) {
	cinemas := s.showings.TotalCinemas(ctx, date, format)
	label := date
	if label == "" {
		label = undatedLabel
	}
	data := &domain.TotalsReportEmailData{
		Email:   email,
		Date:    label,
		Format:  format,
		Movies:  MovieTotals(cinemas),
		Formats: FormatTotals(cinemas),
		Cinemas: CinemaTotals(cinemas),
	}
	data.Total = data.Formats.Sum()

	subject, htmlBody, textBody, err := s.renderer.Render(totalsReportTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", totalsReportTemplate, err)
	}
	if err := s.mailer.Send(ctx, email, subject, htmlBody, textBody); err != nil {
		return nil, fmt.Errorf("failed to send totals report: %w", err)
	}
	s.logger.Info("totals report sent", "email", email, "date", date, "total", data.Total)
	return data, nil
}
