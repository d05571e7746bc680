package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"cinemashowings/internal/delivery/http/helpers"
	"cinemashowings/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// decodeEnvelope decodes the response envelope, re-decoding data into dest when given.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dest any) helpers.APIResponse {
	t.Helper()
	var raw struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	if dest != nil && raw.Error == nil {
		require.NoError(t, json.Unmarshal(raw.Data, dest))
	}
	return helpers.APIResponse{Data: dest, Error: raw.Error}
}

// fakeShowingsService implements domain.ShowingsService for handler tests.
type fakeShowingsService struct {
	dates      []domain.ShowDate
	tally      domain.Tally
	zones      []string
	cinemas    []string
	lastQuery  domain.Query
	lastDate   string
	lastFormat string
	tallyCalls []string
}

func (f *fakeShowingsService) Route(tag string) (domain.Chain, bool) { return "", false }

func (f *fakeShowingsService) Search(ctx context.Context, q domain.Query) []domain.ShowDate {
	f.lastQuery = q
	return f.dates
}

func (f *fakeShowingsService) TotalCinemas(ctx context.Context, date, format string) []domain.Cinema {
	return nil
}

func (f *fakeShowingsService) record(kind, date, format string) domain.Tally {
	f.tallyCalls = append(f.tallyCalls, kind)
	f.lastDate, f.lastFormat = date, format
	return f.tally
}

func (f *fakeShowingsService) MovieTotals(ctx context.Context, date, format string) domain.Tally {
	return f.record("movies", date, format)
}

func (f *fakeShowingsService) FormatTotals(ctx context.Context, date, format string) domain.Tally {
	return f.record("formats", date, format)
}

func (f *fakeShowingsService) CinemaTotals(ctx context.Context, date, format string) domain.Tally {
	return f.record("cinemas", date, format)
}

func (f *fakeShowingsService) ZoneTags() []string   { return f.zones }
func (f *fakeShowingsService) CinemaTags() []string { return f.cinemas }

// fakeAuthService implements domain.AuthService.
type fakeAuthService struct {
	token string
	err   error
}

func (f *fakeAuthService) IssueToken(ctx context.Context, clientID, clientSecret string) (string, error) {
	return f.token, f.err
}

// fakeReportService implements domain.ReportService.
type fakeReportService struct {
	err   error
	email string
}

func (f *fakeReportService) SendTotalsReport(ctx context.Context, email, date, format string) (*domain.TotalsReportEmailData, error) {
	f.email = email
	if f.err != nil {
		return nil, f.err
	}
	return &domain.TotalsReportEmailData{Email: email, Date: date, Format: format, Total: 12}, nil
}
