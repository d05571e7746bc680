package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinemashowings/internal/delivery/http/helpers"
	"cinemashowings/internal/domain"
)

func sampleTally() domain.Tally {
	return domain.Tally{
		{Key: "DUNE PARTE DOS", Count: 40},
		{Key: "KUNG FU PANDA 4", Count: 22},
		{Key: "GODZILLA Y KONG", Count: 9},
	}
}

func TestTotalsController(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		handler     func(c *TotalsController) http.HandlerFunc
		wantCall    string
		wantEntries domain.Tally
		wantText    string
		wantMeta    helpers.PaginationMeta
	}{
		{
			name:        "movies",
			path:        "/totals/movies?date=5-marzo&format=3D",
			handler:     func(c *TotalsController) http.HandlerFunc { return c.Movies },
			wantCall:    "movies",
			wantEntries: sampleTally(),
			wantText:    "DUNE PARTE DOS: 40\nKUNG FU PANDA 4: 22\nGODZILLA Y KONG: 9\n",
			wantMeta:    helpers.PaginationMeta{Page: 1, PageSize: helpers.DefaultPageSize, Total: 3, TotalPages: 1},
		},
		{
			name:        "formats second page",
			path:        "/totals/formats?date=5-marzo&format=3D&page=2&page_size=2",
			handler:     func(c *TotalsController) http.HandlerFunc { return c.Formats },
			wantCall:    "formats",
			wantEntries: sampleTally()[2:],
			wantText:    "GODZILLA Y KONG: 9\n",
			wantMeta:    helpers.PaginationMeta{Page: 2, PageSize: 2, Total: 3, TotalPages: 2},
		},
		{
			name:        "cinemas past the end",
			path:        "/totals/cinemas?date=5-marzo&format=3D&page=9&page_size=2",
			handler:     func(c *TotalsController) http.HandlerFunc { return c.Cinemas },
			wantCall:    "cinemas",
			wantEntries: domain.Tally{},
			wantText:    "",
			wantMeta:    helpers.PaginationMeta{Page: 9, PageSize: 2, Total: 3, TotalPages: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeShowingsService{tally: sampleTally()}
			c := NewTotalsController(discardLogger(), svc)
			rr := httptest.NewRecorder()

			tt.handler(c)(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			var got TotalsResponse
			decodeEnvelope(t, rr, &got)
			assert.Equal(t, []string{tt.wantCall}, svc.tallyCalls)
			assert.Equal(t, "5-marzo", svc.lastDate)
			assert.Equal(t, "3D", svc.lastFormat)
			assert.Equal(t, tt.wantEntries, got.Entries)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantMeta, got.Pagination)
		})
	}
}

func TestTotalsController_BadQuery(t *testing.T) {
	svc := &fakeShowingsService{tally: sampleTally()}
	c := NewTotalsController(discardLogger(), svc)
	rr := httptest.NewRecorder()

	c.Movies(rr, httptest.NewRequest(http.MethodGet, "/totals/movies?format=0123456789012345678901", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	envelope := decodeEnvelope(t, rr, nil)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeBadRequest, envelope.Error.Code)
	assert.Empty(t, svc.tallyCalls)
}
