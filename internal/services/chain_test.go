package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinemashowings/internal/domain"
)

// fakeSource serves canned billboards by cinema tag. Tags without a billboard
// behave like a failed fetch.
type fakeSource struct {
	chain      domain.Chain
	billboards map[string]domain.Billboard
	requested  [][]string
}

func (f *fakeSource) Chain() domain.Chain { return f.chain }

func (f *fakeSource) Billboards(ctx context.Context, cinemas []domain.DirectoryEntry) []domain.Billboard {
	var tags []string
	var out []domain.Billboard
	for _, c := range cinemas {
		tags = append(tags, c.Tag)
		if bb, ok := f.billboards[c.Tag]; ok {
			out = append(out, bb)
		}
	}
	f.requested = append(f.requested, tags)
	return out
}

func intPtr(n int) *int { return &n }

func showAt(time, format string) domain.ShowTime { return domain.ShowTime{Time: time, Format: format} }

func chainTestDirectory() *domain.Directory {
	return &domain.Directory{
		Chain: domain.ChainCinemark,
		Zones: []domain.Zone{
			{Tag: "oriente", Cinemas: []domain.DirectoryEntry{
				{Tag: "alto", Name: "Alto", ID: "1"},
				{Tag: "nunoa", Name: "Ñuñoa", ID: "2"},
			}},
			{Tag: "sur", Cinemas: []domain.DirectoryEntry{
				{Tag: "florida", Name: "Florida", ID: "3"},
			}},
		},
		MacroZones: []domain.MacroZone{{Tag: "santiago", Zones: []string{"oriente", "sur"}}},
	}
}

func chainTestSource() *fakeSource {
	dune := func(sts ...domain.ShowTime) domain.BillboardMovie {
		return domain.BillboardMovie{Key: "dune-parte-dos", Title: "Dune: Parte Dos", ShowTimes: sts}
	}
	panda := func(sts ...domain.ShowTime) domain.BillboardMovie {
		return domain.BillboardMovie{Key: "kung-fu-panda-4", Title: "Kung Fu Panda 4", ShowTimes: sts}
	}
	return &fakeSource{
		chain: domain.ChainCinemark,
		billboards: map[string]domain.Billboard{
			"alto": {Name: "Alto", Dates: []domain.BillboardDate{
				{Label: "05 marzo", Day: 5, Month: 3, Movies: []domain.BillboardMovie{
					dune(showAt("18:30", "2D SUB"), showAt("21:00", "2D ESP")),
					panda(showAt("16:00", "2D ESP")),
				}},
				{Label: "06 marzo", Day: 6, Month: 3, Movies: []domain.BillboardMovie{
					dune(showAt("20:00", "3D SUB")),
				}},
			}},
			"nunoa": {Name: "Ñuñoa", Dates: []domain.BillboardDate{
				{Label: "05 marzo", Day: 5, Month: 3, Movies: []domain.BillboardMovie{
					dune(domain.ShowTime{Time: "19:00", Format: "2D ESP", Seats: intPtr(10)}),
				}},
			}},
			"florida": {Name: "Florida", Dates: []domain.BillboardDate{
				{Label: "05 marzo", Day: 5, Month: 3, Movies: []domain.BillboardMovie{
					panda(showAt("15:00", "2D ESP")),
				}},
			}},
		},
	}
}

func cinemaNames(cinemas []domain.Cinema) []string {
	out := make([]string, 0, len(cinemas))
	for _, c := range cinemas {
		out = append(out, c.Name)
	}
	return out
}

func TestChainService_Showings(t *testing.T) {
	ctx := context.Background()
	svc := NewChainService(chainTestSource(), chainTestDirectory())

	t.Run("movie on date", func(t *testing.T) {
		sd, ok := svc.Showings(ctx, "dune", "5-marzo", "alto", "")
		require.True(t, ok)
		assert.Equal(t, "05 marzo", sd.Date)
		require.Len(t, sd.Cinemas, 1)
		assert.Equal(t, "Alto", sd.Cinemas[0].Name)
		require.Len(t, sd.Cinemas[0].Movies, 1)
		assert.Equal(t, "Dune: Parte Dos", sd.Cinemas[0].Movies[0].Title)
		assert.Len(t, sd.Cinemas[0].Movies[0].ShowTimes, 2)
	})

	t.Run("format filter", func(t *testing.T) {
		sd, ok := svc.Showings(ctx, "dune", "05 marzo", "alto", "sub")
		require.True(t, ok)
		assert.Equal(t, []domain.ShowTime{showAt("18:30", "2D SUB")}, sd.Cinemas[0].Movies[0].ShowTimes)
	})

	t.Run("whole bill with numeric date", func(t *testing.T) {
		sd, ok := svc.CinemaShowingsByDate(ctx, "alto", "5-3", "esp")
		require.True(t, ok)
		movies := sd.Cinemas[0].Movies
		require.Len(t, movies, 2)
		assert.Equal(t, []domain.ShowTime{showAt("21:00", "2D ESP")}, movies[0].ShowTimes)
		assert.Equal(t, []domain.ShowTime{showAt("16:00", "2D ESP")}, movies[1].ShowTimes)
	})

	t.Run("date not listed", func(t *testing.T) {
		_, ok := svc.Showings(ctx, "dune", "7-marzo", "alto", "")
		assert.False(t, ok)
	})

	t.Run("no movie left after format filter", func(t *testing.T) {
		_, ok := svc.Showings(ctx, "panda", "5-marzo", "alto", "3D")
		assert.False(t, ok)
	})
}

func TestChainService_UnknownCinemaSkipsFetch(t *testing.T) {
	src := chainTestSource()
	svc := NewChainService(src, chainTestDirectory())

	_, ok := svc.Showings(context.Background(), "dune", "5-marzo", "parque-arauco", "")
	assert.False(t, ok)
	assert.Empty(t, svc.ShowingByCinema(context.Background(), "dune", "parque-arauco", ""))
	assert.Empty(t, src.requested)
}

func TestChainService_ShowingsByZone(t *testing.T) {
	ctx := context.Background()
	src := chainTestSource()
	svc := NewChainService(src, chainTestDirectory())

	got := svc.ShowingsByZone(ctx, "dune", "5 marzo", "oriente", "")
	assert.Equal(t, []string{"Alto", "Ñuñoa"}, cinemaNames(got))
	assert.Equal(t, [][]string{{"alto", "nunoa"}}, src.requested)

	require.NotNil(t, got[1].Movies[0].ShowTimes[0].Seats)
	assert.Equal(t, 10, *got[1].Movies[0].ShowTimes[0].Seats)
}

func TestChainService_FailedCinemaIsOmitted(t *testing.T) {
	src := chainTestSource()
	delete(src.billboards, "nunoa")
	svc := NewChainService(src, chainTestDirectory())

	got := svc.ShowingsByZone(context.Background(), "dune", "5-marzo", "oriente", "")
	assert.Equal(t, []string{"Alto"}, cinemaNames(got))
}

func TestChainService_ShowingByDate(t *testing.T) {
	svc := NewChainService(chainTestSource(), chainTestDirectory())

	got := svc.ShowingByDate(context.Background(), "panda", "5-marzo", "")
	assert.Equal(t, []string{"Alto", "Florida"}, cinemaNames(got))
}

func TestChainService_ShowingByCinema(t *testing.T) {
	svc := NewChainService(chainTestSource(), chainTestDirectory())

	got := svc.ShowingByCinema(context.Background(), "dune", "alto", "")
	require.Len(t, got, 2)
	assert.Equal(t, "05 marzo", got[0].Date)
	assert.Equal(t, "06 marzo", got[1].Date)

	all := svc.CinemaShowings(context.Background(), "alto", "")
	require.Len(t, all, 2)
	assert.Len(t, all[0].Cinemas[0].Movies, 2)
}

func TestChainService_ShowingByZone_GroupsByDate(t *testing.T) {
	svc := NewChainService(chainTestSource(), chainTestDirectory())

	got := svc.ShowingByZone(context.Background(), "dune", "santiago", "")
	require.Len(t, got, 2)
	assert.Equal(t, "05 marzo", got[0].Date)
	assert.Equal(t, []string{"Alto", "Ñuñoa"}, cinemaNames(got[0].Cinemas))
	assert.Equal(t, "06 marzo", got[1].Date)
	assert.Equal(t, []string{"Alto"}, cinemaNames(got[1].Cinemas))

	bill := svc.CinemaShowingsByZone(context.Background(), "sur", "")
	require.Len(t, bill, 1)
	assert.Equal(t, []string{"Florida"}, cinemaNames(bill[0].Cinemas))
}

func TestChainService_CinemaShowingsByDateAndZone(t *testing.T) {
	svc := NewChainService(chainTestSource(), chainTestDirectory())

	got := svc.CinemaShowingsByDateAndZone(context.Background(), "sur", "5-marzo", "")
	assert.Equal(t, []string{"Florida"}, cinemaNames(got))
	assert.Empty(t, svc.CinemaShowingsByDateAndZone(context.Background(), "norte", "5-marzo", ""))
}

func TestChainService_Total(t *testing.T) {
	dir := chainTestDirectory()
	src := chainTestSource()
	svc := NewChainService(src, dir)

	assert.Equal(t, []string{"Alto", "Ñuñoa", "Florida"}, cinemaNames(svc.Total(context.Background(), "5-marzo", "")))

	dir.TotalCinemas = []string{"florida"}
	assert.Equal(t, []string{"Florida"}, cinemaNames(svc.Total(context.Background(), "5-marzo", "")))
}

func TestChainService_IsChain(t *testing.T) {
	svc := NewChainService(chainTestSource(), chainTestDirectory())

	assert.Equal(t, domain.ChainCinemark, svc.Chain())
	assert.True(t, svc.IsChain("alto"))
	assert.True(t, svc.IsChain("oriente"))
	assert.True(t, svc.IsChain("santiago"))
	assert.False(t, svc.IsChain("parque-arauco"))
	assert.False(t, svc.IsChain(""))
}

func TestChainService_ResultsAreFreshCopies(t *testing.T) {
	src := chainTestSource()
	svc := NewChainService(src, chainTestDirectory())

	got := svc.ShowingsByZone(context.Background(), "dune", "5-marzo", "oriente", "")
	*got[1].Movies[0].ShowTimes[0].Seats = 0

	again := svc.ShowingsByZone(context.Background(), "dune", "5-marzo", "oriente", "")
	assert.Equal(t, 10, *again[1].Movies[0].ShowTimes[0].Seats)
}

func TestFilterMovies_KeylessMovieNeverMatchesQuery(t *testing.T) {
	movies := []domain.BillboardMovie{
		{Key: "", ShowTimes: []domain.ShowTime{{Time: "20:00", Format: "2D ESP"}}},
		{Key: "oppenheimer", Title: "Oppenheimer", ShowTimes: []domain.ShowTime{{Time: "21:00", Format: "2D SUB"}}},
	}

	got := filterMovies(movies, "Oppenheimer", "")

	require.Len(t, got, 1)
	assert.Equal(t, "Oppenheimer", got[0].Title)
}
