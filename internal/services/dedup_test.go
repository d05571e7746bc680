package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cinemashowings/internal/domain"
)

// movieWith returns a movie with n sessions.
func movieWith(title string, n int) domain.Movie {
	m := domain.Movie{Title: title}
	for range n {
		m.ShowTimes = append(m.ShowTimes, domain.ShowTime{Time: "20:00", Format: "2D ESP"})
	}
	return m
}

func TestMovieTotals(t *testing.T) {
	tests := []struct {
		name    string
		cinemas []domain.Cinema
		want    domain.Tally
	}{
		{
			name: "punctuation and case variants merge",
			cinemas: []domain.Cinema{
				{Name: "A", Movies: []domain.Movie{movieWith("BATMAN: THE MOVIE", 3)}},
				{Name: "B", Movies: []domain.Movie{movieWith("batman - the movie", 2)}},
			},
			want: domain.Tally{{Key: "BATMAN THE MOVIE", Count: 5}},
		},
		{
			name: "first key wins",
			cinemas: []domain.Cinema{{Movies: []domain.Movie{
				movieWith("Dune Parte Dos", 2),
				movieWith("Oppenheimer", 1),
				movieWith("Dune: Parte Dos", 4),
			}}},
			want: domain.Tally{{Key: "DUNE PARTE DOS", Count: 6}, {Key: "OPPENHEIMER", Count: 1}},
		},
		{
			name: "truncated title merges",
			cinemas: []domain.Cinema{{Movies: []domain.Movie{
				movieWith("Misión Imposible: Sentencia Final", 2),
				movieWith("MISIÓN IMPOSIBLE", 3),
			}}},
			want: domain.Tally{{Key: "MISIÓN IMPOSIBLE SENTENCIA FINAL", Count: 5}},
		},
		{
			name: "unrelated titles stay apart and ties keep order",
			cinemas: []domain.Cinema{{Movies: []domain.Movie{
				movieWith("Oppenheimer", 2),
				movieWith("Kung Fu Panda 4", 2),
				movieWith("Wonka", 3),
			}}},
			want: domain.Tally{
				{Key: "WONKA", Count: 3},
				{Key: "OPPENHEIMER", Count: 2},
				{Key: "KUNG FU PANDA 4", Count: 2},
			},
		},
		{
			name: "untitled movies are left out",
			cinemas: []domain.Cinema{{Movies: []domain.Movie{
				movieWith("", 1),
				movieWith("Oppenheimer", 2),
				movieWith(" : ", 4),
				movieWith("Kung Fu Panda 4", 3),
			}}},
			want: domain.Tally{
				{Key: "KUNG FU PANDA 4", Count: 3},
				{Key: "OPPENHEIMER", Count: 2},
			},
		},
		{
			name: "empty",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MovieTotals(tt.cinemas))
		})
	}
}

func TestMovieTotals_String(t *testing.T) {
	got := MovieTotals([]domain.Cinema{
		{Movies: []domain.Movie{movieWith("BATMAN: THE MOVIE", 3)}},
		{Movies: []domain.Movie{movieWith("batman - the movie", 2)}},
	})
	assert.Equal(t, "BATMAN THE MOVIE: 5\n", got.String())

	untitled := MovieTotals([]domain.Cinema{{Movies: []domain.Movie{
		movieWith("", 1), movieWith("Oppenheimer", 2), movieWith("Kung Fu Panda 4", 3),
	}}})
	assert.Equal(t, "KUNG FU PANDA 4: 3\nOPPENHEIMER: 2\n", untitled.String())
}

func TestSimilarTitles(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"BATMAN THE MOVIE", "BATMAN   THE MOVIE", true},
		{"MARIO", "SUPER MARIO BROS", true},
		{"UP", "SUPER MARIO BROS", false},
		{"OPPENHEIMER", "KUNG FU PANDA 4", false},
		{"GODZILLA Y KONG EL NUEVO IMPERIO", "GODZILLA Y KONG", true},
		{"", "", false},
		{"", "OPPENHEIMER", false},
		{"WONKA", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, similarTitles(tt.a, tt.b))
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "BATMAN THE MOVIE", normalizeTitle("Batman: The Movie"))
	assert.Equal(t, "SPIDER MAN", normalizeTitle("spider-man"))
	assert.Equal(t, "MISIÓN", normalizeTitle("misión"))
}

func TestFormatTotals(t *testing.T) {
	cinemas := []domain.Cinema{
		{Name: "A", Movies: []domain.Movie{{Title: "X", ShowTimes: []domain.ShowTime{
			{Time: "1", Format: "2D SUB"}, {Time: "2", Format: "2D ESP"}, {Time: "3", Format: "2D ESP"},
		}}}},
		{Name: "B", Movies: []domain.Movie{{Title: "Y", ShowTimes: []domain.ShowTime{
			{Time: "4", Format: "2D SUB"}, {Time: "5", Format: "2D ESP"}, {Time: "6", Format: "2D Esp"},
		}}}},
	}
	assert.Equal(t, domain.Tally{
		{Key: "2D ESP", Count: 3},
		{Key: "2D SUB", Count: 2},
		{Key: "2D Esp", Count: 1},
	}, FormatTotals(cinemas))
}

func TestCinemaTotals(t *testing.T) {
	cinemas := []domain.Cinema{
		{Name: "Alto", Movies: []domain.Movie{movieWith("X", 1), movieWith("Y", 1)}},
		{Name: "Florida", Movies: []domain.Movie{movieWith("X", 5)}},
		{Name: "Alto", Movies: []domain.Movie{movieWith("Z", 1)}},
	}
	got := CinemaTotals(cinemas)
	assert.Equal(t, domain.Tally{{Key: "Florida", Count: 5}, {Key: "Alto", Count: 3}}, got)
	assert.Equal(t, 8, got.Sum())
}
