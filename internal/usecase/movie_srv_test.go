package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-reviews/internal/dto/request"
	"movie-reviews/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCatalog struct {
	films []catalog.Film
	err   error
}

func (f *fakeCatalog) Films(ctx context.Context) ([]catalog.Film, error) {
	return f.films, f.err
}

var testFilms = []catalog.Film{
	{ID: "f-1", Title: "Castle in the Sky", OriginalTitle: "Tenkuu no Shiro Laputa", Description: "A young girl and a boy search for a floating castle.", Director: "Hayao Miyazaki", ReleaseDate: "1986", RTScore: "95"},
	{ID: "f-2", Title: "Grave of the Fireflies", Description: "Two siblings struggle to survive during wartime.", Director: "Isao Takahata", ReleaseDate: "1988", RTScore: "97"},
	{ID: "f-3", Title: "My Neighbor Totoro", Description: "Two sisters move to the countryside and meet forest spirits.", Director: "Hayao Miyazaki", ReleaseDate: "1988", RTScore: "93"},
	{ID: "f-4", Title: "Whisper of the Heart", Description: "A bookish girl follows a cat to an antique shop.", Director: "Yoshifumi Kondou", ReleaseDate: "1995", RTScore: "91"},
}

func newMovieService(fake *fakeCatalog) MovieService {
	return NewMovieService(fake, zap.NewNop())
}

func listReq(query string, year int, sortSpec string, page, limit int) *request.MovieListRequest {
	return &request.MovieListRequest{Query: query, Year: year, Sort: sortSpec, Page: page, Limit: limit}
}

func titles(t *testing.T, service MovieService, req *request.MovieListRequest) []string {
	t.Helper()
	resp, err := service.ListMovies(context.Background(), req)
	require.NoError(t, err)

	out := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		out = append(out, item.Title)
	}
	return out
}

func TestListMovies_Defaults(t *testing.T) {
	service := newMovieService(&fakeCatalog{films: testFilms})

	resp, err := service.ListMovies(context.Background(), listReq("", 0, "", 1, 10))
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Total)
	assert.Len(t, resp.Items, 4)
	assert.Nil(t, resp.Next)

	// Default order is title ascending
	assert.Equal(t, "Castle in the Sky", resp.Items[0].Title)
	assert.Equal(t, "Whisper of the Heart", resp.Items[3].Title)
}

func TestListMovies_QueryFilter(t *testing.T) {
	service := newMovieService(&fakeCatalog{films: testFilms})

	t.Run("matches title", func(t *testing.T) {
		assert.Equal(t, []string{"My Neighbor Totoro"}, titles(t, service, listReq("totoro", 0, "", 1, 10)))
	})

	t.Run("matches original title", func(t *testing.T) {
		assert.Equal(t, []string{"Castle in the Sky"}, titles(t, service, listReq("laputa", 0, "", 1, 10)))
	})

	t.Run("matches synopsis", func(t *testing.T) {
		assert.Equal(t, []string{"Grave of the Fireflies"}, titles(t, service, listReq("wartime", 0, "", 1, 10)))
	})

	t.Run("no hits", func(t *testing.T) {
		resp, err := service.ListMovies(context.Background(), listReq("kaiju", 0, "", 1, 10))
		require.NoError(t, err)
		assert.Zero(t, resp.Total)
		assert.Empty(t, resp.Items)
	})
}

func TestListMovies_YearFilter(t *testing.T) {
	service := newMovieService(&fakeCatalog{films: testFilms})

	got := titles(t, service, listReq("", 1988, "", 1, 10))
	assert.Equal(t, []string{"Grave of the Fireflies", "My Neighbor Totoro"}, got)
}

func TestListMovies_Sorting(t *testing.T) {
	service := newMovieService(&fakeCatalog{films: testFilms})

	t.Run("score descending", func(t *testing.T) {
		got := titles(t, service, listReq("", 0, "score:desc", 1, 10))
		assert.Equal(t, []string{
			"Grave of the Fireflies",
			"Castle in the Sky",
			"My Neighbor Totoro",
			"Whisper of the Heart",
		}, got)
	})

	t.Run("year ascending", func(t *testing.T) {
		got := titles(t, service, listReq("", 0, "year:asc", 1, 10))
		assert.Equal(t, "Castle in the Sky", got[0])
		assert.Equal(t, "Whisper of the Heart", got[3])
	})

	t.Run("suffix flips the direction", func(t *testing.T) {
		asc := titles(t, service, listReq("", 0, "title:asc", 1, 10))
		desc := titles(t, service, listReq("", 0, "title:desc", 1, 10))

		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
	})

	t.Run("unknown key falls back to title", func(t *testing.T) {
		got := titles(t, service, listReq("", 0, "director", 1, 10))
		assert.Equal(t, "Castle in the Sky", got[0])
	})
}

func TestListMovies_Pagination(t *testing.T) {
	service := newMovieService(&fakeCatalog{films: testFilms})

	first, err := service.ListMovies(context.Background(), listReq("", 0, "", 1, 3))
	require.NoError(t, err)

	assert.Len(t, first.Items, 3)
	assert.Equal(t, 4, first.Total)
	require.NotNil(t, first.Next)
	assert.Contains(t, *first.Next, "page=2")

	second, err := service.ListMovies(context.Background(), listReq("", 0, "", 2, 3))
	require.NoError(t, err)

	assert.Len(t, second.Items, 1)
	assert.Nil(t, second.Next)

	// A page past the end is empty, not an error
	third, err := service.ListMovies(context.Background(), listReq("", 0, "", 5, 3))
	require.NoError(t, err)
	assert.Empty(t, third.Items)
	assert.Equal(t, 4, third.Total)
}

func TestListMovies_UpstreamFailure(t *testing.T) {
	service := newMovieService(&fakeCatalog{err: errors.New("connection refused")})

	_, err := service.ListMovies(context.Background(), listReq("", 0, "", 1, 10))
	assert.Error(t, err)
}

func TestGetMovie(t *testing.T) {
	service := newMovieService(&fakeCatalog{films: testFilms})

	t.Run("found", func(t *testing.T) {
		detail, err := service.GetMovie(context.Background(), "f-3")
		require.NoError(t, err)

		assert.Equal(t, "My Neighbor Totoro", detail.Title)
		assert.Equal(t, "1988", detail.Year)
		assert.Equal(t, "Hayao Miyazaki", detail.Director)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := service.GetMovie(context.Background(), "f-999")
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})

	t.Run("upstream failure", func(t *testing.T) {
		broken := newMovieService(&fakeCatalog{err: errors.New("timeout")})

		_, err := broken.GetMovie(context.Background(), "f-1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMovieNotFound)
	})
}
