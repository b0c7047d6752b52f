package ports

import (
	"context"

	"github.com/tomyolivera/star-wars-api/internal/core/domain"
)

// MovieInput carries all writable movie fields, used for create and update.
type MovieInput struct {
	Title        string
	EpisodeID    int
	OpeningCrawl string
	Director     string
	Producer     string
	ReleaseDate  string
	Characters   []string
	Planets      []string
	Starships    []string
	Vehicles     []string
	Species      []string
	Created      string
	Edited       string
	URL          string
}

// MovieService defines use-case operations for movies.
type MovieService interface {
	List(ctx context.Context) ([]domain.Movie, error)
	Get(ctx context.Context, id int64) (*domain.Movie, error)
	Create(ctx context.Context, in MovieInput) (*domain.Movie, error)
	Update(ctx context.Context, id int64, in MovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id int64) error
	// Seed pulls the film catalog from the external API and upserts it,
	// keyed by episode number. Returns the number of movies written.
	Seed(ctx context.Context) (int, error)
}

// FilmFetcher abstracts the external film source used by Seed.
type FilmFetcher interface {
	FetchFilms(ctx context.Context) ([]MovieInput, error)
}
