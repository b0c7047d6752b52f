package ports

import (
	"context"

	"github.com/tomyolivera/star-wars-api/internal/core/domain"
)

// MovieRepository defines persistence operations for movies.
type MovieRepository interface {
	FindAll(ctx context.Context) ([]domain.Movie, error)
	// FindByID returns domain.ErrMovieNotFound when no movie has that id.
	FindByID(ctx context.Context, id int64) (*domain.Movie, error)
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id int64) error
	// UpsertByEpisode inserts the given movies, replacing any existing movie
	// with the same episode number. Returns the number of movies written.
	UpsertByEpisode(ctx context.Context, movies []domain.Movie) (int, error)
}
