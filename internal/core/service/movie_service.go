package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomyolivera/star-wars-api/internal/api/metrics"
	"github.com/tomyolivera/star-wars-api/internal/core/domain"
	"github.com/tomyolivera/star-wars-api/internal/core/ports"
)

// MovieCache abstracts the read-through movie cache (Redis). Cache failures
// are never fatal: the service logs them and falls back to the repository.
type MovieCache interface {
	GetList(ctx context.Context) ([]domain.Movie, bool, error)
	SetList(ctx context.Context, movies []domain.Movie) error
	GetByID(ctx context.Context, id int64) (*domain.Movie, bool, error)
	SetByID(ctx context.Context, movie *domain.Movie) error
	// Invalidate drops all cached movie entries after a write.
	Invalidate(ctx context.Context) error
}

// MovieService implements movie CRUD plus seeding from the external film API.
type MovieService struct {
	repo  ports.MovieRepository
	films ports.FilmFetcher
	cache MovieCache
	log   zerolog.Logger
}

func NewMovieService(repo ports.MovieRepository, films ports.FilmFetcher, cache MovieCache, log zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, films: films, cache: cache, log: log}
}

func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	if movies, ok, err := s.cache.GetList(ctx); err != nil {
		s.log.Warn().Err(err).Msg("movie cache read failed, falling back to store")
	} else if ok {
		metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
		return movies, nil
	} else {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
	}

	movies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, movies); err != nil {
		s.log.Warn().Err(err).Msg("movie cache write failed")
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	if movie, ok, err := s.cache.GetByID(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("id", id).Msg("movie cache read failed, falling back to store")
	} else if ok {
		metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
		return movie, nil
	} else {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
	}

	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetByID(ctx, movie); err != nil {
		s.log.Warn().Err(err).Int64("id", id).Msg("movie cache write failed")
	}
	return movie, nil
}

func (s *MovieService) Create(ctx context.Context, in ports.MovieInput) (*domain.Movie, error) {
	movie := movieFromInput(in)
	now := time.Now().UTC()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	created, err := s.repo.Create(ctx, movie)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Int64("id", created.ID).Str("title", created.Title).Msg("movie created")
	metrics.MovieWritesTotal.WithLabelValues("create").Inc()
	return created, nil
}

// Update replaces the writable fields of an existing movie. The generated id
// and creation timestamp are immutable.
func (s *MovieService) Update(ctx context.Context, id int64, in ports.MovieInput) (*domain.Movie, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movie := movieFromInput(in)
	movie.ID = existing.ID
	movie.CreatedAt = existing.CreatedAt
	movie.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	metrics.MovieWritesTotal.WithLabelValues("update").Inc()
	return movie, nil
}

func (s *MovieService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.Info().Int64("id", id).Msg("movie deleted")
	metrics.MovieWritesTotal.WithLabelValues("delete").Inc()
	return nil
}

// Seed pulls the film catalog from the external API and upserts it by
// episode number, so repeated seeds refresh rather than duplicate.
func (s *MovieService) Seed(ctx context.Context) (int, error) {
	films, err := s.films.FetchFilms(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	movies := make([]domain.Movie, len(films))
	for i, f := range films {
		m := movieFromInput(f)
		m.CreatedAt = now
		m.UpdatedAt = now
		movies[i] = *m
	}

	count, err := s.repo.UpsertByEpisode(ctx, movies)
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx)
	s.log.Info().Int("count", count).Msg("movies seeded from external API")
	metrics.MoviesSeededTotal.Add(float64(count))
	return count, nil
}

func (s *MovieService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("movie cache invalidation failed")
	}
}

func movieFromInput(in ports.MovieInput) *domain.Movie {
	return &domain.Movie{
		Title:        in.Title,
		EpisodeID:    in.EpisodeID,
		OpeningCrawl: in.OpeningCrawl,
		Director:     in.Director,
		Producer:     in.Producer,
		ReleaseDate:  in.ReleaseDate,
		Characters:   in.Characters,
		Planets:      in.Planets,
		Starships:    in.Starships,
		Vehicles:     in.Vehicles,
		Species:      in.Species,
		Created:      in.Created,
		Edited:       in.Edited,
		URL:          in.URL,
	}
}
