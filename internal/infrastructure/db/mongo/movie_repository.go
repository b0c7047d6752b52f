package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomyolivera/star-wars-api/internal/core/domain"
)

const moviesCollection = "movies"

// MovieRepository persists movies in MongoDB. Ids are numeric, generated
// from the counters collection so the external contract matches a
// relational identity column.
type MovieRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{db: db, coll: db.Collection(moviesCollection)}
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}

	movies := []domain.Movie{}
	if err := cur.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id int64) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var movie domain.Movie
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&movie); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return &movie, nil
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, moviesCollection)
	if err != nil {
		return nil, err
	}

	created := *movie
	created.ID = id
	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}
	return &created, nil
}

func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": movie.ID}, movie)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// UpsertByEpisode writes the given movies, replacing any existing document
// with the same episode number while keeping its id and creation timestamp.
func (r *MovieRepository) UpsertByEpisode(ctx context.Context, movies []domain.Movie) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	written := 0
	for _, movie := range movies {
		var existing domain.Movie
		err := r.coll.FindOne(ctx, bson.M{"episode_id": movie.EpisodeID}).Decode(&existing)
		switch {
		case err == nil:
			movie.ID = existing.ID
			movie.CreatedAt = existing.CreatedAt
			if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": existing.ID}, movie); err != nil {
				return written, fmt.Errorf("upsert movie episode %d: %w", movie.EpisodeID, err)
			}
		case errors.Is(err, mongo.ErrNoDocuments):
			id, err := nextID(ctx, r.db, moviesCollection)
			if err != nil {
				return written, err
			}
			movie.ID = id
			if _, err := r.coll.InsertOne(ctx, movie); err != nil {
				return written, fmt.Errorf("upsert movie episode %d: %w", movie.EpisodeID, err)
			}
		default:
			return written, fmt.Errorf("upsert movie episode %d: %w", movie.EpisodeID, err)
		}
		written++
	}
	return written, nil
}

// EnsureIndexes creates the episode lookup index on the movies collection.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "episode_id", Value: 1}}},
		{Keys: bson.D{{Key: "title", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
