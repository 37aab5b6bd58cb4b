package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

const moviesCollection = "movies"

type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(moviesCollection)}
}

type mongoMovie struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	VideoURL     string             `bson:"video_url"`
	ThumbnailURL string             `bson:"thumbnail_url"`
	Genre        string             `bson:"genre"`
	Duration     string             `bson:"duration"`
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoMovie
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}

	movies := make([]domain.Movie, 0, len(docs))
	for _, d := range docs {
		movies = append(movies, *d.toDomain())
	}
	return movies, nil
}

// FindByID resolves a catalog entry. A malformed identifier and an unknown
// identifier both surface as domain.ErrInvalidMovieID.
func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidMovieID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d mongoMovie
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidMovieID
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return d.toDomain(), nil
}

// FindByIDs fetches the movies whose identifiers appear in ids. Malformed
// or unknown identifiers are skipped; result order follows the collection,
// not ids.
func (r *MovieRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Movie, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []domain.Movie{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find movies by ids: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoMovie
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}

	movies := make([]domain.Movie, 0, len(docs))
	for _, d := range docs {
		movies = append(movies, *d.toDomain())
	}
	return movies, nil
}

func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

// FindAtOffset returns the single movie at the given offset in natural
// order (skip-N, take-1). An out-of-range offset surfaces as
// domain.ErrInvalidMovieID.
func (r *MovieRepository) FindAtOffset(ctx context.Context, offset int64) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSkip(offset)

	var d mongoMovie
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidMovieID
		}
		return nil, fmt.Errorf("find movie at offset: %w", err)
	}
	return d.toDomain(), nil
}

func (d *mongoMovie) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		VideoURL:     d.VideoURL,
		ThumbnailURL: d.ThumbnailURL,
		Genre:        d.Genre,
		Duration:     d.Duration,
	}
}
