package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movies-api/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const MoviesCollection = "movies"

type mongoMovieDoc struct {
	ID           bson.ObjectID `bson:"_id"`
	domain.Movie `bson:",inline"`
}

func (d *mongoMovieDoc) toDomain() *domain.Movie {
	movie := d.Movie
	movie.ID = d.ID.Hex()
	return &movie
}

type mongoMovieRepository struct {
	coll *mongo.Collection
}

func NewMongoMovieRepository(db *mongo.Database) MovieRepository {
	return &mongoMovieRepository{
		coll: db.Collection(MoviesCollection),
	}
}

func (r *mongoMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	oid, err := bson.ObjectIDFromHex(movie.ID)
	if err != nil {
		return fmt.Errorf("invalid movie id %q: %w", movie.ID, err)
	}

	if _, err := r.coll.InsertOne(ctx, mongoMovieDoc{ID: oid, Movie: *movie}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *mongoMovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc mongoMovieDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *mongoMovieRepository) List(ctx context.Context, page domain.Pagination) ([]*domain.Movie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page.Skip)).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	var docs []mongoMovieDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}

	movies := make([]*domain.Movie, 0, len(docs))
	for i := range docs {
		movies = append(movies, docs[i].toDomain())
	}

	return movies, nil
}

func (r *mongoMovieRepository) Update(ctx context.Context, id string, patch *domain.MoviePatch) (*domain.Movie, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for key, value := range patch.Fields() {
		set[key] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoMovieDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *mongoMovieRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
