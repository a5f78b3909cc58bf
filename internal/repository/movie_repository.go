package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"movies-api/internal/domain"

	"github.com/go-kivik/kivik/v4"
)

const movieDocType = "movie"

type movieDoc struct {
	DocID   string `json:"_id"`
	Rev     string `json:"_rev,omitempty"`
	DocType string `json:"doc_type"`
	domain.Movie
}

type movieRepository struct {
	client *kivik.Client
	dbName string
}

func NewMovieRepository(client *kivik.Client, dbName string) MovieRepository {
	return &movieRepository{
		client: client,
		dbName: dbName,
	}
}

func movieDocID(id string) string {
	return fmt.Sprintf("movie:%s", id)
}

func (r *movieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	db := r.client.DB(r.dbName)

	doc := movieDoc{
		DocID:   movieDocID(movie.ID),
		DocType: movieDocType,
		Movie:   *movie,
	}

	if _, err := db.Put(ctx, doc.DocID, doc); err != nil {
		if kivik.HTTPStatus(err) == http.StatusConflict {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	db := r.client.DB(r.dbName)

	var doc movieDoc
	if err := db.Get(ctx, movieDocID(id)).ScanDoc(&doc); err != nil {
		if kivik.HTTPStatus(err) == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return &doc.Movie, nil
}

func (r *movieRepository) List(ctx context.Context, page domain.Pagination) ([]*domain.Movie, error) {
	db := r.client.DB(r.dbName)

	query := map[string]interface{}{
		"selector": map[string]interface{}{
			"doc_type": movieDocType,
		},
		"sort":  []map[string]string{{"_id": "asc"}},
		"skip":  page.Skip,
		"limit": page.Limit,
	}

	rows := db.Find(ctx, query)
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*domain.Movie, 0, page.Limit)
	for rows.Next() {
		var doc movieDoc
		if err := rows.ScanDoc(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movie := doc.Movie
		movies = append(movies, &movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, id string, patch *domain.MoviePatch) (*domain.Movie, error) {
	db := r.client.DB(r.dbName)
	docID := movieDocID(id)

	var existingDoc map[string]interface{}
	if err := db.Get(ctx, docID).ScanDoc(&existingDoc); err != nil {
		if kivik.HTTPStatus(err) == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch existing movie for update: %w", err)
	}

	for key, value := range patch.Fields() {
		existingDoc[key] = value
	}
	existingDoc["updated_at"] = time.Now().UTC()

	// existingDoc carries _rev: a concurrent write in between fails with 409.
	if _, err := db.Put(ctx, docID, existingDoc); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	return r.FindByID(ctx, id)
}

func (r *movieRepository) Delete(ctx context.Context, id string) error {
	db := r.client.DB(r.dbName)
	docID := movieDocID(id)

	rev, err := db.GetRev(ctx, docID)
	if err != nil {
		if kivik.HTTPStatus(err) == http.StatusNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch movie revision: %w", err)
	}

	if _, err := db.Delete(ctx, docID, rev); err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	return nil
}
