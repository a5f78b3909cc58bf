package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"movies-api/internal/domain"

	"github.com/go-kivik/kivik/v4"
)

const userDocType = "user"

type userDoc struct {
	DocID   string `json:"_id"`
	Rev     string `json:"_rev,omitempty"`
	DocType string `json:"doc_type"`
	domain.User
}

type userRepository struct {
	client *kivik.Client
	dbName string
}

func NewUserRepository(client *kivik.Client, dbName string) UserRepository {
	return &userRepository{
		client: client,
		dbName: dbName,
	}
}

func userDocID(id string) string {
	return fmt.Sprintf("user:%s", id)
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	db := r.client.DB(r.dbName)

	doc := userDoc{
		DocID:   userDocID(user.ID),
		DocType: userDocType,
		User:    *user,
	}

	if _, err := db.Put(ctx, doc.DocID, doc); err != nil {
		if kivik.HTTPStatus(err) == http.StatusConflict {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	db := r.client.DB(r.dbName)

	query := map[string]interface{}{
		"selector": map[string]interface{}{
			"doc_type": userDocType,
			"email":    email,
		},
		"limit": 1,
	}

	rows := db.Find(ctx, query)
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to query user by email: %w", err)
		}
		return nil, ErrNotFound
	}

	var doc userDoc
	if err := rows.ScanDoc(&doc); err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &doc.User, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	db := r.client.DB(r.dbName)

	var doc userDoc
	if err := db.Get(ctx, userDocID(id)).ScanDoc(&doc); err != nil {
		if kivik.HTTPStatus(err) == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}

	return &doc.User, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return emailExists(ctx, r, email)
}

func emailExists(ctx context.Context, r UserRepository, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}
