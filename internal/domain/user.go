package domain

import "time"

type User struct {
	ID        string    `json:"id" bson:"-"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"password,omitempty" bson:"password"`
	Birthday  string    `json:"birthday,omitempty" bson:"birthday,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Summary is the projection of a user that may leave the server.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Birthday: u.Birthday,
	}
}

type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Birthday string `json:"birthday,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token     string      `json:"token"`
	IssuedAt  string      `json:"issuedAt"`
	ExpiresAt string      `json:"expiresAt"`
	User      UserSummary `json:"user"`
}
