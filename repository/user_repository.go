package repository

import (
	"context"
	"database/sql"

	"schooljournal/models"
)

// UserRepository reads user accounts for authentication
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Authenticate looks up a user whose email and password match exactly.
// Returns sql.ErrNoRows when the credentials match no row.
func (r *UserRepository) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, role, first_name, last_name
		FROM users
		WHERE email = $1 AND password = $2
	`, email, password).Scan(&u.ID, &u.Email, &u.Role, &u.FirstName, &u.LastName)
	if err != nil {
		return nil, err
	}

	return &u, nil
}
