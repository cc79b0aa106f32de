package postgres

import (
	"database/sql"
	"fmt"

	"wordbot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(user domain.User) error {
	query := `
		INSERT INTO users (user_id, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, user.UserID, user.Username, user.FirstName, user.LastName)
	if err != nil {
		return fmt.Errorf("ensure user %d: %w", user.UserID, err)
	}
	return nil
}
