package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shelldon/internal/models"
)

type CaretakerRepository struct {
	db *sql.DB
}

func NewCaretakerRepository(db *sql.DB) *CaretakerRepository {
	return &CaretakerRepository{db: db}
}

var _ Authorization = (*CaretakerRepository)(nil)

const (
	insertCaretakerSQL           = `INSERT INTO caretakers (username, password_hash) VALUES (?, ?)`
	selectCaretakerByUsernameSQL = `SELECT id, username, password_hash FROM caretakers WHERE username = ?`
)

// Create inserts a new caretaker and returns its ID.
func (r *CaretakerRepository) Create(ctx context.Context, username, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertCaretakerSQL, username, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert caretaker %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for caretaker %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername returns (nil, nil) if the caretaker does not exist.
func (r *CaretakerRepository) GetByUsername(ctx context.Context, username string) (*models.Caretaker, error) {
	var c models.Caretaker
	err := r.db.QueryRowContext(ctx, selectCaretakerByUsernameSQL, username).Scan(&c.ID, &c.Username, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select caretaker %q: %w", username, err)
	}
	return &c, nil
}
