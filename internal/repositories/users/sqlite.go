package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/airlineempire/cli/internal/common"
	"github.com/airlineempire/cli/internal/dbx"
	"github.com/airlineempire/cli/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, salt, verifier, email, role, created_at FROM users WHERE username = ?`,
		username)
	return scanUser(row)
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, salt, verifier, email, role, created_at FROM users WHERE id = ?`,
		id)
	return scanUser(row)
}

func (r *SQLiteRepository) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, salt, verifier, email, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Salt, u.Verifier, u.Email, string(u.Role), u.CreatedAt)
	if err != nil {
		// modernc.org/sqlite does not export a typed constraint error, so the
		// UNIQUE(username) violation is matched by message.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var role string
	err := row.Scan(&u.ID, &u.Username, &u.Salt, &u.Verifier, &u.Email, &role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	u.Role = models.Role(role)
	return &u, nil
}
