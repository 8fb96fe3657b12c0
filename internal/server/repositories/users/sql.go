package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/signupd/internal/dbx"
	"github.com/dmitrijs2005/signupd/internal/server/models"
)

type queries struct {
	existsByUsername string
	existsByEmail    string
	insert           string
}

func newQueries(d dbx.Dialect) queries {
	p := d.Placeholder
	return queries{
		existsByUsername: `SELECT EXISTS(SELECT 1 FROM users WHERE username = ` + p(1) + `)`,
		existsByEmail:    `SELECT EXISTS(SELECT 1 FROM users WHERE email = ` + p(1) + `)`,
		insert: `INSERT INTO users (username, password, email)
		 VALUES (` + p(1) + `, ` + p(2) + `, ` + p(3) + `)`,
	}
}

// SQLRepository stores users through database/sql. Every value reaches the
// driver as a bind parameter.
type SQLRepository struct {
	db dbx.DBTX
	q  queries
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, q: newQueries(dialect)}
}

func (r *SQLRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, r.q.existsByUsername, username)
}

func (r *SQLRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, r.q.existsByEmail, email)
}

func (r *SQLRepository) exists(ctx context.Context, query string, value string) (bool, error) {
	var found bool
	if err := r.db.QueryRowContext(ctx, query, value).Scan(&found); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return found, nil
}

// Create inserts user as is; the caller is responsible for hashing the
// password beforehand.
func (r *SQLRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.db.ExecContext(ctx, r.q.insert, user.Username, user.Password, user.Email)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
