package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/radar/internal/common"
	"github.com/dmitrijs2005/radar/internal/dbx"
	"github.com/dmitrijs2005/radar/internal/server/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query := r.dialect.Rebind(
		`INSERT INTO users (email, password)
		 VALUES (?, ?)
		 RETURNING id
		 `)

	err := r.db.QueryRowContext(ctx, query, user.Email, user.PasswordHash).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, email FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return users, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := r.dialect.Rebind(
		`SELECT id, email FROM users
		 WHERE id = ?
		 `)

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// Update sets only the non-nil columns and returns the number of matched
// rows. With nothing to set it returns 0 without touching the store.
func (r *SQLRepository) Update(ctx context.Context, id int64, email, passwordHash *string) (int64, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *email)
	}
	if passwordHash != nil {
		sets = append(sets, "password = ?")
		args = append(args, *passwordHash)
	}
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, id)

	query := r.dialect.Rebind("UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?")

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, common.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return rowsAffected(res)
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := r.dialect.Rebind(`DELETE FROM users WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return rowsAffected(res)
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
