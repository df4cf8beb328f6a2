// Package services contains server-side business logic. UserService is the
// single gateway to the users store: it validates input, hashes passwords,
// bounds every store call with a timeout and scopes it to one pooled
// connection that is always handed back.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/radar/internal/common"
	"github.com/dmitrijs2005/radar/internal/cryptox"
	"github.com/dmitrijs2005/radar/internal/dbx"
	"github.com/dmitrijs2005/radar/internal/server/config"
	"github.com/dmitrijs2005/radar/internal/server/models"
	"github.com/dmitrijs2005/radar/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/radar/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	timeout     time.Duration
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		timeout:     cfg.StoreTimeout,
		bcryptCost:  cfg.BcryptCost,
	}
}

// Create stores a new user and returns the id the store assigned.
// Both fields are required. A taken email yields common.ErrDuplicateEmail.
func (s *UserService) Create(ctx context.Context, email, password string) (int64, error) {
	if email == "" || password == "" {
		return 0, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	hash, err := s.hash(password)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.withUsers(ctx, func(ctx context.Context, repo users.Repository) error {
		u, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
		if err != nil {
			return err
		}
		id = u.ID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// List returns every user without password data.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var list []models.User
	err := s.withUsers(ctx, func(ctx context.Context, repo users.Repository) error {
		var err error
		list, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return list, nil
}

// GetByID returns the user or common.ErrorNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user *models.User
	err := s.withUsers(ctx, func(ctx context.Context, repo users.Repository) error {
		var err error
		user, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error getting user %d: %w", id, err)
	}
	return user, nil
}

// Update changes only the supplied fields and returns the number of rows
// matched: 1 on success, 0 when the id does not exist. An update without
// fields returns 0 without touching the store.
func (s *UserService) Update(ctx context.Context, id int64, upd models.UserUpdate) (int64, error) {
	if upd.Empty() {
		return 0, nil
	}

	email := nonEmpty(upd.Email)

	var hash *string
	if p := nonEmpty(upd.Password); p != nil {
		h, err := s.hash(*p)
		if err != nil {
			return 0, err
		}
		hash = &h
	}

	var affected int64
	err := s.withUsers(ctx, func(ctx context.Context, repo users.Repository) error {
		var err error
		affected, err = repo.Update(ctx, id, email, hash)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("error updating user %d: %w", id, err)
	}
	return affected, nil
}

// Delete removes the user and returns 1, or 0 when there was nothing to remove.
func (s *UserService) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := s.withUsers(ctx, func(ctx context.Context, repo users.Repository) error {
		var err error
		affected, err = repo.Delete(ctx, id)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("error deleting user %d: %w", id, err)
	}
	return affected, nil
}

// Ping checks that the store answers within the call timeout.
func (s *UserService) Ping(ctx context.Context) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *UserService) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *UserService) withUsers(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	return dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		return fn(ctx, s.repomanager.Users(conn))
	})
}

func (s *UserService) hash(password string) (string, error) {
	h, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password is too long", common.ErrorValidation)
		}
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return h, nil
}

func nonEmpty(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
