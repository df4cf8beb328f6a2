package users

import (
	"context"

	"github.com/dmitrijs2005/radar/internal/server/models"
)

// Repository is the SQL access for the users table. Faults come back wrapped
// as "db error: ..."; a unique email collision comes back as
// common.ErrDuplicateEmail and a missing row as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, email, passwordHash *string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
