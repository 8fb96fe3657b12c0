package users

import (
	"context"

	"github.com/dmitrijs2005/signupd/internal/server/models"
)

type Repository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
}
