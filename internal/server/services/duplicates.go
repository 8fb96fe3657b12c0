package services

import (
	"context"

	"github.com/dmitrijs2005/signupd/internal/common"
	"github.com/dmitrijs2005/signupd/internal/logging"
	"github.com/dmitrijs2005/signupd/internal/server/repositories/users"
)

// checkDuplicates reports ErrUsernameTaken before ErrEmailTaken. Lookup
// failures are logged and returned as ErrorInternal.
func checkDuplicates(ctx context.Context, repo users.Repository, logger logging.Logger, username, email string) error {
	taken, err := repo.ExistsByUsername(ctx, username)
	if err != nil {
		logger.Error(ctx, "username lookup failed", "error", err)
		return common.ErrorInternal
	}
	if taken {
		return common.ErrUsernameTaken
	}

	taken, err = repo.ExistsByEmail(ctx, email)
	if err != nil {
		logger.Error(ctx, "email lookup failed", "error", err)
		return common.ErrorInternal
	}
	if taken {
		return common.ErrEmailTaken
	}

	return nil
}
