package services

import (
	"context"

	"github.com/dmitrijs2005/signupd/internal/common"
	"github.com/dmitrijs2005/signupd/internal/cryptox"
	"github.com/dmitrijs2005/signupd/internal/dbx"
	"github.com/dmitrijs2005/signupd/internal/logging"
	"github.com/dmitrijs2005/signupd/internal/server/models"
	"github.com/dmitrijs2005/signupd/internal/server/repositories/repomanager"
)

type UserService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	hasher      cryptox.Hasher
	logger      logging.Logger
}

func NewUserService(db dbx.DBTX, m repomanager.RepositoryManager, h cryptox.Hasher, l logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      h,
		logger:      l.With("module", "user_service"),
	}
}

// AddUser validates the candidate, rejects a taken username or email, hashes
// the password and inserts the row. It returns nil when the user was created,
// one of the common validation or uniqueness errors, or common.ErrorInternal
// for any storage or hashing failure. Nothing is written unless every check
// passed.
//
// The uniqueness check and the insert are separate statements; concurrent
// signups for the same name are stopped by the table's unique constraints
// and surface as ErrorInternal.
func (s *UserService) AddUser(ctx context.Context, username, password, email string) error {
	if err := ValidateCandidate(username, email, password); err != nil {
		return err
	}

	repo := s.repomanager.Users(s.db)

	if err := checkDuplicates(ctx, repo, s.logger, username, email); err != nil {
		return err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return common.ErrorInternal
	}

	user := &models.User{Username: username, Password: digest, Email: email}
	if err := repo.Create(ctx, user); err != nil {
		s.logger.Error(ctx, "user insert failed", "error", err)
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "user created", "username", username)
	return nil
}
