package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/dmitrijs2005/signupd/internal/cryptox"
	"github.com/dmitrijs2005/signupd/internal/dbx"
	"github.com/dmitrijs2005/signupd/internal/logging"
	"github.com/dmitrijs2005/signupd/internal/server/models"
	usersrepo "github.com/dmitrijs2005/signupd/internal/server/repositories/users"
)

// fakeUsersRepo keeps rows in memory and enforces the same uniqueness the
// table does.
type fakeUsersRepo struct {
	mu   sync.Mutex
	rows []models.User

	usernameErr error
	emailErr    error
	createErr   error

	usernameCalls int
	emailCalls    int
	createCalls   int
}

func (f *fakeUsersRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.usernameCalls++
	if f.usernameErr != nil {
		return false, f.usernameErr
	}
	for _, u := range f.rows {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emailCalls++
	if f.emailErr != nil {
		return false, f.emailErr
	}
	for _, u := range f.rows {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.rows {
		if u.Username == user.Username || u.Email == user.Email {
			return errors.New("db error: unique violation")
		}
	}
	f.rows = append(f.rows, *user)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("hash failed") }

type nop struct{}

func (n nop) Debug(context.Context, string, ...any) {}
func (n nop) Info(context.Context, string, ...any)  {}
func (n nop) Warn(context.Context, string, ...any)  {}
func (n nop) Error(context.Context, string, ...any) {}
func (n nop) With(...any) logging.Logger            { return n }

func nopLogger() logging.Logger { return nop{} }

func newService(repo *fakeUsersRepo) *UserService {
	return NewUserService(nil, &fakeRepoManager{u: repo}, cryptox.SHA512Hasher{}, nopLogger())
}
