package httpserver

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/signupd/internal/logging"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type signupCall struct {
	username, password, email string
}

type fakeUsers struct {
	mu    sync.Mutex
	err   error
	calls []signupCall
}

func (f *fakeUsers) AddUser(_ context.Context, username, password, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, signupCall{username, password, email})
	return f.err
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func newTestServer(t *testing.T, us UserAdder, db Pinger) *HTTPServer {
	t.Helper()
	s, err := NewHTTPServer("127.0.0.1:0", t.TempDir(), time.Second, us, db, nopLogger{})
	require.NoError(t, err)
	return s
}
