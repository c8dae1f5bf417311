package auth_test

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-tasks/auth"
)

func mustUUID(email string) uuid.UUID {
	id, err := hashid.NewUUID(email)
	if err != nil {
		panic(err)
	}
	return id
}

// MockUsers implements the methods the auth flows touch; the embedded
// interface panics if an unexpected call sneaks through.
type MockUsers struct {
	mock.Mock
	auth.Users
}

func (m *MockUsers) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*auth.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*auth.User, error) {
	args := m.Called(ctx, tx, email)
	if u := args.Get(0); u != nil {
		return u.(*auth.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) CreateTx(ctx context.Context, tx bun.IDB, record *auth.User, criteria ...repository.InsertCriteria) (*auth.User, error) {
	args := m.Called(ctx, tx, record)
	if u := args.Get(0); u != nil {
		return u.(*auth.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRepositoryManager hands the mocked users repo to the handlers and runs
// transaction bodies against a zero-value tx.
type MockRepositoryManager struct {
	users *MockUsers
}

func NewMockRepositoryManager() *MockRepositoryManager {
	return &MockRepositoryManager{users: &MockUsers{}}
}

func (m *MockRepositoryManager) Validate() error { return nil }
func (m *MockRepositoryManager) MustValidate()   {}

func (m *MockRepositoryManager) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	return f(ctx, bun.Tx{})
}

func (m *MockRepositoryManager) Users() auth.Users {
	return m.users
}

// MockUsersRepo exposes the mock to set expectations on.
func (m *MockRepositoryManager) MockUsersRepo() *MockUsers {
	return m.users
}

func notFound(email string) error {
	return repository.NewRecordNotFound().WithMetadata(map[string]any{
		"email": email,
	})
}

type testConfig struct {
	signingKey string
	expiration int
}

func newTestConfig() *testConfig {
	return &testConfig{signingKey: "test-signing-key", expiration: 168}
}

func (c *testConfig) GetSigningKey() string   { return c.signingKey }
func (c *testConfig) GetContextKey() string   { return "user" }
func (c *testConfig) GetTokenExpiration() int { return c.expiration }
func (c *testConfig) GetAuthScheme() string   { return "Bearer" }
func (c *testConfig) GetIssuer() string       { return "go-tasks" }
func (c *testConfig) GetAudience() []string   { return nil }
