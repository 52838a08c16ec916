package authservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopeworks/fundtrack/internal/blobstore"
	userrepo "github.com/hopeworks/fundtrack/internal/repo/user-repo"
	"github.com/hopeworks/fundtrack/internal/storage"
	"github.com/hopeworks/fundtrack/pkg/auth"
)

func newService(t *testing.T) *Service {
	t.Helper()
	store := storage.New(blobstore.NewMemStore())
	require.NoError(t, store.Init(context.Background()))
	return New(userrepo.New(store), &auth.PlainTextVerifier{})
}

func TestLogin(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		email         string
		password      string
		expectedName  string
		expectedError error
	}{
		{
			name:         "Seed user with correct password",
			email:        "jane@example.com",
			password:     "password123",
			expectedName: "Jane Smith",
		},
		{
			name:          "Seed user with wrong password",
			email:         "jane@example.com",
			password:      "wrong",
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "Unknown email",
			email:         "nobody@example.com",
			password:      "password123",
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := service.Login(ctx, tt.email, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, user.Name)
		})
	}
}

func TestRegister(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, "Bob", "bob@example.com", "pw1234")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Bob", user.Name)

	// registration makes the account the active session
	session, err := service.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "bob@example.com", session.Email)

	// the new account can log in afterwards
	loggedIn, err := service.Login(ctx, "bob@example.com", "pw1234")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := newService(t)

	user, err := service.Register(context.Background(), "Fake Jane", "jane@example.com", "pw1234")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, user)
}

func TestLoginRefreshesSession(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	_, err := service.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)

	session, err := service.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Admin User", session.Name)
}

func TestLogoutClearsSession(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	_, err := service.Login(ctx, "jane@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, service.Logout(ctx))

	session, err := service.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}
