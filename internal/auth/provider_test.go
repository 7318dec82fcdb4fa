package auth

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelikov/finboard/internal/domain"
)

type fakeUserStore struct {
	user *domain.User
	err  error
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.user == nil || f.user.Email != email {
		return nil, domain.ErrUserNotFound
	}
	return f.user, nil
}

func seededStore(t *testing.T, password string) *fakeUserStore {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &fakeUserStore{user: &domain.User{
		ID:           "u1",
		Name:         "Demo User",
		Email:        "user@example.com",
		PasswordHash: hash,
	}}
}

func loginForm(email, password string) url.Values {
	return url.Values{"email": {email}, "password": {password}}
}

func TestSignIn_Success(t *testing.T) {
	p := NewCredentialsProvider(seededStore(t, "s3cret"), []byte("k"), time.Hour)

	token, err := p.SignIn(context.Background(), ProviderCredentials, loginForm("user@example.com", "s3cret"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := UserIDFromToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestSignIn_BadCredentials(t *testing.T) {
	p := NewCredentialsProvider(seededStore(t, "s3cret"), []byte("k"), time.Hour)

	tests := []struct {
		name string
		form url.Values
	}{
		{"wrong password", loginForm("user@example.com", "nope")},
		{"unknown email", loginForm("ghost@example.com", "s3cret")},
		{"empty password", loginForm("user@example.com", "")},
		{"empty form", url.Values{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.SignIn(context.Background(), ProviderCredentials, tt.form)
			var authErr *Error
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, TypeCredentialsSignin, authErr.Type)
		})
	}
}

func TestSignIn_StoreFailurePropagatesUnclassified(t *testing.T) {
	storeErr := errors.New("connection refused")
	p := NewCredentialsProvider(&fakeUserStore{err: storeErr}, []byte("k"), time.Hour)

	_, err := p.SignIn(context.Background(), ProviderCredentials, loginForm("user@example.com", "s3cret"))
	require.Error(t, err)

	var authErr *Error
	assert.False(t, errors.As(err, &authErr))
	assert.ErrorIs(t, err, storeErr)
}

func TestSignIn_UnsupportedProvider(t *testing.T) {
	p := NewCredentialsProvider(seededStore(t, "s3cret"), []byte("k"), time.Hour)

	_, err := p.SignIn(context.Background(), "github", loginForm("user@example.com", "s3cret"))
	var authErr *Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, TypeCallbackRoute, authErr.Type)
}

func TestUserIDFromToken_BadSecret(t *testing.T) {
	token, err := GenerateToken("u1", []byte("k"), time.Hour)
	require.NoError(t, err)

	_, err = UserIDFromToken(token, []byte("other"))
	assert.Error(t, err)
}

func TestUserIDFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("u1", []byte("k"), -time.Minute)
	require.NoError(t, err)

	_, err = UserIDFromToken(token, []byte("k"))
	assert.Error(t, err)
}
