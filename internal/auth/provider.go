package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avelikov/finboard/internal/domain"
)

const ProviderCredentials = "credentials"

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CredentialsProvider verifies a submitted email/password pair against the
// user store and mints a session token on success.
type CredentialsProvider struct {
	users  userStore
	secret []byte
	ttl    time.Duration
}

func NewCredentialsProvider(users userStore, secret []byte, ttl time.Duration) *CredentialsProvider {
	return &CredentialsProvider{users: users, secret: secret, ttl: ttl}
}

// SignIn authenticates the form's credentials. Unknown emails and wrong
// passwords both surface as a CredentialsSignin Error so callers cannot
// distinguish them. User store failures propagate unclassified.
func (p *CredentialsProvider) SignIn(ctx context.Context, provider string, form url.Values) (string, error) {
	if provider != ProviderCredentials {
		return "", &Error{Type: TypeCallbackRoute, Err: fmt.Errorf("unsupported provider %q", provider)}
	}

	email := strings.TrimSpace(form.Get("email"))
	password := form.Get("password")
	if email == "" || password == "" {
		return "", &Error{Type: TypeCredentialsSignin, Err: domain.ErrInvalidCredentials}
	}

	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", &Error{Type: TypeCredentialsSignin, Err: domain.ErrInvalidCredentials}
		}
		return "", fmt.Errorf("look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", &Error{Type: TypeCredentialsSignin, Err: domain.ErrInvalidCredentials}
	}

	token, err := GenerateToken(user.ID, p.secret, p.ttl)
	if err != nil {
		return "", &Error{Type: TypeCallbackRoute, Err: err}
	}
	return token, nil
}

// HashPassword produces a bcrypt hash suitable for the users table.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
