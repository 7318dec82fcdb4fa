package action

import (
	"context"
	"errors"
	"net/url"

	"github.com/avelikov/finboard/internal/auth"
)

const (
	msgInvalidCredentials = "Invalid credentials."
	msgSomethingWentWrong = "Something went wrong."
)

// Authenticate hands the submitted credentials to the identity provider.
// On success it returns the provider's session token and no message; the
// transport layer installs the session and performs the redirect. Classified
// authentication failures map to a user-facing message; anything else is an
// infrastructure failure and propagates unchanged.
func (a *Actions) Authenticate(ctx context.Context, _ string, form url.Values) (token string, message string, err error) {
	token, err = a.signIn.SignIn(ctx, auth.ProviderCredentials, form)
	if err == nil {
		return token, "", nil
	}

	var authErr *auth.Error
	if errors.As(err, &authErr) {
		switch authErr.Type {
		case auth.TypeCredentialsSignin:
			return "", msgInvalidCredentials, nil
		default:
			return "", msgSomethingWentWrong, nil
		}
	}
	return "", "", err
}
