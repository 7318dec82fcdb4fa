package action

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelikov/finboard/internal/auth"
)

type fakeSignIn struct {
	token string
	err   error

	provider string
	form     url.Values
}

func (f *fakeSignIn) SignIn(ctx context.Context, provider string, form url.Values) (string, error) {
	f.provider = provider
	f.form = form
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func TestAuthenticate_Success(t *testing.T) {
	signIn := &fakeSignIn{token: "tok"}
	a := New(&fakeInvoiceStore{}, &fakeCache{}, signIn)

	form := url.Values{"email": {"user@example.com"}, "password": {"s3cret"}}
	token, message, err := a.Authenticate(context.Background(), "", form)

	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Empty(t, message)
	assert.Equal(t, auth.ProviderCredentials, signIn.provider)
	assert.Equal(t, form, signIn.form)
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	signIn := &fakeSignIn{err: &auth.Error{Type: auth.TypeCredentialsSignin}}
	a := New(&fakeInvoiceStore{}, &fakeCache{}, signIn)

	token, message, err := a.Authenticate(context.Background(), "", url.Values{})

	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, "Invalid credentials.", message)
}

func TestAuthenticate_OtherClassifiedFailure(t *testing.T) {
	signIn := &fakeSignIn{err: &auth.Error{Type: auth.TypeCallbackRoute}}
	a := New(&fakeInvoiceStore{}, &fakeCache{}, signIn)

	token, message, err := a.Authenticate(context.Background(), "", url.Values{})

	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, "Something went wrong.", message)
}

func TestAuthenticate_InfrastructureErrorPropagates(t *testing.T) {
	infraErr := errors.New("dial tcp: connection refused")
	signIn := &fakeSignIn{err: infraErr}
	a := New(&fakeInvoiceStore{}, &fakeCache{}, signIn)

	token, message, err := a.Authenticate(context.Background(), "", url.Values{})

	assert.ErrorIs(t, err, infraErr)
	assert.Empty(t, token)
	assert.Empty(t, message)
}

func TestAuthenticate_WrappedClassifiedFailure(t *testing.T) {
	wrapped := &auth.Error{Type: auth.TypeCredentialsSignin, Err: errors.New("bad password")}
	a := New(&fakeInvoiceStore{}, &fakeCache{}, &fakeSignIn{err: wrapped})

	_, message, err := a.Authenticate(context.Background(), "", url.Values{})

	require.NoError(t, err)
	assert.Equal(t, "Invalid credentials.", message)
}
