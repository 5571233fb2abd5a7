package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type tokenFunc func() (string, bool)

func (f tokenFunc) Token() (string, bool) { return f() }

func noToken() TokenSource {
	return tokenFunc(func() (string, bool) { return "", false })
}

func withToken(token string) TokenSource {
	return tokenFunc(func() (string, bool) { return token, true })
}

func TestAuthHeaderOmittedWithoutToken(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, noToken(), zap.NewNop())
	_, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.False(t, hasAuth, "no Authorization header should be sent without a token")
	assert.Empty(t, gotAuth)
}

func TestAuthHeaderCarriesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, withToken("tok-123"), zap.NewNop())
	_, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestStructuredErrorSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"status":"CONFLICT","message":"Email already in use","timestamp":"2026-01-02T10:00:00Z"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, noToken(), zap.NewNop())
	err := c.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "x", Name: "A", Surname: "B"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email already in use", apiErr.Message)
	assert.Equal(t, "CONFLICT", apiErr.Status)
	assert.Equal(t, "Email already in use", Message(err))
}

func TestUnparseableErrorBodyFallsBackToHTTPOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := New(srv.URL, noToken(), zap.NewNop())
	_, err := c.ListUsers(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed: 500 Internal Server Error", apiErr.Message)
}

func TestNonSuccessRedirectStatusIsAFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 304 is not followed as a redirect; it must not pass as success.
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	c := New(srv.URL, noToken(), zap.NewNop())
	_, err := c.ListUsers(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed: 304 Not Modified", apiErr.Message)
}

func TestTransportFailureIsDistinctFromServerErrors(t *testing.T) {
	// A server that is immediately closed guarantees a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, noToken(), zap.NewNop())
	_, err := c.ListUsers(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnexpected)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "transport failures must not look like server rejections")
	assert.Equal(t, "An unexpected error occurred", Message(err))
}

func TestLoginDecodesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"jwt-abc"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, noToken(), zap.NewNop())
	resp, err := c.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", resp.Token)
}

func TestMeWithTokenUsesExplicitToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"email":"a@b.com","name":"Ann","surname":"Bee","role":"ADMIN"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, noToken(), zap.NewNop())
	me, err := c.MeWithToken(context.Background(), "fresh-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh-token", gotAuth)
	assert.EqualValues(t, 7, me.ID)
	assert.Equal(t, "ADMIN", string(me.Role))
}
