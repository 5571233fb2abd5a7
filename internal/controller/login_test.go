package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/models"
)

func TestLoginPersistsSessionAndNavigates(t *testing.T) {
	auth := &mockAuth{
		loginResp: api.LoginResponse{Token: "jwt-abc"},
		me:        models.User{ID: 7, Email: "a@b.com", Role: models.RoleAdmin},
	}
	store := &mockSessions{}
	c := NewLogin(auth, store)

	seq := c.BeginSubmit("a@b.com", "secret")
	require.NotZero(t, seq)
	assert.True(t, c.Submitting)

	navigate := c.ApplySubmit(c.Submit(context.Background(), seq, "a@b.com", "secret"))

	assert.True(t, navigate)
	assert.False(t, c.Submitting)
	require.True(t, store.has)
	assert.Equal(t, "jwt-abc", store.sess.Token)
	assert.EqualValues(t, 7, store.sess.UserID)
	assert.Equal(t, models.RoleAdmin, store.sess.Role)
	assert.Equal(t, "Login successful!", c.Notice)
	assert.Equal(t, 1, auth.meCalls)
}

func TestLoginValidationSendsNothing(t *testing.T) {
	auth := &mockAuth{}
	c := NewLogin(auth, &mockSessions{})

	seq := c.BeginSubmit("", "secret")

	assert.Zero(t, seq)
	assert.Equal(t, "Please enter email and password", c.Err)
	assert.Zero(t, auth.loginCalls)
}

func TestLoginRejectionSurfacesServerMessage(t *testing.T) {
	auth := &mockAuth{loginErr: &api.Error{Message: "Bad credentials"}}
	store := &mockSessions{}
	c := NewLogin(auth, store)

	seq := c.BeginSubmit("a@b.com", "wrong")
	require.NotZero(t, seq)

	navigate := c.ApplySubmit(c.Submit(context.Background(), seq, "a@b.com", "wrong"))

	assert.False(t, navigate)
	assert.Equal(t, "Bad credentials", c.Err)
	assert.False(t, store.has, "no partial session may be stored")
}

func TestLoginMeFailureStoresNothing(t *testing.T) {
	auth := &mockAuth{
		loginResp: api.LoginResponse{Token: "jwt-abc"},
		meErr:     &api.Error{Message: "token rejected"},
	}
	store := &mockSessions{}
	c := NewLogin(auth, store)

	seq := c.BeginSubmit("a@b.com", "secret")
	navigate := c.ApplySubmit(c.Submit(context.Background(), seq, "a@b.com", "secret"))

	assert.False(t, navigate)
	assert.False(t, store.has, "token without identity must not be persisted")
	assert.Equal(t, "token rejected", c.Err)
}

func TestStaleLoginResultIgnored(t *testing.T) {
	auth := &mockAuth{
		loginResp: api.LoginResponse{Token: "jwt-old"},
		me:        models.User{ID: 1, Role: models.RoleUser},
	}
	store := &mockSessions{}
	c := NewLogin(auth, store)

	first := c.BeginSubmit("a@b.com", "secret")
	firstResult := c.Submit(context.Background(), first, "a@b.com", "secret")

	second := c.BeginSubmit("a@b.com", "secret")
	_ = second

	assert.False(t, c.ApplySubmit(firstResult), "superseded submit must not win")
	assert.False(t, store.has)
}

func TestRegisterFlow(t *testing.T) {
	auth := &mockAuth{}
	c := NewLogin(auth, &mockSessions{})

	seq := c.BeginRegister(api.RegisterRequest{Email: "a@b.com", Password: "x", Name: "A", Surname: "B"})
	require.NotZero(t, seq)

	done := c.ApplyRegister(c.Register(context.Background(), seq, api.RegisterRequest{}))

	assert.True(t, done)
	assert.Equal(t, "Registration successful! You can log in now.", c.Notice)
}

func TestRegisterValidation(t *testing.T) {
	auth := &mockAuth{}
	c := NewLogin(auth, &mockSessions{})

	seq := c.BeginRegister(api.RegisterRequest{Email: "a@b.com"})

	assert.Zero(t, seq)
	assert.Zero(t, auth.registerCall)
}

func TestLogoutClearsStore(t *testing.T) {
	store := &mockSessions{}
	require.NoError(t, store.Save(sessionFixture()))
	c := NewLogin(&mockAuth{}, store)

	require.NoError(t, c.Logout())
	_, ok := store.Current()
	assert.False(t, ok)
}
