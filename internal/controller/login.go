package controller

import (
	"context"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/models"
	"github.com/pmateja/padmin/internal/session"
)

// AuthService is the slice of the API client the login screen needs
type AuthService interface {
	Login(ctx context.Context, in api.LoginRequest) (api.LoginResponse, error)
	Register(ctx context.Context, in api.RegisterRequest) error
	MeWithToken(ctx context.Context, token string) (models.User, error)
}

// SessionStore persists the credential set between runs
type SessionStore interface {
	Current() (session.Session, bool)
	Save(session.Session) error
	Clear() error
}

// Login drives the login and register forms
type Login struct {
	auth     AuthService
	sessions SessionStore
	seq      sequencer

	Submitting bool
	Err        string
	Notice     string
}

func NewLogin(auth AuthService, sessions SessionStore) *Login {
	return &Login{auth: auth, sessions: sessions}
}

// LoginResult is the outcome of one login attempt. Session is only valid
// when Err is nil.
type LoginResult struct {
	Seq     uint64
	Session session.Session
	Err     error
}

// BeginSubmit validates the form and reserves a request number. A zero seq
// means validation failed and no request may be issued.
func (c *Login) BeginSubmit(email, password string) uint64 {
	c.Err = ""
	c.Notice = ""
	if email == "" || password == "" {
		c.Err = "Please enter email and password"
		return 0
	}
	c.Submitting = true
	return c.seq.begin()
}

// Submit performs the login flow: exchange credentials for a token, then
// resolve the identity behind it. Pure with respect to controller state.
func (c *Login) Submit(ctx context.Context, seq uint64, email, password string) LoginResult {
	resp, err := c.auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return LoginResult{Seq: seq, Err: err}
	}
	me, err := c.auth.MeWithToken(ctx, resp.Token)
	if err != nil {
		return LoginResult{Seq: seq, Err: err}
	}
	return LoginResult{Seq: seq, Session: session.Session{
		Token:  resp.Token,
		UserID: me.ID,
		Role:   me.Role,
	}}
}

// ApplySubmit reconciles a login result. Returns true when the session was
// persisted and the app should navigate to the project listing.
func (c *Login) ApplySubmit(r LoginResult) bool {
	if c.seq.stale(r.Seq) {
		return false
	}
	c.Submitting = false
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		return false
	}
	if err := c.sessions.Save(r.Session); err != nil {
		c.Err = "Could not store session: " + err.Error()
		return false
	}
	c.Notice = "Login successful!"
	return true
}

// RegisterResult is the outcome of one register attempt
type RegisterResult struct {
	Seq uint64
	Err error
}

// BeginRegister validates the form and reserves a request number
func (c *Login) BeginRegister(in api.RegisterRequest) uint64 {
	c.Err = ""
	c.Notice = ""
	if in.Email == "" || in.Password == "" || in.Name == "" || in.Surname == "" {
		c.Err = "Please fill in all fields"
		return 0
	}
	c.Submitting = true
	return c.seq.begin()
}

func (c *Login) Register(ctx context.Context, seq uint64, in api.RegisterRequest) RegisterResult {
	return RegisterResult{Seq: seq, Err: c.auth.Register(ctx, in)}
}

// ApplyRegister reconciles a register result. Returns true on success; the
// view then switches back to the login form.
func (c *Login) ApplyRegister(r RegisterResult) bool {
	if c.seq.stale(r.Seq) {
		return false
	}
	c.Submitting = false
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		return false
	}
	c.Notice = "Registration successful! You can log in now."
	return true
}

// Logout clears the stored session
func (c *Login) Logout() error {
	return c.sessions.Clear()
}
