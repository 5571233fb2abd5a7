package controller

import (
	"context"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/models"
)

// UserLister is the slice of the API client the users screen needs
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UserList drives the users listing screen
type UserList struct {
	svc UserLister
	seq sequencer

	Users []models.User
	State ViewState
	Err   string

	loadedOnce bool
}

func NewUserList(svc UserLister) *UserList {
	return &UserList{svc: svc, State: StateLoading}
}

// UserListResult is one fetch outcome
type UserListResult struct {
	Seq   uint64
	Users []models.User
	Err   error
}

func (c *UserList) BeginLoad() uint64 {
	c.Err = ""
	if !c.loadedOnce {
		c.State = StateLoading
	}
	return c.seq.begin()
}

func (c *UserList) Load(ctx context.Context, seq uint64) UserListResult {
	users, err := c.svc.ListUsers(ctx)
	return UserListResult{Seq: seq, Users: users, Err: err}
}

func (c *UserList) ApplyLoad(r UserListResult) {
	if c.seq.stale(r.Seq) {
		return
	}
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		if !c.loadedOnce {
			c.State = StateFailed
		}
		return
	}
	c.Users = r.Users
	c.State = StateLoaded
	c.loadedOnce = true
}
