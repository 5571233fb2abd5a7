package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/models"
)

func userFixture() models.User {
	return models.User{
		ID:      9,
		Email:   "mia@x.com",
		Name:    "Mia",
		Surname: "Nu",
		Role:    models.RoleUser,
		Projects: []models.Project{
			{ID: 4, Name: "Apollo"},
		},
		ProjectsManaged: []models.Project{
			{ID: 8, Name: "Borealis"},
		},
	}
}

func loadUser(t *testing.T, c *UserDetail) {
	t.Helper()
	seq := c.BeginLoad()
	c.ApplyLoad(c.Load(context.Background(), seq))
	require.Equal(t, StateLoaded, c.State)
}

func TestUserDetailLoad(t *testing.T) {
	svc := &mockUsers{user: userFixture()}
	c := NewUserDetail(svc, 9)

	loadUser(t, c)

	assert.Equal(t, "Mia Nu", c.User.FullName())
	assert.Len(t, c.User.Projects, 1)
	assert.Len(t, c.User.ProjectsManaged, 1)
}

func TestEditMergesWithoutDroppingMemberships(t *testing.T) {
	svc := &mockUsers{user: userFixture()}
	c := NewUserDetail(svc, 9)
	loadUser(t, c)

	// PATCH responses carry the profile fields only.
	svc.updated = models.User{ID: 9, Email: "mia@new.com", Name: "Maria", Surname: "Nu", Role: models.RoleAdmin}

	in := api.UpdateUserRequest{Name: "Maria", Surname: "Nu", Email: "mia@new.com", Role: models.RoleAdmin}
	seq := c.BeginEdit(in)
	require.NotZero(t, seq)
	closed := c.ApplyEdit(c.Edit(context.Background(), seq, in))

	assert.True(t, closed)
	assert.Equal(t, "Maria", c.User.Name)
	assert.Equal(t, models.RoleAdmin, c.User.Role)
	assert.Len(t, c.User.Projects, 1, "memberships survive the merge")
	assert.Len(t, c.User.ProjectsManaged, 1)
}

func TestEditValidation(t *testing.T) {
	svc := &mockUsers{user: userFixture()}
	c := NewUserDetail(svc, 9)
	loadUser(t, c)

	seq := c.BeginEdit(api.UpdateUserRequest{Name: "Maria"})

	assert.Zero(t, seq)
	assert.Zero(t, svc.updateCalls)
}

func TestFailedEditPreservesProjection(t *testing.T) {
	svc := &mockUsers{user: userFixture(), updateErr: &api.Error{Message: "email in use"}}
	c := NewUserDetail(svc, 9)
	loadUser(t, c)

	in := api.UpdateUserRequest{Name: "Maria", Surname: "Nu", Email: "taken@x.com", Role: models.RoleUser}
	seq := c.BeginEdit(in)
	closed := c.ApplyEdit(c.Edit(context.Background(), seq, in))

	assert.False(t, closed, "form stays open, input preserved")
	assert.Equal(t, "email in use", c.Err)
	assert.Equal(t, "Mia", c.User.Name)
}

func TestManagesProject(t *testing.T) {
	svc := &mockUsers{user: userFixture()}
	c := NewUserDetail(svc, 9)
	loadUser(t, c)

	assert.True(t, c.ManagesProject(8))
	assert.False(t, c.ManagesProject(4))
}

func TestWorkStatusPicksEndpointByMembershipKind(t *testing.T) {
	svc := &mockUsers{user: userFixture()}
	c := NewUserDetail(svc, 9)
	loadUser(t, c)

	seq := c.BeginWorkStatus("wrapping up")
	require.NotZero(t, seq)
	require.True(t, c.ApplyWorkStatus(c.SetWorkStatus(context.Background(), seq, 8, true, "wrapping up")))
	assert.Equal(t, 1, svc.mgrStatusCalls)
	assert.Zero(t, svc.memStatusCalls)

	seq = c.BeginWorkStatus("on track")
	require.True(t, c.ApplyWorkStatus(c.SetWorkStatus(context.Background(), seq, 4, false, "on track")))
	assert.Equal(t, 1, svc.memStatusCalls)
}

func TestWorkStatusValidation(t *testing.T) {
	svc := &mockUsers{user: userFixture()}
	c := NewUserDetail(svc, 9)
	loadUser(t, c)

	seq := c.BeginWorkStatus("")

	assert.Zero(t, seq)
	assert.Equal(t, "Please enter a status", c.Err)
	assert.Zero(t, svc.mgrStatusCalls)
	assert.Zero(t, svc.memStatusCalls)
}

func TestUserListLoad(t *testing.T) {
	svc := &mockUsers{list: []models.User{userFixture()}}
	c := NewUserList(svc)

	seq := c.BeginLoad()
	c.ApplyLoad(c.Load(context.Background(), seq))

	assert.Equal(t, StateLoaded, c.State)
	assert.Len(t, c.Users, 1)
}

func TestUserListFailureKeepsProjection(t *testing.T) {
	svc := &mockUsers{list: []models.User{userFixture()}}
	c := NewUserList(svc)

	seq := c.BeginLoad()
	c.ApplyLoad(c.Load(context.Background(), seq))
	require.Len(t, c.Users, 1)

	svc.listErr = &api.Error{Message: "down"}
	seq = c.BeginLoad()
	c.ApplyLoad(c.Load(context.Background(), seq))

	assert.Equal(t, "down", c.Err)
	assert.Len(t, c.Users, 1)
	assert.Equal(t, StateLoaded, c.State)
}
