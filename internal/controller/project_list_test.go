package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/models"
)

func loadOnce(t *testing.T, c *ProjectList) {
	t.Helper()
	seq := c.BeginLoad()
	c.ApplyLoad(c.Load(context.Background(), seq, c.Query))
}

func TestProjectListFirstLoad(t *testing.T) {
	svc := &mockProjects{page: api.ProjectPage{
		Content: []models.Project{
			{ID: 1, Name: "Apollo", ClientName: "ACME", Status: models.StatusOngoing},
		},
		TotalPages: 2,
	}}
	c := NewProjectList(svc, 10)
	require.Equal(t, StateLoading, c.State)

	loadOnce(t, c)

	assert.Equal(t, StateLoaded, c.State)
	assert.Len(t, c.Projects, 1)
	assert.Equal(t, 2, c.TotalPages)
	assert.Equal(t, "name", svc.lastQuery.SortBy)
	assert.Equal(t, "asc", svc.lastQuery.SortDir)
	assert.Equal(t, 10, svc.lastQuery.Size)
}

func TestSearchResetsPageAndKeepsFilters(t *testing.T) {
	svc := &mockProjects{page: api.ProjectPage{TotalPages: 5}}
	c := NewProjectList(svc, 10)
	c.SetFilters("apo", "acme", models.StatusOngoing)
	loadOnce(t, c)

	require.True(t, c.NextPage())
	require.True(t, c.NextPage())
	require.Equal(t, 2, c.Query.Page)

	c.Search()

	assert.Equal(t, 0, c.Query.Page)
	assert.Equal(t, "apo", c.Query.Name)
	assert.Equal(t, "acme", c.Query.ClientName)
	assert.Equal(t, models.StatusOngoing, c.Query.Status)
}

func TestPageSizeChangeKeepsFilters(t *testing.T) {
	svc := &mockProjects{page: api.ProjectPage{TotalPages: 5}}
	c := NewProjectList(svc, 10)
	c.SetFilters("apo", "", "")

	c.SetPageSize(50)

	assert.Equal(t, 50, c.Query.Size)
	assert.Equal(t, "apo", c.Query.Name)
}

func TestPaginationBounds(t *testing.T) {
	svc := &mockProjects{page: api.ProjectPage{TotalPages: 3}}
	c := NewProjectList(svc, 10)
	loadOnce(t, c)

	// page 0 of 3
	assert.False(t, c.CanPrev())
	assert.True(t, c.CanNext())
	assert.False(t, c.PrevPage())

	require.True(t, c.NextPage())
	assert.True(t, c.CanPrev())
	assert.True(t, c.CanNext())

	require.True(t, c.NextPage())
	// page 2 of 3: last page
	assert.True(t, c.CanPrev())
	assert.False(t, c.CanNext())
	assert.False(t, c.NextPage())
}

func TestEmptyListingDisablesBothDirections(t *testing.T) {
	svc := &mockProjects{page: api.ProjectPage{Content: nil, TotalPages: 0}}
	c := NewProjectList(svc, 10)
	loadOnce(t, c)

	assert.Equal(t, StateLoaded, c.State)
	assert.Empty(t, c.Projects)
	assert.False(t, c.CanPrev())
	assert.False(t, c.CanNext())
}

func TestFailedReloadKeepsPriorProjection(t *testing.T) {
	svc := &mockProjects{page: api.ProjectPage{
		Content:    []models.Project{{ID: 1, Name: "Apollo"}},
		TotalPages: 1,
	}}
	c := NewProjectList(svc, 10)
	loadOnce(t, c)
	require.Len(t, c.Projects, 1)

	svc.listErr = &api.Error{Message: "database unavailable"}
	loadOnce(t, c)

	assert.Equal(t, "database unavailable", c.Err)
	assert.Equal(t, StateLoaded, c.State, "screen stays interactive")
	assert.Len(t, c.Projects, 1, "projection must not be clobbered")
}

func TestFirstLoadFailureIsFailedState(t *testing.T) {
	svc := &mockProjects{listErr: &api.Error{Message: "nope"}}
	c := NewProjectList(svc, 10)
	loadOnce(t, c)

	assert.Equal(t, StateFailed, c.State)
	assert.Equal(t, "nope", c.Err)
}

func TestStaleLoadResultIsDiscarded(t *testing.T) {
	svc := &mockProjects{page: api.ProjectPage{
		Content:    []models.Project{{ID: 1, Name: "Old"}},
		TotalPages: 1,
	}}
	c := NewProjectList(svc, 10)

	first := c.BeginLoad()
	firstResult := c.Load(context.Background(), first, c.Query)

	svc.page = api.ProjectPage{
		Content:    []models.Project{{ID: 2, Name: "New"}},
		TotalPages: 1,
	}
	second := c.BeginLoad()
	secondResult := c.Load(context.Background(), second, c.Query)

	// The newer response lands first; the older one must not overwrite it.
	c.ApplyLoad(secondResult)
	c.ApplyLoad(firstResult)

	require.Len(t, c.Projects, 1)
	assert.Equal(t, "New", c.Projects[0].Name)
}

func TestCreateValidationIssuesNoRequest(t *testing.T) {
	svc := &mockProjects{}
	c := NewProjectList(svc, 10)

	seq := c.BeginCreate("", "ACME")

	assert.Zero(t, seq)
	assert.Equal(t, "Project name and client name are required", c.Err)
	assert.Zero(t, svc.createCalls)
}

func TestCreateAppendsReturnedEntity(t *testing.T) {
	svc := &mockProjects{page: api.ProjectPage{TotalPages: 1}}
	c := NewProjectList(svc, 10)
	loadOnce(t, c)

	seq := c.BeginCreate("Borealis", "Globex")
	require.NotZero(t, seq)
	r := c.Create(context.Background(), seq, "Borealis", "Globex")

	closed := c.ApplyCreate(r)

	assert.True(t, closed)
	require.Len(t, c.Projects, 1)
	assert.Equal(t, "Borealis", c.Projects[0].Name)
	assert.Equal(t, "Project created successfully!", c.Notice)
}

func TestFailedCreateKeepsProjection(t *testing.T) {
	svc := &mockProjects{page: api.ProjectPage{
		Content:    []models.Project{{ID: 1, Name: "Apollo"}},
		TotalPages: 1,
	}}
	c := NewProjectList(svc, 10)
	loadOnce(t, c)

	svc.mutateErr = &api.Error{Message: "name taken"}
	seq := c.BeginCreate("Apollo", "ACME")
	require.NotZero(t, seq)

	closed := c.ApplyCreate(c.Create(context.Background(), seq, "Apollo", "ACME"))

	assert.False(t, closed, "form stays open so input is preserved")
	assert.Equal(t, "name taken", c.Err)
	assert.Len(t, c.Projects, 1)
}
