package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/models"
)

func detailFixture() models.Project {
	return models.Project{
		ID:         4,
		Name:       "Apollo",
		ClientName: "ACME",
		Status:     models.StatusOngoing,
		ActiveProjectManager: &models.ProjectManager{
			ID: 1, Active: true,
			User: models.User{ID: 9, Name: "Mia", Surname: "Nu"},
		},
		ActiveProjectMembers: []models.ProjectMember{
			{ID: 11, Active: true, User: models.User{ID: 12, Name: "Ola", Surname: "Kay"}},
		},
	}
}

func loadDetail(t *testing.T, c *ProjectDetail) {
	t.Helper()
	seq := c.BeginLoad()
	require.True(t, c.ApplyProject(c.Load(context.Background(), seq)))
}

func TestDetailLoad(t *testing.T) {
	svc := &mockProjects{project: detailFixture()}
	c := NewProjectDetail(svc, 4)

	loadDetail(t, c)

	assert.Equal(t, StateLoaded, c.State)
	assert.Equal(t, "Apollo", c.Project.Name)
	require.NotNil(t, c.Project.ActiveProjectManager)
	assert.Equal(t, "Mia", c.Project.ActiveProjectManager.User.Name)
}

func TestStatusChangeUpdatesProjectionInPlace(t *testing.T) {
	svc := &mockProjects{project: detailFixture()}
	c := NewProjectDetail(svc, 4)
	loadDetail(t, c)
	require.Equal(t, 1, svc.getCalls)

	updated := detailFixture()
	updated.Status = models.StatusFinished
	svc.mutated = updated

	seq := c.BeginMutation()
	closed := c.ApplyStatusChange(c.ChangeStatus(context.Background(), seq, models.StatusFinished))

	assert.True(t, closed)
	assert.Equal(t, models.StatusFinished, c.Project.Status)
	assert.Equal(t, 1, svc.getCalls, "no full reload on status change")
	assert.Equal(t, "Project status updated successfully!", c.Notice)
}

func TestFailedMutationKeepsProjection(t *testing.T) {
	svc := &mockProjects{project: detailFixture()}
	c := NewProjectDetail(svc, 4)
	loadDetail(t, c)

	svc.mutateErr = &api.Error{Message: "illegal transition"}
	seq := c.BeginMutation()
	closed := c.ApplyStatusChange(c.ChangeStatus(context.Background(), seq, models.StatusNew))

	assert.False(t, closed)
	assert.Equal(t, "illegal transition", c.Err)
	assert.Equal(t, models.StatusOngoing, c.Project.Status, "projection untouched on failure")
	assert.Equal(t, StateLoaded, c.State)
}

func TestAttachValidationIssuesNoRequest(t *testing.T) {
	svc := &mockProjects{project: detailFixture()}
	c := NewProjectDetail(svc, 4)
	loadDetail(t, c)

	seq := c.BeginAttach(0)

	assert.Zero(t, seq)
	assert.Equal(t, "Please select a user", c.Err)
	assert.Zero(t, svc.addMemCalls)
	assert.Zero(t, svc.addMgrCalls)
}

func TestAddMemberReplacesProjection(t *testing.T) {
	svc := &mockProjects{project: detailFixture()}
	c := NewProjectDetail(svc, 4)
	loadDetail(t, c)

	updated := detailFixture()
	updated.ActiveProjectMembers = append(updated.ActiveProjectMembers, models.ProjectMember{
		ID: 13, Active: true, User: models.User{ID: 20, Name: "Jan"},
	})
	svc.mutated = updated

	seq := c.BeginAttach(20)
	require.NotZero(t, seq)
	closed := c.ApplyAttach(c.AddMember(context.Background(), seq, 20), false)

	assert.True(t, closed)
	assert.Len(t, c.Project.ActiveProjectMembers, 2)
	assert.Equal(t, "Project member added successfully!", c.Notice)
}

func TestSetMemberActiveRefetchesProject(t *testing.T) {
	svc := &mockProjects{project: detailFixture()}
	c := NewProjectDetail(svc, 4)
	loadDetail(t, c)
	require.Equal(t, 1, svc.getCalls)

	deactivated := detailFixture()
	deactivated.ActiveProjectMembers = nil
	deactivated.InactiveProjectMembers = []models.ProjectMember{
		{ID: 11, Active: false, User: models.User{ID: 12}},
	}
	svc.project = deactivated

	seq := c.BeginMutation()
	ok := c.ApplyProject(c.SetMemberActive(context.Background(), seq, 11, false))

	require.True(t, ok)
	assert.Equal(t, 2, svc.getCalls, "deactivation re-fetches the project")
	assert.Empty(t, c.Project.ActiveProjectMembers)
	require.Len(t, c.Project.InactiveProjectMembers, 1)
	assert.False(t, c.Project.InactiveProjectMembers[0].Active)
}

func TestOpeningUserPickerClearsPreviousToasts(t *testing.T) {
	svc := &mockProjects{project: detailFixture()}
	c := NewProjectDetail(svc, 4)
	loadDetail(t, c)
	c.Err = "old failure"
	c.Notice = "old success"

	seq := c.BeginUsers()
	require.NotZero(t, seq)
	assert.Empty(t, c.Err)
	assert.Empty(t, c.Notice)
}

func TestCandidateMembersExcludesActiveOnes(t *testing.T) {
	svc := &mockProjects{project: detailFixture(), users: []models.User{
		{ID: 9, Name: "Mia"},  // active manager
		{ID: 12, Name: "Ola"}, // active member
		{ID: 20, Name: "Jan"},
	}}
	c := NewProjectDetail(svc, 4)
	loadDetail(t, c)

	seq := c.BeginUsers()
	c.ApplyUsers(c.LoadUsers(context.Background(), seq))

	candidates := c.CandidateMembers()
	require.Len(t, candidates, 1)
	assert.EqualValues(t, 20, candidates[0].ID)
}

func TestReportValidationAndAppend(t *testing.T) {
	svc := &mockProjects{project: detailFixture()}
	c := NewProjectDetail(svc, 4)
	loadDetail(t, c)

	assert.Zero(t, c.BeginReport("", "content"))
	assert.Zero(t, svc.reportCalls)

	seq := c.BeginReport("Weekly", "All green")
	require.NotZero(t, seq)
	closed := c.ApplyReport(c.CreateReport(context.Background(), seq, "Weekly", "All green"))

	assert.True(t, closed)
	require.Len(t, c.Project.ProjectReports, 1)
	assert.Equal(t, "Weekly", c.Project.ProjectReports[0].Title)
}

func TestDeleteNavigatesBackOnlyOnSuccess(t *testing.T) {
	svc := &mockProjects{project: detailFixture()}
	c := NewProjectDetail(svc, 4)
	loadDetail(t, c)

	svc.deleteErr = &api.Error{Message: "project has open reports"}
	seq := c.BeginMutation()
	assert.False(t, c.ApplyDelete(c.Delete(context.Background(), seq)))
	assert.Equal(t, "project has open reports", c.Err)

	svc.deleteErr = nil
	seq = c.BeginMutation()
	assert.True(t, c.ApplyDelete(c.Delete(context.Background(), seq)))
}

func TestStaleDetailResultDiscarded(t *testing.T) {
	svc := &mockProjects{project: detailFixture()}
	c := NewProjectDetail(svc, 4)

	first := c.BeginLoad()
	firstResult := c.Load(context.Background(), first)

	renamed := detailFixture()
	renamed.Name = "Apollo II"
	svc.project = renamed

	second := c.BeginLoad()
	secondResult := c.Load(context.Background(), second)

	require.True(t, c.ApplyProject(secondResult))
	assert.False(t, c.ApplyProject(firstResult))
	assert.Equal(t, "Apollo II", c.Project.Name)
}
