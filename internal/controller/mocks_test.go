package controller

import (
	"context"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/models"
	"github.com/pmateja/padmin/internal/session"
)

func sessionFixture() session.Session {
	return session.Session{Token: "jwt", UserID: 1, Role: models.RoleUser}
}

// mockAuth is a hand-rolled AuthService double
type mockAuth struct {
	loginResp    api.LoginResponse
	loginErr     error
	registerErr  error
	me           models.User
	meErr        error
	loginCalls   int
	registerCall int
	meCalls      int
}

func (m *mockAuth) Login(_ context.Context, _ api.LoginRequest) (api.LoginResponse, error) {
	m.loginCalls++
	return m.loginResp, m.loginErr
}

func (m *mockAuth) Register(_ context.Context, _ api.RegisterRequest) error {
	m.registerCall++
	return m.registerErr
}

func (m *mockAuth) MeWithToken(_ context.Context, _ string) (models.User, error) {
	m.meCalls++
	return m.me, m.meErr
}

// mockSessions is an in-memory SessionStore double
type mockSessions struct {
	sess    session.Session
	has     bool
	saveErr error
}

func (m *mockSessions) Current() (session.Session, bool) { return m.sess, m.has }

func (m *mockSessions) Save(s session.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sess = s
	m.has = true
	return nil
}

func (m *mockSessions) Clear() error {
	m.sess = session.Session{}
	m.has = false
	return nil
}

// mockProjects doubles both ProjectLister and ProjectEditor
type mockProjects struct {
	page    api.ProjectPage
	listErr error

	project    models.Project
	getErr     error
	mutated    models.Project
	mutateErr  error
	report     models.ProjectReport
	reportErr  error
	users      []models.User
	usersErr   error
	deleteErr  error
	activeErr  error

	listCalls      int
	createCalls    int
	getCalls       int
	updateCalls    int
	statusCalls    int
	deleteCalls    int
	addMgrCalls    int
	addMemCalls    int
	setActiveCalls int
	reportCalls    int
	usersCalls     int

	lastQuery api.ProjectQuery
}

func (m *mockProjects) ListProjects(_ context.Context, q api.ProjectQuery) (api.ProjectPage, error) {
	m.listCalls++
	m.lastQuery = q
	return m.page, m.listErr
}

func (m *mockProjects) CreateProject(_ context.Context, in api.CreateProjectRequest) (models.Project, error) {
	m.createCalls++
	if m.mutateErr != nil {
		return models.Project{}, m.mutateErr
	}
	return models.Project{ID: 99, Name: in.Name, ClientName: in.ClientName, Status: models.StatusNew}, nil
}

func (m *mockProjects) GetProject(_ context.Context, _ int64) (models.Project, error) {
	m.getCalls++
	return m.project, m.getErr
}

func (m *mockProjects) UpdateProject(_ context.Context, _ int64, _ api.UpdateProjectRequest) (models.Project, error) {
	m.updateCalls++
	return m.mutated, m.mutateErr
}

func (m *mockProjects) ChangeProjectStatus(_ context.Context, _ int64, _ models.ProjectStatus) (models.Project, error) {
	m.statusCalls++
	return m.mutated, m.mutateErr
}

func (m *mockProjects) DeleteProject(_ context.Context, _ int64) error {
	m.deleteCalls++
	return m.deleteErr
}

func (m *mockProjects) AddProjectManager(_ context.Context, _, _ int64) (models.Project, error) {
	m.addMgrCalls++
	return m.mutated, m.mutateErr
}

func (m *mockProjects) AddProjectMember(_ context.Context, _, _ int64) (models.Project, error) {
	m.addMemCalls++
	return m.mutated, m.mutateErr
}

func (m *mockProjects) SetManagerActive(_ context.Context, _ int64, _ bool) error {
	m.setActiveCalls++
	return m.activeErr
}

func (m *mockProjects) SetMemberActive(_ context.Context, _ int64, _ bool) error {
	m.setActiveCalls++
	return m.activeErr
}

func (m *mockProjects) CreateReport(_ context.Context, _ int64, in api.CreateReportRequest) (models.ProjectReport, error) {
	m.reportCalls++
	if m.reportErr != nil {
		return models.ProjectReport{}, m.reportErr
	}
	if m.report.ID != 0 {
		return m.report, nil
	}
	return models.ProjectReport{ID: 42, Title: in.Title, Content: in.Content}, nil
}

func (m *mockProjects) ListUsers(_ context.Context) ([]models.User, error) {
	m.usersCalls++
	return m.users, m.usersErr
}

// mockUsers doubles UserEditor and UserLister
type mockUsers struct {
	user      models.User
	getErr    error
	updated   models.User
	updateErr error
	statusErr error
	reportErr error
	list      []models.User
	listErr   error

	getCalls       int
	updateCalls    int
	mgrStatusCalls int
	memStatusCalls int
	reportCalls    int
	listCalls      int
}

func (m *mockUsers) GetUser(_ context.Context, _ int64) (models.User, error) {
	m.getCalls++
	return m.user, m.getErr
}

func (m *mockUsers) UpdateUser(_ context.Context, _ int64, _ api.UpdateUserRequest) (models.User, error) {
	m.updateCalls++
	return m.updated, m.updateErr
}

func (m *mockUsers) SetManagerWorkStatus(_ context.Context, _, _ int64, _ string) error {
	m.mgrStatusCalls++
	return m.statusErr
}

func (m *mockUsers) SetMemberWorkStatus(_ context.Context, _, _ int64, _ string) error {
	m.memStatusCalls++
	return m.statusErr
}

func (m *mockUsers) CreateReport(_ context.Context, _ int64, _ api.CreateReportRequest) (models.ProjectReport, error) {
	m.reportCalls++
	return models.ProjectReport{ID: 1}, m.reportErr
}

func (m *mockUsers) ListUsers(_ context.Context) ([]models.User, error) {
	m.listCalls++
	return m.list, m.listErr
}
