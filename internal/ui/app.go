package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/config"
	"github.com/pmateja/padmin/internal/controller"
	"github.com/pmateja/padmin/internal/models"
	"github.com/pmateja/padmin/internal/session"
	"github.com/pmateja/padmin/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewLogin View = iota
	ViewProjects
	ViewProjectDetail
	ViewUsers
	ViewUserDetail
)

type App struct {
	client   *api.Client
	sessions *session.Store
	cfg      config.Config
	log      *zap.Logger

	currentView   View
	login         *views.LoginView
	projectList   *views.ProjectListView
	projectDetail *views.ProjectDetailView
	userList      *views.UserListView
	userDetail    *views.UserDetailView

	selfID int64
	role   models.Role

	width  int
	height int
}

// Creates a new application
func NewApp(client *api.Client, sessions *session.Store, cfg config.Config, log *zap.Logger) *App {
	a := &App{
		client:   client,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
	a.login = views.NewLoginView(controller.NewLogin(client, sessions))
	return a
}

func (a *App) Init() tea.Cmd {
	// A stored session skips the login screen
	if s, ok := a.sessions.Current(); ok {
		a.selfID = s.UserID
		a.role = s.Role
		return a.openProjects()
	}
	a.currentView = ViewLogin
	return a.login.Init()
}

// resize replays the last window size into a freshly created view
func (a *App) resize() tea.Cmd {
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: a.width, Height: a.height}
	}
}

func (a *App) openProjects() tea.Cmd {
	a.currentView = ViewProjects
	if a.projectList == nil {
		a.projectList = views.NewProjectListView(
			controller.NewProjectList(a.client, a.cfg.PageSize), a.role)
	}
	return tea.Batch(a.projectList.Init(), a.resize())
}

func (a *App) openProjectDetail(id int64) tea.Cmd {
	a.currentView = ViewProjectDetail
	a.projectDetail = views.NewProjectDetailView(
		controller.NewProjectDetail(a.client, id), a.role)
	a.log.Debug("opening project", zap.Int64("id", id))
	return tea.Batch(a.projectDetail.Init(), a.resize())
}

func (a *App) openUsers() tea.Cmd {
	a.currentView = ViewUsers
	a.userList = views.NewUserListView(controller.NewUserList(a.client))
	return tea.Batch(a.userList.Init(), a.resize())
}

func (a *App) openUserDetail(id int64) tea.Cmd {
	a.currentView = ViewUserDetail
	a.userDetail = views.NewUserDetailView(
		controller.NewUserDetail(a.client, id), a.selfID, a.role)
	a.log.Debug("opening user", zap.Int64("id", id))
	return tea.Batch(a.userDetail.Init(), a.resize())
}

// logout clears the stored session and returns to the login screen
func (a *App) logout() tea.Cmd {
	if err := a.sessions.Clear(); err != nil {
		a.log.Warn("clearing session", zap.Error(err))
	}
	a.selfID = 0
	a.role = ""
	a.projectList = nil
	a.projectDetail = nil
	a.userList = nil
	a.userDetail = nil
	a.login = views.NewLoginView(controller.NewLogin(a.client, a.sessions))
	a.currentView = ViewLogin
	return tea.Batch(a.login.Init(), a.resize())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case views.LoggedIn:
		if s, ok := a.sessions.Current(); ok {
			a.selfID = s.UserID
			a.role = s.Role
		}
		return a, a.openProjects()

	case views.SelectedProject:
		return a, a.openProjectDetail(msg.ID)

	case views.BackToProjects:
		return a, a.openProjects()

	case views.SelectedUser:
		return a, a.openUserDetail(msg.ID)

	case views.BackToUsers:
		a.currentView = ViewUsers
		return a, tea.Batch(a.userList.Init(), a.resize())

	case tea.KeyMsg:
		if a.currentView != ViewLogin {
			switch {
			case msg.String() == "ctrl+l":
				return a, a.logout()
			case msg.String() == "u" && a.currentView == ViewProjects && !a.projectList.InForm():
				return a, a.openUsers()
			}
		}
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewLogin:
		_, cmd = a.login.Update(msg)
	case ViewProjects:
		_, cmd = a.projectList.Update(msg)
	case ViewProjectDetail:
		_, cmd = a.projectDetail.Update(msg)
	case ViewUsers:
		_, cmd = a.userList.Update(msg)
	case ViewUserDetail:
		_, cmd = a.userDetail.Update(msg)
	}
	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewProjects:
		return a.projectList.View()
	case ViewProjectDetail:
		return a.projectDetail.View()
	case ViewUsers:
		return a.userList.View()
	case ViewUserDetail:
		return a.userDetail.View()
	}
	return a.login.View()
}
