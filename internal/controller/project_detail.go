package controller

import (
	"context"

	"github.com/samber/lo"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/models"
)

// ProjectEditor is the slice of the API client the project detail screen
// needs
type ProjectEditor interface {
	GetProject(ctx context.Context, id int64) (models.Project, error)
	UpdateProject(ctx context.Context, id int64, in api.UpdateProjectRequest) (models.Project, error)
	ChangeProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	AddProjectManager(ctx context.Context, projectID, userID int64) (models.Project, error)
	AddProjectMember(ctx context.Context, projectID, userID int64) (models.Project, error)
	SetManagerActive(ctx context.Context, managerID int64, active bool) error
	SetMemberActive(ctx context.Context, memberID int64, active bool) error
	CreateReport(ctx context.Context, projectID int64, in api.CreateReportRequest) (models.ProjectReport, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ProjectDetail drives one project's detail screen and its modals
type ProjectDetail struct {
	svc ProjectEditor
	seq sequencer

	ProjectID int64
	Project   models.Project
	Users     []models.User
	State     ViewState
	Err       string
	Notice    string

	loadedOnce bool
}

func NewProjectDetail(svc ProjectEditor, projectID int64) *ProjectDetail {
	return &ProjectDetail{svc: svc, ProjectID: projectID, State: StateLoading}
}

// ProjectResult carries a refreshed or server-returned project
// representation
type ProjectResult struct {
	Seq     uint64
	Project models.Project
	Err     error
}

// DoneResult carries a mutation outcome with no entity payload
type DoneResult struct {
	Seq uint64
	Err error
}

func (c *ProjectDetail) BeginLoad() uint64 {
	c.Err = ""
	if !c.loadedOnce {
		c.State = StateLoading
	}
	return c.seq.begin()
}

func (c *ProjectDetail) Load(ctx context.Context, seq uint64) ProjectResult {
	p, err := c.svc.GetProject(ctx, c.ProjectID)
	return ProjectResult{Seq: seq, Project: p, Err: err}
}

// ApplyProject reconciles any result carrying a full project representation,
// whether from a load, a merge of a mutation response, or a re-fetch.
func (c *ProjectDetail) ApplyProject(r ProjectResult) bool {
	if c.seq.stale(r.Seq) {
		return false
	}
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		if !c.loadedOnce {
			c.State = StateFailed
		}
		return false
	}
	c.Project = r.Project
	c.State = StateLoaded
	c.loadedOnce = true
	return true
}

// BeginMutation reserves a request number for a mutation with no local
// validation step
func (c *ProjectDetail) BeginMutation() uint64 {
	c.Err = ""
	c.Notice = ""
	return c.seq.begin()
}

// ChangeStatus transitions the project status. The server returns the
// updated project, so the detail screen reconciles without a full reload.
func (c *ProjectDetail) ChangeStatus(ctx context.Context, seq uint64, status models.ProjectStatus) ProjectResult {
	p, err := c.svc.ChangeProjectStatus(ctx, c.ProjectID, status)
	return ProjectResult{Seq: seq, Project: p, Err: err}
}

// ApplyStatusChange reconciles a status change; returns true when the modal
// should close
func (c *ProjectDetail) ApplyStatusChange(r ProjectResult) bool {
	if !c.ApplyProject(r) {
		return false
	}
	c.Notice = "Project status updated successfully!"
	return true
}

// BeginUpdate validates the edit form
func (c *ProjectDetail) BeginUpdate(name, clientName string) uint64 {
	c.Err = ""
	c.Notice = ""
	if name == "" || clientName == "" {
		c.Err = "Project name and client name are required"
		return 0
	}
	return c.seq.begin()
}

func (c *ProjectDetail) Update(ctx context.Context, seq uint64, in api.UpdateProjectRequest) ProjectResult {
	p, err := c.svc.UpdateProject(ctx, c.ProjectID, in)
	return ProjectResult{Seq: seq, Project: p, Err: err}
}

func (c *ProjectDetail) ApplyUpdate(r ProjectResult) bool {
	if !c.ApplyProject(r) {
		return false
	}
	c.Notice = "Project updated successfully!"
	return true
}

func (c *ProjectDetail) Delete(ctx context.Context, seq uint64) DoneResult {
	return DoneResult{Seq: seq, Err: c.svc.DeleteProject(ctx, c.ProjectID)}
}

// ApplyDelete reconciles a delete; returns true when the screen should
// navigate back to the listing
func (c *ProjectDetail) ApplyDelete(r DoneResult) bool {
	if c.seq.stale(r.Seq) {
		return false
	}
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		return false
	}
	return true
}

// UsersResult is the user picker fetch outcome
type UsersResult struct {
	Seq   uint64
	Users []models.User
	Err   error
}

// BeginUsers reserves a request number for the add-manager/member picker
func (c *ProjectDetail) BeginUsers() uint64 {
	c.Err = ""
	c.Notice = ""
	return c.seq.begin()
}

func (c *ProjectDetail) LoadUsers(ctx context.Context, seq uint64) UsersResult {
	users, err := c.svc.ListUsers(ctx)
	return UsersResult{Seq: seq, Users: users, Err: err}
}

func (c *ProjectDetail) ApplyUsers(r UsersResult) {
	if c.seq.stale(r.Seq) {
		return
	}
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		return
	}
	c.Users = r.Users
}

// CandidateMembers returns users not already active on the project, for the
// add-member picker
func (c *ProjectDetail) CandidateMembers() []models.User {
	activeIDs := lo.Map(c.Project.ActiveProjectMembers, func(m models.ProjectMember, _ int) int64 {
		return m.User.ID
	})
	if c.Project.ActiveProjectManager != nil {
		activeIDs = append(activeIDs, c.Project.ActiveProjectManager.User.ID)
	}
	return lo.Filter(c.Users, func(u models.User, _ int) bool {
		return !lo.Contains(activeIDs, u.ID)
	})
}

// BeginAttach validates the add-manager/member form: a user must be picked
// before any request goes out
func (c *ProjectDetail) BeginAttach(userID int64) uint64 {
	c.Err = ""
	c.Notice = ""
	if userID == 0 {
		c.Err = "Please select a user"
		return 0
	}
	return c.seq.begin()
}

// AddManager attaches a user as the project manager
func (c *ProjectDetail) AddManager(ctx context.Context, seq uint64, userID int64) ProjectResult {
	p, err := c.svc.AddProjectManager(ctx, c.ProjectID, userID)
	return ProjectResult{Seq: seq, Project: p, Err: err}
}

// AddMember attaches a user as a project member
func (c *ProjectDetail) AddMember(ctx context.Context, seq uint64, userID int64) ProjectResult {
	p, err := c.svc.AddProjectMember(ctx, c.ProjectID, userID)
	return ProjectResult{Seq: seq, Project: p, Err: err}
}

func (c *ProjectDetail) ApplyAttach(r ProjectResult, manager bool) bool {
	if !c.ApplyProject(r) {
		return false
	}
	if manager {
		c.Notice = "Project manager added successfully!"
	} else {
		c.Notice = "Project member added successfully!"
	}
	return true
}

// SetManagerActive flips a manager record's active flag, then re-fetches the
// project so both membership collections reflect the change
func (c *ProjectDetail) SetManagerActive(ctx context.Context, seq uint64, managerID int64, active bool) ProjectResult {
	if err := c.svc.SetManagerActive(ctx, managerID, active); err != nil {
		return ProjectResult{Seq: seq, Err: err}
	}
	p, err := c.svc.GetProject(ctx, c.ProjectID)
	return ProjectResult{Seq: seq, Project: p, Err: err}
}

// SetMemberActive flips a member record's active flag, then re-fetches
func (c *ProjectDetail) SetMemberActive(ctx context.Context, seq uint64, memberID int64, active bool) ProjectResult {
	if err := c.svc.SetMemberActive(ctx, memberID, active); err != nil {
		return ProjectResult{Seq: seq, Err: err}
	}
	p, err := c.svc.GetProject(ctx, c.ProjectID)
	return ProjectResult{Seq: seq, Project: p, Err: err}
}

// ReportResult is one create-report outcome
type ReportResult struct {
	Seq    uint64
	Report models.ProjectReport
	Err    error
}

// BeginReport validates the report form
func (c *ProjectDetail) BeginReport(title, content string) uint64 {
	c.Err = ""
	c.Notice = ""
	if title == "" || content == "" {
		c.Err = "Report title and content are required"
		return 0
	}
	return c.seq.begin()
}

func (c *ProjectDetail) CreateReport(ctx context.Context, seq uint64, title, content string) ReportResult {
	rep, err := c.svc.CreateReport(ctx, c.ProjectID, api.CreateReportRequest{Title: title, Content: content})
	return ReportResult{Seq: seq, Report: rep, Err: err}
}

// ApplyReport appends the stored report to the projection; returns true when
// the form should close
func (c *ProjectDetail) ApplyReport(r ReportResult) bool {
	if c.seq.stale(r.Seq) {
		return false
	}
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		return false
	}
	c.Project.ProjectReports = append(c.Project.ProjectReports, r.Report)
	c.Notice = "Report created successfully!"
	return true
}
