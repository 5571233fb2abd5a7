package controller

import (
	"context"

	"github.com/samber/lo"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/models"
)

// UserEditor is the slice of the API client the user detail screen needs
type UserEditor interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, in api.UpdateUserRequest) (models.User, error)
	SetManagerWorkStatus(ctx context.Context, projectID, userID int64, status string) error
	SetMemberWorkStatus(ctx context.Context, projectID, userID int64, status string) error
	CreateReport(ctx context.Context, projectID int64, in api.CreateReportRequest) (models.ProjectReport, error)
}

// UserDetail drives one user's detail screen: profile, memberships, and the
// edit / work-status / report modals
type UserDetail struct {
	svc UserEditor
	seq sequencer

	UserID int64
	User   models.User
	State  ViewState
	Err    string
	Notice string

	loadedOnce bool
}

func NewUserDetail(svc UserEditor, userID int64) *UserDetail {
	return &UserDetail{svc: svc, UserID: userID, State: StateLoading}
}

// UserResult carries a fetched or server-returned user representation
type UserResult struct {
	Seq  uint64
	User models.User
	Err  error
}

func (c *UserDetail) BeginLoad() uint64 {
	c.Err = ""
	if !c.loadedOnce {
		c.State = StateLoading
	}
	return c.seq.begin()
}

func (c *UserDetail) Load(ctx context.Context, seq uint64) UserResult {
	u, err := c.svc.GetUser(ctx, c.UserID)
	return UserResult{Seq: seq, User: u, Err: err}
}

func (c *UserDetail) ApplyLoad(r UserResult) {
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
	c.User = r.User
	c.State = StateLoaded
	c.loadedOnce = true
}

// BeginEdit validates the edit-user form
func (c *UserDetail) BeginEdit(in api.UpdateUserRequest) uint64 {
	c.Err = ""
	c.Notice = ""
	if in.Name == "" || in.Surname == "" || in.Email == "" {
		c.Err = "Name, surname and email are required"
		return 0
	}
	return c.seq.begin()
}

func (c *UserDetail) Edit(ctx context.Context, seq uint64, in api.UpdateUserRequest) UserResult {
	u, err := c.svc.UpdateUser(ctx, c.UserID, in)
	return UserResult{Seq: seq, User: u, Err: err}
}

// ApplyEdit merges the returned entity into the projection, keeping the
// membership collections the PATCH response does not carry. Returns true
// when the modal should close.
func (c *UserDetail) ApplyEdit(r UserResult) bool {
	if c.seq.stale(r.Seq) {
		return false
	}
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		return false
	}
	c.User.Name = r.User.Name
	c.User.Surname = r.User.Surname
	c.User.Email = r.User.Email
	c.User.Role = r.User.Role
	c.Notice = "User updated successfully!"
	return true
}

// ManagesProject reports whether the user manages the given project, which
// decides between the manager and member work-status endpoints
func (c *UserDetail) ManagesProject(projectID int64) bool {
	return lo.ContainsBy(c.User.ProjectsManaged, func(p models.Project) bool {
		return p.ID == projectID
	})
}

// BeginWorkStatus validates the work-status form
func (c *UserDetail) BeginWorkStatus(status string) uint64 {
	c.Err = ""
	c.Notice = ""
	if status == "" {
		c.Err = "Please enter a status"
		return 0
	}
	return c.seq.begin()
}

// SetWorkStatus updates the user's free-text status on a project, picking
// the manager or member endpoint from the membership kind
func (c *UserDetail) SetWorkStatus(ctx context.Context, seq uint64, projectID int64, manager bool, status string) DoneResult {
	var err error
	if manager {
		err = c.svc.SetManagerWorkStatus(ctx, projectID, c.UserID, status)
	} else {
		err = c.svc.SetMemberWorkStatus(ctx, projectID, c.UserID, status)
	}
	return DoneResult{Seq: seq, Err: err}
}

// ApplyWorkStatus reconciles a work-status update; returns true when the
// modal should close. The caller triggers a reload to pick up the new
// status.
func (c *UserDetail) ApplyWorkStatus(r DoneResult) bool {
	if c.seq.stale(r.Seq) {
		return false
	}
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		return false
	}
	c.Notice = "Status updated successfully!"
	return true
}

// BeginReport validates the report form for a managed project
func (c *UserDetail) BeginReport(title, content string) uint64 {
	c.Err = ""
	c.Notice = ""
	if title == "" || content == "" {
		c.Err = "Report title and content are required"
		return 0
	}
	return c.seq.begin()
}

func (c *UserDetail) CreateReport(ctx context.Context, seq uint64, projectID int64, title, content string) DoneResult {
	_, err := c.svc.CreateReport(ctx, projectID, api.CreateReportRequest{Title: title, Content: content})
	return DoneResult{Seq: seq, Err: err}
}

func (c *UserDetail) ApplyReport(r DoneResult) bool {
	if c.seq.stale(r.Seq) {
		return false
	}
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		return false
	}
	c.Notice = "Report created successfully!"
	return true
}
