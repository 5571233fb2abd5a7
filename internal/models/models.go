package models

// Role is the account role assigned by the API
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ProjectStatus is the lifecycle status of a project
type ProjectStatus string

const (
	StatusNew       ProjectStatus = "NEW"
	StatusOngoing   ProjectStatus = "ONGOING"
	StatusFinished  ProjectStatus = "FINISHED"
	StatusPaused    ProjectStatus = "PAUSED"
	StatusCancelled ProjectStatus = "CANCELLED"
)

// ProjectStatuses lists every status the API accepts, in display order
var ProjectStatuses = []ProjectStatus{
	StatusNew, StatusOngoing, StatusFinished, StatusPaused, StatusCancelled,
}

// User represents an account as returned by the API. Projects and
// ProjectsManaged are only populated by the user detail endpoint.
type User struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Surname         string    `json:"surname"`
	Role            Role      `json:"role"`
	Projects        []Project `json:"projects,omitempty"`
	ProjectsManaged []Project `json:"projectsManaged,omitempty"`
}

// FullName returns "Name Surname" for display
func (u User) FullName() string {
	return u.Name + " " + u.Surname
}

// Project is the client's projection of a remote project. The membership and
// report collections are only populated by the detail endpoint.
type Project struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	ClientName   string        `json:"clientName"`
	CreationDate string        `json:"creationDate,omitempty"`
	Status       ProjectStatus `json:"status"`

	ActiveProjectManager    *ProjectManager  `json:"activeProjectManager,omitempty"`
	ActiveProjectMembers    []ProjectMember  `json:"activeProjectMembers,omitempty"`
	InactiveProjectManagers []ProjectManager `json:"inactiveProjectManagers,omitempty"`
	InactiveProjectMembers  []ProjectMember  `json:"inactiveProjectMembers,omitempty"`
	ProjectReports          []ProjectReport  `json:"projectReports,omitempty"`
}

// ProjectManager links a user to a project in the manager role. Records are
// soft-deactivated, never removed; a project has at most one active manager.
type ProjectManager struct {
	ID               int64  `json:"id"`
	User             User   `json:"user"`
	Active           bool   `json:"active"`
	Status           string `json:"status,omitempty"`
	ProjectJoinDate  string `json:"projectJoinDate"`
	ProjectLeaveDate string `json:"projectLeaveDate,omitempty"`
}

// ProjectMember links a user to a project in the member role
type ProjectMember struct {
	ID               int64  `json:"id"`
	User             User   `json:"user"`
	ProjectRole      string `json:"projectRole,omitempty"`
	Active           bool   `json:"active"`
	Status           string `json:"status,omitempty"`
	ProjectJoinDate  string `json:"projectJoinDate"`
	ProjectLeaveDate string `json:"projectLeaveDate,omitempty"`
}

// ProjectReport is a report filed under a single project
type ProjectReport struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ReportDate string `json:"reportDate"`
}
