package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pmateja/padmin/internal/models"
)

// ProjectQuery carries the listing screen's filter, sort and paging state.
// Pages are zero-based.
type ProjectQuery struct {
	Name       string
	ClientName string
	Status     models.ProjectStatus
	SortBy     string
	SortDir    string
	Page       int
	Size       int
}

// values maps the query onto request parameters. Empty filters are omitted
// entirely; sort and paging parameters are always sent.
func (q ProjectQuery) values() map[string]string {
	v := map[string]string{
		"sortBy":  q.SortBy,
		"sortDir": q.SortDir,
		"page":    strconv.Itoa(q.Page),
		"size":    strconv.Itoa(q.Size),
	}
	if q.Name != "" {
		v["name"] = q.Name
	}
	if q.ClientName != "" {
		v["clientName"] = q.ClientName
	}
	if q.Status != "" {
		v["status"] = string(q.Status)
	}
	return v
}

// ProjectPage is the server's paginated listing response
type ProjectPage struct {
	Content    []models.Project `json:"content"`
	TotalPages int              `json:"totalPages"`
}

type CreateProjectRequest struct {
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
}

type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ClientName  string `json:"clientName"`
}

type membershipRequest struct {
	UserID    int64 `json:"userId"`
	ProjectID int64 `json:"projectId"`
}

type CreateReportRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListProjects fetches a filtered, sorted page of projects
func (c *Client) ListProjects(ctx context.Context, q ProjectQuery) (ProjectPage, error) {
	var out ProjectPage
	err := c.do(ctx, http.MethodGet, "/projects", q.values(), nil, &out)
	return out, err
}

// GetProject fetches one project with its membership and report collections
func (c *Client) GetProject(ctx context.Context, id int64) (models.Project, error) {
	var out models.Project
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, nil, &out)
	return out, err
}

// CreateProject creates a project and returns the stored entity
func (c *Client) CreateProject(ctx context.Context, in CreateProjectRequest) (models.Project, error) {
	var out models.Project
	err := c.do(ctx, http.MethodPost, "/projects", nil, in, &out)
	return out, err
}

// UpdateProject patches mutable project fields
func (c *Client) UpdateProject(ctx context.Context, id int64, in UpdateProjectRequest) (models.Project, error) {
	var out models.Project
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/projects/%d", id), nil, in, &out)
	return out, err
}

// ChangeProjectStatus transitions the project status and returns the updated
// project
func (c *Client) ChangeProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) (models.Project, error) {
	var out models.Project
	query := map[string]string{"status": string(status)}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/projects/%d/status", id), query, nil, &out)
	return out, err
}

// DeleteProject removes a project
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil, nil)
}

// AddProjectManager attaches a user to a project as its manager. The server
// returns the updated project; any previous manager moves to the inactive
// collection server-side.
func (c *Client) AddProjectManager(ctx context.Context, projectID, userID int64) (models.Project, error) {
	var out models.Project
	in := membershipRequest{UserID: userID, ProjectID: projectID}
	err := c.do(ctx, http.MethodPost, "/projects/project-managers", nil, in, &out)
	return out, err
}

// AddProjectMember attaches a user to a project as a member
func (c *Client) AddProjectMember(ctx context.Context, projectID, userID int64) (models.Project, error) {
	var out models.Project
	in := membershipRequest{UserID: userID, ProjectID: projectID}
	err := c.do(ctx, http.MethodPost, "/projects/project-members", nil, in, &out)
	return out, err
}

// SetManagerActive activates or deactivates a manager record
func (c *Client) SetManagerActive(ctx context.Context, managerID int64, active bool) error {
	query := map[string]string{"active": strconv.FormatBool(active)}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/projects/project-managers/%d/active", managerID), query, nil, nil)
}

// SetMemberActive activates or deactivates a member record
func (c *Client) SetMemberActive(ctx context.Context, memberID int64, active bool) error {
	query := map[string]string{"active": strconv.FormatBool(active)}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/projects/project-members/%d/active", memberID), query, nil, nil)
}

// SetManagerWorkStatus updates the free-text work status of a manager on a
// project, addressed by project and user rather than by membership record
func (c *Client) SetManagerWorkStatus(ctx context.Context, projectID, userID int64, status string) error {
	query := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/projects/project-managers/%d/%d", projectID, userID), query, nil, nil)
}

// SetMemberWorkStatus updates the free-text work status of a member on a
// project
func (c *Client) SetMemberWorkStatus(ctx context.Context, projectID, userID int64, status string) error {
	query := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/projects/project-members/%d/%d", projectID, userID), query, nil, nil)
}

// CreateReport files a report under a project
func (c *Client) CreateReport(ctx context.Context, projectID int64, in CreateReportRequest) (models.ProjectReport, error) {
	var out models.ProjectReport
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/project-reports/%d", projectID), nil, in, &out)
	return out, err
}
