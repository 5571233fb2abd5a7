package controller

import (
	"context"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/models"
)

// ProjectLister is the slice of the API client the listing screen needs
type ProjectLister interface {
	ListProjects(ctx context.Context, q api.ProjectQuery) (api.ProjectPage, error)
	CreateProject(ctx context.Context, in api.CreateProjectRequest) (models.Project, error)
}

// ProjectList drives the paginated, filtered, sorted project listing
type ProjectList struct {
	svc ProjectLister
	seq sequencer

	Query      api.ProjectQuery
	Projects   []models.Project
	TotalPages int
	State      ViewState
	Err        string
	Notice     string

	loadedOnce bool
}

func NewProjectList(svc ProjectLister, pageSize int) *ProjectList {
	return &ProjectList{
		svc: svc,
		Query: api.ProjectQuery{
			SortBy:  "name",
			SortDir: "asc",
			Size:    pageSize,
		},
		State: StateLoading,
	}
}

// ProjectListResult is one page fetch outcome
type ProjectListResult struct {
	Seq  uint64
	Page api.ProjectPage
	Err  error
}

// BeginLoad reserves a request number and marks the screen loading
func (c *ProjectList) BeginLoad() uint64 {
	c.Err = ""
	c.State = StateLoading
	return c.seq.begin()
}

// Load fetches the page described by q. The query is passed by value so a
// filter edited mid-flight cannot leak into an already-issued request.
func (c *ProjectList) Load(ctx context.Context, seq uint64, q api.ProjectQuery) ProjectListResult {
	page, err := c.svc.ListProjects(ctx, q)
	return ProjectListResult{Seq: seq, Page: page, Err: err}
}

// ApplyLoad reconciles a fetch result. A failure keeps the previous
// projection; only the error message changes.
func (c *ProjectList) ApplyLoad(r ProjectListResult) {
	if c.seq.stale(r.Seq) {
		return
	}
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		if c.loadedOnce {
			c.State = StateLoaded
		} else {
			c.State = StateFailed
		}
		return
	}
	c.Projects = r.Page.Content
	c.TotalPages = r.Page.TotalPages
	c.State = StateLoaded
	c.loadedOnce = true
}

// Search resets to the first page, keeping the filters. The caller re-issues
// a load afterwards.
func (c *ProjectList) Search() {
	c.Query.Page = 0
}

// SetFilters replaces the filter fields without touching paging or sort
func (c *ProjectList) SetFilters(name, clientName string, status models.ProjectStatus) {
	c.Query.Name = name
	c.Query.ClientName = clientName
	c.Query.Status = status
}

// SetSort changes the sort order, keeping filters and page
func (c *ProjectList) SetSort(by, dir string) {
	c.Query.SortBy = by
	c.Query.SortDir = dir
}

// SetPageSize changes the page size, keeping filters
func (c *ProjectList) SetPageSize(size int) {
	c.Query.Size = size
}

// CanPrev reports whether a previous page exists
func (c *ProjectList) CanPrev() bool {
	return c.Query.Page > 0
}

// CanNext reports whether a next page exists. totalPages comes from the
// server response and bounds navigation; zero pages disables both directions.
func (c *ProjectList) CanNext() bool {
	return c.Query.Page < c.TotalPages-1
}

// PrevPage steps back one page if possible, reporting whether it moved
func (c *ProjectList) PrevPage() bool {
	if !c.CanPrev() {
		return false
	}
	c.Query.Page--
	return true
}

// NextPage steps forward one page if possible, reporting whether it moved
func (c *ProjectList) NextPage() bool {
	if !c.CanNext() {
		return false
	}
	c.Query.Page++
	return true
}

// ProjectCreateResult is one create-project outcome
type ProjectCreateResult struct {
	Seq     uint64
	Project models.Project
	Err     error
}

// BeginCreate validates the create form. A zero seq means validation failed
// and no request may be issued.
func (c *ProjectList) BeginCreate(name, clientName string) uint64 {
	c.Err = ""
	c.Notice = ""
	if name == "" || clientName == "" {
		c.Err = "Project name and client name are required"
		return 0
	}
	return c.seq.begin()
}

func (c *ProjectList) Create(ctx context.Context, seq uint64, name, clientName string) ProjectCreateResult {
	p, err := c.svc.CreateProject(ctx, api.CreateProjectRequest{Name: name, ClientName: clientName})
	return ProjectCreateResult{Seq: seq, Project: p, Err: err}
}

// ApplyCreate reconciles a create result: the returned entity is appended to
// the projection. Returns true when the form should close.
func (c *ProjectList) ApplyCreate(r ProjectCreateResult) bool {
	if c.seq.stale(r.Seq) {
		return false
	}
	if r.Err != nil {
		c.Err = api.Message(r.Err)
		return false
	}
	c.Projects = append(c.Projects, r.Project)
	c.Notice = "Project created successfully!"
	return true
}
