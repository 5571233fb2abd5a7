package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmateja/padmin/internal/controller"
	"github.com/pmateja/padmin/internal/models"
	"github.com/pmateja/padmin/internal/ui/keys"
	"github.com/pmateja/padmin/internal/ui/styles"
)

type projectsLoadedMsg struct {
	res controller.ProjectListResult
}

type projectCreatedMsg struct {
	res controller.ProjectCreateResult
}

// SelectedProject tells the app to open the detail screen
type SelectedProject struct {
	ID int64
}

// sortOrders are the cycle positions for the 'o' key
var sortOrders = []struct {
	by, dir string
}{
	{"name", "asc"},
	{"name", "desc"},
	{"clientName", "asc"},
	{"clientName", "desc"},
	{"status", "asc"},
	{"status", "desc"},
	{"creationDate", "asc"},
	{"creationDate", "desc"},
}

// pageSizes are the cycle positions for the 'z' key
var pageSizes = []int{5, 10, 20, 50}

// ProjectListView shows the paginated project table with filter and
// create sub-forms
type ProjectListView struct {
	ctrl   *controller.ProjectList
	role   models.Role
	table  table.Model
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	filtering    bool
	filterName   textinput.Model
	filterClient textinput.Model
	statusIdx    int // 0 = any, 1.. = models.ProjectStatuses[statusIdx-1]
	sortIdx      int

	creating  bool
	newName   textinput.Model
	newClient textinput.Model
	focusIdx  int
}

func NewProjectListView(ctrl *controller.ProjectList, role models.Role) *ProjectListView {
	s := styles.NewStyles()

	filterName := textinput.New()
	filterName.Placeholder = "Project name"
	filterName.CharLimit = 100

	filterClient := textinput.New()
	filterClient.Placeholder = "Client name"
	filterClient.CharLimit = 100

	newName := textinput.New()
	newName.Placeholder = "Project name"
	newName.CharLimit = 100

	newClient := textinput.New()
	newClient.Placeholder = "Client name"
	newClient.CharLimit = 100

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 30},
			{Title: "Client", Width: 25},
			{Title: "Status", Width: 12},
		}),
		table.WithFocused(true),
	)
	ts := table.DefaultStyles()
	ts.Header = s.TableHeader
	ts.Selected = s.ListSelected
	t.SetStyles(ts)

	return &ProjectListView{
		ctrl:         ctrl,
		role:         role,
		table:        t,
		styles:       s,
		keys:         keys.DefaultKeyMap(),
		filterName:   filterName,
		filterClient: filterClient,
		newName:      newName,
		newClient:    newClient,
	}
}

// InForm reports whether a text form is capturing keystrokes, so the app
// does not treat letters as shortcuts
func (v *ProjectListView) InForm() bool {
	return v.filtering || v.creating
}

func (v *ProjectListView) Init() tea.Cmd {
	return v.loadCmd()
}

// loadCmd snapshots the current query and issues the fetch
func (v *ProjectListView) loadCmd() tea.Cmd {
	seq := v.ctrl.BeginLoad()
	q := v.ctrl.Query
	return func() tea.Msg {
		return projectsLoadedMsg{res: v.ctrl.Load(context.Background(), seq, q)}
	}
}

func (v *ProjectListView) createCmd() tea.Cmd {
	name := strings.TrimSpace(v.newName.Value())
	client := strings.TrimSpace(v.newClient.Value())
	seq := v.ctrl.BeginCreate(name, client)
	if seq == 0 {
		return nil
	}
	return func() tea.Msg {
		return projectCreatedMsg{res: v.ctrl.Create(context.Background(), seq, name, client)}
	}
}

func (v *ProjectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.table.SetWidth(contentWidth - 4)
		v.table.SetHeight(max(msg.Height-10, 3))
		return v, nil

	case projectsLoadedMsg:
		v.ctrl.ApplyLoad(msg.res)
		v.refreshRows()
		return v, nil

	case projectCreatedMsg:
		if v.ctrl.ApplyCreate(msg.res) {
			v.creating = false
			v.refreshRows()
		}
		return v, nil

	case tea.KeyMsg:
		if v.filtering {
			return v.updateFiltering(msg)
		}
		if v.creating {
			return v.updateCreating(msg)
		}

		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit

		case key.Matches(msg, v.keys.Filter):
			v.filtering = true
			v.focusIdx = 0
			v.filterName.SetValue(v.ctrl.Query.Name)
			v.filterClient.SetValue(v.ctrl.Query.ClientName)
			v.updateFilterFocus()
			return v, textinput.Blink

		case key.Matches(msg, v.keys.Sort):
			v.sortIdx = (v.sortIdx + 1) % len(sortOrders)
			o := sortOrders[v.sortIdx]
			v.ctrl.SetSort(o.by, o.dir)
			return v, v.loadCmd()

		case key.Matches(msg, v.keys.New):
			if v.role != models.RoleAdmin {
				return v, nil
			}
			v.creating = true
			v.focusIdx = 0
			v.newName.Reset()
			v.newClient.Reset()
			v.updateCreateFocus()
			return v, textinput.Blink

		case key.Matches(msg, v.keys.PageSize):
			v.ctrl.SetPageSize(nextPageSize(v.ctrl.Query.Size))
			return v, v.loadCmd()

		case key.Matches(msg, v.keys.NextPage):
			if v.ctrl.NextPage() {
				return v, v.loadCmd()
			}
			return v, nil

		case key.Matches(msg, v.keys.PrevPage):
			if v.ctrl.PrevPage() {
				return v, v.loadCmd()
			}
			return v, nil

		case key.Matches(msg, v.keys.Enter):
			if p, ok := v.selectedProject(); ok {
				return v, func() tea.Msg {
					return SelectedProject{ID: p.ID}
				}
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// nextPageSize steps to the next size in the cycle; a size configured
// outside the cycle restarts it
func nextPageSize(size int) int {
	for i, s := range pageSizes {
		if s == size {
			return pageSizes[(i+1)%len(pageSizes)]
		}
	}
	return pageSizes[0]
}

func (v *ProjectListView) selectedProject() (models.Project, bool) {
	idx := v.table.Cursor()
	if idx < 0 || idx >= len(v.ctrl.Projects) {
		return models.Project{}, false
	}
	return v.ctrl.Projects[idx], true
}

func (v *ProjectListView) refreshRows() {
	rows := make([]table.Row, len(v.ctrl.Projects))
	for i, p := range v.ctrl.Projects {
		rows[i] = table.Row{p.Name, p.ClientName, string(p.Status)}
	}
	v.table.SetRows(rows)
	if v.table.Cursor() >= len(rows) {
		v.table.SetCursor(max(len(rows)-1, 0))
	}
}

// filterStatus resolves the status cycle position to a filter value,
// empty meaning any
func (v *ProjectListView) filterStatus() models.ProjectStatus {
	if v.statusIdx == 0 {
		return ""
	}
	return models.ProjectStatuses[v.statusIdx-1]
}

func (v *ProjectListView) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const fields = 4 // name, client, status, search button

	switch {
	case key.Matches(msg, v.keys.Back):
		v.filtering = false
		return v, nil

	case msg.String() == "shift+tab":
		v.focusIdx = (v.focusIdx + fields - 1) % fields
		v.updateFilterFocus()
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % fields
		v.updateFilterFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.focusIdx < fields-1 {
			v.focusIdx++
			v.updateFilterFocus()
			return v, nil
		}
		v.filtering = false
		v.ctrl.SetFilters(
			strings.TrimSpace(v.filterName.Value()),
			strings.TrimSpace(v.filterClient.Value()),
			v.filterStatus(),
		)
		v.ctrl.Search()
		return v, v.loadCmd()
	}

	if v.focusIdx == 2 {
		switch msg.String() {
		case "left", "h":
			v.statusIdx = (v.statusIdx + len(models.ProjectStatuses)) % (len(models.ProjectStatuses) + 1)
			return v, nil
		case "right", "l", " ":
			v.statusIdx = (v.statusIdx + 1) % (len(models.ProjectStatuses) + 1)
			return v, nil
		}
		return v, nil
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case 0:
		v.filterName, cmd = v.filterName.Update(msg)
	case 1:
		v.filterClient, cmd = v.filterClient.Update(msg)
	}
	return v, cmd
}

func (v *ProjectListView) updateFilterFocus() {
	v.filterName.Blur()
	v.filterClient.Blur()
	switch v.focusIdx {
	case 0:
		v.filterName.Focus()
	case 1:
		v.filterClient.Focus()
	}
}

func (v *ProjectListView) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.creating = false
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.createCmd()

	case msg.String() == "shift+tab":
		v.focusIdx = (v.focusIdx + 2) % 3
		v.updateCreateFocus()
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % 3
		v.updateCreateFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.focusIdx < 2 {
			v.focusIdx++
			v.updateCreateFocus()
			return v, nil
		}
		return v, v.createCmd()
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case 0:
		v.newName, cmd = v.newName.Update(msg)
	case 1:
		v.newClient, cmd = v.newClient.Update(msg)
	}
	return v, cmd
}

func (v *ProjectListView) updateCreateFocus() {
	v.newName.Blur()
	v.newClient.Blur()
	switch v.focusIdx {
	case 0:
		v.newName.Focus()
	case 1:
		v.newClient.Focus()
	}
}

// View renders the view
func (v *ProjectListView) View() string {
	if v.filtering {
		return v.renderFilterForm()
	}
	if v.creating {
		return v.renderCreateForm()
	}

	s := v.styles

	switch v.ctrl.State {
	case controller.StateLoading:
		return styles.CenterView(s.TitleMuted.Render("Loading..."), v.width, v.height)
	case controller.StateFailed:
		content := lipgloss.JoinVertical(lipgloss.Center,
			s.Toast.Render(v.ctrl.Err),
			"",
			s.TitleMuted.Render("Press 'f' to adjust filters and retry"),
		)
		return styles.CenterView(content, v.width, v.height)
	}

	if len(v.ctrl.Projects) == 0 {
		return v.renderEmpty()
	}

	rows := []string{
		s.Title.Render("Projects"),
		"",
		v.table.View(),
		"",
		v.renderFooter(),
	}
	if v.ctrl.Err != "" {
		rows = append(rows, s.Toast.Render(v.ctrl.Err))
	}
	if v.ctrl.Notice != "" {
		rows = append(rows, s.Notice.Render(v.ctrl.Notice))
	}
	rows = append(rows, v.renderHelp())

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return styles.CenterView(content, v.width, v.height)
}

func (v *ProjectListView) renderFooter() string {
	s := v.styles
	o := sortOrders[v.sortIdx]

	prev := "← Previous"
	if !v.ctrl.CanPrev() {
		prev = s.TitleMuted.Render(prev)
	}
	next := "Next →"
	if !v.ctrl.CanNext() {
		next = s.TitleMuted.Render(next)
	}

	page := fmt.Sprintf("Page %d of %d", v.ctrl.Query.Page+1, max(v.ctrl.TotalPages, 1))
	sort := s.TitleMuted.Render(fmt.Sprintf("sort: %s %s", o.by, o.dir))
	size := s.TitleMuted.Render(fmt.Sprintf("size: %d", v.ctrl.Query.Size))

	return lipgloss.JoinHorizontal(lipgloss.Center,
		prev, "   ", page, "   ", next, "   ", sort, "   ", size,
	)
}

func (v *ProjectListView) renderEmpty() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	rows := []string{
		s.Title.Render("Projects"),
		"",
		s.TitleMuted.Render("No projects found."),
	}
	if v.role == models.RoleAdmin {
		rows = append(rows, "", s.ButtonPrimary.Render(" n - New Project "))
	}
	rows = append(rows, "", v.renderHelp())

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectListView) renderFilterForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	nameStyle, clientStyle := s.Input, s.Input
	statusStyle, btnStyle := s.Value, s.Button
	switch v.focusIdx {
	case 0:
		nameStyle = s.InputFocused
	case 1:
		clientStyle = s.InputFocused
	case 2:
		statusStyle = s.InputFocused
	case 3:
		btnStyle = s.ButtonFocused
	}

	status := "Any"
	if st := v.filterStatus(); st != "" {
		status = string(st)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Filter Projects"),
		"",
		"Name:",
		nameStyle.Width(inputWidth).Render(v.filterName.View()),
		"",
		"Client:",
		clientStyle.Width(inputWidth).Render(v.filterClient.View()),
		"",
		"Status:",
		statusStyle.Render("◂ "+status+" ▸"),
		"",
		btnStyle.Render(" Search "),
		"",
		s.TitleMuted.Render("Tab: next • Enter: search • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectListView) renderCreateForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	nameStyle, clientStyle, btnStyle := s.Input, s.Input, s.Button
	switch v.focusIdx {
	case 0:
		nameStyle = s.InputFocused
	case 1:
		clientStyle = s.InputFocused
	case 2:
		btnStyle = s.ButtonFocused
	}

	rows := []string{
		s.Title.Render("New Project"),
		"",
		"Name:",
		nameStyle.Width(inputWidth).Render(v.newName.View()),
		"",
		"Client:",
		clientStyle.Width(inputWidth).Render(v.newClient.View()),
		"",
		btnStyle.Render(" Create "),
	}
	if v.ctrl.Err != "" {
		rows = append(rows, "", s.Toast.Render(v.ctrl.Err))
	}
	rows = append(rows, "", s.TitleMuted.Render("Tab: next • Ctrl+S: save • Esc: cancel"))

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectListView) renderHelp() string {
	s := v.styles
	parts := []string{
		s.HelpKey.Render("↵") + " open",
		s.HelpKey.Render("f") + " filter",
		s.HelpKey.Render("o") + " sort",
		s.HelpKey.Render("←/→") + " page",
		s.HelpKey.Render("z") + " page size",
	}
	if v.role == models.RoleAdmin {
		parts = append(parts, s.HelpKey.Render("n")+" new")
	}
	parts = append(parts,
		s.HelpKey.Render("u")+" users",
		s.HelpKey.Render("q")+" quit",
	)
	return s.Help.Render(strings.Join(parts, " • "))
}
