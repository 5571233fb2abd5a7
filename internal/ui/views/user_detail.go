package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/controller"
	"github.com/pmateja/padmin/internal/models"
	"github.com/pmateja/padmin/internal/ui/keys"
	"github.com/pmateja/padmin/internal/ui/styles"
)

// BackToUsers tells the app to return to the users listing
type BackToUsers struct{}

type userLoadedMsg struct {
	res controller.UserResult
}

type userEditedMsg struct {
	res controller.UserResult
}

type workStatusMsg struct {
	res controller.DoneResult
}

type userReportMsg struct {
	res controller.DoneResult
}

// userMode is the active sub-screen of the user detail view
type userMode int

const (
	uModeView userMode = iota
	uModeEdit
	uModePickProject
	uModeStatus
	uModeReport
)

// projectRow is one navigable project membership line
type projectRow struct {
	project models.Project
	manager bool
}

// UserDetailView shows one account with its project memberships
type UserDetailView struct {
	ctrl   *controller.UserDetail
	selfID int64
	role   models.Role
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	mode        userMode
	cursor      int
	pickForWork bool // picker target: work status form or report form
	target      projectRow

	editName    textinput.Model
	editSurname textinput.Model
	editEmail   textinput.Model
	editRole    models.Role
	focusIdx    int

	statusInput textinput.Model

	reportTitle   textinput.Model
	reportContent textarea.Model
}

func NewUserDetailView(ctrl *controller.UserDetail, selfID int64, role models.Role) *UserDetailView {
	editName := textinput.New()
	editName.Placeholder = "Name"
	editName.CharLimit = 100

	editSurname := textinput.New()
	editSurname.Placeholder = "Surname"
	editSurname.CharLimit = 100

	editEmail := textinput.New()
	editEmail.Placeholder = "Email"
	editEmail.CharLimit = 100

	statusInput := textinput.New()
	statusInput.Placeholder = "What are you working on?"
	statusInput.CharLimit = 200

	reportTitle := textinput.New()
	reportTitle.Placeholder = "Report title"
	reportTitle.CharLimit = 100

	reportContent := textarea.New()
	reportContent.Placeholder = "What happened..."
	reportContent.CharLimit = 2000
	reportContent.SetHeight(5)
	reportContent.ShowLineNumbers = false

	return &UserDetailView{
		ctrl:          ctrl,
		selfID:        selfID,
		role:          role,
		styles:        styles.NewStyles(),
		keys:          keys.DefaultKeyMap(),
		editName:      editName,
		editSurname:   editSurname,
		editEmail:     editEmail,
		statusInput:   statusInput,
		reportTitle:   reportTitle,
		reportContent: reportContent,
	}
}

func (v *UserDetailView) Init() tea.Cmd {
	return v.loadCmd()
}

func (v *UserDetailView) loadCmd() tea.Cmd {
	seq := v.ctrl.BeginLoad()
	return func() tea.Msg {
		return userLoadedMsg{res: v.ctrl.Load(context.Background(), seq)}
	}
}

// canEdit reports whether the viewer may change this account
func (v *UserDetailView) canEdit() bool {
	return v.role == models.RoleAdmin || v.ctrl.UserID == v.selfID
}

// projectRows flattens managed and member projects into one navigable list
func (v *UserDetailView) projectRows() []projectRow {
	var rows []projectRow
	for _, p := range v.ctrl.User.ProjectsManaged {
		rows = append(rows, projectRow{project: p, manager: true})
	}
	for _, p := range v.ctrl.User.Projects {
		rows = append(rows, projectRow{project: p})
	}
	return rows
}

func (v *UserDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case userLoadedMsg:
		v.ctrl.ApplyLoad(msg.res)
		return v, nil

	case userEditedMsg:
		if v.ctrl.ApplyEdit(msg.res) {
			v.mode = uModeView
		}
		return v, nil

	case workStatusMsg:
		if v.ctrl.ApplyWorkStatus(msg.res) {
			v.mode = uModeView
			return v, v.loadCmd()
		}
		return v, nil

	case userReportMsg:
		if v.ctrl.ApplyReport(msg.res) {
			v.mode = uModeView
		}
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case uModeEdit:
			return v.updateEditing(msg)
		case uModePickProject:
			return v.updatePickProject(msg)
		case uModeStatus:
			return v.updateStatus(msg)
		case uModeReport:
			return v.updateReport(msg)
		}
		return v.updateViewing(msg)
	}

	return v, nil
}

func (v *UserDetailView) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return BackToUsers{} }

	case key.Matches(msg, v.keys.Edit):
		if !v.canEdit() {
			return v, nil
		}
		v.mode = uModeEdit
		v.focusIdx = 0
		v.editName.SetValue(v.ctrl.User.Name)
		v.editSurname.SetValue(v.ctrl.User.Surname)
		v.editEmail.SetValue(v.ctrl.User.Email)
		v.editRole = v.ctrl.User.Role
		v.updateEditFocus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Status):
		if v.ctrl.UserID != v.selfID || len(v.projectRows()) == 0 {
			return v, nil
		}
		v.mode = uModePickProject
		v.pickForWork = true
		v.cursor = 0
		return v, nil

	case key.Matches(msg, v.keys.Report):
		if v.ctrl.UserID != v.selfID || len(v.ctrl.User.ProjectsManaged) == 0 {
			return v, nil
		}
		v.mode = uModePickProject
		v.pickForWork = false
		v.cursor = 0
		return v, nil
	}
	return v, nil
}

// pickableRows returns the projects the picker cycles through; reports are
// restricted to managed projects
func (v *UserDetailView) pickableRows() []projectRow {
	if v.pickForWork {
		return v.projectRows()
	}
	var rows []projectRow
	for _, p := range v.ctrl.User.ProjectsManaged {
		rows = append(rows, projectRow{project: p, manager: true})
	}
	return rows
}

func (v *UserDetailView) updatePickProject(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := v.pickableRows()

	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = uModeView
		return v, nil

	case key.Matches(msg, v.keys.Up):
		v.cursor = clamp(v.cursor-1, 0, max(len(rows)-1, 0))
		return v, nil

	case key.Matches(msg, v.keys.Down):
		v.cursor = clamp(v.cursor+1, 0, max(len(rows)-1, 0))
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if len(rows) == 0 {
			return v, nil
		}
		v.target = rows[v.cursor]
		if v.pickForWork {
			v.mode = uModeStatus
			v.statusInput.Reset()
			v.statusInput.Focus()
		} else {
			v.mode = uModeReport
			v.focusIdx = 0
			v.reportTitle.Reset()
			v.reportContent.Reset()
			v.updateReportFocus()
		}
		return v, textinput.Blink
	}
	return v, nil
}

func (v *UserDetailView) updateStatus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = uModeView
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		status := strings.TrimSpace(v.statusInput.Value())
		seq := v.ctrl.BeginWorkStatus(status)
		if seq == 0 {
			return v, nil
		}
		projectID := v.target.project.ID
		manager := v.ctrl.ManagesProject(projectID)
		return v, func() tea.Msg {
			return workStatusMsg{res: v.ctrl.SetWorkStatus(context.Background(), seq, projectID, manager, status)}
		}
	}

	var cmd tea.Cmd
	v.statusInput, cmd = v.statusInput.Update(msg)
	return v, cmd
}

func (v *UserDetailView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const fields = 5 // name, surname, email, role, save button

	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = uModeView
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.saveEditCmd()

	case msg.String() == "shift+tab":
		v.focusIdx = (v.focusIdx + fields - 1) % fields
		v.updateEditFocus()
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % fields
		v.updateEditFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.focusIdx < fields-1 {
			v.focusIdx++
			v.updateEditFocus()
			return v, nil
		}
		return v, v.saveEditCmd()
	}

	// Role is a toggle, only admins may change it
	if v.focusIdx == 3 {
		switch msg.String() {
		case "left", "right", "h", "l", " ":
			if v.role == models.RoleAdmin {
				if v.editRole == models.RoleAdmin {
					v.editRole = models.RoleUser
				} else {
					v.editRole = models.RoleAdmin
				}
			}
		}
		return v, nil
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case 0:
		v.editName, cmd = v.editName.Update(msg)
	case 1:
		v.editSurname, cmd = v.editSurname.Update(msg)
	case 2:
		v.editEmail, cmd = v.editEmail.Update(msg)
	}
	return v, cmd
}

func (v *UserDetailView) saveEditCmd() tea.Cmd {
	in := api.UpdateUserRequest{
		Name:    strings.TrimSpace(v.editName.Value()),
		Surname: strings.TrimSpace(v.editSurname.Value()),
		Email:   strings.TrimSpace(v.editEmail.Value()),
		Role:    v.editRole,
	}
	seq := v.ctrl.BeginEdit(in)
	if seq == 0 {
		return nil
	}
	return func() tea.Msg {
		return userEditedMsg{res: v.ctrl.Edit(context.Background(), seq, in)}
	}
}

func (v *UserDetailView) updateEditFocus() {
	v.editName.Blur()
	v.editSurname.Blur()
	v.editEmail.Blur()
	switch v.focusIdx {
	case 0:
		v.editName.Focus()
	case 1:
		v.editSurname.Focus()
	case 2:
		v.editEmail.Focus()
	}
}

func (v *UserDetailView) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const fields = 3 // title, content, save button

	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = uModeView
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.saveReportCmd()

	case msg.String() == "shift+tab":
		v.focusIdx = (v.focusIdx + fields - 1) % fields
		v.updateReportFocus()
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % fields
		v.updateReportFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		// Enter inserts a newline while the content textarea has focus
		if v.focusIdx == 0 {
			v.focusIdx++
			v.updateReportFocus()
			return v, nil
		}
		if v.focusIdx == fields-1 {
			return v, v.saveReportCmd()
		}
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case 0:
		v.reportTitle, cmd = v.reportTitle.Update(msg)
	case 1:
		v.reportContent, cmd = v.reportContent.Update(msg)
	}
	return v, cmd
}

func (v *UserDetailView) saveReportCmd() tea.Cmd {
	title := strings.TrimSpace(v.reportTitle.Value())
	content := strings.TrimSpace(v.reportContent.Value())
	seq := v.ctrl.BeginReport(title, content)
	if seq == 0 {
		return nil
	}
	projectID := v.target.project.ID
	return func() tea.Msg {
		return userReportMsg{res: v.ctrl.CreateReport(context.Background(), seq, projectID, title, content)}
	}
}

func (v *UserDetailView) updateReportFocus() {
	v.reportTitle.Blur()
	v.reportContent.Blur()
	switch v.focusIdx {
	case 0:
		v.reportTitle.Focus()
	case 1:
		v.reportContent.Focus()
	}
}

// View renders the view
func (v *UserDetailView) View() string {
	s := v.styles

	switch v.ctrl.State {
	case controller.StateLoading:
		return styles.CenterView(s.TitleMuted.Render("Loading..."), v.width, v.height)
	case controller.StateFailed:
		content := lipgloss.JoinVertical(lipgloss.Center,
			s.Toast.Render(v.ctrl.Err),
			"",
			s.TitleMuted.Render("Press Esc to go back"),
		)
		return styles.CenterView(content, v.width, v.height)
	}

	switch v.mode {
	case uModeEdit:
		return v.renderEditForm()
	case uModePickProject:
		return v.renderProjectPicker()
	case uModeStatus:
		return v.renderStatusForm()
	case uModeReport:
		return v.renderReportForm()
	}
	return v.renderDetail()
}

func (v *UserDetailView) renderDetail() string {
	s := v.styles
	u := v.ctrl.User

	rows := []string{
		s.Title.Render(u.FullName()),
		s.Label.Render("Email: ") + s.Value.Render(u.Email),
		s.Label.Render("Role:  ") + s.Value.Render(string(u.Role)),
	}

	rows = append(rows, "", s.Section.Render("Projects"))
	projectRows := v.projectRows()
	if len(projectRows) == 0 {
		rows = append(rows, s.TitleMuted.Render("Not assigned to any project."))
	}
	for _, row := range projectRows {
		label := row.project.Name
		if row.manager {
			label += " " + s.TitleMuted.Render("(manager)")
		}
		rows = append(rows, s.Value.Render(label))
	}

	if v.ctrl.Err != "" {
		rows = append(rows, "", s.Toast.Render(v.ctrl.Err))
	}
	if v.ctrl.Notice != "" {
		rows = append(rows, "", s.Notice.Render(v.ctrl.Notice))
	}

	var help []string
	if v.canEdit() {
		help = append(help, s.HelpKey.Render("e")+" edit")
	}
	if v.ctrl.UserID == v.selfID {
		if len(projectRows) > 0 {
			help = append(help, s.HelpKey.Render("s")+" work status")
		}
		if len(u.ProjectsManaged) > 0 {
			help = append(help, s.HelpKey.Render("r")+" report")
		}
	}
	help = append(help, s.HelpKey.Render("esc")+" back")
	rows = append(rows, "", s.Help.Render(strings.Join(help, " • ")))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return styles.CenterView(content, v.width, v.height)
}

func (v *UserDetailView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	nameStyle, surnameStyle, emailStyle := s.Input, s.Input, s.Input
	roleStyle, btnStyle := s.Value, s.Button
	switch v.focusIdx {
	case 0:
		nameStyle = s.InputFocused
	case 1:
		surnameStyle = s.InputFocused
	case 2:
		emailStyle = s.InputFocused
	case 3:
		roleStyle = s.InputFocused
	case 4:
		btnStyle = s.ButtonFocused
	}

	role := string(v.editRole)
	if v.role != models.RoleAdmin {
		role += " (locked)"
	}

	rows := []string{
		s.Title.Render("Edit User"),
		"",
		"Name:",
		nameStyle.Width(inputWidth).Render(v.editName.View()),
		"",
		"Surname:",
		surnameStyle.Width(inputWidth).Render(v.editSurname.View()),
		"",
		"Email:",
		emailStyle.Width(inputWidth).Render(v.editEmail.View()),
		"",
		"Role:",
		roleStyle.Render("◂ " + role + " ▸"),
		"",
		btnStyle.Render(" Save "),
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

func (v *UserDetailView) renderProjectPicker() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	title := "Report For Which Project?"
	if v.pickForWork {
		title = "Set Status On Which Project?"
	}

	rows := []string{s.Title.Render(title), ""}
	pickable := v.pickableRows()
	for i, row := range pickable {
		label := row.project.Name
		if row.manager {
			label += " " + s.TitleMuted.Render("(manager)")
		}
		if i == v.cursor {
			rows = append(rows, s.ListSelected.Render("▸ "+label))
		} else {
			rows = append(rows, s.ListItem.Render("  "+label))
		}
	}
	rows = append(rows, "", s.TitleMuted.Render("Enter: choose • Esc: cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Modal.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *UserDetailView) renderStatusForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	rows := []string{
		s.Title.Render("Work Status"),
		s.TitleMuted.Render(v.target.project.Name),
		"",
		s.InputFocused.Width(inputWidth).Render(v.statusInput.View()),
	}
	if v.ctrl.Err != "" {
		rows = append(rows, "", s.Toast.Render(v.ctrl.Err))
	}
	rows = append(rows, "", s.TitleMuted.Render("Enter: save • Esc: cancel"))

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *UserDetailView) renderReportForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 60)

	titleStyle, contentStyle, btnStyle := s.Input, s.Input, s.Button
	switch v.focusIdx {
	case 0:
		titleStyle = s.InputFocused
	case 1:
		contentStyle = s.InputFocused
	case 2:
		btnStyle = s.ButtonFocused
	}

	rows := []string{
		s.Title.Render("New Report"),
		s.TitleMuted.Render(v.target.project.Name),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.reportTitle.View()),
		"",
		"Content:",
		contentStyle.Width(inputWidth).Render(v.reportContent.View()),
		"",
		btnStyle.Render(" Save "),
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
