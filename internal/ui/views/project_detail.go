package views

import (
	"context"
	"fmt"
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

// BackToProjects tells the app to return to the listing
type BackToProjects struct{}

type projectLoadedMsg struct {
	res controller.ProjectResult
}

type statusChangedMsg struct {
	res controller.ProjectResult
}

type projectUpdatedMsg struct {
	res controller.ProjectResult
}

type projectDeletedMsg struct {
	res controller.DoneResult
}

type pickerUsersMsg struct {
	res controller.UsersResult
}

type attachDoneMsg struct {
	res     controller.ProjectResult
	manager bool
}

type activeToggledMsg struct {
	res controller.ProjectResult
}

type reportSavedMsg struct {
	res controller.ReportResult
}

// detailMode is the active sub-screen of the project detail view
type detailMode int

const (
	modeView detailMode = iota
	modeStatus
	modeEdit
	modeConfirmDelete
	modePickUser
	modeReport
	modeReportList
	modeReportView
)

// membershipRow is one navigable line in the membership section
type membershipRow struct {
	id      int64 // manager or member record id
	manager bool
	active  bool
	label   string
}

// ProjectDetailView shows one project with its memberships and reports
type ProjectDetailView struct {
	ctrl   *controller.ProjectDetail
	role   models.Role
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	mode   detailMode
	cursor int // membership row cursor in view mode

	statusCursor int

	editName   textinput.Model
	editDesc   textinput.Model
	editClient textinput.Model
	focusIdx   int

	pickManager bool
	pickCursor  int

	reportCursor int

	reportTitle   textinput.Model
	reportContent textarea.Model
}

func NewProjectDetailView(ctrl *controller.ProjectDetail, role models.Role) *ProjectDetailView {
	editName := textinput.New()
	editName.Placeholder = "Project name"
	editName.CharLimit = 100

	editDesc := textinput.New()
	editDesc.Placeholder = "Description"
	editDesc.CharLimit = 255

	editClient := textinput.New()
	editClient.Placeholder = "Client name"
	editClient.CharLimit = 100

	reportTitle := textinput.New()
	reportTitle.Placeholder = "Report title"
	reportTitle.CharLimit = 100

	reportContent := textarea.New()
	reportContent.Placeholder = "What happened..."
	reportContent.CharLimit = 2000
	reportContent.SetHeight(5)
	reportContent.ShowLineNumbers = false

	return &ProjectDetailView{
		ctrl:          ctrl,
		role:          role,
		styles:        styles.NewStyles(),
		keys:          keys.DefaultKeyMap(),
		editName:      editName,
		editDesc:      editDesc,
		editClient:    editClient,
		reportTitle:   reportTitle,
		reportContent: reportContent,
	}
}

func (v *ProjectDetailView) Init() tea.Cmd {
	seq := v.ctrl.BeginLoad()
	return func() tea.Msg {
		return projectLoadedMsg{res: v.ctrl.Load(context.Background(), seq)}
	}
}

// membershipRows flattens the four membership collections into one
// navigable list, active entries first
func (v *ProjectDetailView) membershipRows() []membershipRow {
	p := v.ctrl.Project
	var rows []membershipRow
	if m := p.ActiveProjectManager; m != nil {
		rows = append(rows, membershipRow{
			id: m.ID, manager: true, active: true,
			label: m.User.FullName() + " (manager)",
		})
	}
	for _, m := range p.ActiveProjectMembers {
		rows = append(rows, membershipRow{
			id: m.ID, active: true,
			label: m.User.FullName(),
		})
	}
	for _, m := range p.InactiveProjectManagers {
		rows = append(rows, membershipRow{
			id: m.ID, manager: true,
			label: m.User.FullName() + " (manager)",
		})
	}
	for _, m := range p.InactiveProjectMembers {
		rows = append(rows, membershipRow{
			id:    m.ID,
			label: m.User.FullName(),
		})
	}
	return rows
}

func (v *ProjectDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case projectLoadedMsg:
		v.ctrl.ApplyProject(msg.res)
		return v, nil

	case statusChangedMsg:
		if v.ctrl.ApplyStatusChange(msg.res) {
			v.mode = modeView
		}
		return v, nil

	case projectUpdatedMsg:
		if v.ctrl.ApplyUpdate(msg.res) {
			v.mode = modeView
		}
		return v, nil

	case projectDeletedMsg:
		if v.ctrl.ApplyDelete(msg.res) {
			return v, func() tea.Msg { return BackToProjects{} }
		}
		v.mode = modeView
		return v, nil

	case pickerUsersMsg:
		v.ctrl.ApplyUsers(msg.res)
		return v, nil

	case attachDoneMsg:
		if v.ctrl.ApplyAttach(msg.res, msg.manager) {
			v.mode = modeView
		}
		return v, nil

	case activeToggledMsg:
		if v.ctrl.ApplyProject(msg.res) {
			v.cursor = clamp(v.cursor, 0, max(len(v.membershipRows())-1, 0))
		}
		return v, nil

	case reportSavedMsg:
		if v.ctrl.ApplyReport(msg.res) {
			v.mode = modeView
		}
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case modeStatus:
			return v.updateStatusPicker(msg)
		case modeEdit:
			return v.updateEditing(msg)
		case modeConfirmDelete:
			return v.updateConfirmDelete(msg)
		case modePickUser:
			return v.updatePickUser(msg)
		case modeReport:
			return v.updateReport(msg)
		case modeReportList, modeReportView:
			return v.updateReportBrowser(msg)
		}
		return v.updateViewing(msg)
	}

	return v, nil
}

func (v *ProjectDetailView) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	admin := v.role == models.RoleAdmin
	rows := v.membershipRows()

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return BackToProjects{} }

	case key.Matches(msg, v.keys.Up):
		v.cursor = clamp(v.cursor-1, 0, max(len(rows)-1, 0))
		return v, nil

	case key.Matches(msg, v.keys.Down):
		v.cursor = clamp(v.cursor+1, 0, max(len(rows)-1, 0))
		return v, nil

	case key.Matches(msg, v.keys.Status):
		if !admin {
			return v, nil
		}
		v.mode = modeStatus
		v.statusCursor = 0
		for i, st := range models.ProjectStatuses {
			if st == v.ctrl.Project.Status {
				v.statusCursor = i
			}
		}
		return v, nil

	case key.Matches(msg, v.keys.Edit):
		if !admin {
			return v, nil
		}
		v.mode = modeEdit
		v.focusIdx = 0
		v.editName.SetValue(v.ctrl.Project.Name)
		v.editDesc.SetValue(v.ctrl.Project.Description)
		v.editClient.SetValue(v.ctrl.Project.ClientName)
		v.updateEditFocus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if !admin {
			return v, nil
		}
		v.mode = modeConfirmDelete
		return v, nil

	case key.Matches(msg, v.keys.New):
		if !admin {
			return v, nil
		}
		v.pickManager = false
		return v, v.openPicker()

	case msg.String() == "g":
		if !admin {
			return v, nil
		}
		v.pickManager = true
		return v, v.openPicker()

	case key.Matches(msg, v.keys.Toggle):
		if !admin || len(rows) == 0 {
			return v, nil
		}
		row := rows[v.cursor]
		seq := v.ctrl.BeginMutation()
		return v, func() tea.Msg {
			var res controller.ProjectResult
			if row.manager {
				res = v.ctrl.SetManagerActive(context.Background(), seq, row.id, !row.active)
			} else {
				res = v.ctrl.SetMemberActive(context.Background(), seq, row.id, !row.active)
			}
			return activeToggledMsg{res: res}
		}

	case msg.String() == "v":
		if len(v.ctrl.Project.ProjectReports) == 0 {
			return v, nil
		}
		v.mode = modeReportList
		v.reportCursor = 0
		return v, nil

	case key.Matches(msg, v.keys.Report):
		v.mode = modeReport
		v.focusIdx = 0
		v.reportTitle.Reset()
		v.reportContent.Reset()
		v.updateReportFocus()
		return v, textinput.Blink
	}

	return v, nil
}

// openPicker switches to the user picker and fetches the account list
func (v *ProjectDetailView) openPicker() tea.Cmd {
	v.mode = modePickUser
	v.pickCursor = 0
	seq := v.ctrl.BeginUsers()
	return func() tea.Msg {
		return pickerUsersMsg{res: v.ctrl.LoadUsers(context.Background(), seq)}
	}
}

func (v *ProjectDetailView) updateStatusPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = modeView
		return v, nil

	case key.Matches(msg, v.keys.Up):
		v.statusCursor = clamp(v.statusCursor-1, 0, len(models.ProjectStatuses)-1)
		return v, nil

	case key.Matches(msg, v.keys.Down):
		v.statusCursor = clamp(v.statusCursor+1, 0, len(models.ProjectStatuses)-1)
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		status := models.ProjectStatuses[v.statusCursor]
		seq := v.ctrl.BeginMutation()
		return v, func() tea.Msg {
			return statusChangedMsg{res: v.ctrl.ChangeStatus(context.Background(), seq, status)}
		}
	}
	return v, nil
}

func (v *ProjectDetailView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const fields = 4 // name, desc, client, save button

	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = modeView
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

	var cmd tea.Cmd
	switch v.focusIdx {
	case 0:
		v.editName, cmd = v.editName.Update(msg)
	case 1:
		v.editDesc, cmd = v.editDesc.Update(msg)
	case 2:
		v.editClient, cmd = v.editClient.Update(msg)
	}
	return v, cmd
}

func (v *ProjectDetailView) saveEditCmd() tea.Cmd {
	name := strings.TrimSpace(v.editName.Value())
	client := strings.TrimSpace(v.editClient.Value())
	desc := strings.TrimSpace(v.editDesc.Value())
	seq := v.ctrl.BeginUpdate(name, client)
	if seq == 0 {
		return nil
	}
	return func() tea.Msg {
		return projectUpdatedMsg{res: v.ctrl.Update(context.Background(), seq,
			api.UpdateProjectRequest{Name: name, Description: desc, ClientName: client})}
	}
}

func (v *ProjectDetailView) updateEditFocus() {
	v.editName.Blur()
	v.editDesc.Blur()
	v.editClient.Blur()
	switch v.focusIdx {
	case 0:
		v.editName.Focus()
	case 1:
		v.editDesc.Focus()
	case 2:
		v.editClient.Focus()
	}
}

func (v *ProjectDetailView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		seq := v.ctrl.BeginMutation()
		return v, func() tea.Msg {
			return projectDeletedMsg{res: v.ctrl.Delete(context.Background(), seq)}
		}
	case "n", "N", "esc":
		v.mode = modeView
		return v, nil
	}
	return v, nil
}

func (v *ProjectDetailView) updatePickUser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	candidates := v.ctrl.CandidateMembers()

	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = modeView
		return v, nil

	case key.Matches(msg, v.keys.Up):
		v.pickCursor = clamp(v.pickCursor-1, 0, max(len(candidates)-1, 0))
		return v, nil

	case key.Matches(msg, v.keys.Down):
		v.pickCursor = clamp(v.pickCursor+1, 0, max(len(candidates)-1, 0))
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		var userID int64
		if v.pickCursor < len(candidates) {
			userID = candidates[v.pickCursor].ID
		}
		seq := v.ctrl.BeginAttach(userID)
		if seq == 0 {
			return v, nil
		}
		manager := v.pickManager
		return v, func() tea.Msg {
			var res controller.ProjectResult
			if manager {
				res = v.ctrl.AddManager(context.Background(), seq, userID)
			} else {
				res = v.ctrl.AddMember(context.Background(), seq, userID)
			}
			return attachDoneMsg{res: res, manager: manager}
		}
	}
	return v, nil
}

func (v *ProjectDetailView) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const fields = 3 // title, content, save button

	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = modeView
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

func (v *ProjectDetailView) updateReportBrowser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	reports := v.ctrl.Project.ProjectReports

	switch {
	case key.Matches(msg, v.keys.Back):
		if v.mode == modeReportView {
			v.mode = modeReportList
		} else {
			v.mode = modeView
		}
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.mode == modeReportList {
			v.reportCursor = clamp(v.reportCursor-1, 0, max(len(reports)-1, 0))
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.mode == modeReportList {
			v.reportCursor = clamp(v.reportCursor+1, 0, max(len(reports)-1, 0))
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.mode == modeReportList && v.reportCursor < len(reports) {
			v.mode = modeReportView
		}
		return v, nil
	}
	return v, nil
}

func (v *ProjectDetailView) saveReportCmd() tea.Cmd {
	title := strings.TrimSpace(v.reportTitle.Value())
	content := strings.TrimSpace(v.reportContent.Value())
	seq := v.ctrl.BeginReport(title, content)
	if seq == 0 {
		return nil
	}
	return func() tea.Msg {
		return reportSavedMsg{res: v.ctrl.CreateReport(context.Background(), seq, title, content)}
	}
}

func (v *ProjectDetailView) updateReportFocus() {
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
func (v *ProjectDetailView) View() string {
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
	case modeStatus:
		return v.renderStatusPicker()
	case modeEdit:
		return v.renderEditForm()
	case modeConfirmDelete:
		return v.renderDeleteConfirm()
	case modePickUser:
		return v.renderUserPicker()
	case modeReport:
		return v.renderReportForm()
	case modeReportList:
		return v.renderReportList()
	case modeReportView:
		return v.renderReportContent()
	}
	return v.renderDetail()
}

func (v *ProjectDetailView) renderDetail() string {
	s := v.styles
	p := v.ctrl.Project

	statusBadge := lipgloss.NewStyle().
		Foreground(styles.StatusColor(p.Status)).
		Bold(true).
		Render(string(p.Status))

	rows := []string{
		s.Title.Render(p.Name),
		s.Label.Render("Client: ") + s.Value.Render(p.ClientName),
		s.Label.Render("Status: ") + statusBadge,
	}
	if p.Description != "" {
		rows = append(rows, s.Label.Render("About: ")+s.Value.Render(p.Description))
	}
	if p.CreationDate != "" {
		rows = append(rows, s.Label.Render("Created: ")+s.Value.Render(p.CreationDate))
	}

	rows = append(rows, "", s.Section.Render("Team"))
	memberRows := v.membershipRows()
	if len(memberRows) == 0 {
		rows = append(rows, s.TitleMuted.Render("Nobody is assigned yet."))
	}
	for i, row := range memberRows {
		label := row.label
		style := s.Active
		if !row.active {
			style = s.Inactive
		}
		line := style.Render(label)
		if i == v.cursor {
			line = s.ListSelected.Render("▸ " + label)
		}
		rows = append(rows, line)
	}

	rows = append(rows, "", s.Section.Render("Reports"))
	if len(p.ProjectReports) == 0 {
		rows = append(rows, s.TitleMuted.Render("No reports yet."))
	}
	for _, rep := range p.ProjectReports {
		rows = append(rows, s.Value.Render(rep.Title)+" "+s.TitleMuted.Render(rep.ReportDate))
	}

	if v.ctrl.Err != "" {
		rows = append(rows, "", s.Toast.Render(v.ctrl.Err))
	}
	if v.ctrl.Notice != "" {
		rows = append(rows, "", s.Notice.Render(v.ctrl.Notice))
	}
	rows = append(rows, "", v.renderHelp())

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return styles.CenterView(content, v.width, v.height)
}

func (v *ProjectDetailView) renderHelp() string {
	s := v.styles
	parts := []string{s.HelpKey.Render("r") + " report"}
	if len(v.ctrl.Project.ProjectReports) > 0 {
		parts = append(parts, s.HelpKey.Render("v")+" view reports")
	}
	if v.role == models.RoleAdmin {
		parts = append(parts,
			s.HelpKey.Render("s")+" status",
			s.HelpKey.Render("e")+" edit",
			s.HelpKey.Render("n")+" add member",
			s.HelpKey.Render("g")+" add manager",
			s.HelpKey.Render("a")+" toggle active",
			s.HelpKey.Render("d")+" delete",
		)
	}
	parts = append(parts, s.HelpKey.Render("esc")+" back")
	return s.Help.Render(strings.Join(parts, " • "))
}

func (v *ProjectDetailView) renderStatusPicker() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	rows := []string{s.Title.Render("Change Status"), ""}
	for i, st := range models.ProjectStatuses {
		label := string(st)
		if i == v.statusCursor {
			rows = append(rows, s.ListSelected.Render("▸ "+label))
		} else {
			rows = append(rows, s.ListItem.Render("  "+label))
		}
	}
	rows = append(rows, "", s.TitleMuted.Render("Enter: apply • Esc: cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Modal.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectDetailView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	nameStyle, descStyle, clientStyle, btnStyle := s.Input, s.Input, s.Input, s.Button
	switch v.focusIdx {
	case 0:
		nameStyle = s.InputFocused
	case 1:
		descStyle = s.InputFocused
	case 2:
		clientStyle = s.InputFocused
	case 3:
		btnStyle = s.ButtonFocused
	}

	rows := []string{
		s.Title.Render("Edit Project"),
		"",
		"Name:",
		nameStyle.Width(inputWidth).Render(v.editName.View()),
		"",
		"Description:",
		descStyle.Width(inputWidth).Render(v.editDesc.View()),
		"",
		"Client:",
		clientStyle.Width(inputWidth).Render(v.editClient.View()),
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

func (v *ProjectDetailView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Project?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("Are you sure you want to delete %q?", v.ctrl.Project.Name)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectDetailView) renderUserPicker() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	title := "Add Member"
	if v.pickManager {
		title = "Add Manager"
	}

	rows := []string{s.Title.Render(title), ""}
	candidates := v.ctrl.CandidateMembers()
	if len(candidates) == 0 {
		rows = append(rows, s.TitleMuted.Render("No available users."))
	}
	for i, u := range candidates {
		label := u.FullName() + " " + s.TitleMuted.Render(u.Email)
		if i == v.pickCursor {
			rows = append(rows, s.ListSelected.Render("▸ "+label))
		} else {
			rows = append(rows, s.ListItem.Render("  "+label))
		}
	}
	if v.ctrl.Err != "" {
		rows = append(rows, "", s.Toast.Render(v.ctrl.Err))
	}
	rows = append(rows, "", s.TitleMuted.Render("Enter: add • Esc: cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Modal.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectDetailView) renderReportList() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	rows := []string{s.Title.Render("Reports"), ""}
	for i, rep := range v.ctrl.Project.ProjectReports {
		label := rep.Title + " " + s.TitleMuted.Render(rep.ReportDate)
		if i == v.reportCursor {
			rows = append(rows, s.ListSelected.Render("▸ "+label))
		} else {
			rows = append(rows, s.ListItem.Render("  "+label))
		}
	}
	rows = append(rows, "", s.TitleMuted.Render("Enter: read • Esc: back"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Modal.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectDetailView) renderReportContent() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	rep := v.ctrl.Project.ProjectReports[v.reportCursor]

	body := lipgloss.NewStyle().
		Width(clamp(contentWidth-8, 20, 80)).
		Render(rep.Content)

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(rep.Title),
		s.TitleMuted.Render(rep.ReportDate),
		"",
		body,
		"",
		s.TitleMuted.Render("Esc: back"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Modal.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectDetailView) renderReportForm() string {
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
