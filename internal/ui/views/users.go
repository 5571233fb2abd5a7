package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmateja/padmin/internal/controller"
	"github.com/pmateja/padmin/internal/ui/keys"
	"github.com/pmateja/padmin/internal/ui/styles"
)

type usersLoadedMsg struct {
	res controller.UserListResult
}

// SelectedUser tells the app to open the user detail screen
type SelectedUser struct {
	ID int64
}

// UserListView shows every registered account
type UserListView struct {
	ctrl   *controller.UserList
	table  table.Model
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int
}

func NewUserListView(ctrl *controller.UserList) *UserListView {
	s := styles.NewStyles()

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 30},
			{Title: "Email", Width: 30},
			{Title: "Role", Width: 8},
		}),
		table.WithFocused(true),
	)
	ts := table.DefaultStyles()
	ts.Header = s.TableHeader
	ts.Selected = s.ListSelected
	t.SetStyles(ts)

	return &UserListView{
		ctrl:   ctrl,
		table:  t,
		styles: s,
		keys:   keys.DefaultKeyMap(),
	}
}

func (v *UserListView) Init() tea.Cmd {
	seq := v.ctrl.BeginLoad()
	return func() tea.Msg {
		return usersLoadedMsg{res: v.ctrl.Load(context.Background(), seq)}
	}
}

func (v *UserListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.table.SetWidth(contentWidth - 4)
		v.table.SetHeight(max(msg.Height-8, 3))
		return v, nil

	case usersLoadedMsg:
		v.ctrl.ApplyLoad(msg.res)
		rows := make([]table.Row, len(v.ctrl.Users))
		for i, u := range v.ctrl.Users {
			rows[i] = table.Row{u.FullName(), u.Email, string(u.Role)}
		}
		v.table.SetRows(rows)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit

		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return BackToProjects{} }

		case key.Matches(msg, v.keys.Enter):
			idx := v.table.Cursor()
			if idx >= 0 && idx < len(v.ctrl.Users) {
				id := v.ctrl.Users[idx].ID
				return v, func() tea.Msg {
					return SelectedUser{ID: id}
				}
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the view
func (v *UserListView) View() string {
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

	rows := []string{
		s.Title.Render("Users"),
		"",
	}
	if len(v.ctrl.Users) == 0 {
		rows = append(rows, s.TitleMuted.Render("No users found."))
	} else {
		rows = append(rows, v.table.View())
	}
	if v.ctrl.Err != "" {
		rows = append(rows, "", s.Toast.Render(v.ctrl.Err))
	}

	help := []string{
		s.HelpKey.Render("↵") + " open",
		s.HelpKey.Render("esc") + " back",
		s.HelpKey.Render("q") + " quit",
	}
	rows = append(rows, "", s.Help.Render(strings.Join(help, " • ")))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return styles.CenterView(content, v.width, v.height)
}
