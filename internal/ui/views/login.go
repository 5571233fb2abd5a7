package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmateja/padmin/internal/api"
	"github.com/pmateja/padmin/internal/controller"
	"github.com/pmateja/padmin/internal/ui/keys"
	"github.com/pmateja/padmin/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// LoggedIn tells the app to navigate to the project listing
type LoggedIn struct{}

type loginDoneMsg struct {
	res controller.LoginResult
}

type registerDoneMsg struct {
	res controller.RegisterResult
}

// LoginView shows the login form, toggleable to the register form
type LoginView struct {
	ctrl   *controller.Login
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	registering bool
	email       textinput.Model
	password    textinput.Model
	name        textinput.Model
	surname     textinput.Model
	focusIdx    int
}

func NewLoginView(ctrl *controller.Login) *LoginView {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 100

	password := textinput.New()
	password.Placeholder = "Your password"
	password.CharLimit = 100
	password.EchoMode = textinput.EchoPassword

	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 100

	surname := textinput.New()
	surname.Placeholder = "Surname"
	surname.CharLimit = 100

	v := &LoginView{
		ctrl:     ctrl,
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		email:    email,
		password: password,
		name:     name,
		surname:  surname,
	}
	v.email.Focus()
	return v
}

func (v *LoginView) Init() tea.Cmd {
	return textinput.Blink
}

// fieldCount is inputs plus the submit button
func (v *LoginView) fieldCount() int {
	if v.registering {
		return 5
	}
	return 3
}

func (v *LoginView) submitCmd() tea.Cmd {
	if v.registering {
		in := api.RegisterRequest{
			Email:    v.email.Value(),
			Password: v.password.Value(),
			Name:     v.name.Value(),
			Surname:  v.surname.Value(),
		}
		seq := v.ctrl.BeginRegister(in)
		if seq == 0 {
			return nil
		}
		return func() tea.Msg {
			return registerDoneMsg{res: v.ctrl.Register(context.Background(), seq, in)}
		}
	}

	email, password := v.email.Value(), v.password.Value()
	seq := v.ctrl.BeginSubmit(email, password)
	if seq == 0 {
		return nil
	}
	return func() tea.Msg {
		return loginDoneMsg{res: v.ctrl.Submit(context.Background(), seq, email, password)}
	}
}

func (v *LoginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case loginDoneMsg:
		if v.ctrl.ApplySubmit(msg.res) {
			return v, func() tea.Msg { return LoggedIn{} }
		}
		return v, nil

	case registerDoneMsg:
		if v.ctrl.ApplyRegister(msg.res) {
			v.registering = false
			v.focusIdx = 0
			v.updateFocus()
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return v, tea.Quit

		case msg.String() == "ctrl+r":
			v.registering = !v.registering
			v.focusIdx = 0
			v.updateFocus()
			return v, nil

		case msg.String() == "shift+tab":
			v.focusIdx = (v.focusIdx + v.fieldCount() - 1) % v.fieldCount()
			v.updateFocus()
			return v, nil

		case key.Matches(msg, v.keys.Tab):
			v.focusIdx = (v.focusIdx + 1) % v.fieldCount()
			v.updateFocus()
			return v, nil

		case key.Matches(msg, v.keys.Enter):
			if v.focusIdx < v.fieldCount()-1 {
				v.focusIdx++
				v.updateFocus()
				return v, nil
			}
			return v, v.submitCmd()
		}
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case 0:
		v.email, cmd = v.email.Update(msg)
	case 1:
		v.password, cmd = v.password.Update(msg)
	case 2:
		if v.registering {
			v.name, cmd = v.name.Update(msg)
		}
	case 3:
		v.surname, cmd = v.surname.Update(msg)
	}
	return v, cmd
}

func (v *LoginView) updateFocus() {
	v.email.Blur()
	v.password.Blur()
	v.name.Blur()
	v.surname.Blur()
	switch v.focusIdx {
	case 0:
		v.email.Focus()
	case 1:
		v.password.Focus()
	case 2:
		if v.registering {
			v.name.Focus()
		}
	case 3:
		v.surname.Focus()
	}
}

func (v *LoginView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	title := "Login"
	button := " Login "
	if v.registering {
		title = "Register"
		button = " Register "
	}

	btnStyle := s.Button
	if v.focusIdx == v.fieldCount()-1 {
		btnStyle = s.ButtonFocused
	}

	rows := []string{
		s.Title.Render(title),
		"",
		"Email:",
		v.inputStyle(0).Width(inputWidth).Render(v.email.View()),
		"",
		"Password:",
		v.inputStyle(1).Width(inputWidth).Render(v.password.View()),
	}
	if v.registering {
		rows = append(rows,
			"",
			"Name:",
			v.inputStyle(2).Width(inputWidth).Render(v.name.View()),
			"",
			"Surname:",
			v.inputStyle(3).Width(inputWidth).Render(v.surname.View()),
		)
	}
	rows = append(rows, "", btnStyle.Render(button))

	if v.ctrl.Err != "" {
		rows = append(rows, "", s.Toast.Render(v.ctrl.Err))
	}
	if v.ctrl.Notice != "" {
		rows = append(rows, "", s.Notice.Render(v.ctrl.Notice))
	}
	if v.ctrl.Submitting {
		rows = append(rows, "", s.TitleMuted.Render("Submitting..."))
	}
	rows = append(rows, "",
		s.TitleMuted.Render("Tab: next field • Enter: submit • Ctrl+R: toggle login/register"),
	)

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *LoginView) inputStyle(idx int) lipgloss.Style {
	if v.focusIdx == idx {
		return v.styles.InputFocused
	}
	return v.styles.Input
}
