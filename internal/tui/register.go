package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/elparchetipk/go-auth-api/internal/adapter"
	"github.com/elparchetipk/go-auth-api/models"
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders five text inputs (email, given names, surname, password, and
// password confirmation) and dispatches an async registration command on
// form submission. On success the model resets the form and navigates back
// to the menu, passing a [RegisterSuccessNotice] payload.
type RegisterModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

const (
	registerFieldEmail = iota
	registerFieldGivenNames
	registerFieldSurname
	registerFieldPassword
	registerFieldConfirm
)

// NewRegisterModel creates a [RegisterModel] with five pre-configured text
// inputs. The email field receives focus immediately; the password fields
// use masked echo.
func NewRegisterModel(ctx context.Context, server adapter.ServerAdapter) *RegisterModel {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 40
		return in
	}

	emailInput := newInput("email", 254)
	emailInput.Focus()

	givenNamesInput := newInput("given names", 100)
	surnameInput := newInput("surname", 100)

	passwordInput := newInput("password", 72)
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	confirmInput := newInput("repeat password", 72)
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	return &RegisterModel{
		ctx:    ctx,
		server: server,
		inputs: []textinput.Model{emailInput, givenNamesInput, surnameInput, passwordInput, confirmInput},
	}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] — on success resets the form and navigates to the
//     menu with a [RegisterSuccessNotice]; on error shows the server's
//     message, itemized validation problems included.
//   - esc — cancels and navigates back to the menu.
//   - tab / shift+tab — moves focus between inputs.
//   - enter — checks the password confirmation locally and dispatches the
//     async registration command.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerError(result.Err)
			return m, nil
		}

		email := result.User.Email
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: RegisterSuccessNotice{Email: email}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			req := models.RegisterRequest{
				Email:      strings.TrimSpace(m.inputs[registerFieldEmail].Value()),
				GivenNames: strings.TrimSpace(m.inputs[registerFieldGivenNames].Value()),
				Surname:    strings.TrimSpace(m.inputs[registerFieldSurname].Value()),
				Password:   m.inputs[registerFieldPassword].Value(),
			}

			if req.Email == "" || req.GivenNames == "" || req.Surname == "" || req.Password == "" {
				m.errMsg = "all fields are required"
				return m, nil
			}
			if req.Password != m.inputs[registerFieldConfirm].Value() {
				m.errMsg = "passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	labels := []string{"Email      ", "Given names", "Surname    ", "Password   ", "Repeat     "}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		user, err := server.Register(ctx, req)
		return RegisterResult{User: user, Err: err}
	}
}

func (m *RegisterModel) reset() {
	m.submitting = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.inputs[m.focus].Blur()
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
