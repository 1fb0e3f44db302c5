package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/elparchetipk/go-auth-api/internal/adapter"
	"github.com/elparchetipk/go-auth-api/models"
)

// ProfileModel shows the authenticated account. The record is re-fetched
// from the server on entry; hotkeys re-verify the token, copy it to the
// clipboard, and log out.
type ProfileModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	user    models.PublicUser
	loading bool
	status  string
	errMsg  string
}

func NewProfileModel(ctx context.Context, server adapter.ServerAdapter) *ProfileModel {
	return &ProfileModel{ctx: ctx, server: server}
}

// Init implements [tea.Model]. Kicks off the profile fetch.
func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m.cmdLoadProfile()
}

// Update implements [tea.Model]. Handled messages:
//   - profileLoadedMsg — fills the table, or shows the error. A rejected
//     token sends the user back to the menu (the adapter has already
//     dropped it).
//   - verifyDoneMsg — shows the verification outcome in the status line.
//   - logoutDoneMsg — navigates to the menu with a [LogoutNotice].
//   - copiedMsg — confirms the token reached the clipboard.
//   - r / v / c / l — reload, verify, copy token, log out.
func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeServerError(result.err)
			if m.server.Token() == "" {
				return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
			}
			return m, nil
		}
		m.user = result.user
		m.errMsg = ""
		return m, nil

	case verifyDoneMsg:
		if result.err != nil {
			m.errMsg = humanizeServerError(result.err)
			return m, nil
		}
		m.status = "token verified, subject #" + itoa(result.user.ID)
		return m, nil

	case logoutDoneMsg:
		return m, func() tea.Msg { return NavigateTo{Page: "menu", Payload: LogoutNotice{}} }

	case copiedMsg:
		m.status = "token copied to clipboard"
		return m, nil

	case copyFailedMsg:
		m.errMsg = result.err.Error()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "r":
		m.loading = true
		return m, m.cmdLoadProfile()
	case "v":
		return m, m.cmdVerify()
	case "c":
		return m, m.cmdCopyToken()
	case "l":
		return m, m.cmdLogout()
	}

	return m, nil
}

// View implements [tea.Model].
func (m *ProfileModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		b.WriteString("ID          │ ")
		b.WriteString(itoa(m.user.ID))
		b.WriteString("\nEmail       │ ")
		b.WriteString(m.user.Email)
		b.WriteString("\nGiven names │ ")
		b.WriteString(m.user.GivenNames)
		b.WriteString("\nSurname     │ ")
		b.WriteString(m.user.Surname)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "r: reload │ v: verify token │ c: copy token │ l: log out")
}

func (m *ProfileModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		user, err := server.Profile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdVerify() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		user, err := server.Verify(ctx)
		return verifyDoneMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdCopyToken() tea.Cmd {
	server := m.server

	return func() tea.Msg {
		if err := clipboard.WriteAll(server.Token()); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func (m *ProfileModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		return logoutDoneMsg{err: server.Logout(ctx)}
	}
}
