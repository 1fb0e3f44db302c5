// Package tui implements the terminal client: a small Bubble Tea
// application with login, registration, and profile screens driven by the
// [adapter.ServerAdapter] session holder.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/elparchetipk/go-auth-api/internal/adapter"
	"github.com/elparchetipk/go-auth-api/internal/logger"
)

type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server}, nil
}

// Run drives the whole client session: menu, login/register, profile. It
// blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.server),
		"register": NewRegisterModel(ctx, t.server),
		"profile":  NewProfileModel(ctx, t.server),
	}

	root := NewRootModel(pages, "menu")
	_, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	return err
}
