package app

import (
	"github.com/blackwell-systems/bookmgr/internal/unified"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// runUI runs the interactive catalog until the user quits.
func runUI() error {
	m := unified.New(unified.Deps{
		Client:         client,
		Locale:         loc,
		Logger:         logger,
		NotifyDuration: cfg.UI.NotifyDuration,
	}, flagRoute)

	logger.Info("ui start", zap.String("route", flagRoute))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	logger.Info("ui exit", zap.Error(err))
	return err
}
