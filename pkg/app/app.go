package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/kerbaras/maniverse/pkg/app/screens"
	"github.com/kerbaras/maniverse/pkg/integrations"
	"github.com/kerbaras/maniverse/pkg/services"
)

type App struct {
	nav    *services.Navigator
	assets *integrations.AssetLoader
	log    *log.Logger
}

func NewApp(nav *services.Navigator, assets *integrations.AssetLoader, logger *log.Logger) *App {
	return &App{
		nav:    nav,
		assets: assets,
		log:    logger,
	}
}

func (a *App) Run() error {
	defer a.nav.Close()

	model := screens.NewRootScreen(a.nav, a.assets, a.log)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
