package screens

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/kerbaras/maniverse/pkg/app/styles"
	"github.com/kerbaras/maniverse/pkg/integrations"
	"github.com/kerbaras/maniverse/pkg/logging"
	"github.com/kerbaras/maniverse/pkg/services"
)

var stepTabs = []struct {
	step  services.Step
	label string
}{
	{services.ShapeSelection, "1 Shape"},
	{services.ColorSelection, "2 Color"},
	{services.PreviewSummary, "3 Preview"},
}

// RootScreen owns the navigator and routes input to the screen for the
// current step.
type RootScreen struct {
	nav     *services.Navigator
	log     *log.Logger
	spinner spinner.Model

	shapes  *ShapesScreen
	colors  *ColorsScreen
	preview *PreviewScreen

	width  int
	height int
}

func NewRootScreen(nav *services.Navigator, assets *integrations.AssetLoader, logger *log.Logger) *RootScreen {
	if logger == nil {
		logger = logging.Discard()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	r := &RootScreen{
		nav:     nav,
		log:     logger,
		spinner: s,
		shapes:  NewShapesScreen(assets),
		colors:  NewColorsScreen(),
		preview: NewPreviewScreen(),
	}
	r.sync()
	return r
}

func (r *RootScreen) Init() tea.Cmd {
	return nil
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.resize(msg)
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			r.nav.Close()
			return r, tea.Quit
		case "r":
			r.nav.Reset()
			r.log.Info("selection reset")
			r.sync()
			return r, nil
		}
		if r.nav.Loading() {
			return r, nil
		}
		switch msg.String() {
		case "tab":
			r.goTo((r.nav.Step() + 1) % 3)
			return r, nil
		case "shift+tab":
			r.goTo((r.nav.Step() + 2) % 3)
			return r, nil
		case "1", "2", "3":
			r.goTo(services.Step(msg.String()[0] - '1'))
			return r, nil
		}

	case ShapeSelectedMsg:
		ticket, ok := r.nav.SelectShape(msg.Shape)
		if !ok {
			r.log.Debug("shape selection ignored", "id", msg.Shape.ID)
			return r, nil
		}
		r.log.Info("shape selected", "id", msg.Shape.ID)
		r.sync()
		return r, tea.Batch(r.spinner.Tick, r.wait(ticket))

	case ColorSelectedMsg:
		ticket, ok := r.nav.SelectColor(msg.Color)
		if !ok {
			r.log.Debug("color selection ignored", "id", msg.Color.ID)
			return r, nil
		}
		r.log.Info("color selected", "id", msg.Color.ID)
		r.sync()
		return r, tea.Batch(r.spinner.Tick, r.wait(ticket))

	case loadingDoneMsg:
		if r.nav.Complete(msg.ticket) {
			r.log.Debug("step changed", "step", r.nav.Step())
			r.sync()
		}
		return r, nil

	case StartDesigningMsg:
		if r.nav.StartDesigning() {
			r.sync()
		}
		return r, nil

	case spinner.TickMsg:
		if !r.nav.Loading() {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd
	}

	if r.nav.Loading() {
		return r, nil
	}

	// Forward message to active screen
	switch r.nav.Step() {
	case services.ShapeSelection:
		newModel, cmd := r.shapes.Update(msg)
		r.shapes = newModel.(*ShapesScreen)
		return r, cmd
	case services.ColorSelection:
		newModel, cmd := r.colors.Update(msg)
		r.colors = newModel.(*ColorsScreen)
		return r, cmd
	case services.PreviewSummary:
		newModel, cmd := r.preview.Update(msg)
		r.preview = newModel.(*PreviewScreen)
		return r, cmd
	}

	return r, nil
}

func (r *RootScreen) View() string {
	header := styles.TitleStyle.Render("💅 Nail Designer")
	tabs := r.renderTabs()

	var content string
	switch {
	case r.nav.Loading():
		content = fmt.Sprintf("%s %s", r.spinner.View(), styles.SubtitleStyle.Render("Loading..."))
	case r.nav.Step() == services.ShapeSelection:
		content = r.shapes.View()
	case r.nav.Step() == services.ColorSelection:
		content = r.colors.View()
	case r.nav.Step() == services.PreviewSummary:
		content = r.preview.View()
	}

	return fmt.Sprintf("%s\n%s\n\n%s", header, tabs, content)
}

func (r *RootScreen) renderTabs() string {
	tabs := make([]string, 0, len(stepTabs))
	for _, t := range stepTabs {
		if t.step == r.nav.Step() {
			tabs = append(tabs, styles.ActiveTabStyle.Render(t.label))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (r *RootScreen) goTo(step services.Step) {
	if r.nav.GoTo(step) {
		r.sync()
	}
}

// wait schedules the end of the loading pause for ticket.
func (r *RootScreen) wait(ticket services.Ticket) tea.Cmd {
	delay := r.nav.Delay()
	if delay <= 0 {
		return func() tea.Msg { return loadingDoneMsg{ticket: ticket} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return loadingDoneMsg{ticket: ticket}
	})
}

// sync pushes the stored selection into every child screen.
func (r *RootScreen) sync() {
	sel := r.nav.Selection()
	r.shapes.SetChosen(sel.Shape)
	r.colors.SetChosen(sel.Color)
	r.preview.SetSelection(sel)
}

func (r *RootScreen) resize(msg tea.WindowSizeMsg) {
	r.shapes.Update(msg)
	r.colors.Update(msg)
	r.preview.Update(msg)
}
