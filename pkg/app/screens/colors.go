package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/maniverse/pkg/app/components"
	"github.com/kerbaras/maniverse/pkg/app/styles"
	"github.com/kerbaras/maniverse/pkg/data"
	"github.com/kerbaras/maniverse/pkg/integrations"
)

type ColorsScreen struct {
	colors []data.NailColor
	picker *components.Picker
	width  int
	height int
}

func NewColorsScreen() *ColorsScreen {
	colors := data.Colors()
	w, h := components.ThumbnailSize()

	items := make([]components.PickerItem, 0, len(colors))
	for _, c := range colors {
		items = append(items, components.PickerItem{
			ID:        c.ID,
			Title:     c.Name,
			Subtitle:  fmt.Sprintf("%s • %s", c.Type.Label(), c.Hex),
			Thumbnail: components.Thumbnail(integrations.RenderSwatch(c), w, h),
		})
	}

	return &ColorsScreen{
		colors: colors,
		picker: components.NewPicker(items),
	}
}

func (s *ColorsScreen) Init() tea.Cmd {
	return nil
}

func (s *ColorsScreen) SetChosen(color *data.NailColor) {
	if color == nil {
		s.picker.SetChosen("")
		return
	}
	s.picker.SetChosen(color.ID)
}

func (s *ColorsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.picker.Width = msg.Width - 4

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			s.picker.Prev()
		case "right", "l":
			s.picker.Next()
		case "up", "k":
			s.picker.Up()
		case "down", "j":
			s.picker.Down()
		case "enter", " ":
			item := s.picker.Selected()
			if item == nil {
				break
			}
			color, ok := data.ColorByID(item.ID)
			if !ok {
				break
			}
			return s, func() tea.Msg {
				return ColorSelectedMsg{Color: color}
			}
		}
	}

	return s, nil
}

func (s *ColorsScreen) View() string {
	header := styles.TitleStyle.Render("🎨 Choose Your Nail Color")

	var chosen string
	if item := s.picker.ChosenItem(); item != nil {
		color, _ := data.ColorByID(item.ID)
		chip := styles.SwatchStyle(color.Hex).Render("   ")
		chosen = fmt.Sprintf("%s %s", chip, styles.ChosenStyle.Render("You selected: "+item.Title))
	} else {
		chosen = styles.MutedStyle.Render("No color selected yet")
	}

	help := styles.HelpStyle.Render(
		"←/→/↑/↓: move • enter: select • tab: switch step • r: start over • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s\n%s", header, s.picker.View(), chosen, help)
}
