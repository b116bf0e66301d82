package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/maniverse/pkg/app/components"
	"github.com/kerbaras/maniverse/pkg/app/styles"
	"github.com/kerbaras/maniverse/pkg/data"
	"github.com/kerbaras/maniverse/pkg/integrations"
)

type ShapesScreen struct {
	shapes []data.NailShape
	picker *components.Picker
	width  int
	height int
}

func NewShapesScreen(assets *integrations.AssetLoader) *ShapesScreen {
	shapes := data.Shapes()
	w, h := components.ThumbnailSize()

	items := make([]components.PickerItem, 0, len(shapes))
	for _, s := range shapes {
		item := components.PickerItem{
			ID:       s.ID,
			Title:    s.Name,
			Icon:     s.Icon,
			Subtitle: fmt.Sprintf("Elegant %s style", s.Name),
		}
		if assets != nil {
			item.Thumbnail = components.Thumbnail(assets.ShapeImage(s), w, h)
		}
		items = append(items, item)
	}

	return &ShapesScreen{
		shapes: shapes,
		picker: components.NewPicker(items),
	}
}

func (s *ShapesScreen) Init() tea.Cmd {
	return nil
}

// SetChosen highlights the stored shape, or nothing for nil.
func (s *ShapesScreen) SetChosen(shape *data.NailShape) {
	if shape == nil {
		s.picker.SetChosen("")
		return
	}
	s.picker.SetChosen(shape.ID)
}

func (s *ShapesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			shape, ok := data.ShapeByID(item.ID)
			if !ok {
				break
			}
			return s, func() tea.Msg {
				return ShapeSelectedMsg{Shape: shape}
			}
		}
	}

	return s, nil
}

func (s *ShapesScreen) View() string {
	header := styles.TitleStyle.Render("💅 Choose Your Nail Shape")

	var chosen string
	if item := s.picker.ChosenItem(); item != nil {
		chosen = styles.ChosenStyle.Render(fmt.Sprintf("You selected: %s %s", item.Icon, item.Title))
	} else {
		chosen = styles.MutedStyle.Render("No shape selected yet")
	}

	help := styles.HelpStyle.Render(
		"←/→/↑/↓: move • enter: select • tab: switch step • r: start over • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s\n%s", header, s.picker.View(), chosen, help)
}
