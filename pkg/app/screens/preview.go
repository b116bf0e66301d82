package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/maniverse/pkg/app/components"
	"github.com/kerbaras/maniverse/pkg/app/styles"
	"github.com/kerbaras/maniverse/pkg/data"
	"github.com/kerbaras/maniverse/pkg/integrations"
)

var roundGlyph = []string{
	"  ▄▄▄  ",
	" █████ ",
	" █████ ",
	" █████ ",
	" ▀▀▀▀▀ ",
}

// Cell-art nails for the terminal. They mirror the SVG outlines loosely.
var nailGlyphs = map[string][]string{
	"almond": {
		"   ▄   ",
		"  ███  ",
		" █████ ",
		" █████ ",
		" ▀▀▀▀▀ ",
	},
	"stiletto": {
		"   ▲   ",
		"   █   ",
		"  ███  ",
		" █████ ",
		" ▀▀▀▀▀ ",
	},
	"square": {
		" ▄▄▄▄▄ ",
		" █████ ",
		" █████ ",
		" █████ ",
		" ▀▀▀▀▀ ",
	},
	"coffin": {
		"  ▄▄▄  ",
		"  ███  ",
		" █████ ",
		" █████ ",
		" ▀▀▀▀▀ ",
	},
	"oval":  roundGlyph,
	"round": roundGlyph,
}

// NailGlyph draws shape as cell art tinted with c.
func NailGlyph(shape data.NailShape, c data.NailColor) string {
	lines, ok := nailGlyphs[shape.ID]
	if !ok {
		lines = roundGlyph
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex))
	return style.Render(strings.Join(lines, "\n"))
}

type PreviewScreen struct {
	selection data.Selection
	swatches  map[string]string
	width     int
	height    int
}

func NewPreviewScreen() *PreviewScreen {
	return &PreviewScreen{
		swatches: make(map[string]string),
	}
}

func (s *PreviewScreen) Init() tea.Cmd {
	return nil
}

func (s *PreviewScreen) SetSelection(sel data.Selection) {
	s.selection = sel
}

func (s *PreviewScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			if s.selection.Complete() {
				break
			}
			return s, func() tea.Msg {
				return StartDesigningMsg{}
			}
		}
	}

	return s, nil
}

func (s *PreviewScreen) View() string {
	header := styles.TitleStyle.Render("✨ Your Design")

	summary, ok := integrations.Summarize(s.selection)
	if !ok {
		return fmt.Sprintf("%s\n%s", header, s.placeholderView())
	}

	shape := *s.selection.Shape
	color := *s.selection.Color

	art := lipgloss.JoinVertical(
		lipgloss.Center,
		s.swatch(color),
		"",
		NailGlyph(shape, color),
	)

	chip := styles.SwatchStyle(summary.ColorHex).Render("  ")
	details := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.SubtitleStyle.Render("Design details"),
		"",
		styles.TextStyle.Render(fmt.Sprintf("Shape:  %s %s", summary.ShapeIcon, summary.ShapeName)),
		fmt.Sprintf("%s %s", styles.TextStyle.Render("Color: "), chip+" "+styles.TextStyle.Render(fmt.Sprintf("%s (%s)", summary.ColorName, summary.ColorHex))),
		styles.TextStyle.Render(fmt.Sprintf("Finish: %s", summary.FinishLabel)),
		styles.MutedStyle.Render(summary.FinishDescription),
		"",
		styles.MutedStyle.Render("Share:  📱  📧  📸"),
	)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		art,
		"   ",
		styles.PanelStyle.Render(details),
	)

	help := styles.HelpStyle.Render("tab: switch step • r: start over • q: quit")

	return fmt.Sprintf("%s\n%s\n%s", header, body, help)
}

func (s *PreviewScreen) placeholderView() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.SubtitleStyle.Render("Your design preview will appear here"),
		"",
		styles.MutedStyle.Render("Select a nail shape and color to see your custom design"),
		"",
		styles.ButtonStyle.Render("Start Designing"),
	)

	help := styles.HelpStyle.Render("enter: start designing • tab: switch step • q: quit")

	return fmt.Sprintf("%s\n%s", styles.PanelStyle.Render(content), help)
}

func (s *PreviewScreen) swatch(c data.NailColor) string {
	if cached, ok := s.swatches[c.ID]; ok {
		return cached
	}
	w, h := components.ThumbnailSize()
	rendered := components.Thumbnail(integrations.RenderSwatch(c), w, h)
	s.swatches[c.ID] = rendered
	return rendered
}
