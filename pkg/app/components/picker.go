package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/maniverse/pkg/app/styles"
)

const (
	cardWidth       = 22
	thumbnailWidth  = 18
	thumbnailHeight = 6
)

type PickerItem struct {
	ID       string
	Title    string
	Subtitle string
	Icon     string
	// Thumbnail is pre-rendered cell art, shown above the title.
	Thumbnail string
}

// Picker is a wrapping grid of cards. SelectedIndex is the cursor. Chosen
// is the id of the item currently stored as the user's pick.
type Picker struct {
	Items         []PickerItem
	SelectedIndex int
	Chosen        string
	Width         int
}

func NewPicker(items []PickerItem) *Picker {
	return &Picker{
		Items:         items,
		SelectedIndex: 0,
		Width:         80,
	}
}

func (p *Picker) Next() {
	if len(p.Items) == 0 {
		return
	}
	p.SelectedIndex++
	if p.SelectedIndex >= len(p.Items) {
		p.SelectedIndex = 0
	}
}

func (p *Picker) Prev() {
	if len(p.Items) == 0 {
		return
	}
	p.SelectedIndex--
	if p.SelectedIndex < 0 {
		p.SelectedIndex = len(p.Items) - 1
	}
}

// Down and Up move a full row.
func (p *Picker) Down() {
	p.move(p.Columns())
}

func (p *Picker) Up() {
	p.move(-p.Columns())
}

func (p *Picker) move(delta int) {
	if len(p.Items) == 0 {
		return
	}
	next := p.SelectedIndex + delta
	if next < 0 || next >= len(p.Items) {
		return
	}
	p.SelectedIndex = next
}

func (p *Picker) Selected() *PickerItem {
	if len(p.Items) == 0 || p.SelectedIndex >= len(p.Items) {
		return nil
	}
	return &p.Items[p.SelectedIndex]
}

// SetChosen marks id as the stored pick and moves the cursor onto it.
// An empty or unknown id clears the mark.
func (p *Picker) SetChosen(id string) {
	p.Chosen = ""
	for i, item := range p.Items {
		if item.ID == id && id != "" {
			p.Chosen = id
			p.SelectedIndex = i
			return
		}
	}
}

func (p *Picker) ChosenItem() *PickerItem {
	for i := range p.Items {
		if p.Items[i].ID == p.Chosen && p.Chosen != "" {
			return &p.Items[i]
		}
	}
	return nil
}

// Columns is how many cards fit side by side in Width.
func (p *Picker) Columns() int {
	cols := p.Width / (cardWidth + 2)
	if cols < 1 {
		return 1
	}
	return cols
}

func (p *Picker) View() string {
	if len(p.Items) == 0 {
		return styles.MutedStyle.Render("Nothing to pick from")
	}

	cols := p.Columns()
	var rows []string
	var row []string

	for i, item := range p.Items {
		row = append(row, p.card(i, item))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (p *Picker) card(i int, item PickerItem) string {
	style := styles.CardStyle
	switch {
	case i == p.SelectedIndex:
		style = styles.ActiveCardStyle
	case item.ID == p.Chosen:
		style = styles.ChosenCardStyle
	}

	title := item.Title
	if item.Icon != "" {
		title = fmt.Sprintf("%s %s", item.Icon, item.Title)
	}
	if item.ID == p.Chosen {
		title += " ✓"
	}

	parts := []string{}
	if item.Thumbnail != "" {
		parts = append(parts, item.Thumbnail)
	}
	parts = append(parts, styles.TextStyle.Bold(true).Render(title))
	if item.Subtitle != "" {
		parts = append(parts, styles.MutedStyle.Render(item.Subtitle))
	}

	return style.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// ThumbnailSize is the cell size pickers should render thumbnails at.
func ThumbnailSize() (int, int) {
	return thumbnailWidth, thumbnailHeight
}
