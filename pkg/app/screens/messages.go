package screens

import (
	"github.com/kerbaras/maniverse/pkg/data"
	"github.com/kerbaras/maniverse/pkg/services"
)

// ShapeSelectedMsg is sent by the shape picker when a card is confirmed.
type ShapeSelectedMsg struct {
	Shape data.NailShape
}

// ColorSelectedMsg is sent by the color picker when a swatch is confirmed.
type ColorSelectedMsg struct {
	Color data.NailColor
}

// StartDesigningMsg is the preview placeholder's call to action.
type StartDesigningMsg struct{}

// loadingDoneMsg fires once the cosmetic delay for ticket is over.
type loadingDoneMsg struct {
	ticket services.Ticket
}
