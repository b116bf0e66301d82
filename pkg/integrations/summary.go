package integrations

import (
	"errors"

	"github.com/kerbaras/maniverse/pkg/data"
)

var ErrIncompleteSelection = errors.New("pick both a nail shape and a color first")

// Summary is the text side of the design card.
type Summary struct {
	ShapeName         string
	ShapeIcon         string
	ColorName         string
	ColorHex          string
	Finish            data.Finish
	FinishLabel       string
	FinishDescription string
}

// Summarize reports false when either half of the selection is missing.
func Summarize(sel data.Selection) (Summary, bool) {
	if !sel.Complete() {
		return Summary{}, false
	}
	return Summary{
		ShapeName:         sel.Shape.Name,
		ShapeIcon:         sel.Shape.Icon,
		ColorName:         sel.Color.Name,
		ColorHex:          sel.Color.Hex,
		Finish:            sel.Color.Type,
		FinishLabel:       sel.Color.Type.Label(),
		FinishDescription: sel.Color.Type.Description(),
	}, true
}
