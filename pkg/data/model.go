package data

import "strings"

// Finish is the texture category of a polish color.
type Finish string

const (
	FinishSolid   Finish = "solid"
	FinishGlitter Finish = "glitter"
	FinishPearl   Finish = "pearl"
	FinishMatte   Finish = "matte"
)

func (f Finish) Valid() bool {
	switch f {
	case FinishSolid, FinishGlitter, FinishPearl, FinishMatte:
		return true
	}
	return false
}

// Label is the display form of the finish, e.g. "Glitter".
func (f Finish) Label() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// Description is the one-line blurb shown in the design summary.
// Unknown finishes read as a plain glossy polish.
func (f Finish) Description() string {
	switch f {
	case FinishGlitter:
		return "Sparkly finish with reflective particles"
	case FinishPearl:
		return "Iridescent finish with a subtle shimmer"
	case FinishMatte:
		return "Non-reflective finish with a velvety appearance"
	default:
		return "Classic glossy finish"
	}
}

type NailShape struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type NailColor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`  // "#RRGGBB"
	Type Finish `json:"type"`
}

// Selection is the user's current design. Nil fields have not been chosen yet.
type Selection struct {
	Shape *NailShape
	Color *NailColor
}

func (s Selection) Complete() bool {
	return s.Shape != nil && s.Color != nil
}
