package data

var shapes = []NailShape{
	{ID: "almond", Name: "Almond", Icon: "🔖"},
	{ID: "stiletto", Name: "Stiletto", Icon: "📌"},
	{ID: "square", Name: "Square", Icon: "🔲"},
	{ID: "oval", Name: "Oval", Icon: "⭕"},
	{ID: "coffin", Name: "Coffin", Icon: "⚰️"},
	{ID: "round", Name: "Round", Icon: "🔴"},
}

var colors = []NailColor{
	{ID: "pastel-pink", Name: "Pastel Pink", Hex: "#FFD1DC", Type: FinishSolid},
	{ID: "lavender", Name: "Lavender", Hex: "#E6E6FA", Type: FinishSolid},
	{ID: "mint", Name: "Mint", Hex: "#98FB98", Type: FinishSolid},
	{ID: "sky-blue", Name: "Sky Blue", Hex: "#87CEEB", Type: FinishSolid},
	{ID: "peach", Name: "Peach", Hex: "#FFDAB9", Type: FinishSolid},
	{ID: "lilac", Name: "Lilac", Hex: "#C8A2C8", Type: FinishSolid},
	{ID: "coral", Name: "Coral", Hex: "#FF7F50", Type: FinishSolid},
	{ID: "turquoise", Name: "Turquoise", Hex: "#40E0D0", Type: FinishSolid},
	{ID: "glitter-gold", Name: "Glitter Gold", Hex: "#FFD700", Type: FinishGlitter},
	{ID: "glitter-silver", Name: "Glitter Silver", Hex: "#C0C0C0", Type: FinishGlitter},
	{ID: "pearl-white", Name: "Pearl White", Hex: "#FFFFFF", Type: FinishPearl},
	{ID: "matte-black", Name: "Matte Black", Hex: "#000000", Type: FinishMatte},
}

// Shapes returns the shape catalog in display order.
func Shapes() []NailShape {
	out := make([]NailShape, len(shapes))
	copy(out, shapes)
	return out
}

// Colors returns the color catalog in display order.
func Colors() []NailColor {
	out := make([]NailColor, len(colors))
	copy(out, colors)
	return out
}

func ShapeByID(id string) (NailShape, bool) {
	for _, s := range shapes {
		if s.ID == id {
			return s, true
		}
	}
	return NailShape{}, false
}

func ColorByID(id string) (NailColor, bool) {
	for _, c := range colors {
		if c.ID == id {
			return c, true
		}
	}
	return NailColor{}, false
}
