package core

// Color represents a foreground color for a screen cell and the color tag
// carried by particles. Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
	ColorGold  // croissant crust
	ColorAmber // baguette
	ColorCream // toast
	ColorBrown // burnt toast, text accents
	ColorPeach // the egg
)

var colorHex = map[Color]string{
	ColorDefault: "#ffffff",
	ColorRed:     "#ff0000",
	ColorGreen:   "#00aa00",
	ColorYellow:  "#ffff00",
	ColorWhite:   "#fdf6e3",
	ColorGray:    "#888888",
	ColorGold:    "#eebb4d",
	ColorAmber:   "#d4a248",
	ColorCream:   "#f5dfa2",
	ColorBrown:   "#5c4033",
	ColorPeach:   "#f4a486",
}

// Hex returns the color as a #rrggbb string for renderers with true color.
func (c Color) Hex() string {
	if h, ok := colorHex[c]; ok {
		return h
	}
	return colorHex[ColorDefault]
}
