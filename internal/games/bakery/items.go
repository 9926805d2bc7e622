package bakery

import "github.com/vovakirdan/bakery-catch/internal/core"

// Kind is the closed set of falling item types.
type Kind int

const (
	KindCroissant Kind = iota
	KindBaguette
	KindToast
	KindBurntToast
	KindRock
)

// KindInfo is the static configuration of an item kind.
type KindInfo struct {
	ScoreDelta int
	Color      core.Color
	Label      string // Name shown in the menu legend
	Glyph      rune   // Terminal glyph
}

var kindTable = [...]KindInfo{
	KindCroissant:  {ScoreDelta: 10, Color: core.ColorGold, Label: "Croissant", Glyph: '◐'},
	KindBaguette:   {ScoreDelta: 15, Color: core.ColorAmber, Label: "Baguette", Glyph: '▬'},
	KindToast:      {ScoreDelta: 5, Color: core.ColorCream, Label: "Toast", Glyph: '▣'},
	KindBurntToast: {ScoreDelta: -10, Color: core.ColorBrown, Label: "Burnt toast", Glyph: '▩'},
	KindRock:       {ScoreDelta: 0, Color: core.ColorGray, Label: "Rock", Glyph: '●'},
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindCroissant, KindBaguette, KindToast, KindBurntToast, KindRock}
}

// Info returns the kind's configuration record.
func (k Kind) Info() KindInfo {
	if k < 0 || int(k) >= len(kindTable) {
		return KindInfo{Color: core.ColorDefault, Label: "?", Glyph: '?'}
	}
	return kindTable[k]
}

// String returns the upper-case kind name.
func (k Kind) String() string {
	switch k {
	case KindCroissant:
		return "CROISSANT"
	case KindBaguette:
		return "BAGUETTE"
	case KindToast:
		return "TOAST"
	case KindBurntToast:
		return "BURNT_TOAST"
	case KindRock:
		return "ROCK"
	default:
		return "UNKNOWN"
	}
}

// Good reports whether catching the kind is rewarded and dropping it penalized.
func (k Kind) Good() bool {
	return k != KindRock && k != KindBurntToast
}
