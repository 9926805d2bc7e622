package bakery

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/bakery-catch/internal/core"
)

// Sprite characters
const (
	ParticleChar = '*'
	FadedChar    = '·'
	LifeChar     = '♥'
	LostLifeChar = '♡'
	FloorChar    = '▔'
)

// viewport maps world units onto the screen. Row 0 is reserved for the HUD.
type viewport struct {
	w, h   int
	worldW float64
	worldH float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{w: dst.Width(), h: dst.Height(), worldW: worldW, worldH: worldH}
}

func (v viewport) col(x float64) int {
	return int(x / v.worldW * float64(v.w))
}

func (v viewport) row(y float64) int {
	return 1 + int(y/v.worldH*float64(v.h-1))
}

func (v viewport) span(w float64) int {
	return core.Max(1, int(w/v.worldW*float64(v.w)+0.5))
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot(g.clock())
	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	if snap.Phase == PhaseMenu {
		g.drawMenu(dst)
		return
	}

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), FloorChar, core.ColorBrown)
	for _, it := range snap.Items {
		g.drawItem(dst, vp, it)
	}
	for _, p := range snap.Particles {
		drawParticle(dst, vp, p)
	}
	g.drawPlayer(dst, vp, snap.Player)
	drawHUD(dst, snap)

	switch snap.Phase {
	case PhaseLoadingAI:
		drawPanel(dst, "GAME OVER", []string{
			fmt.Sprintf("Final score: %d", snap.Score),
			"",
			"Eggie is thinking...",
		}, core.ColorYellow)
	case PhaseGameOver:
		drawPanel(dst, "GAME OVER", gameOverLines(snap, panelWidth(dst)-4), core.ColorRed)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorGold)

	var b strings.Builder
	for i := 0; i < 3 || i < snap.Lives; i++ {
		if i < snap.Lives {
			b.WriteRune(LifeChar)
		} else {
			b.WriteRune(LostLifeChar)
		}
	}
	hearts := b.String()
	dst.DrawTextColored(dst.Width()-len([]rune(hearts))-2, 0, hearts, core.ColorRed)
}

func (g *Game) drawItem(dst *core.Screen, vp viewport, it Item) {
	info := it.Kind.Info()
	x := vp.col(it.X + g.cfg.Items.Size/2)
	y := vp.row(it.Y + g.cfg.Items.Size/2)
	if y < 1 {
		return
	}
	dst.SetColored(x, y, info.Glyph, info.Color)
}

func drawParticle(dst *core.Screen, vp viewport, p Particle) {
	y := vp.row(p.Pos.Y)
	if y < 1 {
		return
	}
	// Crumbs never cover an item glyph.
	x := vp.col(p.Pos.X)
	if dst.Get(x, y) != ' ' {
		return
	}
	r := ParticleChar
	if p.Life < 0.5 {
		r = FadedChar
	}
	dst.SetColored(x, y, r, p.Color)
}

// drawPlayer draws the egg sitting in its basket. The eyes look the way the
// egg is moving and the sprite hops one row while the caught flag is set.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport, p PlayerView) {
	w := core.Max(4, vp.span(g.cfg.Player.Width))
	x := vp.col(p.X)
	top := vp.row(g.cfg.CatchZone.Top) - 1
	if p.Caught {
		top--
	}

	eyes := " o o "
	switch {
	case p.MovingLeft:
		eyes = "o o  "
	case p.MovingRight:
		eyes = "  o o"
	}
	face := []rune(centerIn(eyes, w-2))

	dst.DrawTextColored(x+1, top, strings.Repeat("▄", w-2), core.ColorPeach)
	dst.SetColored(x, top+1, '█', core.ColorPeach)
	for i, r := range face {
		if r == ' ' {
			r = '█'
		}
		dst.SetColored(x+1+i, top+1, r, core.ColorPeach)
	}
	dst.SetColored(x+w-1, top+1, '█', core.ColorPeach)
	dst.DrawTextColored(x, top+2, "\\"+strings.Repeat("_", w-2)+"/", core.ColorBrown)
}

func (g *Game) drawMenu(dst *core.Screen) {
	y := dst.Height()/2 - 6
	dst.DrawTextCentered(y, "EGGIE'S BAKERY", core.ColorGold)
	dst.DrawTextCentered(y+1, "Catch the bread, dodge the rocks", core.ColorCream)

	y += 3
	for _, k := range Kinds() {
		info := k.Info()
		effect := fmt.Sprintf("%+d", info.ScoreDelta)
		switch k {
		case KindRock:
			effect = "-1 life"
		case KindToast:
			continue
		}
		line := fmt.Sprintf("%c  %-12s %8s", info.Glyph, info.Label, effect)
		x := (dst.Width() - len([]rune(line))) / 2
		dst.SetColored(x, y, info.Glyph, info.Color)
		dst.DrawText(x+1, y, line[len(string(info.Glyph)):])
		y++
	}

	y++
	dst.DrawTextCentered(y, fmt.Sprintf("%d lives. Dropped bread costs %d points.", g.cfg.Lives, g.cfg.Items.MissPenalty), core.ColorGray)
	dst.DrawTextCentered(y+2, "Press ENTER to start", core.ColorWhite)
}

func gameOverLines(snap Snapshot, width int) []string {
	lines := []string{fmt.Sprintf("Final score: %d", snap.Score), ""}
	if snap.Text.Message != "" {
		lines = append(lines, "Eggie says:")
		lines = append(lines, wrap(snap.Text.Message, width)...)
	}
	if snap.Text.Reward != "" {
		lines = append(lines, "", "Your reward:")
		lines = append(lines, wrap(snap.Text.Reward, width)...)
	}
	return append(lines, "", "Press R to play again")
}

func panelWidth(dst *core.Screen) int {
	return core.Clamp(dst.Width()-4, 20, 60)
}

// drawPanel draws a framed, centered panel with a title and body lines.
func drawPanel(dst *core.Screen, title string, lines []string, c core.Color) {
	w := panelWidth(dst)
	h := core.Min(len(lines)+4, dst.Height())
	box := core.Box{X: (dst.Width() - w) / 2, Y: (dst.Height() - h) / 2, W: w, H: h}

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	for i, line := range lines {
		y := box.Y + 2 + i
		if y >= box.Y+box.H-1 {
			break
		}
		dst.DrawTextCentered(y, line, core.ColorWhite)
	}
}

// wrap breaks text into lines of at most width runes on word boundaries.
// Existing line breaks are kept, so numbered recipe steps stay on their own
// rows. Words longer than width are split.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, para := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(para) == "" {
			if len(lines) > 0 && lines[len(lines)-1] != "" {
				lines = append(lines, "")
			}
			continue
		}
		lines = append(lines, wrapLine(para, width)...)
	}
	return lines
}

func wrapLine(text string, width int) []string {
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(text) {
		wr := []rune(word)
		for len(wr) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = cur[:0]
			}
			lines = append(lines, string(wr[:width]))
			wr = wr[width:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, wr...)
		case len(cur)+1+len(wr) <= width:
			cur = append(cur, ' ')
			cur = append(cur, wr...)
		default:
			lines = append(lines, string(cur))
			cur = append(cur[:0:0], wr...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

func centerIn(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	pad := (width - len(r)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(r)-pad)
}
