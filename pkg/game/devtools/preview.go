package devtools

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"encounters/pkg/engine/terminal"
	"encounters/pkg/engine/world"
	"encounters/pkg/game/entities"
	"encounters/pkg/game/state"
)

// PreviewOptions controls Preview output. Zero Width/Height use the terminal size.
type PreviewOptions struct {
	Color  bool
	Width  int
	Height int
}

var (
	styleBright   = color.Style{color.FgYellow, color.OpBold}
	styleShadowy  = color.Style{color.FgGray}
	styleDarkness = color.Style{color.FgBlue}
	styleEntity   = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	styleMonster  = color.Style{color.FgRed, color.OpBold}
)

// symbolFor returns what a tile looks like to the player: terrain once seen, blank before
func symbolFor(m *world.Map, idx int, t *world.Tile) rune {
	if t.Seen() == world.SeenNone {
		return ' '
	}
	return tileSymbol(m, idx)
}

func styleFor(t *world.Tile) color.Style {
	switch t.Seen() {
	case world.SeenBright:
		return styleBright
	case world.SeenShadowy:
		return styleShadowy
	default:
		return styleDarkness
	}
}

// focus returns the point the preview follows: the player, or the map center
func focus(l *state.Level) world.Point {
	if p := l.Player(); p != nil {
		return p.Position
	}
	for _, e := range l.Entities() {
		if e.Kind == entities.Player {
			return e.Position
		}
	}
	return l.Map.Center()
}

// viewport picks the window of the map to draw, centred on the player when it does not fit
func viewport(l *state.Level, width, height int) (x0, y0, x1, y1 int) {
	m := l.Map
	center := focus(l)

	clamp := func(c, size, limit int) (int, int) {
		if size >= limit {
			return 0, limit
		}
		start := c - size/2
		if start < 0 {
			start = 0
		}
		if start+size > limit {
			start = limit - size
		}
		return start, start + size
	}

	x0, x1 = clamp(center.X, width, m.Width())
	y0, y1 = clamp(center.Y, height, m.Height())
	return x0, y0, x1, y1
}

// Preview draws the player's view of a level: seen terrain shaded by how well
// it was seen, and entities standing on currently seen tiles
func Preview(w io.Writer, l *state.Level, opts PreviewOptions) error {
	if l == nil || l.Map == nil {
		return fmt.Errorf("no level")
	}

	tw, th := terminal.SizeOf(w)
	if opts.Width <= 0 {
		opts.Width = tw
	}
	if opts.Height <= 0 {
		// Leave room for the prompt
		opts.Height = th - 1
	}

	glyphs := levelOverlay(l)
	x0, y0, x1, y1 := viewport(l, opts.Width, opts.Height)

	var sb strings.Builder
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := world.Point{X: x, Y: y}
			idx := l.Map.Idx(x, y)
			t := l.Map.TileAt(idx)

			ch, style := symbolFor(l.Map, idx, t), styleFor(t)
			if g, ok := glyphs[p]; ok && t.Observers() > 0 {
				ch = g
				style = styleEntity
				if g == entities.Monster.Glyph() {
					style = styleMonster
				}
			}

			if opts.Color && ch != ' ' {
				sb.WriteString(style.Sprint(string(ch)))
			} else {
				sb.WriteRune(ch)
			}
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
