package ui

import (
	"github.com/gdamore/tcell/v2"
)

// margin is the blank border kept around the text.
const margin = 2

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a view, clipping anything that does not fit above the footer.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	width, height := r.screen.Size()
	footerY := height - 1

	y := 1
	for _, line := range Layout(v, width-2*margin) {
		if y >= footerY {
			break
		}
		style := r.lineStyle(line.Kind, v.Accent)
		if line.Kind == LineChoice || line.Kind == LineRestart {
			r.screen.Fill(margin, y, width-2*margin, style)
		}
		r.screen.DrawText(margin, y, line.Text, style)
		y++
	}

	footerStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	r.screen.DrawText(margin, footerY, Footer(v), footerStyle)

	r.screen.Show()
}

// lineStyle returns the style for a kind of line.
func (r *Renderer) lineStyle(kind LineKind, accent tcell.Color) tcell.Style {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	switch kind {
	case LineTitle:
		return base.Foreground(tcell.ColorWhite).Bold(true)
	case LineStory:
		return base.Foreground(tcell.ColorWhite)
	case LineChoice, LineRestart:
		return tcell.StyleDefault.Background(accent).Foreground(tcell.ColorWhite).Bold(true)
	case LineChoiceDetail:
		return base.Foreground(tcell.ColorSilver)
	case LineBannerTitle:
		return base.Foreground(tcell.ColorYellow).Bold(true)
	case LineBannerText:
		return base.Foreground(tcell.ColorYellow)
	case LinePrompt:
		return base.Foreground(tcell.ColorGray)
	default:
		return base
	}
}
