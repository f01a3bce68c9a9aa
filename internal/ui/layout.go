package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// LineKind tells the renderer how to style a laid-out line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineTitle
	LineStory
	LineChoice
	LineChoiceDetail
	LineRestart
	LineBannerTitle
	LineBannerText
	LinePrompt
)

// Line is one row of laid-out text.
type Line struct {
	Kind LineKind
	Text string
}

// ChoiceButton is a selectable choice as shown to the player.
type ChoiceButton struct {
	Title       string
	Description string
}

// Banner is a message shown over the story until dismissed.
type Banner struct {
	Title   string
	Message string
}

// View is everything the renderer needs to draw one frame.
type View struct {
	Title       string
	Story       string
	Choices     []ChoiceButton
	ShowRestart bool    // Replaces the choices once the adventure is complete
	Banner      *Banner // Takes over input until dismissed
	Accent      tcell.Color
}

const (
	restartLabel  = "🔄 Start New Quest"
	continueLabel = "Continue"
	detailIndent  = "    "
)

// Layout arranges a view into lines no wider than width.
func Layout(v View, width int) []Line {
	var lines []Line
	add := func(kind LineKind, text string) {
		for _, l := range Wrap(text, width) {
			lines = append(lines, Line{Kind: kind, Text: l})
		}
	}
	blank := func() { lines = append(lines, Line{Kind: LineBlank}) }

	add(LineTitle, v.Title)
	blank()
	add(LineStory, v.Story)
	blank()

	switch {
	case v.Banner != nil:
		add(LineBannerTitle, v.Banner.Title)
		add(LineBannerText, v.Banner.Message)
		blank()
		add(LinePrompt, "[Enter] "+continueLabel)
	case v.ShowRestart:
		add(LineRestart, "[r] "+restartLabel)
	default:
		for i, c := range v.Choices {
			add(LineChoice, "["+strconv.Itoa(i+1)+"] "+c.Title)
			if c.Description != "" {
				for _, l := range Wrap(c.Description, width-len(detailIndent)) {
					lines = append(lines, Line{Kind: LineChoiceDetail, Text: detailIndent + l})
				}
			}
			blank()
		}
	}

	return lines
}

// Footer returns the key help for a view.
func Footer(v View) string {
	switch {
	case v.Banner != nil:
		return "Enter continue · q quit"
	case v.ShowRestart:
		return "r restart · q quit"
	case len(v.Choices) > 0:
		return "1-" + strconv.Itoa(min(len(v.Choices), 9)) + " choose · q quit"
	default:
		return "q quit"
	}
}

// Wrap breaks text into lines of at most width display columns, splitting
// on whitespace. A single word wider than width gets a line to itself.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range words {
		w := uniseg.StringWidth(word)
		if currentWidth > 0 && currentWidth+1+w > width {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += w
	}
	lines = append(lines, current.String())

	return lines
}
