package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// TextAlignment controls horizontal text alignment
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

type Text struct {
	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
}

func NewText(text string) *Text {
	return &Text{
		Text:      text,
		FontSize:  20,
		Color:     colorTextPrimary,
		Alignment: TextAlignCenter,
	}
}

// Draw renders the text within rect, vertically centred.
func (t *Text) Draw(rect rl.Rectangle) {
	if t.Text == "" {
		return
	}
	textWidth := float32(rl.MeasureText(t.Text, t.FontSize))

	var x float32
	switch t.Alignment {
	case TextAlignLeft:
		x = rect.X
	case TextAlignCenter:
		x = rect.X + (rect.Width-textWidth)/2
	case TextAlignRight:
		x = rect.X + rect.Width - textWidth
	}
	y := rect.Y + (rect.Height-float32(t.FontSize))/2

	rl.DrawText(t.Text, int32(x), int32(y), t.FontSize, t.Color)
}
