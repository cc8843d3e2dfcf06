package ui

import (
	"arplace/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ButtonState tracks the current visual state of a button
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

type Button struct {
	Rect  rl.Rectangle
	Label string

	NormalColor   rl.Color
	HoverColor    rl.Color
	PressedColor  rl.Color
	DisabledColor rl.Color
	BorderColor   rl.Color
	BorderWidth   int32

	State    ButtonState
	Disabled bool

	OnClick engine.Event

	// press and release must both land on the button
	wasPressed bool
}

func NewButton(label string) *Button {
	return &Button{
		Label:         label,
		NormalColor:   colorBgElement,
		HoverColor:    colorBgHover,
		PressedColor:  colorBgActive,
		DisabledColor: colorDisabled,
		BorderColor:   colorBorder,
		BorderWidth:   1,
		State:         ButtonNormal,
	}
}

// HandleInput updates the button from pointer state and fires OnClick on release.
// It reports whether the pointer is over the button.
func (b *Button) HandleInput(pos rl.Vector2, down, released bool) bool {
	hovered := contains(b.Rect, pos)
	if b.Disabled {
		b.State = ButtonDisabled
		b.wasPressed = false
		return hovered
	}

	if !hovered {
		b.State = ButtonNormal
		if released || !down {
			b.wasPressed = false
		}
		return false
	}

	if down {
		b.State = ButtonPressed
		b.wasPressed = true
	} else {
		b.State = ButtonHovered
	}
	if released && b.wasPressed {
		b.wasPressed = false
		b.OnClick.Invoke()
	}
	return true
}

func (b *Button) Draw() {
	color := b.NormalColor
	textColor := colorTextPrimary
	switch {
	case b.Disabled:
		color = b.DisabledColor
		textColor = colorTextMuted
	case b.State == ButtonHovered:
		color = b.HoverColor
	case b.State == ButtonPressed:
		color = b.PressedColor
	}

	rl.DrawRectangleRec(b.Rect, color)
	if b.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(b.Rect, float32(b.BorderWidth), b.BorderColor)
	}
	label := Text{Text: b.Label, FontSize: 20, Color: textColor, Alignment: TextAlignCenter}
	label.Draw(b.Rect)
}

func contains(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}
