package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Panel is a background rectangle behind other widgets.
type Panel struct {
	Color        rl.Color
	BorderColor  rl.Color
	BorderWidth  int32
	BorderRadius float32 // 0 = sharp corners
}

func NewPanel() *Panel {
	return &Panel{
		Color:       colorBgPanel,
		BorderColor: colorBorder,
		BorderWidth: 1,
	}
}

func (p *Panel) Draw(rect rl.Rectangle) {
	if p.BorderRadius > 0 {
		rl.DrawRectangleRounded(rect, p.BorderRadius/rect.Height, 8, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleRoundedLinesEx(rect, p.BorderRadius/rect.Height, 8, float32(p.BorderWidth), p.BorderColor)
		}
		return
	}
	rl.DrawRectangleRec(rect, p.Color)
	if p.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(rect, float32(p.BorderWidth), p.BorderColor)
	}
}
