package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// DefaultToastDuration is how long a toast stays on screen.
const DefaultToastDuration = 3.0

// Toast is a short message pinned to the top of the screen until it times out.
type Toast struct {
	Duration  float32
	message   string
	remaining float32
	panel     *Panel
}

func NewToast() *Toast {
	p := NewPanel()
	p.BorderRadius = 12
	p.BorderColor = colorAccent
	return &Toast{Duration: DefaultToastDuration, panel: p}
}

// Show replaces any visible message.
func (t *Toast) Show(message string) {
	t.message = message
	t.remaining = t.Duration
}

func (t *Toast) Visible() bool { return t.remaining > 0 && t.message != "" }

func (t *Toast) Message() string {
	if !t.Visible() {
		return ""
	}
	return t.message
}

func (t *Toast) Update(deltaTime float32) {
	if t.remaining > 0 {
		t.remaining -= deltaTime
	}
}

func (t *Toast) Draw(screenWidth float32) {
	if !t.Visible() {
		return
	}
	const fontSize = 20
	w := float32(rl.MeasureText(t.message, fontSize)) + 40
	rect := rl.Rectangle{X: (screenWidth - w) / 2, Y: 24, Width: w, Height: 44}

	// fade out over the last half second
	alpha := min(t.remaining/0.5, 1)
	t.panel.Draw(rect)
	text := Text{Text: t.message, FontSize: fontSize, Color: rl.Fade(colorTextPrimary, alpha), Alignment: TextAlignCenter}
	text.Draw(rect)
}
