package ui

import (
	"arplace/internal/engine"
	"arplace/internal/placement"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	SearchingMessage = "Move the device slowly to find a surface"
	PlacementMessage = "Tap furniture to select it, drag to move it"

	barHeight    = 84
	buttonWidth  = 150
	buttonHeight = 52
	buttonGap    = 16
)

var (
	_ placement.UISurface = (*HUD)(nil)
	_ placement.Notifier  = (*HUD)(nil)
)

// HUD is the on-screen overlay: a bottom bar of buttons, hint messages, a status
// line, toasts and the quit confirmation dialog.
type HUD struct {
	CreateTable *Button
	CreateChair *Button
	Remove      *Button
	Quit        *Button

	// OnQuitConfirm and OnQuitCancel fire when the quit dialog is answered.
	OnQuitConfirm engine.Event
	OnQuitCancel  engine.Event

	searching *Text
	placement *Text
	status    *Text
	toast     *Toast
	bar       *Panel

	searchingVisible bool
	placementVisible bool
	quitModal        bool

	width, height float32
}

func NewHUD() *HUD {
	h := &HUD{
		CreateTable: NewButton("Table"),
		CreateChair: NewButton("Chair"),
		Remove:      NewButton("Remove"),
		Quit:        NewButton("Quit"),
		searching:   NewText(SearchingMessage),
		placement:   NewText(PlacementMessage),
		status:      NewText(""),
		toast:       NewToast(),
		bar:         NewPanel(),
	}
	h.status.Alignment = TextAlignLeft
	h.status.FontSize = 16
	h.status.Color = colorTextMuted
	h.placement.FontSize = 18
	h.placement.Color = colorTextSecondary
	h.CreateTable.Disabled = true
	h.CreateChair.Disabled = true
	h.Remove.Disabled = true
	return h
}

func (h *HUD) buttons() []*Button {
	return []*Button{h.CreateTable, h.CreateChair, h.Remove, h.Quit}
}

// Layout positions the widgets for a screen of the given size.
func (h *HUD) Layout(width, height float32) {
	h.width, h.height = width, height
	buttons := h.buttons()
	total := float32(len(buttons))*buttonWidth + float32(len(buttons)-1)*buttonGap
	x := (width - total) / 2
	y := height - barHeight + (barHeight-buttonHeight)/2
	for _, b := range buttons {
		b.Rect = rl.Rectangle{X: x, Y: y, Width: buttonWidth, Height: buttonHeight}
		x += buttonWidth + buttonGap
	}
}

func (h *HUD) SetSearchingMessageVisible(visible bool) { h.searchingVisible = visible }

func (h *HUD) SetPlacementMessageVisible(visible bool) { h.placementVisible = visible }

func (h *HUD) SetCreateButtonsEnabled(enabled bool) {
	h.CreateTable.Disabled = !enabled
	h.CreateChair.Disabled = !enabled
}

func (h *HUD) SetRemoveButtonEnabled(enabled bool) { h.Remove.Disabled = !enabled }

func (h *HUD) SetQuitModalVisible(visible bool) { h.quitModal = visible }

// ButtonRegion is the bottom bar.
func (h *HUD) ButtonRegion() rl.Rectangle {
	return rl.Rectangle{X: 0, Y: h.height - barHeight, Width: h.width, Height: barHeight}
}

func (h *HUD) ShowToast(message string) { h.toast.Show(message) }

// SetStatus sets the status line in the top-left corner.
func (h *HUD) SetStatus(text string) { h.status.Text = text }

func (h *HUD) SearchingMessageVisible() bool { return h.searchingVisible }
func (h *HUD) PlacementMessageVisible() bool { return h.placementVisible }
func (h *HUD) QuitModalVisible() bool        { return h.quitModal }
func (h *HUD) Toast() *Toast                 { return h.toast }

// HandleInput routes pointer state to the buttons. It returns true when the UI
// owns the pointer: over the bar, or anywhere while the quit dialog is open.
func (h *HUD) HandleInput(pos rl.Vector2, down, released bool) bool {
	if h.quitModal {
		return true
	}
	for _, b := range h.buttons() {
		b.HandleInput(pos, down, released)
	}
	return contains(h.ButtonRegion(), pos)
}

func (h *HUD) Update(deltaTime float32) {
	h.toast.Update(deltaTime)
}

func (h *HUD) Draw() {
	h.bar.Draw(h.ButtonRegion())
	for _, b := range h.buttons() {
		b.Draw()
	}

	msgRect := rl.Rectangle{X: 0, Y: h.height - barHeight - 48, Width: h.width, Height: 40}
	switch {
	case h.searchingVisible:
		h.searching.Draw(msgRect)
	case h.placementVisible:
		h.placement.Draw(msgRect)
	}

	h.status.Draw(rl.Rectangle{X: 12, Y: 8, Width: h.width - 24, Height: 20})
	h.toast.Draw(h.width)

	if h.quitModal {
		h.drawQuitDialog()
	}
}

func (h *HUD) drawQuitDialog() {
	rl.DrawRectangle(0, 0, int32(h.width), int32(h.height), rl.Fade(rl.Black, 0.5))
	bounds := rl.Rectangle{X: (h.width - 360) / 2, Y: (h.height - 160) / 2, Width: 360, Height: 160}
	switch gui.MessageBox(bounds, "Quit", "Leave the furniture demo?", "Quit;Cancel") {
	case 1:
		h.OnQuitConfirm.Invoke()
	case 0, 2:
		h.OnQuitCancel.Invoke()
	}
}
