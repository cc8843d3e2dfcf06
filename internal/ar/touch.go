package ar

import rl "github.com/gen2brain/raylib-go/raylib"

type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchStationary
	TouchEnded
)

func (p TouchPhase) String() string {
	switch p {
	case TouchBegan:
		return "Began"
	case TouchMoved:
		return "Moved"
	case TouchStationary:
		return "Stationary"
	default:
		return "Ended"
	}
}

type Touch struct {
	Position rl.Vector2
	Phase    TouchPhase
	FingerID int
}

// PointerTouch turns a sampled pointer (mouse button or first finger) into a touch
// with phases. Call Sample once per frame.
type PointerTouch struct {
	active   bool
	last     rl.Vector2
	fingerID int
}

// Sample returns the touch for this frame, or false when the pointer is up and was
// up last frame too.
func (p *PointerTouch) Sample(down bool, pos rl.Vector2) (Touch, bool) {
	switch {
	case down && !p.active:
		p.active = true
		p.fingerID++
		p.last = pos
		return Touch{Position: pos, Phase: TouchBegan, FingerID: p.fingerID}, true
	case down:
		phase := TouchStationary
		if pos != p.last {
			phase = TouchMoved
		}
		p.last = pos
		return Touch{Position: pos, Phase: phase, FingerID: p.fingerID}, true
	case p.active:
		p.active = false
		return Touch{Position: p.last, Phase: TouchEnded, FingerID: p.fingerID}, true
	default:
		return Touch{}, false
	}
}
