package engine

// Timer is a one-shot action queued on a Scheduler.
type Timer struct {
	due       float64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel stops the timer from firing. Cancelling a fired timer has no effect.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

func (t *Timer) Fired() bool {
	return t != nil && t.fired
}

func (t *Timer) Cancelled() bool {
	return t != nil && t.cancelled
}

// Scheduler runs delayed actions on the frame thread, the way Invoke does for a
// MonoBehaviour. Time only advances through Tick.
type Scheduler struct {
	now    float64
	timers []*Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After queues fn to run once at least seconds from now.
func (s *Scheduler) After(seconds float32, fn func()) *Timer {
	if seconds < 0 {
		seconds = 0
	}
	t := &Timer{due: s.now + float64(seconds), fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Tick advances the clock and fires every due timer in the order it was scheduled.
// Timers queued by a firing callback wait for the next Tick.
func (s *Scheduler) Tick(deltaTime float32) {
	s.now += float64(deltaTime)

	due := s.timers
	s.timers = nil
	for _, t := range due {
		switch {
		case t.cancelled:
		case t.due <= s.now:
			t.fired = true
			if t.fn != nil {
				t.fn()
			}
		default:
			s.timers = append(s.timers, t)
		}
	}
}

// Now returns the scheduler clock in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending returns the number of timers that have neither fired nor been cancelled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}
