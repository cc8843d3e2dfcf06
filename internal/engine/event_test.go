package engine

import "testing"

func TestEventInvokesAllListeners(t *testing.T) {
	var e Event
	calls := 0
	e.AddListener(func() { calls++ })
	e.AddListener(func() { calls += 10 })

	e.Invoke()

	if calls != 11 {
		t.Errorf("Expected both listeners to run, got %d", calls)
	}
}

func TestEventIgnoresNilListener(t *testing.T) {
	var e Event
	if id := e.AddListener(nil); id != 0 {
		t.Errorf("Expected ID 0 for nil listener, got %d", id)
	}
	if e.ListenerCount() != 0 {
		t.Error("nil listener should not be registered")
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e Event
	var got []string
	first := e.AddListener(func() { got = append(got, "first") })
	e.AddListener(func() { got = append(got, "second") })

	e.RemoveListener(first)
	e.Invoke()

	if len(got) != 1 || got[0] != "second" {
		t.Errorf("Expected only second listener, got %v", got)
	}
}

func TestEventRemoveDuringInvoke(t *testing.T) {
	var e Event
	calls := 0
	var id ListenerID
	id = e.AddListener(func() {
		calls++
		e.RemoveListener(id)
	})
	e.AddListener(func() { calls++ })

	e.Invoke()
	e.Invoke()

	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[int]
	sum := 0
	id := e.AddListener(func(v int) { sum += v })
	e.AddListener(func(v int) { sum += v * 2 })

	e.Invoke(3)
	e.RemoveListener(id)
	e.Invoke(1)

	if sum != 11 {
		t.Errorf("Expected sum 11, got %d", sum)
	}

	e.RemoveAllListeners()
	if e.ListenerCount() != 0 {
		t.Error("RemoveAllListeners should clear listeners")
	}
}
