package importer

import "testing"

func TestBusPublishOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(func(p Progress) { order = append(order, "first") })
	bus.Subscribe(func(p Progress) { order = append(order, "second") })
	bus.Subscribe(func(p Progress) { order = append(order, "third") })

	bus.Publish(Progress{Status: StatusMatching})

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("delivered to %d subscribers, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("delivery order = %v, want %v", order, want)
			break
		}
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()

	var a, b int
	unsubA := bus.Subscribe(func(p Progress) { a++ })
	bus.Subscribe(func(p Progress) { b++ })

	bus.Publish(Progress{})
	unsubA()
	bus.Publish(Progress{})

	if a != 1 {
		t.Errorf("unsubscribed callback ran %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("remaining callback ran %d times, want 2", b)
	}
	if bus.Len() != 1 {
		t.Errorf("Len() = %d, want 1", bus.Len())
	}

	// Unsubscribing twice is a no-op.
	unsubA()
	if bus.Len() != 1 {
		t.Errorf("Len() after double unsubscribe = %d, want 1", bus.Len())
	}
}

func TestBusPanicIsolation(t *testing.T) {
	bus := NewBus()

	var delivered bool
	bus.Subscribe(func(p Progress) { panic("subscriber bug") })
	bus.Subscribe(func(p Progress) { delivered = true })

	bus.Publish(Progress{Status: StatusCompleted})

	if !delivered {
		t.Error("panic in one subscriber blocked delivery to the next")
	}
}

func TestBusSubscribeDuringPublish(t *testing.T) {
	bus := NewBus()

	var lateCalls int
	bus.Subscribe(func(p Progress) {
		// A subscriber added mid-publish must not see this event.
		bus.Subscribe(func(Progress) { lateCalls++ })
	})

	bus.Publish(Progress{})
	if lateCalls != 0 {
		t.Errorf("late subscriber saw the event it was added during")
	}

	bus.Publish(Progress{})
	if lateCalls != 1 {
		t.Errorf("late subscriber calls = %d, want 1", lateCalls)
	}
}

func TestBusUnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus()

	var unsub func()
	var secondCalls int
	unsub = func() {}
	bus.Subscribe(func(p Progress) { unsub() })
	unsub = bus.Subscribe(func(p Progress) { secondCalls++ })

	// The snapshot was taken before the first subscriber removed the
	// second, so the second still sees this event.
	bus.Publish(Progress{})
	if secondCalls != 1 {
		t.Errorf("second subscriber calls = %d, want 1", secondCalls)
	}

	bus.Publish(Progress{})
	if secondCalls != 1 {
		t.Errorf("unsubscribed callback still receiving events: %d", secondCalls)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "idle"},
		{StatusFetching, "fetching"},
		{StatusMatching, "matching"},
		{StatusCreating, "creating"},
		{StatusCompleted, "completed"},
		{StatusFailed, "failed"},
		{StatusCancelled, "cancelled"},
		{Status(99), ""},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
