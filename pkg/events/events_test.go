package events

import (
	"errors"
	"sync"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{BeforeSend, "before_send"},
		{AfterReceive, "after_receive"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNotifyRegistrationOrder(t *testing.T) {
	n := NewNotifier()

	var order []string
	n.AddListener(BeforeSend, func(Event) error {
		order = append(order, "first")
		return nil
	})
	n.AddListener(BeforeSend, func(Event) error {
		order = append(order, "second")
		return nil
	})
	n.AddListener(AfterReceive, func(Event) error {
		order = append(order, "wrong kind")
		return nil
	})

	if err := n.Notify(BeforeSend, "api.test", map[string]any{"foo": "bar"}); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("listener order = %v, want [first second]", order)
	}
}

func TestNotifyListenerErrorAbortsDispatch(t *testing.T) {
	n := NewNotifier()
	boom := errors.New("listener rejected call")

	var reached bool
	n.AddListener(BeforeSend, func(Event) error { return boom })
	n.AddListener(BeforeSend, func(Event) error {
		reached = true
		return nil
	})

	err := n.Notify(BeforeSend, "api.test", nil)
	if !errors.Is(err, boom) {
		t.Errorf("Notify error = %v, want %v", err, boom)
	}
	if reached {
		t.Error("second listener ran after the first returned an error")
	}
}

func TestNotifySnapshotIsolation(t *testing.T) {
	n := NewNotifier()

	data := map[string]any{"channel": "C1"}
	n.AddListener(BeforeSend, func(e Event) error {
		e.Data["channel"] = "mutated"
		e.Data["extra"] = true
		return nil
	})

	if err := n.Notify(BeforeSend, "chat.postMessage", data); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	if data["channel"] != "C1" {
		t.Errorf("in-flight data mutated through the event snapshot: %v", data)
	}
	if _, present := data["extra"]; present {
		t.Error("listener insertion leaked into the in-flight data")
	}
}

func TestNotifyEventCarriesMethodAndData(t *testing.T) {
	n := NewNotifier()

	var got Event
	n.AddListener(AfterReceive, func(e Event) error {
		got = e
		return nil
	})

	if err := n.Notify(AfterReceive, "im.open", map[string]any{"ok": true}); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	if got.Kind != AfterReceive {
		t.Errorf("kind = %v, want AfterReceive", got.Kind)
	}
	if got.Method != "im.open" {
		t.Errorf("method = %q, want im.open", got.Method)
	}
	if got.Data["ok"] != true {
		t.Errorf("data = %v, want ok=true", got.Data)
	}
}

func TestConcurrentRegistrationAndNotify(t *testing.T) {
	n := NewNotifier()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			n.AddListener(BeforeSend, func(Event) error { return nil })
		}()
		go func() {
			defer wg.Done()
			if err := n.Notify(BeforeSend, "api.test", nil); err != nil {
				t.Errorf("Notify failed: %v", err)
			}
		}()
	}
	wg.Wait()
}
