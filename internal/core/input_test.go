package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionReveal)
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(Action(99))

	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionReveal, true},
		{ActionLeft, true},
		{ActionFlag, false},
		{ActionNone, false},
		{Action(99), false},
	}
	for _, tc := range tests {
		if got := f.Has(tc.action); got != tc.expected {
			t.Errorf("Has(%v) = %v, expected %v", tc.action, got, tc.expected)
		}
	}

	f.Clear()
	if !f.Empty() || f.Has(ActionReveal) {
		t.Error("Clear() should drop every action")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionReveal, "Reveal"},
		{ActionFlag, "Flag"},
		{ActionPause, "Pause"},
		{Action(-1), "Unknown"},
		{actionCount, "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.action), got, tc.expected)
		}
	}
}
