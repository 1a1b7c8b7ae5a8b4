package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)
	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionUp) {
		t.Error("Clone should not be affected by Clear on the original")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    Action
	}{
		{"none", nil, ActionNone},
		{"only pause", []Action{ActionPause}, ActionNone},
		{"left", []Action{ActionLeft}, ActionLeft},
		{"right with restart", []Action{ActionRestart, ActionRight}, ActionRight},
		{"up beats left", []Action{ActionLeft, ActionUp}, ActionUp},
		{"down beats right", []Action{ActionRight, ActionDown}, ActionDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tt.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tt.want {
				t.Errorf("Direction() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%s should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionRestart, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%s should not be a direction", a)
		}
	}
}
