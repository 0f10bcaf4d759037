package config

import "testing"

func TestEveryMenuActionHasABinding(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		binding, ok := Input.Bindings[id]
		if !ok {
			t.Errorf("action %d has no binding", id)
			continue
		}
		if len(binding.Keys) == 0 {
			t.Errorf("action %d has no keyboard binding", id)
		}
	}
}

func TestAnalogDeadzoneIsSane(t *testing.T) {
	if Input.AnalogDeadzone <= 0 || Input.AnalogDeadzone >= 1 {
		t.Errorf("analog deadzone %v outside (0, 1)", Input.AnalogDeadzone)
	}
}
