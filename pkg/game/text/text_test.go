package text

import "testing"

func TestGet(t *testing.T) {
	if got, want := Get("NO_WEAPON"), "You have no weapon."; got != want {
		t.Errorf("Get(NO_WEAPON) = %q, want %q", got, want)
	}
	if got, want := Get("ATTACK_PROMPT", "Goblin", 3), "Attack the Goblin (HP 3)?"; got != want {
		t.Errorf("Get(ATTACK_PROMPT) = %q, want %q", got, want)
	}
	if got, want := Get("NOT_A_KEY"), "NOT_A_KEY"; got != want {
		t.Errorf("Get(NOT_A_KEY) = %q, want %q", got, want)
	}
}
