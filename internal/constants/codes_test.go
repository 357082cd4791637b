package constants

import "testing"

func TestIsActive(t *testing.T) {
	for _, code := range []int{StatusInProgress, StatusAwaitingParts, StatusAwaitingPick} {
		if !IsActive(code) {
			t.Errorf("status %d should be active", code)
		}
	}

	if IsActive(StatusCompleted) {
		t.Error("completed status should not be active")
	}
}
