package entity

import "testing"

func TestSlotAssignmentStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to SlotAssignmentStatus
		allowed  bool
	}{
		{SlotAssigned, SlotReserved, true},
		{SlotAssigned, SlotBooked, true},
		{SlotAssigned, SlotCancelled, true},
		{SlotReserved, SlotBooked, true},
		{SlotReserved, SlotCancelled, true},
		{SlotBooked, SlotCancelled, true},

		// No backward movement.
		{SlotReserved, SlotAssigned, false},
		{SlotBooked, SlotAssigned, false},
		{SlotBooked, SlotReserved, false},

		// Cancelled is terminal.
		{SlotCancelled, SlotAssigned, false},
		{SlotCancelled, SlotReserved, false},
		{SlotCancelled, SlotBooked, false},
		{SlotCancelled, SlotCancelled, false},

		// No self-loops on live states.
		{SlotAssigned, SlotAssigned, false},
		{SlotBooked, SlotBooked, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}
