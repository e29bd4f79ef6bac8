package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from StatusName
		to   StatusName
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusInProgress, false},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusNoShow, false},

		{StatusConfirmed, StatusInProgress, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCompleted, false},
		{StatusConfirmed, StatusPending, false},

		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusInProgress, StatusNoShow, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransitionTo(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatesHaveNoTransitions(t *testing.T) {
	for _, from := range []StatusName{StatusCompleted, StatusCancelled, StatusNoShow} {
		assert.True(t, IsTerminal(from))
		for _, to := range AllStatusNames() {
			assert.False(t, CanTransitionTo(from, to), "%s -> %s", from, to)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
	assert.False(t, IsTerminal(InitialStatus()))
}

func TestAllStatusesHaveDescriptions(t *testing.T) {
	for _, s := range AllStatusNames() {
		assert.NotEmpty(t, StatusDescription(s), "status %s", s)
	}
}
