package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionEdges(t *testing.T) {
	allowed := [][2]JobStatus{
		{JobStatusQueued, JobStatusRunning},
		{JobStatusQueued, JobStatusCancelled},
		{JobStatusRunning, JobStatusRetrying},
		{JobStatusRunning, JobStatusCompleted},
		{JobStatusRunning, JobStatusFailed},
		{JobStatusRunning, JobStatusCancelled},
		{JobStatusRunning, JobStatusQueued}, // reclaim
		{JobStatusRetrying, JobStatusRunning},
		{JobStatusRetrying, JobStatusQueued}, // reclaim
		{JobStatusRetrying, JobStatusFailed},
	}
	for _, edge := range allowed {
		require.True(t, CanTransition(edge[0], edge[1]), "%s -> %s must be allowed", edge[0], edge[1])
	}

	denied := [][2]JobStatus{
		{JobStatusQueued, JobStatusCompleted},
		{JobStatusQueued, JobStatusFailed},
		{JobStatusCompleted, JobStatusRunning},
		{JobStatusCompleted, JobStatusQueued},
		{JobStatusFailed, JobStatusRunning},
		{JobStatusCancelled, JobStatusQueued},
	}
	for _, edge := range denied {
		require.False(t, CanTransition(edge[0], edge[1]), "%s -> %s must be denied", edge[0], edge[1])
	}
}

func TestTerminalAndActivePartition(t *testing.T) {
	for _, raw := range JobStatuses {
		s := JobStatus(raw)
		require.True(t, s.Valid())
		require.NotEqual(t, s.Terminal(), s.Active(), "%s must be exactly one of terminal or active", s)
	}
	require.False(t, JobStatus("bogus").Valid())
	require.False(t, JobStatus("bogus").Terminal())
	require.False(t, JobStatus("bogus").Active())
}

func TestTerminalStatusesHaveNoOutgoingEdges(t *testing.T) {
	for _, raw := range JobStatuses {
		from := JobStatus(raw)
		if !from.Terminal() {
			continue
		}
		for _, other := range JobStatuses {
			require.False(t, CanTransition(from, JobStatus(other)))
		}
	}
}
