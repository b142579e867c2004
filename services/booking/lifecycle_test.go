package booking

import (
	"testing"
	"time"

	"sparklean/models"

	"github.com/stretchr/testify/require"
)

var transitionNow = time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC)

func TestForwardChainStampsTimestamps(t *testing.T) {
	t.Parallel()

	b := &models.Booking{Status: models.StatusPending}

	require.NoError(t, Transition(b, models.StatusAccepted, transitionNow))
	require.Equal(t, models.StatusAccepted, b.Status)
	require.NotNil(t, b.CleanerAcceptedAt)

	require.NoError(t, Transition(b, models.StatusOnMyWay, transitionNow))
	require.NotNil(t, b.CleanerOnMyWayAt)

	require.NoError(t, Transition(b, models.StatusInProgress, transitionNow))
	require.NotNil(t, b.CleanerStartedAt)

	require.NoError(t, Transition(b, models.StatusCompleted, transitionNow))
	require.NotNil(t, b.CleanerCompletedAt)
	require.True(t, b.Status.Terminal())
}

func TestCancelAndDeclineOnlyBeforeStart(t *testing.T) {
	t.Parallel()

	require.True(t, CanTransition(models.StatusPending, models.StatusCancelled))
	require.True(t, CanTransition(models.StatusPending, models.StatusDeclined))
	require.True(t, CanTransition(models.StatusAccepted, models.StatusCancelled))
	require.True(t, CanTransition(models.StatusAccepted, models.StatusDeclined))

	require.False(t, CanTransition(models.StatusOnMyWay, models.StatusCancelled))
	require.False(t, CanTransition(models.StatusInProgress, models.StatusCancelled))
	require.False(t, CanTransition(models.StatusCompleted, models.StatusCancelled))
}

func TestNoSkippingStates(t *testing.T) {
	t.Parallel()

	require.False(t, CanTransition(models.StatusPending, models.StatusOnMyWay))
	require.False(t, CanTransition(models.StatusPending, models.StatusInProgress))
	require.False(t, CanTransition(models.StatusPending, models.StatusCompleted))
	require.False(t, CanTransition(models.StatusAccepted, models.StatusInProgress))
	require.False(t, CanTransition(models.StatusAccepted, models.StatusCompleted))
	require.False(t, CanTransition(models.StatusOnMyWay, models.StatusCompleted))
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	t.Parallel()

	for _, terminal := range []models.BookingStatus{
		models.StatusCompleted, models.StatusCancelled, models.StatusDeclined,
	} {
		for _, to := range []models.BookingStatus{
			models.StatusPending, models.StatusAccepted, models.StatusOnMyWay,
			models.StatusInProgress, models.StatusCompleted, models.StatusCancelled,
		} {
			b := &models.Booking{Status: terminal}
			err := Transition(b, to, transitionNow)
			var transitionErr *StatusTransitionError
			require.ErrorAs(t, err, &transitionErr)
			require.Equal(t, terminal, transitionErr.From)
		}
	}
}

func TestCancellationStampsNothing(t *testing.T) {
	t.Parallel()

	b := &models.Booking{Status: models.StatusPending}
	require.NoError(t, Transition(b, models.StatusCancelled, transitionNow))
	require.Nil(t, b.CleanerAcceptedAt)
	require.Nil(t, b.CleanerCompletedAt)
}

func TestCompletionDateBucketsByStamp(t *testing.T) {
	t.Parallel()

	b := models.Booking{BookingDate: "2024-02-28", Status: models.StatusCompleted}
	require.Equal(t, "2024-02-28", b.CompletionDate())

	// Completed two days late: the stamp date wins over the scheduled date.
	stamp := time.Date(2024, 3, 2, 19, 0, 0, 0, time.UTC)
	b.CleanerCompletedAt = &stamp
	require.Equal(t, "2024-03-02", b.CompletionDate())
}
