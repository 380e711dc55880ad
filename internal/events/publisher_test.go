package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"labelscan/constants"
	"labelscan/internal/entity"
)

type fakeHistory struct {
	events []entity.JobEvent
}

func (f *fakeHistory) ListEvents(_ context.Context, jobID uuid.UUID, sinceEventID int) ([]entity.JobEvent, error) {
	var out []entity.JobEvent
	for _, ev := range f.events {
		if ev.JobID == jobID && ev.ID > sinceEventID {
			out = append(out, ev)
		}
	}
	return out, nil
}

// gatedHistory parks ListEvents until released so tests can publish while the
// replay query is in flight.
type gatedHistory struct {
	fakeHistory
	entered chan struct{}
	release chan struct{}
}

func newGatedHistory(events ...entity.JobEvent) *gatedHistory {
	return &gatedHistory{
		fakeHistory: fakeHistory{events: events},
		entered:     make(chan struct{}, 1),
		release:     make(chan struct{}),
	}
}

func (g *gatedHistory) ListEvents(ctx context.Context, jobID uuid.UUID, sinceEventID int) ([]entity.JobEvent, error) {
	g.entered <- struct{}{}
	<-g.release
	return g.fakeHistory.ListEvents(ctx, jobID, sinceEventID)
}

func event(jobID uuid.UUID, id int, msg string) entity.JobEvent {
	return entity.JobEvent{
		ID:        id,
		JobID:     jobID,
		CreatedAt: time.Now().UTC(),
		Level:     constants.EventLevelInfo,
		Message:   msg,
	}
}

func recv(t *testing.T, ch <-chan entity.JobEvent) entity.JobEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return entity.JobEvent{}
	}
}

func TestSubscribeReplaysHistoryThenPushes(t *testing.T) {
	jobID := uuid.New()
	hist := &fakeHistory{events: []entity.JobEvent{
		event(jobID, 1, "Job queued"),
		event(jobID, 2, "Job claimed by worker-a"),
	}}
	pub := NewPublisher(hist, nil)
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := pub.Subscribe(ctx, jobID, 0)
	require.NoError(t, err)

	require.Equal(t, 1, recv(t, ch).ID)
	require.Equal(t, 2, recv(t, ch).ID)

	pub.Publish(event(jobID, 3, "Processing label-01.pdf"))
	require.Equal(t, 3, recv(t, ch).ID)
}

func TestSubscribeSeesEventsPublishedDuringReplay(t *testing.T) {
	jobID := uuid.New()
	hist := newGatedHistory(event(jobID, 1, "Job queued"))
	pub := NewPublisher(hist, nil)
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type result struct {
		ch  <-chan entity.JobEvent
		err error
	}
	done := make(chan result, 1)
	go func() {
		ch, err := pub.Subscribe(ctx, jobID, 0)
		done <- result{ch, err}
	}()

	// Event 2 commits while the replay query is still running: too late for
	// the snapshot, too early for a registered channel in the old scheme.
	<-hist.entered
	pub.Publish(event(jobID, 2, "Job claimed by worker-a"))
	close(hist.release)

	res := <-done
	require.NoError(t, res.err)
	require.Equal(t, 1, recv(t, res.ch).ID)
	require.Equal(t, 2, recv(t, res.ch).ID)

	pub.Publish(event(jobID, 3, "Processing label-01.pdf"))
	require.Equal(t, 3, recv(t, res.ch).ID)
}

func TestHandoffDeduplicates(t *testing.T) {
	jobID := uuid.New()
	hist := newGatedHistory(
		event(jobID, 1, "Job queued"),
		event(jobID, 2, "Job claimed by worker-a"),
	)
	pub := NewPublisher(hist, nil)
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type result struct {
		ch  <-chan entity.JobEvent
		err error
	}
	done := make(chan result, 1)
	go func() {
		ch, err := pub.Subscribe(ctx, jobID, 0)
		done <- result{ch, err}
	}()

	// Event 2 both lands in the replay snapshot and races it through
	// Publish; the handoff must deliver it exactly once and in order.
	<-hist.entered
	pub.Publish(event(jobID, 3, "Completed label-01.pdf"))
	pub.Publish(event(jobID, 2, "Job claimed by worker-a"))
	close(hist.release)

	res := <-done
	require.NoError(t, res.err)
	require.Equal(t, 1, recv(t, res.ch).ID)
	require.Equal(t, 2, recv(t, res.ch).ID)
	require.Equal(t, 3, recv(t, res.ch).ID)
	require.Empty(t, res.ch)
}

func TestSubscribeWithCursorSkipsOldEvents(t *testing.T) {
	jobID := uuid.New()
	hist := &fakeHistory{events: []entity.JobEvent{
		event(jobID, 1, "Job queued"),
		event(jobID, 2, "Job claimed by worker-a"),
		event(jobID, 3, "Processing label-01.pdf"),
	}}
	pub := NewPublisher(hist, nil)
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := pub.Subscribe(ctx, jobID, 2)
	require.NoError(t, err)
	require.Equal(t, 3, recv(t, ch).ID)
}

func TestPublishIsScopedToJob(t *testing.T) {
	jobA, jobB := uuid.New(), uuid.New()
	pub := NewPublisher(&fakeHistory{}, nil)
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chA, err := pub.Subscribe(ctx, jobA, 0)
	require.NoError(t, err)

	pub.Publish(event(jobB, 1, "other job"))
	pub.Publish(event(jobA, 2, "mine"))

	got := recv(t, chA)
	require.Equal(t, jobA, got.JobID)
	require.Equal(t, 2, got.ID)
}

func TestOutOfOrderPublishClosesSubscriber(t *testing.T) {
	jobID := uuid.New()
	pub := NewPublisher(&fakeHistory{}, nil)
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := pub.Subscribe(ctx, jobID, 0)
	require.NoError(t, err)

	pub.Publish(event(jobID, 2, "Processing label-01.pdf"))
	require.Equal(t, 2, recv(t, ch).ID)

	// Two committers raced past each other. Rather than skip event 1 and
	// leave a silent gap, the stream is cut so the client replays from its
	// cursor.
	pub.Publish(event(jobID, 1, "Job claimed by worker-a"))
	_, ok := <-ch
	require.False(t, ok, "channel must close on an out-of-order publish")
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	jobID := uuid.New()
	pub := NewPublisher(&fakeHistory{}, nil)
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := pub.Subscribe(ctx, jobID, 0)
	require.NoError(t, err)

	// Fill the buffer without draining, then one more to trigger the drop.
	for i := 1; i <= liveBuffer+1; i++ {
		pub.Publish(event(jobID, i, "spam"))
	}

	seen := 0
	for range ch {
		seen++
	}
	require.Equal(t, liveBuffer, seen, "channel must close after the buffer overflows")
}

func TestCloseTerminatesSubscribers(t *testing.T) {
	jobID := uuid.New()
	pub := NewPublisher(&fakeHistory{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := pub.Subscribe(ctx, jobID, 0)
	require.NoError(t, err)

	pub.Close()
	_, ok := <-ch
	require.False(t, ok)

	// Publishing after close is a no-op.
	pub.Publish(event(jobID, 1, "late"))
}
