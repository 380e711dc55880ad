package server_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"labelscan/gen/ent/enttest"
	labelscanv1 "labelscan/gen/proto/labelscan/v1"
	"labelscan/internal/entity"
	"labelscan/internal/events"
	"labelscan/internal/jobs"
	"labelscan/internal/repository"
	"labelscan/internal/server"
)

type nopWaker struct{}

func (nopWaker) Wake() {}

type eventStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*labelscanv1.JobEvent
}

func (s *eventStream) Context() context.Context { return s.ctx }

func (s *eventStream) Send(ev *labelscanv1.JobEvent) error {
	s.sent = append(s.sent, ev)
	return nil
}

func newService(t *testing.T) (*server.JobsService, repository.JobRepository) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)", uuid.NewString()))
	t.Cleanup(func() { _ = client.Close() })

	reader := repository.NewJobRepository(client, nil)
	pub := events.NewPublisher(reader, nil)
	t.Cleanup(pub.Close)
	repo := repository.NewJobRepository(client, nil, repository.WithEventSink(pub))
	svc, err := jobs.NewService(repo, t.TempDir(), nil)
	require.NoError(t, err)
	return server.NewJobsService(repo, svc, pub, nopWaker{}, nil), repo
}

func cancelledJob(t *testing.T, repo repository.JobRepository) entity.Job {
	t.Helper()
	job, err := repo.Create(context.Background(), repository.NewJob{
		OwnerID:    "tester",
		SourcePath: "/tmp/in",
		Files:      []entity.FileDescriptor{{Filename: "label-01.pdf", SourcePath: "/tmp/in", Size: 1024}},
	})
	require.NoError(t, err)
	job, err = repo.RequestCancel(context.Background(), job.ID, "not needed", "tester")
	require.NoError(t, err)
	return job
}

func TestStreamEndsForTerminalJobWithCurrentCursor(t *testing.T) {
	srv, repo := newService(t)
	job := cancelledJob(t, repo)

	history, err := repo.ListEvents(context.Background(), job.ID, 0)
	require.NoError(t, err)
	require.NotEmpty(t, history)
	cursor := history[len(history)-1].ID

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := &eventStream{ctx: ctx}

	done := make(chan error, 1)
	go func() {
		done <- srv.StreamJobEvents(&labelscanv1.StreamJobEventsRequest{
			JobId:        job.ID.String(),
			AfterEventId: int64(cursor),
		}, stream)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end for a finished job with an up-to-date cursor")
	}
	require.Empty(t, stream.sent)
}

func TestStreamReplaysHistoryBeforeEnding(t *testing.T) {
	srv, repo := newService(t)
	job := cancelledJob(t, repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := &eventStream{ctx: ctx}

	done := make(chan error, 1)
	go func() {
		done <- srv.StreamJobEvents(&labelscanv1.StreamJobEventsRequest{JobId: job.ID.String()}, stream)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end after draining a finished job's events")
	}
	require.Len(t, stream.sent, 2)
	require.Equal(t, "Job queued", stream.sent[0].GetMessage())
}
