package server

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	labelscanv1 "labelscan/gen/proto/labelscan/v1"
	"labelscan/internal/common"
)

// StreamJobEvents replays the job's event log starting after after_event_id,
// then forwards live events. The stream ends once the job is terminal and all
// its events have been delivered, or when the client disconnects. Clients
// that get cut off (server restart, slow-consumer eviction) reconnect with
// the last event id they saw; replay makes the stream at-least-once.
func (s *JobsService) StreamJobEvents(req *labelscanv1.StreamJobEventsRequest, stream labelscanv1.JobsService_StreamJobEventsServer) error {
	id, err := parseJobID(req.GetJobId())
	if err != nil {
		return err
	}
	ctx := stream.Context()

	// Subscribe before the status read: a job that goes terminal in between
	// then shows up either in the channel or in the snapshot below.
	ch, err := s.pub.Subscribe(ctx, id, int(req.GetAfterEventId()))
	if err != nil {
		return common.GRPCStatus(err)
	}
	job, err := s.repo.Get(ctx, id)
	if err != nil {
		return common.GRPCStatus(err)
	}
	// A reconnect with an up-to-date cursor on a finished job has nothing
	// left to wait for.
	if job.Status.Terminal() && len(ch) == 0 {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				// Evicted as a slow consumer or the hub shut down. The
				// client re-subscribes with its cursor to resume.
				return status.Error(codes.Unavailable, "event stream interrupted")
			}
			if err := stream.Send(toProtoEvent(ev)); err != nil {
				return err
			}
			// Only hit the store when the channel is drained, so a burst of
			// events costs one status read, not one per event.
			if len(ch) == 0 {
				job, err := s.repo.Get(ctx, id)
				if err != nil {
					return common.GRPCStatus(err)
				}
				if job.Status.Terminal() {
					return nil
				}
			}
		}
	}
}
