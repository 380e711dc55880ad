package events

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"labelscan/internal/entity"
	"labelscan/internal/repository"
)

// history is the narrow slice of the repository the publisher needs to replay
// missed events for a reconnecting subscriber.
type history interface {
	ListEvents(ctx context.Context, jobID uuid.UUID, sinceEventID int) ([]entity.JobEvent, error)
}

var _ history = (repository.JobRepository)(nil)

// Publisher fans newly appended job events out to live subscribers. It
// implements repository.EventSink. Delivery is replay-then-push: a subscriber
// first receives everything after its cursor from the store, then live events,
// with the handoff deduplicated so ids stay strictly increasing per job.
type Publisher struct {
	store  history
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[uuid.UUID][]*subscription
	closed bool
}

type subscription struct {
	jobID  uuid.UUID
	ch     chan entity.JobEvent
	lastID int
	dead   bool

	// While the replay query runs the subscription is already registered but
	// has no channel yet; live events park in pending until the handoff.
	syncing bool
	pending []entity.JobEvent
}

const liveBuffer = 64

func NewPublisher(store history, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		store:  store,
		logger: logger,
		subs:   make(map[uuid.UUID][]*subscription),
	}
}

// Publish mirrors a committed event into every live subscriber channel. A
// subscriber whose buffer is full is dropped, as is one that observes ids out
// of order when two committers race past each other; both recover through the
// at-least-once path of reconnecting with their cursor.
func (p *Publisher) Publish(ev entity.JobEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	subs := p.subs[ev.JobID]
	for _, sub := range subs {
		if sub.dead {
			continue
		}
		if sub.syncing {
			sub.pending = append(sub.pending, ev)
			continue
		}
		if ev.ID <= sub.lastID {
			// A lower id arriving after a higher one means two committers
			// published out of order. The event cannot be slotted in without
			// breaking the strictly-increasing contract, so cut the stream
			// and let the subscriber replay from its cursor.
			p.logger.Warn("out-of-order publish, dropping subscriber", "job_id", ev.JobID, "event_id", ev.ID, "last_event_id", sub.lastID)
			sub.dead = true
			close(sub.ch)
			continue
		}
		select {
		case sub.ch <- ev:
			sub.lastID = ev.ID
		default:
			p.logger.Warn("subscriber lagging, dropping", "job_id", ev.JobID, "last_event_id", sub.lastID)
			sub.dead = true
			close(sub.ch)
		}
	}
	p.compactLocked(ev.JobID)
}

// Subscribe returns a channel of events for jobID with ids greater than
// sinceEventID, history first. The channel closes when ctx is done, when the
// subscriber falls too far behind, or when the publisher shuts down.
func (p *Publisher) Subscribe(ctx context.Context, jobID uuid.UUID, sinceEventID int) (<-chan entity.JobEvent, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return closedEventChan(), nil
	}
	// Register before querying the store so an event committed while the
	// replay runs cannot fall between the two paths: it parks in pending and
	// is merged at the handoff below.
	sub := &subscription{jobID: jobID, lastID: sinceEventID, syncing: true}
	p.subs[jobID] = append(p.subs[jobID], sub)
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		p.unsubscribe(sub)
	}()

	replay, err := p.store.ListEvents(ctx, jobID, sinceEventID)
	if err != nil {
		p.unsubscribe(sub)
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if sub.dead {
		return closedEventChan(), nil
	}
	// Pending events may duplicate the replay tail or arrive id-inverted;
	// sorting plus the cursor filter hands off one strictly increasing
	// stream.
	sort.Slice(sub.pending, func(i, j int) bool { return sub.pending[i].ID < sub.pending[j].ID })
	sub.ch = make(chan entity.JobEvent, len(replay)+len(sub.pending)+liveBuffer)
	for _, ev := range replay {
		if ev.ID <= sub.lastID {
			continue
		}
		sub.ch <- ev
		sub.lastID = ev.ID
	}
	for _, ev := range sub.pending {
		if ev.ID <= sub.lastID {
			continue
		}
		sub.ch <- ev
		sub.lastID = ev.ID
	}
	sub.pending = nil
	sub.syncing = false
	return sub.ch, nil
}

func closedEventChan() chan entity.JobEvent {
	ch := make(chan entity.JobEvent)
	close(ch)
	return ch
}

func (p *Publisher) unsubscribe(sub *subscription) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !sub.dead {
		sub.dead = true
		if sub.ch != nil {
			close(sub.ch)
		}
	}
	p.compactLocked(sub.jobID)
}

func (p *Publisher) compactLocked(jobID uuid.UUID) {
	subs := p.subs[jobID]
	alive := subs[:0]
	for _, s := range subs {
		if !s.dead {
			alive = append(alive, s)
		}
	}
	if len(alive) == 0 {
		delete(p.subs, jobID)
		return
	}
	p.subs[jobID] = alive
}

// Close terminates all subscriber channels.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for jobID, subs := range p.subs {
		for _, s := range subs {
			if !s.dead {
				s.dead = true
				if s.ch != nil {
					close(s.ch)
				}
			}
		}
		delete(p.subs, jobID)
	}
}
