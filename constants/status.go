package constants

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "queued"    // waiting for a worker slot
	JobStatusRunning   JobStatus = "running"   // claimed, in progress
	JobStatusRetrying  JobStatus = "retrying"  // recoverable failure, about to re-enter running
	JobStatusCompleted JobStatus = "completed" // terminal success
	JobStatusFailed    JobStatus = "failed"    // terminal failure
	JobStatusCancelled JobStatus = "cancelled" // terminal, cancelled by a user or the system
)

// JobStatuses holds the allowed values for the status field in Job.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusRetrying),
	string(JobStatusCompleted),
	string(JobStatusFailed),
	string(JobStatusCancelled),
}

// Valid reports whether s is one of the stable status values.
func (s JobStatus) Valid() bool {
	for _, v := range JobStatuses {
		if v == string(s) {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// Active reports whether s is one of the non-terminal statuses.
func (s JobStatus) Active() bool {
	return s == JobStatusQueued || s == JobStatusRunning || s == JobStatusRetrying
}

// transitions is the full edge set of the job state machine. Reclaim
// (running/retrying back to queued) is included because the stuck-job
// monitor uses the same guarded write path as every other transition.
var transitions = map[JobStatus][]JobStatus{
	JobStatusQueued:   {JobStatusRunning, JobStatusCancelled},
	JobStatusRunning:  {JobStatusRunning, JobStatusRetrying, JobStatusCompleted, JobStatusFailed, JobStatusCancelled, JobStatusQueued},
	JobStatusRetrying: {JobStatusRunning, JobStatusRetrying, JobStatusCompleted, JobStatusFailed, JobStatusCancelled, JobStatusQueued},
}

// CanTransition reports whether the edge from -> to exists in the state machine.
func CanTransition(from, to JobStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// EventLevel is the severity attached to a job event row.
type EventLevel string

const (
	EventLevelInfo    EventLevel = "info"
	EventLevelWarning EventLevel = "warning"
	EventLevelError   EventLevel = "error"
)

// EventLevels holds the allowed values for the level field in JobEvent.
var EventLevels = []string{
	string(EventLevelInfo),
	string(EventLevelWarning),
	string(EventLevelError),
}
