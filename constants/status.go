package constants

// JobStatus is the canonical status for rows in extraction_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "pending"    // accepted, not yet picked up by a worker
	JobStatusProcessing JobStatus = "processing" // extraction call in flight
	JobStatusCompleted  JobStatus = "completed"  // terminal success, poster created
	JobStatusFailed     JobStatus = "failed"     // terminal failure
)

// Terminal reports whether no further transition is allowed out of s.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// CanTransition reports whether moving from s to next is a legal forward
// transition. Transitions are monotonic: pending -> processing -> terminal.
func (s JobStatus) CanTransition(next JobStatus) bool {
	switch s {
	case JobStatusPending:
		return next == JobStatusProcessing || next == JobStatusFailed
	case JobStatusProcessing:
		return next == JobStatusCompleted || next == JobStatusFailed
	default:
		return false
	}
}

// PosterStatus is the canonical status for rows in posters.
type PosterStatus string

const (
	PosterStatusDraft     PosterStatus = "draft"
	PosterStatusPublished PosterStatus = "published"
)
