package publish

// Status is the phase of a single progress event.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Event is one entry in the publication progress stream. Data carries the
// terminal payload (DOI, record links) on the final event only.
type Event struct {
	Step    string
	Status  Status
	Message string
	Data    map[string]any
}

// Emitter receives progress events in order. Implementations must tolerate
// being called after the consumer has gone away.
type Emitter func(Event)

func (e Emitter) emit(step string, status Status, message string, data map[string]any) {
	if e == nil {
		return
	}
	e(Event{Step: step, Status: status, Message: message, Data: data})
}
