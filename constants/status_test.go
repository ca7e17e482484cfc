package constants

import "testing"

func TestJobStatusTransitions(t *testing.T) {
	all := []JobStatus{JobStatusPending, JobStatusProcessing, JobStatusCompleted, JobStatusFailed}

	legal := map[JobStatus][]JobStatus{
		JobStatusPending:    {JobStatusProcessing, JobStatusFailed},
		JobStatusProcessing: {JobStatusCompleted, JobStatusFailed},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, n := range legal[from] {
				if n == to {
					want = true
				}
			}
			if got := from.CanTransition(to); got != want {
				t.Errorf("%s -> %s = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatesAllowNoExit(t *testing.T) {
	all := []JobStatus{JobStatusPending, JobStatusProcessing, JobStatusCompleted, JobStatusFailed}
	for _, s := range []JobStatus{JobStatusCompleted, JobStatusFailed} {
		if !s.Terminal() {
			t.Errorf("%s.Terminal() = false", s)
		}
		for _, next := range all {
			if s.CanTransition(next) {
				t.Errorf("terminal state %s allows transition to %s", s, next)
			}
		}
	}
	for _, s := range []JobStatus{JobStatusPending, JobStatusProcessing} {
		if s.Terminal() {
			t.Errorf("%s.Terminal() = true", s)
		}
	}
}
