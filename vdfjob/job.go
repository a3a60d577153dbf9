package vdfjob

import (
	"context"
	"sync"
	"time"

	"github.com/defiguardian/guardian-core/vdf"
)

// Status is a job's current lifecycle state. Transitions are monotone:
// pending -> computing -> {ready, failed, bypassed}.
type Status int

const (
	StatusPending Status = iota
	StatusComputing
	StatusReady
	StatusFailed
	StatusBypassed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusComputing:
		return "computing"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	case StatusBypassed:
		return "bypassed"
	default:
		return "unknown"
	}
}

// Snapshot is a stable, read-only view of a job's progress.
type Snapshot struct {
	ID        string
	Status    Status
	Done      uint64
	Total     uint64
	StartedAt time.Time
	Err       error
}

// EstimatedSecondsRemaining estimates time-to-completion from the job's
// observed squaring rate (done/elapsed). It returns ok=false when there
// is not yet enough progress to estimate a rate.
func (s *Snapshot) EstimatedSecondsRemaining() (remaining float64, ok bool) {
	if s.Done == 0 || s.Total == 0 || s.Done >= s.Total {
		return 0, false
	}

	elapsed := time.Since(s.StartedAt).Seconds()
	if elapsed <= 0 {
		return 0, false
	}

	rate := float64(s.Done) / elapsed
	if rate <= 0 {
		return 0, false
	}

	return float64(s.Total-s.Done) / rate, true
}

// job is the Manager's internal record for one VDF evaluation running in
// the background.
type job struct {
	mu sync.Mutex

	id        string
	params    vdf.Params
	challenge vdf.VDFChallenge

	status    Status
	done      uint64
	startedAt time.Time

	proof *vdf.Proof
	err   error

	cancel context.CancelFunc
}
