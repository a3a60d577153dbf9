package vdfjob

import (
	"context"
	"crypto/sha256"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/defiguardian/guardian-core/vdf"
)

// Manager runs VDF evaluations as background jobs, identified by a
// generated UUID, and exposes their progress and results to callers that
// poll it.
type Manager struct {
	mu   sync.RWMutex
	jobs map[string]*job

	devMode bool
	metrics *metricsSet
}

// NewManager creates a Manager. When registerer is non-nil, the
// manager's Prometheus collectors are registered against it; pass nil in
// tests or local tooling that does not run a metrics server.
//
// devMode gates GetMockProof, which skips the delay a VDF exists to
// enforce in order to hand back a fake, unverifiable proof. It must be
// false in any production deployment. BypassJob is not gated by
// devMode: guardian bypass of an in-flight job is a standing capability
// of the manager, available in production.
func NewManager(devMode bool, registerer prometheus.Registerer) *Manager {
	return &Manager{
		jobs:    make(map[string]*job),
		devMode: devMode,
		metrics: newMetricsSet(registerer),
	}
}

// CreateJob starts a new VDF evaluation in the background and returns its
// job id immediately. The caller polls GetStatus to learn when the job
// reaches a terminal status. challenge.Input is normalized into the
// group by vdf.Prove, never squared directly; challenge.Iterations and
// Timestamp are filled in from params and the current time so the
// recorded challenge always matches the parameters actually used to
// evaluate it.
func (m *Manager) CreateJob(params vdf.Params, challenge vdf.VDFChallenge) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}
	if len(challenge.Input) == 0 {
		return "", fmt.Errorf("%w: challenge input must not be empty", ErrInvalidInput)
	}

	challenge.Iterations = params.Iterations
	challenge.Timestamp = time.Now()

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())

	j := &job{
		id:        id,
		params:    params,
		challenge: challenge,
		status:    StatusPending,
		startedAt: time.Now(),
		cancel:    cancel,
	}

	m.mu.Lock()
	m.jobs[id] = j
	m.mu.Unlock()

	m.metrics.jobsCreated.Inc()
	m.metrics.jobsByStatus.WithLabelValues(StatusPending.String()).Inc()

	go m.run(ctx, j)

	return id, nil
}

func (m *Manager) run(ctx context.Context, j *job) {
	j.mu.Lock()
	if j.status != StatusPending {
		// BypassJob finalized this job before the loop started.
		j.mu.Unlock()
		return
	}
	j.status = StatusComputing
	j.mu.Unlock()
	m.metrics.transition(StatusPending, StatusComputing)

	params := j.params
	params.OnProgress = func(done, total uint64) {
		j.mu.Lock()
		j.done = done
		j.mu.Unlock()
	}

	start := time.Now()
	proof, err := vdf.Prove(ctx, params, j.challenge.Input)
	elapsed := time.Since(start)

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.status == StatusBypassed {
		// BypassJob already cancelled and finalized this job; the
		// squaring loop returning (with or without an error) must not
		// clobber that outcome.
		return
	}

	if err != nil {
		j.status = StatusFailed
		j.err = err
		m.metrics.transition(StatusComputing, StatusFailed)
		return
	}

	j.proof = proof
	j.done = j.params.Iterations
	j.status = StatusReady
	m.metrics.transition(StatusComputing, StatusReady)
	m.metrics.computeSeconds.Observe(elapsed.Seconds())
}

// GetStatus returns a stable snapshot of a job's progress.
func (m *Manager) GetStatus(id string) (*Snapshot, error) {
	j, err := m.getJob(id)
	if err != nil {
		return nil, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	return &Snapshot{
		ID:        j.id,
		Status:    j.status,
		Done:      j.done,
		Total:     j.params.Iterations,
		StartedAt: j.startedAt,
		Err:       j.err,
	}, nil
}

// GetProof returns the completed proof for a job in StatusReady. It
// fails with ErrJobNotReady for any other status, including bypassed.
func (m *Manager) GetProof(id string) (*vdf.Proof, error) {
	j, err := m.getJob(id)
	if err != nil {
		return nil, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.status != StatusReady {
		return nil, fmt.Errorf("%w: job is in status %s", ErrJobNotReady, j.status)
	}
	return j.proof, nil
}

// BypassJob cancels an in-flight job and marks it bypassed with a
// trivial, unverifiable proof, without waiting for the squaring loop to
// finish. Guardian bypass is a standing capability of the job manager,
// not a dev-mode escape hatch: unlike GetMockProof, it works regardless
// of how the Manager was constructed.
func (m *Manager) BypassJob(id string) error {
	j, err := m.getJob(id)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.status == StatusReady || j.status == StatusFailed || j.status == StatusBypassed {
		return fmt.Errorf("%w: job is in status %s", ErrWrongJobStatus, j.status)
	}

	previous := j.status
	j.cancel()
	j.status = StatusBypassed
	j.proof = vdf.ZeroProof()
	m.metrics.transition(previous, StatusBypassed)

	return nil
}

// GetMockProof returns a deterministic, digest-based fake proof for
// (txHash, iterations) immediately, without running the real delay or
// touching a job. Unlike BypassJob's zero-iteration sentinel, the
// returned Proof claims a real iteration count and will fail Verify:
// it is built from a hash of the inputs, not from any actual sequential
// squaring, so it is only useful to unblock callers that need *a*
// proof-shaped value in a dev environment. Only works when the Manager
// was constructed with devMode=true.
func (m *Manager) GetMockProof(txHash []byte, iterations uint64, modulus *big.Int) (*vdf.Proof, error) {
	if !m.devMode {
		return nil, ErrDevModeRequired
	}
	if len(txHash) == 0 {
		return nil, fmt.Errorf("%w: txHash must not be empty", ErrInvalidInput)
	}
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be a positive integer", ErrInvalidInput)
	}
	return mockProof(txHash, iterations, modulus), nil
}

// Cleanup removes every job in a terminal status (ready, failed,
// bypassed) started more than maxAge ago, and reports how many it
// removed.
func (m *Manager) Cleanup(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, j := range m.jobs {
		j.mu.Lock()
		terminal := j.status == StatusReady || j.status == StatusFailed || j.status == StatusBypassed
		old := j.startedAt.Before(cutoff)
		j.mu.Unlock()

		if terminal && old {
			delete(m.jobs, id)
			removed++
		}
	}
	return removed
}

func (m *Manager) getJob(id string) (*job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, id)
	}
	return j, nil
}

// mockProof builds the deterministic, digest-based fake proof GetMockProof
// hands back: y and pi are both SHA-256 digests of the transcript reduced
// into Z_N, chained so that pi depends on y. Neither value corresponds to
// any real modular exponentiation, so Verify will reject it with
// overwhelming probability -- exactly the "not cryptographically valid"
// property the caller is warned about.
func mockProof(txHash []byte, iterations uint64, modulus *big.Int) *vdf.Proof {
	var iterBytes [8]byte
	for i := 0; i < 8; i++ {
		iterBytes[i] = byte(iterations >> (8 * uint(7-i)))
	}

	yHash := sha256.Sum256(append(append([]byte{}, txHash...), iterBytes[:]...))
	y := new(big.Int).Mod(new(big.Int).SetBytes(yHash[:]), modulus)

	piHash := sha256.Sum256(yHash[:])
	pi := new(big.Int).Mod(new(big.Int).SetBytes(piHash[:]), modulus)

	return &vdf.Proof{Y: y, Pi: pi}
}
