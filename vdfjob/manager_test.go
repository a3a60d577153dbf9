package vdfjob_test

import (
	"errors"
	"testing"
	"time"

	"github.com/defiguardian/guardian-core/vdf"
	"github.com/defiguardian/guardian-core/vdfjob"
)

func waitForStatus(t *testing.T, manager *vdfjob.Manager, id string, want vdfjob.Status, timeout time.Duration) *vdfjob.Snapshot {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		snapshot, err := manager.GetStatus(id)
		if err != nil {
			t.Fatalf("get status: %v", err)
		}
		if snapshot.Status == want {
			return snapshot
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("job %s did not reach status %s within %s", id, want, timeout)
	return nil
}

func TestCreateJob_RunsToCompletion_S8(t *testing.T) {
	manager := vdfjob.NewManager(false, nil)

	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 2000, YieldInterval: 50}
	challenge := vdf.VDFChallenge{Input: []byte("test-proposal-123"), Flagged: true}
	id, err := manager.CreateJob(params, challenge)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	waitForStatus(t, manager, id, vdfjob.StatusReady, 5*time.Second)

	proof, err := manager.GetProof(id)
	if err != nil {
		t.Fatalf("get proof: %v", err)
	}
	if !vdf.Verify(params, challenge.Input, proof) {
		t.Error("expected the completed job's proof to verify")
	}
}

func TestCreateJob_RejectsEmptyInput(t *testing.T) {
	manager := vdfjob.NewManager(false, nil)

	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 2000}
	_, err := manager.CreateJob(params, vdf.VDFChallenge{})
	if !errors.Is(err, vdfjob.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for an empty challenge, got %v", err)
	}
}

func TestGetProof_BeforeCompletionFails(t *testing.T) {
	manager := vdfjob.NewManager(false, nil)

	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 50_000_000, YieldInterval: 1000}
	id, err := manager.CreateJob(params, vdf.VDFChallenge{Input: []byte("proposal-a")})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	_, err = manager.GetProof(id)
	if !errors.Is(err, vdfjob.ErrJobNotReady) {
		t.Errorf("expected ErrJobNotReady, got %v", err)
	}
}

func TestBypassJob_WorksOutsideDevMode(t *testing.T) {
	manager := vdfjob.NewManager(false, nil)

	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 50_000_000, YieldInterval: 1000}
	id, err := manager.CreateJob(params, vdf.VDFChallenge{Input: []byte("proposal-a")})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	if err := manager.BypassJob(id); err != nil {
		t.Fatalf("bypass job: %v", err)
	}

	snapshot := waitForStatus(t, manager, id, vdfjob.StatusBypassed, 2*time.Second)
	if snapshot.Status != vdfjob.StatusBypassed {
		t.Fatalf("expected status bypassed, got %s", snapshot.Status)
	}

	proof, err := manager.GetProof(id)
	if err == nil {
		t.Errorf("expected GetProof to fail for a bypassed job, got proof %+v", proof)
	}
}

func TestGetMockProof_RequiresDevMode(t *testing.T) {
	manager := vdfjob.NewManager(false, nil)
	txHash := []byte("0xdeadbeef")

	_, err := manager.GetMockProof(txHash, 1000, vdf.DefaultModulus)
	if !errors.Is(err, vdfjob.ErrDevModeRequired) {
		t.Errorf("expected ErrDevModeRequired, got %v", err)
	}

	devManager := vdfjob.NewManager(true, nil)
	proof, err := devManager.GetMockProof(txHash, 1000, vdf.DefaultModulus)
	if err != nil {
		t.Fatalf("get mock proof: %v", err)
	}
	if proof.Y == nil || proof.Pi == nil {
		t.Fatal("expected a non-nil mock proof")
	}

	// The mock proof is deliberately not a valid VDF proof: it is built
	// from a hash of the inputs, not a real sequential squaring, and
	// must not verify under the real iteration count.
	realParams := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 1000}
	if vdf.Verify(realParams, txHash, proof) {
		t.Error("expected the mock proof to fail real verification")
	}

	again, err := devManager.GetMockProof(txHash, 1000, vdf.DefaultModulus)
	if err != nil {
		t.Fatalf("get mock proof: %v", err)
	}
	if proof.Y.Cmp(again.Y) != 0 || proof.Pi.Cmp(again.Pi) != 0 {
		t.Error("expected GetMockProof to be deterministic for the same inputs")
	}
}

func TestCleanup_OnlyRemovesOldTerminalJobs(t *testing.T) {
	manager := vdfjob.NewManager(false, nil)

	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 500, YieldInterval: 10}
	finishedID, err := manager.CreateJob(params, vdf.VDFChallenge{Input: []byte("proposal-b")})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	waitForStatus(t, manager, finishedID, vdfjob.StatusReady, 5*time.Second)

	inFlightParams := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 50_000_000, YieldInterval: 1000}
	inFlightID, err := manager.CreateJob(inFlightParams, vdf.VDFChallenge{Input: []byte("proposal-b")})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	removed := manager.Cleanup(0)
	if removed != 1 {
		t.Errorf("expected Cleanup to remove exactly 1 job, removed %d", removed)
	}

	if _, err := manager.GetStatus(finishedID); !errors.Is(err, vdfjob.ErrUnknownJob) {
		t.Errorf("expected the finished job to be gone after Cleanup, got err=%v", err)
	}
	if _, err := manager.GetStatus(inFlightID); err != nil {
		t.Errorf("expected the in-flight job to survive Cleanup, got err=%v", err)
	}
}

func TestSnapshot_EstimatedSecondsRemaining(t *testing.T) {
	snapshot := &vdfjob.Snapshot{
		Done:      100,
		Total:     1000,
		StartedAt: time.Now().Add(-1 * time.Second),
	}

	remaining, ok := snapshot.EstimatedSecondsRemaining()
	if !ok {
		t.Fatal("expected an estimate to be available")
	}
	if remaining <= 0 {
		t.Errorf("expected a positive remaining estimate, got %f", remaining)
	}

	noProgress := &vdfjob.Snapshot{Done: 0, Total: 1000, StartedAt: time.Now()}
	if _, ok := noProgress.EstimatedSecondsRemaining(); ok {
		t.Error("expected no estimate before any progress has been made")
	}
}
