package vdf_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/defiguardian/guardian-core/internal/testutils"
	"github.com/defiguardian/guardian-core/vdf"
)

func TestProveThenVerify_S6(t *testing.T) {
	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 2000}
	input := []byte("test-proposal-123")

	proof, err := vdf.Prove(context.Background(), params, input)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	if !vdf.Verify(params, input, proof) {
		t.Error("expected the proof to verify")
	}
}

func TestNormalizeInput_MatchesWhatProveAndVerifyUse(t *testing.T) {
	input := []byte("test-proposal-123")
	x := vdf.NormalizeInput(input, vdf.DefaultModulus)

	if x.Sign() <= 0 || x.Cmp(vdf.DefaultModulus) >= 0 {
		t.Fatalf("expected a normalized x in (0, N), got %v", x)
	}

	again := vdf.NormalizeInput(input, vdf.DefaultModulus)
	testutils.AssertBigIntsEqual(t, "normalized x", x, again)

	other := vdf.NormalizeInput([]byte("a different proposal"), vdf.DefaultModulus)
	if x.Cmp(other) == 0 {
		t.Error("expected different inputs to normalize to different x values")
	}
}

func TestVerify_RejectsATamperedOutput(t *testing.T) {
	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 500}
	input := []byte("proposal-a")

	proof, err := vdf.Prove(context.Background(), params, input)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	tampered := &vdf.Proof{Y: new(big.Int).Add(proof.Y, big.NewInt(1)), Pi: proof.Pi}
	if vdf.Verify(params, input, tampered) {
		t.Error("expected verification to fail for a tampered y")
	}
}

func TestVerify_RejectsAMismatchedIterationCount(t *testing.T) {
	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 500}
	input := []byte("proposal-a")

	proof, err := vdf.Prove(context.Background(), params, input)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	wrongParams := params
	wrongParams.Iterations = 501
	if vdf.Verify(wrongParams, input, proof) {
		t.Error("expected verification to fail when T does not match the proving transcript")
	}
}

func TestVerify_RejectsAMismatchedInput(t *testing.T) {
	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 500}

	proof, err := vdf.Prove(context.Background(), params, []byte("proposal-a"))
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	if vdf.Verify(params, []byte("proposal-b"), proof) {
		t.Error("expected verification to fail against a different challenge input")
	}
}

func TestProve_ZeroIterationsBypass_S7(t *testing.T) {
	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 0}
	input := []byte("proposal-c")

	proof, err := vdf.Prove(context.Background(), params, input)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	testutils.AssertBigIntsEqual(t, "zero-iteration output", big.NewInt(0), proof.Y)
	testutils.AssertBigIntsEqual(t, "zero-iteration proof element", big.NewInt(0), proof.Pi)

	if !vdf.Verify(params, input, proof) {
		t.Error("expected the zero-iteration bypass proof to verify")
	}

	result := vdf.VerifyDetailed(params, input, proof)
	if !result.Valid || result.Message != "bypass" {
		t.Errorf("expected a valid bypass result, got %+v", result)
	}
}

func TestVerify_BypassSentinelIsUnconditional(t *testing.T) {
	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 0}

	sentinel := &vdf.Proof{Y: big.NewInt(0), Pi: big.NewInt(0)}
	if !vdf.Verify(params, []byte("whatever this transaction happens to be"), sentinel) {
		t.Error("expected the bypass sentinel to verify regardless of input")
	}

	if !vdf.Verify(params, nil, nil) {
		t.Error("expected the bypass sentinel to verify even with no input or proof material at all")
	}
}

func TestProve_RespectsCancellation(t *testing.T) {
	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 10_000_000, YieldInterval: 10}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := vdf.Prove(ctx, params, []byte("proposal-d"))
	if err == nil {
		t.Fatal("expected Prove to fail fast on an already-cancelled context")
	}
}

func TestProve_InvalidParams(t *testing.T) {
	_, err := vdf.Prove(context.Background(), vdf.Params{}, []byte("proposal-e"))
	if err == nil {
		t.Error("expected an error for a nil modulus")
	}
}

func TestProve_RejectsEmptyInput(t *testing.T) {
	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 500}
	if _, err := vdf.Prove(context.Background(), params, nil); err == nil {
		t.Error("expected an error for empty challenge input")
	}
}

func TestProof_BytesIsFixedWidth(t *testing.T) {
	params := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 100}
	proof, err := vdf.Prove(context.Background(), params, []byte("proposal-f"))
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	encoded, err := proof.Bytes(vdf.DefaultModulus)
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}

	expectedWidth := 2 * ((vdf.DefaultModulus.BitLen() + 7) / 8)
	testutils.AssertIntsEqual(t, "encoded proof width", expectedWidth, len(encoded))
}

func TestDefaultModulus_Is2048Bit(t *testing.T) {
	testutils.AssertIntsEqual(t, "default modulus bit length", 2048, vdf.DefaultModulus.BitLen())
}

func TestProve_YieldIntervalDoesNotChangeTheResult(t *testing.T) {
	input := []byte("proposal-g")

	coarse := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 5000, YieldInterval: 100000}
	fine := vdf.Params{Modulus: vdf.DefaultModulus, Iterations: 5000, YieldInterval: 1}

	deadline, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p1, err := vdf.Prove(deadline, coarse, input)
	if err != nil {
		t.Fatalf("prove (coarse yield): %v", err)
	}
	p2, err := vdf.Prove(deadline, fine, input)
	if err != nil {
		t.Fatalf("prove (fine yield): %v", err)
	}

	testutils.AssertBigIntsEqual(t, "y", p1.Y, p2.Y)
	testutils.AssertBigIntsEqual(t, "pi", p1.Pi, p2.Pi)
}
