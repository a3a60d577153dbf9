package dkg

import (
	"testing"

	"github.com/defiguardian/guardian-core/internal/testutils"
)

func TestGenerate_S1(t *testing.T) {
	cfg := Config{Threshold: 7, TotalParticipants: 10}

	dealer := NewDealer()
	out, err := dealer.Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutils.AssertIntsEqual(t, "guardian shares", 10, len(out.GuardianShares))
	testutils.AssertIntsEqual(t, "vss commitments", 7, len(out.VSSCommitments))

	pubBytes, err := out.GroupPublicKey.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal group public key: %v", err)
	}
	testutils.AssertIntsEqual(t, "group public key length", 32, len(pubBytes))

	testutils.AssertPointsEqual(t, "vssCommitments[0] vs groupPublicKey", out.GroupPublicKey, out.VSSCommitments[0])

	suite := NewSuite()
	for i, share := range out.GuardianShares {
		if !VerifyShare(suite, share, out.VSSCommitments) {
			t.Errorf("share %d failed verification", i)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		cfg     Config
		wantErr bool
	}{
		"valid minimal":        {Config{Threshold: 1, TotalParticipants: 1}, false},
		"valid t equals n":     {Config{Threshold: 10, TotalParticipants: 10}, false},
		"threshold exceeds n":  {Config{Threshold: 11, TotalParticipants: 10}, true},
		"zero threshold":       {Config{Threshold: 0, TotalParticipants: 10}, true},
		"negative n":           {Config{Threshold: 1, TotalParticipants: -1}, true},
		"exceeds max guardian": {Config{Threshold: 1, TotalParticipants: 256}, true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.wantErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !test.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestVerifyShare_WrongParticipantIDFailsVerification(t *testing.T) {
	dealer := NewDealer()
	out, err := dealer.Generate(Config{Threshold: 2, TotalParticipants: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	suite := NewSuite()
	tampered := out.GuardianShares[0]
	tampered.ParticipantID = 1 // pretend this share belongs to guardian 1, not 0

	if VerifyShare(suite, tampered, out.VSSCommitments) {
		t.Error("expected verification to fail for a share evaluated under the wrong participant id")
	}
}
