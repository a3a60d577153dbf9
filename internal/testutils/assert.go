package testutils

import (
	"math/big"
	"testing"

	"go.dedis.ch/kyber/v3"
)

// AssertIntsEqual checks if two integers are equal. If not, it reports a test
// failure.
func AssertIntsEqual(t *testing.T, description string, expected int, actual int) {
	if expected != actual {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertBigIntsEqual checks if two not-nil big integers are equal. If not, it
// reports a test failure.
func AssertBigIntsEqual(t *testing.T, description string, expected *big.Int, actual *big.Int) {
	if expected.Cmp(actual) != 0 {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertPointsEqual checks that two kyber group elements are equal under the
// curve's own Equal method (not a byte-for-byte reflect.DeepEqual, which
// would reject two differently-represented encodings of the same point). If
// not, it reports a test failure with both points' compressed encodings.
func AssertPointsEqual(t *testing.T, description string, expected kyber.Point, actual kyber.Point) {
	t.Helper()
	if expected == nil || actual == nil {
		if expected != actual {
			t.Errorf("unexpected %s\nexpected: %v\nactual:   %v\n", description, expected, actual)
		}
		return
	}
	if !expected.Equal(actual) {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertScalarsEqual checks that two kyber scalars are equal under the
// curve's own Equal method. If not, it reports a test failure.
func AssertScalarsEqual(t *testing.T, description string, expected kyber.Scalar, actual kyber.Scalar) {
	t.Helper()
	if expected == nil || actual == nil {
		if expected != actual {
			t.Errorf("unexpected %s\nexpected: %v\nactual:   %v\n", description, expected, actual)
		}
		return
	}
	if !expected.Equal(actual) {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}
