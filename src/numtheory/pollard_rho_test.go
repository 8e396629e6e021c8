package numtheory

import (
	"context"
	"math/big"
	"testing"
	"time"
)

func TestPollardRhoFindsFactor(t *testing.T) {
	// 3233 = 61 * 53.
	n := big.NewInt(3233)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f, err := PollardRho(ctx, n)
	if err != nil {
		t.Fatalf("PollardRho(3233) failed: %v", err)
	}
	if f.Int64() != 61 && f.Int64() != 53 {
		t.Errorf("PollardRho(3233) = %d, want 61 or 53", f.Int64())
	}

	other := new(big.Int).Div(n, f)
	if other.Sign() == 0 || new(big.Int).Mul(f, other).Cmp(n) != 0 {
		t.Errorf("factor %d does not divide 3233 evenly", f.Int64())
	}
}

func TestPollardRhoLargerSemiprime(t *testing.T) {
	// 101 * 10007 = 1010707.
	n := big.NewInt(1010707)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	f, err := PollardRho(ctx, n)
	if err != nil {
		t.Fatalf("PollardRho(1010707) failed: %v", err)
	}
	if f.Int64() != 101 && f.Int64() != 10007 {
		t.Errorf("PollardRho(1010707) = %d, want 101 or 10007", f.Int64())
	}
}

func TestPollardRhoRejectsSmallN(t *testing.T) {
	if _, err := PollardRho(context.Background(), big.NewInt(3)); err == nil {
		t.Errorf("expected error for n <= 3")
	}
}

func TestPollardRhoRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A large prime has no non-trivial factor; cancellation must still
	// return promptly rather than spinning forever.
	prime := new(big.Int)
	prime.SetString("2305843009213693951", 10) // a Mersenne prime
	if _, err := PollardRho(ctx, prime); err == nil {
		t.Errorf("expected an error when context is already cancelled")
	}
}
