package numtheory

import (
	"context"
	"math/big"
	"testing"
	"time"
)

func TestFactoriseSemiprime(t *testing.T) {
	// 3233 = 61 * 53.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, q, err := FactoriseSemiprime(ctx, big.NewInt(3233))
	if err != nil {
		t.Fatalf("FactoriseSemiprime(3233) failed: %v", err)
	}

	product := new(big.Int).Mul(p, q)
	if product.Int64() != 3233 {
		t.Errorf("p*q = %d, want 3233", product.Int64())
	}
	if (p.Int64() != 61 && p.Int64() != 53) || (q.Int64() != 61 && q.Int64() != 53) {
		t.Errorf("FactoriseSemiprime(3233) = (%d, %d), want {61,53}", p.Int64(), q.Int64())
	}
}

func TestFactoriseSemiprimeRejectsTrivial(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// A prime has no non-trivial factorisation.
	if _, _, err := FactoriseSemiprime(ctx, big.NewInt(97)); err == nil {
		t.Errorf("expected an error factorising a prime")
	}
}
