package numtheory

import (
	"context"
	"math/big"
	"testing"
)

func TestIsPrimeKnownPrimes(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 97, 541, 7919, 104729}
	for _, p := range primes {
		if !IsPrime(big.NewInt(p), DefaultRounds) {
			t.Errorf("IsPrime(%d) = false, want true", p)
		}
	}
}

func TestIsPrimeKnownComposites(t *testing.T) {
	composites := []int64{0, 1, 4, 6, 8, 9, 15, 21, 25, 100, 561, 1105, 9999}
	for _, c := range composites {
		if IsPrime(big.NewInt(c), DefaultRounds) {
			t.Errorf("IsPrime(%d) = true, want false", c)
		}
	}
}

func TestIsPrimeNegative(t *testing.T) {
	if IsPrime(big.NewInt(-7), DefaultRounds) {
		t.Errorf("IsPrime(-7) = true, want false")
	}
}

func TestIsPrimeCarmichaelNumber(t *testing.T) {
	// 561 = 3 * 11 * 17 is the smallest Carmichael number; Miller-Rabin
	// (unlike Fermat) must still reject it.
	if IsPrime(big.NewInt(561), DefaultRounds) {
		t.Errorf("IsPrime(561) = true, want false (Carmichael number)")
	}
}

func TestGeneratePrimeProducesPrimesOfRequestedSize(t *testing.T) {
	for _, bits := range []int{8, 16, 24} {
		p, err := GeneratePrime(context.Background(), bits)
		if err != nil {
			t.Fatalf("GeneratePrime(%d) failed: %v", bits, err)
		}
		// The only candidate longer than bits bits is 2^bits+1 (r at the
		// inclusive top of its range).
		top := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		top.Add(top, big.NewInt(1))
		if p.BitLen() != bits && p.Cmp(top) != 0 {
			t.Errorf("GeneratePrime(%d) returned a %d-bit value", bits, p.BitLen())
		}
		if !IsPrime(p, KeyGenRounds) {
			t.Errorf("GeneratePrime(%d) = %s is not prime", bits, p)
		}
		if p.Bit(0) != 1 {
			t.Errorf("GeneratePrime(%d) = %s is even", bits, p)
		}
	}
}
