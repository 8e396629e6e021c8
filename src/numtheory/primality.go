package numtheory

import (
	"math/big"
	"math/rand/v2"
)

// DefaultRounds is the Miller-Rabin round count used by general IsPrime
// callers (spec: 64 rounds).
const DefaultRounds = 64

// KeyGenRounds is the round count used while generating RSA primes, where a
// false positive is much more costly (spec: 128 rounds).
const KeyGenRounds = 128

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
)

// IsPrime runs the Miller-Rabin probabilistic primality test on c using
// rounds independent witnesses. It returns true for "probably prime", false
// for "definitely composite". Witnesses are drawn from a fast, non-crypto
// per-call PRNG (math/rand/v2) - Miller-Rabin witnesses don't need
// cryptographic unpredictability, only uniform coverage of [2, c-2].
func IsPrime(c *big.Int, rounds int) bool {
	if c.Cmp(big3) <= 0 {
		return c.Cmp(big2) == 0 || c.Cmp(big3) == 0
	}
	if c.Bit(0) == 0 {
		return false
	}

	// Factor c-1 = 2^s * d with d odd.
	cMinus1 := new(big.Int).Sub(c, big1)
	d := new(big.Int).Set(cMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	min := big2
	max := new(big.Int).Sub(c, big2) // inclusive upper bound

	for iter := 0; iter < rounds; iter++ {
		a := randomInRange(rng, min, max)
		x := new(big.Int).Exp(a, d, c)
		if x.Cmp(big1) == 0 || x.Cmp(cMinus1) == 0 {
			continue
		}

		composite := true
		for i := 1; i < s; i++ {
			x.Exp(x, big2, c)
			if x.Cmp(cMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}

	return true
}

// randomInRange returns a uniform random integer in [min, max] using rng.
func randomInRange(rng *rand.Rand, min, max *big.Int) *big.Int {
	span := new(big.Int).Sub(max, min)
	span.Add(span, big1)

	bitLen := span.BitLen()
	byteLen := (bitLen + 7) / 8
	buf := make([]byte, byteLen)

	result := new(big.Int)
	for {
		for i := range buf {
			buf[i] = byte(rng.UintN(256))
		}
		result.SetBytes(buf)
		// Mask down to bitLen so the rejection loop terminates quickly.
		if excess := byteLen*8 - bitLen; excess > 0 {
			result.Rsh(result, uint(excess))
		}
		if result.Cmp(span) < 0 {
			break
		}
	}
	return result.Add(result, min)
}
