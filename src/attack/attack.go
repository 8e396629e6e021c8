// Package attack implements rubbishrsa's parallel attack engine: plaintext
// brute force over a candidate space, signature brute force against a
// caller-supplied predicate, invisible-suffix-tolerant forgery, the
// homomorphic helpers that make these attacks possible, and the key
// cracker that factors a public modulus back into a private key.
package attack

import (
	"context"
	"io"
	"math/big"
	"runtime"
	"sync"

	"rubbishrsa/src/codec"
	"rubbishrsa/src/keys"
	"rubbishrsa/src/numtheory"
	"rubbishrsa/src/parallel"
	"rubbishrsa/src/rerr"
)

// Candidate is a per-worker candidate producer: it returns the next
// plaintext to try for the given workerID, or ok=false when the space is
// exhausted. It may be called from multiple workers concurrently and must
// serialise itself internally if it has shared state.
type Candidate func(workerID int) (value *big.Int, ok bool)

// BruteForcePlaintext spawns workers goroutines (0 meaning hardware
// concurrency), each repeatedly pulling a candidate from next and testing
// candidate^e mod n == ciphertext. The first match wins; returns
// ok=false if the candidate space is exhausted without one.
func BruteForcePlaintext(ctx context.Context, pubkey keys.KeyView, ciphertext *big.Int, next Candidate, workers int) (*big.Int, bool) {
	n := pubkey.N()
	return parallel.Search(ctx, workers, func(_ context.Context, workerID int) (*big.Int, parallel.Outcome) {
		cand, ok := next(workerID)
		if !ok {
			return nil, parallel.Exhausted
		}
		if cand.Sign() < 0 || cand.Cmp(n) >= 0 {
			// A candidate outside [0, n) cannot possibly match; skip it.
			return nil, parallel.Continue
		}
		enc := new(big.Int).Exp(cand, pubkey.E(), n)
		if enc.Cmp(ciphertext) == 0 {
			return cand, parallel.Found
		}
		return nil, parallel.Continue
	})
}

// BruteForcePlaintextStream wraps BruteForcePlaintext with a producer that
// reads successive delim-separated tokens from r under a single shared
// lock, converting each one via codec.HexToBigInt or codec.ASCIIToBigInt.
func BruteForcePlaintextStream(ctx context.Context, pubkey keys.KeyView, ciphertext *big.Int, r io.Reader, delim byte, asHex bool, workers int) (*big.Int, bool) {
	scanner := codec.NewLineScanner(r, delim)
	var mu sync.Mutex

	next := func(int) (*big.Int, bool) {
		mu.Lock()
		defer mu.Unlock()
		if !scanner.Scan() {
			return nil, false
		}
		token := scanner.Text()
		if asHex {
			n, err := codec.HexToBigInt(token)
			if err != nil {
				return nil, false
			}
			return n, true
		}
		return codec.ASCIIToBigInt(token), true
	}

	return BruteForcePlaintext(ctx, pubkey, ciphertext, next, workers)
}

// BruteForcePlaintextRange wraps BruteForcePlaintext with a producer that
// partitions [min, max] (inclusive both ends) into arithmetic progressions,
// one per worker: worker i tries min+i, min+i+w, min+i+2w, ...
func BruteForcePlaintextRange(ctx context.Context, pubkey keys.KeyView, ciphertext *big.Int, min, max *big.Int, workers int) (*big.Int, bool) {
	if min.Cmp(max) > 0 {
		return nil, false
	}
	if workers <= 0 {
		workers = defaultWorkers()
	}

	counters := make([]*big.Int, workers)
	var mu sync.Mutex
	for i := range counters {
		counters[i] = new(big.Int).Add(min, big.NewInt(int64(i)))
	}
	step := big.NewInt(int64(workers))

	next := func(workerID int) (*big.Int, bool) {
		mu.Lock()
		defer mu.Unlock()
		cur := counters[workerID]
		if cur.Cmp(max) > 0 {
			return nil, false
		}
		result := new(big.Int).Set(cur)
		cur.Add(cur, step)
		return result, true
	}

	return BruteForcePlaintext(ctx, pubkey, ciphertext, next, workers)
}

// AcceptFunc reports whether candidate is an acceptable "decryption" for a
// forged signature search.
type AcceptFunc func(candidate *big.Int) bool

// BruteForceSignature searches for a value g in [0, n) such that
// accept(g^e mod n) is true. Worker i starts at g=i and steps by the
// worker count.
func BruteForceSignature(ctx context.Context, pubkey keys.KeyView, accept AcceptFunc, workers int) (*big.Int, bool) {
	if workers <= 0 {
		workers = defaultWorkers()
	}
	n := pubkey.N()
	step := big.NewInt(int64(workers))

	counters := make([]*big.Int, workers)
	var mu sync.Mutex
	for i := range counters {
		counters[i] = big.NewInt(int64(i))
	}

	return parallel.Search(ctx, workers, func(_ context.Context, workerID int) (*big.Int, parallel.Outcome) {
		mu.Lock()
		cur := counters[workerID]
		if cur.Cmp(n) >= 0 {
			mu.Unlock()
			return nil, parallel.Exhausted
		}
		g := new(big.Int).Set(cur)
		cur.Add(cur, step)
		mu.Unlock()

		decoded := new(big.Int).Exp(g, pubkey.E(), n)
		if accept(decoded) {
			return g, parallel.Found
		}
		return nil, parallel.Continue
	})
}

// EncMultiply returns the encryption of v*m (mod n), given the encryption c
// of the unknown plaintext m. This is textbook RSA's multiplicative
// homomorphism.
func EncMultiply(pubkey keys.KeyView, c, v *big.Int) (*big.Int, error) {
	ev := new(big.Int).Exp(v, pubkey.E(), pubkey.N())
	result := ev.Mul(ev, c)
	return result.Mod(result, pubkey.N()), nil
}

// SigForgeMultiply combines signatures on m1 and m2 into a valid signature
// on m1*m2 mod n, again exploiting the homomorphic property.
func SigForgeMultiply(pubkey keys.KeyView, s1, s2 *big.Int) *big.Int {
	result := new(big.Int).Mul(s1, s2)
	return result.Mod(result, pubkey.N())
}

// CrackKey recovers a private key from a public key alone by factoring n.
func CrackKey(ctx context.Context, pubkey keys.PublicKey) (*keys.PrivateKey, error) {
	p, q, err := numtheory.FactoriseSemiprime(ctx, pubkey.N())
	if err != nil {
		return nil, rerr.New(rerr.InvalidArgument, "CrackKey", "n", err)
	}
	return keys.FromFactors(p, q, pubkey.E())
}

func defaultWorkers() int {
	// parallel.Search already defaults workers<=0 to runtime.NumCPU(); the
	// range/signature producers need the resolved count up front to build
	// their per-worker counters, so resolve it the same way here.
	return runtime.NumCPU()
}
