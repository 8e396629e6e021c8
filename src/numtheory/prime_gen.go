package numtheory

import (
	"context"
	"crypto/rand"
	"math/big"

	"rubbishrsa/src/parallel"
	"rubbishrsa/src/rerr"
)

// GeneratePrime returns a prime of approximately bits bits. It samples
// candidates of the form 2*r+1 with r drawn uniformly from
// [2^(bits-2), 2^(bits-1)] (so the candidate is always odd and exactly
// bits bits long, except for r = 2^(bits-1), which gives 2^bits+1),
// testing each with IsPrime at KeyGenRounds.
//
// The search runs on one worker per logical CPU (see parallel.Search); each
// worker owns its own crypto/rand-backed sampling so no entropy source is
// shared across goroutines without synchronisation.
func GeneratePrime(ctx context.Context, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, rerr.New(rerr.InvalidArgument, "GeneratePrime", "bits", errBitsTooSmall)
	}

	min := new(big.Int).Lsh(big1, uint(bits-2))
	span := new(big.Int).Sub(new(big.Int).Lsh(big1, uint(bits-1)), min)
	span.Add(span, big1)

	result, ok := parallel.Search(ctx, 0, func(ctx context.Context, workerID int) (*big.Int, parallel.Outcome) {
		r, err := rand.Int(rand.Reader, span)
		if err != nil {
			return nil, parallel.Continue
		}
		r.Add(r, min)

		candidate := new(big.Int).Lsh(r, 1)
		candidate.Add(candidate, big1)

		if IsPrime(candidate, KeyGenRounds) {
			return candidate, parallel.Found
		}
		return nil, parallel.Continue
	})
	if !ok {
		// Only reachable if the context was cancelled out from under us.
		return nil, rerr.New(rerr.InvalidArgument, "GeneratePrime", "ctx", ctx.Err())
	}
	return result, nil
}

type errBitsTooSmallT struct{}

func (errBitsTooSmallT) Error() string { return "bits must be at least 2" }

var errBitsTooSmall = errBitsTooSmallT{}
