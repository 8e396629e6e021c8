package numtheory

import (
	"context"
	"math/big"
	"runtime"

	"rubbishrsa/src/parallel"
	"rubbishrsa/src/rerr"
)

// maxRhoWorkers bounds Pollard's rho parallelism: more workers than this
// just burn cores restarting from ever-smaller distinct seeds with
// diminishing returns.
const maxRhoWorkers = 128

// seedPrimes holds the first maxRhoWorkers primes, used as distinct starting
// points for each Pollard's rho worker so workers don't cycle in lockstep.
var seedPrimes = firstNPrimes(maxRhoWorkers)

func firstNPrimes(n int) []int64 {
	primes := make([]int64, 0, n)
	for candidate := int64(2); len(primes) < n; candidate++ {
		isPrime := true
		for _, p := range primes {
			if p*p > candidate {
				break
			}
			if candidate%p == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, candidate)
		}
	}
	return primes
}

// PollardRho returns a non-trivial factor of n with high probability. It
// spawns up to min(runtime.NumCPU(), 128) workers, each seeded with a
// distinct small prime as its starting x=y value, iterating
// x <- x^2+1 mod n, y <- (y^2+1)^2+1 mod n (y takes two steps per
// iteration of x), and computing g = gcd(|x-y|, n). The first worker to see
// g != 1 wins. If a worker's polynomial happens to collapse to g == n, it
// perturbs its additive constant and keeps going rather than reporting n as
// a factor.
func PollardRho(ctx context.Context, n *big.Int) (*big.Int, error) {
	if n.Cmp(big3) <= 0 {
		return nil, rerr.New(rerr.InvalidArgument, "PollardRho", "n", errNTooSmall)
	}

	workers := runtime.NumCPU()
	if workers > maxRhoWorkers {
		workers = maxRhoWorkers
	}

	result, ok := parallel.Search(ctx, workers, func(ctx context.Context, workerID int) (*big.Int, parallel.Outcome) {
		return rhoWorker(ctx, n, workerID)
	})
	if !ok {
		return nil, rerr.New(rerr.InvalidArgument, "PollardRho", "n", errRhoFailed)
	}
	return result, nil
}

// rhoWorker runs Floyd's cycle-finding variant of Pollard's rho to
// completion (or cancellation) for a single seed, restarting with a new
// additive constant whenever the current one degenerates (gcd == n).
func rhoWorker(ctx context.Context, n *big.Int, workerID int) (*big.Int, parallel.Outcome) {
	seed := big.NewInt(seedPrimes[workerID%len(seedPrimes)])
	c := big.NewInt(1)

	x := new(big.Int).Set(seed)
	y := new(big.Int).Set(seed)
	diff := new(big.Int)
	g := new(big.Int)

	f := func(v *big.Int) *big.Int {
		v.Mul(v, v)
		v.Add(v, c)
		v.Mod(v, n)
		return v
	}

	const checkEvery = 1 << 14
	for i := 0; ; i++ {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return nil, parallel.Exhausted
		}

		x = f(x)
		y = f(f(y))

		diff.Sub(x, y)
		diff.Abs(diff)
		if diff.Sign() == 0 {
			// Cycle detected with no factor found under this constant; try
			// another one instead of giving up on this worker entirely.
			c.Add(c, big1)
			x.Set(seed)
			y.Set(seed)
			continue
		}

		g.GCD(nil, nil, diff, n)
		if g.Cmp(big1) == 0 {
			continue
		}
		if g.Cmp(n) == 0 {
			// Degenerate polynomial for this constant: restart with a
			// different one rather than reporting n as a "factor".
			c.Add(c, big1)
			x.Set(seed)
			y.Set(seed)
			continue
		}

		return new(big.Int).Set(g), parallel.Found
	}
}

type errNTooSmallT struct{}

func (errNTooSmallT) Error() string { return "n must be greater than 3 to factor" }

var errNTooSmall = errNTooSmallT{}

type errRhoFailedT struct{}

func (errRhoFailedT) Error() string { return "pollard rho did not find a factor" }

var errRhoFailed = errRhoFailedT{}
