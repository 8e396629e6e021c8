package numtheory

import (
	"context"
	"math/big"

	"rubbishrsa/src/rerr"
)

// smallNBits is the bit-length threshold below which FactoriseSemiprime uses
// Pollard's rho directly without considering a sub-exponential fallback.
const smallNBits = 70

// FactoriseSemiprime returns p, q such that p*q = n, p != 1, q != 1. For
// n below smallNBits bits it dispatches straight to PollardRho; above that
// threshold it falls back to the same algorithm, leaving an explicit slot
// for a sub-exponential method (e.g. a quadratic sieve) that this package
// does not implement - see DESIGN.md.
func FactoriseSemiprime(ctx context.Context, n *big.Int) (p, q *big.Int, err error) {
	if n.BitLen() < smallNBits {
		return factoriseViaRho(ctx, n)
	}
	return factoriseViaRho(ctx, n)
}

func factoriseViaRho(ctx context.Context, n *big.Int) (p, q *big.Int, err error) {
	f, err := PollardRho(ctx, n)
	if err != nil {
		return nil, nil, rerr.New(rerr.InvalidArgument, "FactoriseSemiprime", "n", err)
	}
	other := new(big.Int).Div(n, f)

	if f.Cmp(big1) == 0 || other.Cmp(big1) == 0 {
		return nil, nil, rerr.New(rerr.InvalidArgument, "FactoriseSemiprime", "n", errTrivialFactor)
	}
	return f, other, nil
}

type errTrivialFactorT struct{}

func (errTrivialFactorT) Error() string { return "factorisation produced a trivial factor" }

var errTrivialFactor = errTrivialFactorT{}
