// Package numtheory implements the number-theoretic kernel rubbishrsa is
// built on: extended GCD, modular inverse, Miller-Rabin primality, parallel
// prime generation, Pollard's rho factoring, and the Carmichael function of
// a semiprime.
package numtheory

import (
	"math/big"

	"rubbishrsa/src/rerr"
)

// EGCD runs the extended Euclidean algorithm on a, b > 0 and returns g, x, y
// such that a*x + b*y = g = gcd(a, b). It maintains a 2x3 matrix whose rows
// are (x_i, y_i, r_i) with a*x_i + b*y_i = r_i, reducing the larger
// remainder by the floor-quotient of the other until one hits zero.
func EGCD(a, b *big.Int) (g, x, y *big.Int, err error) {
	if a.Sign() <= 0 || b.Sign() <= 0 {
		return nil, nil, nil, rerr.New(rerr.InvalidArgument, "EGCD", "a,b", errPositive)
	}

	// row[i] = {x_i, y_i, r_i}
	row0 := [3]*big.Int{big.NewInt(1), big.NewInt(0), new(big.Int).Set(a)}
	row1 := [3]*big.Int{big.NewInt(0), big.NewInt(1), new(big.Int).Set(b)}

	q := new(big.Int)
	tmp := new(big.Int)
	for {
		q.Div(row0[2], row1[2])
		for i := 0; i < 3; i++ {
			row0[i].Sub(row0[i], tmp.Mul(row1[i], q))
		}
		if row0[2].Sign() == 0 {
			return row1[2], row1[0], row1[1], nil
		}

		q.Div(row1[2], row0[2])
		for i := 0; i < 3; i++ {
			row1[i].Sub(row1[i], tmp.Mul(row0[i], q))
		}
		if row1[2].Sign() == 0 {
			return row0[2], row0[0], row0[1], nil
		}
	}
}

var errPositive = errGCDPositive{}

type errGCDPositive struct{}

func (errGCDPositive) Error() string { return "gcd requires positive a and b" }

// ModInverse returns a^-1 mod n, normalised into [0, n). It fails with
// InvalidArgument when gcd(a, n) != 1.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	g, x, _, err := EGCD(a, n)
	if err != nil {
		return nil, rerr.New(rerr.InvalidArgument, "ModInverse", "a,n", err)
	}
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, rerr.New(rerr.InvalidArgument, "ModInverse", "a,n", errNotCoprime)
	}
	if x.Sign() < 0 {
		x = new(big.Int).Add(x, n)
	}
	return x, nil
}

var errNotCoprime = errNotCoprimeT{}

type errNotCoprimeT struct{}

func (errNotCoprimeT) Error() string { return "a and n are not coprime" }

// LCM returns the lowest common multiple of a and b (both > 0).
func LCM(a, b *big.Int) *big.Int {
	g, _, _, err := EGCD(a, b)
	if err != nil {
		// EGCD's positivity requirement matches LCM's; a caller violating it
		// is a programming error, surfaced the same way EGCD surfaces it.
		panic(err)
	}
	l := new(big.Int).Div(a, g)
	return l.Mul(l, b)
}

// CarmichaelSemiprime returns lcm(p-1, q-1), the value of the Carmichael
// function for n = p*q where p and q are distinct primes.
func CarmichaelSemiprime(p, q *big.Int) *big.Int {
	one := big.NewInt(1)
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	return LCM(pm1, qm1)
}
