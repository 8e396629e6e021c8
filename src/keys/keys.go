// Package keys implements rubbishrsa's public/private key types and the raw
// (unpadded) RSA primitives: encrypt, decrypt, sign, verify.
package keys

import (
	"context"
	"math/big"

	"rubbishrsa/src/numtheory"
	"rubbishrsa/src/rerr"
)

// DefaultExponent is the public exponent used when one isn't specified.
var DefaultExponent = big.NewInt(65537)

// KeyView is the read-only capability every key shape satisfies: just
// enough to encrypt or verify. PrivateKey holds a PublicKey and forwards E
// and N to it, so it satisfies KeyView itself - anywhere the spec says an operation "accepts a
// public key or a private key", it should take a KeyView.
type KeyView interface {
	E() *big.Int
	N() *big.Int
}

// PublicKey is the pair (e, n).
type PublicKey struct {
	e *big.Int
	n *big.Int
}

// NewPublicKey builds a PublicKey from its two fields.
func NewPublicKey(e, n *big.Int) PublicKey {
	return PublicKey{e: e, n: n}
}

func (k PublicKey) E() *big.Int { return k.e }
func (k PublicKey) N() *big.Int { return k.n }

func checkOperand(op string, v, n *big.Int) error {
	if v.Sign() < 0 || v.Cmp(n) >= 0 {
		return rerr.New(rerr.InvalidArgument, op, "operand", errOutOfRange)
	}
	return nil
}

type errOutOfRangeT struct{}

func (errOutOfRangeT) Error() string { return "operand must satisfy 0 <= x < n" }

var errOutOfRange = errOutOfRangeT{}

// RawEncrypt returns m^e mod n.
func (k PublicKey) RawEncrypt(m *big.Int) (*big.Int, error) {
	if err := checkOperand("PublicKey.RawEncrypt", m, k.n); err != nil {
		return nil, err
	}
	return new(big.Int).Exp(m, k.e, k.n), nil
}

// RawVerify reports whether s is a valid signature on m: s^e mod n == m.
func (k PublicKey) RawVerify(m, s *big.Int) (bool, error) {
	if err := checkOperand("PublicKey.RawVerify", s, k.n); err != nil {
		return false, err
	}
	expected := new(big.Int).Exp(s, k.e, k.n)
	return expected.Cmp(m) == 0, nil
}

// PrivateKey is the triple (e, n, d); it is a superset of a PublicKey.
type PrivateKey struct {
	Pub PublicKey
	d   *big.Int
}

func (k PrivateKey) E() *big.Int { return k.Pub.E() }
func (k PrivateKey) N() *big.Int { return k.Pub.N() }
func (k PrivateKey) D() *big.Int { return k.d }

// RawDecrypt returns c^d mod n.
func (k PrivateKey) RawDecrypt(c *big.Int) (*big.Int, error) {
	if err := checkOperand("PrivateKey.RawDecrypt", c, k.Pub.n); err != nil {
		return nil, err
	}
	return new(big.Int).Exp(c, k.d, k.Pub.n), nil
}

// RawSign returns m^d mod n. Signing and decryption are the same operation
// in textbook RSA.
func (k PrivateKey) RawSign(m *big.Int) (*big.Int, error) {
	if err := checkOperand("PrivateKey.RawSign", m, k.Pub.n); err != nil {
		return nil, err
	}
	return new(big.Int).Exp(m, k.d, k.Pub.n), nil
}

// FromFactors builds a private key from two prime factors and a public
// exponent. If e is nil, DefaultExponent is used. It fails with
// InvalidArgument if gcd(e, lambda(n)) != 1.
func FromFactors(p, q, e *big.Int) (*PrivateKey, error) {
	if e == nil {
		e = DefaultExponent
	}

	n := new(big.Int).Mul(p, q)
	lambda := numtheory.CarmichaelSemiprime(p, q)

	d, err := numtheory.ModInverse(e, lambda)
	if err != nil {
		return nil, rerr.New(rerr.InvalidArgument, "FromFactors", "e", err)
	}

	return &PrivateKey{Pub: PublicKey{e: e, n: n}, d: d}, nil
}

// MinBits is the smallest key size Generate will accept.
const MinBits = 16

// Generate creates a new private key with an approximately bits-bit
// modulus. To keep p and q noticeably different in length, p is generated
// with bits/2+4 bits and q with bits/2-3 bits.
func Generate(ctx context.Context, bits int) (*PrivateKey, error) {
	if bits < MinBits {
		return nil, rerr.New(rerr.InvalidArgument, "Generate", "bits", errBitsTooSmall)
	}

	p, err := numtheory.GeneratePrime(ctx, bits/2+4)
	if err != nil {
		return nil, rerr.New(rerr.InvalidArgument, "Generate", "p", err)
	}
	q, err := numtheory.GeneratePrime(ctx, bits/2-3)
	if err != nil {
		return nil, rerr.New(rerr.InvalidArgument, "Generate", "q", err)
	}

	return FromFactors(p, q, nil)
}

type errBitsTooSmallT struct{}

func (errBitsTooSmallT) Error() string { return "key size must be at least 16 bits" }

var errBitsTooSmall = errBitsTooSmallT{}

// Fields returns the key's decimal-string field map, for an opaque
// on-disk/on-wire serialisation owned by a collaborator (see utils.WriteKeyFile).
func (k PublicKey) Fields() map[string]*big.Int {
	return map[string]*big.Int{"e": k.e, "n": k.n}
}

// Fields returns the private key's decimal-string field map (e, n, d).
func (k PrivateKey) Fields() map[string]*big.Int {
	f := k.Pub.Fields()
	f["d"] = k.d
	return f
}

// PublicKeyFromFields builds a PublicKey from a field map produced by
// Fields, failing with ParseError if e or n is missing.
func PublicKeyFromFields(fields map[string]*big.Int) (PublicKey, error) {
	e, ok := fields["e"]
	if !ok {
		return PublicKey{}, rerr.New(rerr.ParseError, "PublicKeyFromFields", "e", errMissingField)
	}
	n, ok := fields["n"]
	if !ok {
		return PublicKey{}, rerr.New(rerr.ParseError, "PublicKeyFromFields", "n", errMissingField)
	}
	return PublicKey{e: e, n: n}, nil
}

// PrivateKeyFromFields builds a PrivateKey from a field map produced by
// Fields, failing with ParseError if e, n, or d is missing.
func PrivateKeyFromFields(fields map[string]*big.Int) (*PrivateKey, error) {
	pub, err := PublicKeyFromFields(fields)
	if err != nil {
		return nil, err
	}
	d, ok := fields["d"]
	if !ok {
		return nil, rerr.New(rerr.ParseError, "PrivateKeyFromFields", "d", errMissingField)
	}
	return &PrivateKey{Pub: pub, d: d}, nil
}

type errMissingFieldT struct{}

func (errMissingFieldT) Error() string { return "required key field is missing" }

var errMissingField = errMissingFieldT{}
