package attack

import (
	"context"
	"math/big"
	"strings"
	"testing"
	"time"

	"rubbishrsa/src/codec"
	"rubbishrsa/src/keys"
)

func smallKey(t *testing.T) *keys.PrivateKey {
	t.Helper()
	priv, err := keys.FromFactors(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	if err != nil {
		t.Fatalf("FromFactors failed: %v", err)
	}
	return priv
}

func TestBruteForcePlaintextRange(t *testing.T) {
	priv := smallKey(t)
	m := big.NewInt(42)
	c, err := priv.Pub.RawEncrypt(m)
	if err != nil {
		t.Fatalf("RawEncrypt failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	found, ok := BruteForcePlaintextRange(ctx, priv.Pub, c, big.NewInt(0), big.NewInt(100), 4)
	if !ok {
		t.Fatalf("expected to find the plaintext")
	}
	if found.Cmp(m) != 0 {
		t.Errorf("found %s, want %s", found, m)
	}
}

func TestBruteForcePlaintextRangeNotFound(t *testing.T) {
	priv := smallKey(t)
	c, err := priv.Pub.RawEncrypt(big.NewInt(500))
	if err != nil {
		t.Fatalf("RawEncrypt failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, ok := BruteForcePlaintextRange(ctx, priv.Pub, c, big.NewInt(0), big.NewInt(50), 2)
	if ok {
		t.Errorf("expected no match in a range that excludes the plaintext")
	}
}

func TestBruteForcePlaintextStream(t *testing.T) {
	priv := smallKey(t)
	m := big.NewInt(7)
	c, err := priv.Pub.RawEncrypt(m)
	if err != nil {
		t.Fatalf("RawEncrypt failed: %v", err)
	}

	candidates := strings.NewReader("1\n2\n3\n7\n8\n9\n")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	found, ok := BruteForcePlaintextStream(ctx, priv.Pub, c, candidates, '\n', true, 2)
	if !ok {
		t.Fatalf("expected to find the plaintext in the candidate stream")
	}
	if found.Cmp(m) != 0 {
		t.Errorf("found %s, want %s", found, m)
	}
}

func TestBruteForceSignature(t *testing.T) {
	priv := smallKey(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	target := big.NewInt(99)
	accept := func(candidate *big.Int) bool { return candidate.Cmp(target) == 0 }

	g, ok := BruteForceSignature(ctx, priv.Pub, accept, 2)
	if !ok {
		t.Fatalf("expected to find a forged signature")
	}

	valid, err := priv.Pub.RawVerify(target, g)
	if err != nil {
		t.Fatalf("RawVerify failed: %v", err)
	}
	if !valid {
		t.Errorf("forged signature %s does not verify against target %s", g, target)
	}
}

func TestEncMultiply(t *testing.T) {
	priv := smallKey(t)
	m := big.NewInt(5)
	c, err := priv.Pub.RawEncrypt(m)
	if err != nil {
		t.Fatalf("RawEncrypt failed: %v", err)
	}

	scaled, err := EncMultiply(priv.Pub, c, big.NewInt(3))
	if err != nil {
		t.Fatalf("EncMultiply failed: %v", err)
	}

	decoded, err := priv.RawDecrypt(scaled)
	if err != nil {
		t.Fatalf("RawDecrypt failed: %v", err)
	}

	want := new(big.Int).Mod(big.NewInt(15), priv.N())
	if decoded.Cmp(want) != 0 {
		t.Errorf("EncMultiply: decrypt(enc_multiply(enc(5), 3)) = %s, want %s", decoded, want)
	}
}

func TestSigForgeMultiply(t *testing.T) {
	priv := smallKey(t)
	m1 := big.NewInt(4)
	m2 := big.NewInt(6)

	s1, err := priv.RawSign(m1)
	if err != nil {
		t.Fatalf("RawSign failed: %v", err)
	}
	s2, err := priv.RawSign(m2)
	if err != nil {
		t.Fatalf("RawSign failed: %v", err)
	}

	forged := SigForgeMultiply(priv.Pub, s1, s2)

	product := new(big.Int).Mod(new(big.Int).Mul(m1, m2), priv.N())
	valid, err := priv.Pub.RawVerify(product, forged)
	if err != nil {
		t.Fatalf("RawVerify failed: %v", err)
	}
	if !valid {
		t.Errorf("SigForgeMultiply produced a signature that doesn't verify on m1*m2")
	}
}

func TestCrackKey(t *testing.T) {
	priv := smallKey(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cracked, err := CrackKey(ctx, priv.Pub)
	if err != nil {
		t.Fatalf("CrackKey failed: %v", err)
	}
	if cracked.D().Cmp(priv.D()) != 0 {
		t.Errorf("CrackKey recovered d=%s, want %s", cracked.D(), priv.D())
	}

	m := big.NewInt(123)
	c, err := priv.Pub.RawEncrypt(m)
	if err != nil {
		t.Fatalf("RawEncrypt failed: %v", err)
	}
	got, err := cracked.RawDecrypt(c)
	if err != nil {
		t.Fatalf("RawDecrypt failed: %v", err)
	}
	if got.Cmp(m) != 0 {
		t.Errorf("cracked key's recovered d does not decrypt correctly")
	}
}

func TestHexCiphertextRoundTrip(t *testing.T) {
	// Sanity check that hex round trips the way operations.Decrypt expects.
	n := big.NewInt(3233)
	hex := codec.BigIntToHex(n)
	got, err := codec.HexToBigInt(hex)
	if err != nil {
		t.Fatalf("HexToBigInt failed: %v", err)
	}
	if got.Cmp(n) != 0 {
		t.Errorf("hex round trip mismatch")
	}
}
