package keys

import (
	"context"
	"math/big"
	"testing"
	"time"
)

func TestFromFactorsWorkedExample(t *testing.T) {
	// p=11, q=17, e=7: n=187, lambda=80, d=23.
	priv, err := FromFactors(big.NewInt(11), big.NewInt(17), big.NewInt(7))
	if err != nil {
		t.Fatalf("FromFactors failed: %v", err)
	}
	if priv.N().Int64() != 187 {
		t.Errorf("n = %d, want 187", priv.N().Int64())
	}
	if priv.D().Int64() != 23 {
		t.Errorf("d = %d, want 23", priv.D().Int64())
	}
}

func TestRawEncryptDecryptRoundTrip(t *testing.T) {
	priv, err := FromFactors(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	if err != nil {
		t.Fatalf("FromFactors failed: %v", err)
	}

	m := big.NewInt(1234)
	c, err := priv.Pub.RawEncrypt(m)
	if err != nil {
		t.Fatalf("RawEncrypt failed: %v", err)
	}
	got, err := priv.RawDecrypt(c)
	if err != nil {
		t.Fatalf("RawDecrypt failed: %v", err)
	}
	if got.Cmp(m) != 0 {
		t.Errorf("decrypt(encrypt(m)) = %s, want %s", got, m)
	}
}

func TestRawSignVerifyRoundTrip(t *testing.T) {
	priv, err := FromFactors(big.NewInt(61), big.NewInt(53), nil)
	if err != nil {
		t.Fatalf("FromFactors failed: %v", err)
	}

	m := big.NewInt(42)
	s, err := priv.RawSign(m)
	if err != nil {
		t.Fatalf("RawSign failed: %v", err)
	}
	valid, err := priv.Pub.RawVerify(m, s)
	if err != nil {
		t.Fatalf("RawVerify failed: %v", err)
	}
	if !valid {
		t.Errorf("RawVerify rejected a signature it just produced")
	}

	forged, err := priv.Pub.RawVerify(big.NewInt(43), s)
	if err != nil {
		t.Fatalf("RawVerify failed: %v", err)
	}
	if forged {
		t.Errorf("RawVerify accepted a signature for the wrong message")
	}
}

func TestRawOperationsRejectOutOfRangeOperands(t *testing.T) {
	priv, err := FromFactors(big.NewInt(11), big.NewInt(17), big.NewInt(7))
	if err != nil {
		t.Fatalf("FromFactors failed: %v", err)
	}

	if _, err := priv.Pub.RawEncrypt(big.NewInt(-1)); err == nil {
		t.Errorf("expected error encrypting a negative operand")
	}
	if _, err := priv.Pub.RawEncrypt(priv.N()); err == nil {
		t.Errorf("expected error encrypting an operand equal to n")
	}
}

func TestFromFactorsRejectsNonCoprimeExponent(t *testing.T) {
	// lambda(11,17) = 80; e=4 shares a factor of 4 with 80.
	if _, err := FromFactors(big.NewInt(11), big.NewInt(17), big.NewInt(4)); err == nil {
		t.Errorf("expected an error for an exponent not coprime with lambda(n)")
	}
}

func TestGenerateRejectsTooFewBits(t *testing.T) {
	if _, err := Generate(context.Background(), 8); err == nil {
		t.Errorf("expected an error for bits < MinBits")
	}
}

func TestGenerateProducesWorkingKey(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	priv, err := Generate(ctx, 64)
	if err != nil {
		t.Fatalf("Generate(64) failed: %v", err)
	}

	m := big.NewInt(7)
	c, err := priv.Pub.RawEncrypt(m)
	if err != nil {
		t.Fatalf("RawEncrypt failed: %v", err)
	}
	got, err := priv.RawDecrypt(c)
	if err != nil {
		t.Fatalf("RawDecrypt failed: %v", err)
	}
	if got.Cmp(m) != 0 {
		t.Errorf("Generate(64): decrypt(encrypt(m)) = %s, want %s", got, m)
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	priv, err := FromFactors(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	if err != nil {
		t.Fatalf("FromFactors failed: %v", err)
	}

	fields := priv.Fields()
	got, err := PrivateKeyFromFields(fields)
	if err != nil {
		t.Fatalf("PrivateKeyFromFields failed: %v", err)
	}
	if got.E().Cmp(priv.E()) != 0 || got.N().Cmp(priv.N()) != 0 || got.D().Cmp(priv.D()) != 0 {
		t.Errorf("PrivateKeyFromFields round trip mismatch")
	}

	pubFields := priv.Pub.Fields()
	if _, err := PrivateKeyFromFields(pubFields); err == nil {
		t.Errorf("expected an error reconstructing a private key from public-only fields")
	}
}
