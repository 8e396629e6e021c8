package attack

import (
	"context"
	"math/big"
	"testing"
	"time"

	"rubbishrsa/src/keys"
)

func TestIsInvisibleBoundaries(t *testing.T) {
	invisible := []byte{0x00, 0x07, 0x0E, 0x1A, 0x1C, 0x1F, 0x7F, 0xFF}
	for _, b := range invisible {
		if !isInvisible(b) {
			t.Errorf("isInvisible(0x%02X) = false, want true", b)
		}
	}

	visible := []byte{0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x1B, 0x20, 0x41, 0x7E}
	for _, b := range visible {
		if isInvisible(b) {
			t.Errorf("isInvisible(0x%02X) = true, want false", b)
		}
	}
}

func TestMatchesWithInvisibleSuffix(t *testing.T) {
	target := new(big.Int).SetBytes([]byte("hi"))

	exact := new(big.Int).SetBytes([]byte("hi"))
	if !matchesWithInvisibleSuffix(exact, target) {
		t.Errorf("expected an exact match to succeed")
	}

	withSuffix := new(big.Int).SetBytes(append([]byte("hi"), 0x00, 0x1F))
	if !matchesWithInvisibleSuffix(withSuffix, target) {
		t.Errorf("expected a match with invisible suffix bytes to succeed")
	}

	withVisibleSuffix := new(big.Int).SetBytes(append([]byte("hi"), 0x41))
	if matchesWithInvisibleSuffix(withVisibleSuffix, target) {
		t.Errorf("expected a visible trailing byte to break the match")
	}

	wrongPrefix := new(big.Int).SetBytes([]byte("ho"))
	if matchesWithInvisibleSuffix(wrongPrefix, target) {
		t.Errorf("expected a differing prefix to fail")
	}
}

func TestForgeInvisibleSuffix(t *testing.T) {
	priv, err := keys.FromFactors(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	if err != nil {
		t.Fatalf("FromFactors failed: %v", err)
	}

	msg := new(big.Int).SetBytes([]byte{0x41})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sig, ok := ForgeInvisibleSuffix(ctx, priv.Pub, msg, 2)
	if !ok {
		t.Fatalf("expected to find a forged signature")
	}

	decoded := new(big.Int).Exp(sig, priv.Pub.E(), priv.Pub.N())
	if !matchesWithInvisibleSuffix(decoded, msg) {
		t.Errorf("forged signature %s decodes to %s, which doesn't match %s plus invisible padding", sig, decoded, msg)
	}
}
