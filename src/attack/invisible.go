package attack

import (
	"context"
	"math/big"

	"rubbishrsa/src/keys"
)

// invisibleTable classifies every byte value as "invisible" (usable as
// forged-signature padding) or not, per the fixed 256-entry table in the
// spec: invisible iff the code is in {0x00-0x07, 0x0E-0x1A, 0x1C-0x1F,
// 0x7F-0xFF}. Explicitly visible (never padding): 0x08 backspace, 0x09 tab,
// 0x0A LF, 0x0B VT, 0x0C FF, 0x0D CR, 0x1B ESC, and 0x20-0x7E printable.
var invisibleTable = func() [256]bool {
	var t [256]bool
	for b := 0; b < 256; b++ {
		switch {
		case b <= 0x07:
			t[b] = true
		case b >= 0x0E && b <= 0x1A:
			t[b] = true
		case b >= 0x1C && b <= 0x1F:
			t[b] = true
		case b >= 0x7F:
			t[b] = true
		}
	}
	return t
}()

// isInvisible reports whether b has negligible visual effect on a terminal
// and so may appear as trailing padding in a forged signature.
func isInvisible(b byte) bool {
	return invisibleTable[b]
}

// matchesWithInvisibleSuffix reports whether candidate's base-256 digits
// equal target's, optionally followed by any number of invisible bytes.
// Bytes are compared from the least-significant end: leading invisible
// bytes on the candidate (i.e. its low-order trailing bytes) are skipped,
// and the remaining bytes must match target exactly. A target whose last
// byte is itself invisible therefore never matches.
func matchesWithInvisibleSuffix(candidate, target *big.Int) bool {
	candBytes := candidate.Bytes()
	targetBytes := target.Bytes()

	i := len(candBytes)
	for i > 0 && isInvisible(candBytes[i-1]) {
		i--
	}
	return string(candBytes[:i]) == string(targetBytes)
}

// ForgeInvisibleSuffix wraps BruteForceSignature with a predicate that
// accepts any candidate whose visible byte sequence equals msg's, tolerating
// an arbitrary run of invisible trailing bytes. msg is the intended
// plaintext, expressed as the big-endian base-256 integer of its bytes (see
// codec.ASCIIToBigInt).
func ForgeInvisibleSuffix(ctx context.Context, pubkey keys.KeyView, msg *big.Int, workers int) (*big.Int, bool) {
	accept := func(candidate *big.Int) bool {
		return matchesWithInvisibleSuffix(candidate, msg)
	}
	return BruteForceSignature(ctx, pubkey, accept, workers)
}
