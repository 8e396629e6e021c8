package operations

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"rubbishrsa/src/attack"
	"rubbishrsa/src/codec"
)

// ForgeOptions configures invisible-suffix-tolerant signature forgery.
type ForgeOptions struct {
	KeyFile    string
	Passphrase string
	Message    string
	Hex        bool
	Workers    int
}

// ForgeResult is the outcome of a forgery search.
type ForgeResult struct {
	Found     bool
	Signature *big.Int
	Elapsed   time.Duration
}

// ForgeInvisibleSuffix searches for a forged signature that verifies to
// opts.Message plus an arbitrary run of visually-invisible trailing bytes.
func ForgeInvisibleSuffix(ctx context.Context, opts ForgeOptions) (*ForgeResult, error) {
	pub, err := readPublicKey(opts.KeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}

	msg, err := decodeMessage(opts.Message, opts.Hex)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	sig, found := attack.ForgeInvisibleSuffix(ctx, pub, msg, opts.Workers)
	return &ForgeResult{Found: found, Signature: sig, Elapsed: time.Since(start)}, nil
}

// MultiplyOptions configures the homomorphic multiplication helpers.
type MultiplyOptions struct {
	KeyFile    string
	Passphrase string
	// For enc_multiply: Ciphertext and Factor (both hex).
	Ciphertext string
	Factor     string
	// For sig_forge_multiply: SigA and SigB (both hex).
	SigA string
	SigB string
}

// MultiplyResult is the outcome of a homomorphic multiplication helper.
type MultiplyResult struct {
	Value *big.Int
}

// EncMultiply returns the encryption of Factor*m given the encryption c of
// an unknown m, without ever learning m.
func EncMultiply(opts MultiplyOptions) (*MultiplyResult, error) {
	pub, err := readPublicKey(opts.KeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}
	c, err := codec.HexToBigInt(opts.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("invalid hex ciphertext: %v", err)
	}
	v, err := codec.HexToBigInt(opts.Factor)
	if err != nil {
		return nil, fmt.Errorf("invalid hex factor: %v", err)
	}
	result, err := attack.EncMultiply(pub, c, v)
	if err != nil {
		return nil, fmt.Errorf("enc_multiply failed: %v", err)
	}
	return &MultiplyResult{Value: result}, nil
}

// SigForgeMultiply combines two valid signatures into a forged signature on
// the product of their messages.
func SigForgeMultiply(opts MultiplyOptions) (*MultiplyResult, error) {
	pub, err := readPublicKey(opts.KeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}
	s1, err := codec.HexToBigInt(opts.SigA)
	if err != nil {
		return nil, fmt.Errorf("invalid hex signature A: %v", err)
	}
	s2, err := codec.HexToBigInt(opts.SigB)
	if err != nil {
		return nil, fmt.Errorf("invalid hex signature B: %v", err)
	}
	return &MultiplyResult{Value: attack.SigForgeMultiply(pub, s1, s2)}, nil
}
