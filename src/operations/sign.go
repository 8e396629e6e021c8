package operations

import (
	"fmt"
	"math/big"

	"rubbishrsa/src/codec"
)

// SignOptions configures raw RSA signing.
type SignOptions struct {
	KeyFile    string
	Passphrase string
	Message    string
	Hex        bool
}

// SignResult is the outcome of raw RSA signing.
type SignResult struct {
	Message   *big.Int
	Signature *big.Int
}

// Sign signs opts.Message with the private key in opts.KeyFile.
func Sign(opts SignOptions) (*SignResult, error) {
	priv, err := readPrivateKey(opts.KeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}

	m, err := decodeMessage(opts.Message, opts.Hex)
	if err != nil {
		return nil, err
	}

	s, err := priv.RawSign(m)
	if err != nil {
		return nil, fmt.Errorf("signing failed: %v", err)
	}

	return &SignResult{Message: m, Signature: s}, nil
}

// VerifyOptions configures raw RSA signature verification.
type VerifyOptions struct {
	KeyFile    string
	Passphrase string
	Message    string
	Signature  string
	Hex        bool
}

// VerifyResult is the outcome of raw RSA signature verification.
type VerifyResult struct {
	Valid bool
}

// Verify checks s against opts.Message under the public key in opts.KeyFile.
func Verify(opts VerifyOptions) (*VerifyResult, error) {
	pub, err := readPublicKey(opts.KeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}

	m, err := decodeMessage(opts.Message, opts.Hex)
	if err != nil {
		return nil, err
	}

	s, err := codec.HexToBigInt(opts.Signature)
	if err != nil {
		return nil, fmt.Errorf("invalid hex signature: %v", err)
	}

	valid, err := pub.RawVerify(m, s)
	if err != nil {
		return nil, fmt.Errorf("verification failed: %v", err)
	}

	return &VerifyResult{Valid: valid}, nil
}
