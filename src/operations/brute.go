package operations

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"time"

	"rubbishrsa/src/attack"
	"rubbishrsa/src/codec"
)

// BruteOptions configures a plaintext brute-force search. Exactly one of
// (Min and Max) or CandidateFile should be set; CandidateFile takes
// precedence when both are given.
type BruteOptions struct {
	KeyFile       string
	Passphrase    string
	Ciphertext    string
	Min           string
	Max           string
	CandidateFile string
	CandidateHex  bool
	Workers       int
}

// BruteResult is the outcome of a plaintext brute-force search.
type BruteResult struct {
	Found     bool
	Plaintext *big.Int
	ASCII     string
	Elapsed   time.Duration
}

// BruteForcePlaintext recovers the plaintext behind opts.Ciphertext by
// exhaustive search, either over the integer range [Min, Max] or over the
// candidates listed one per line in CandidateFile.
func BruteForcePlaintext(ctx context.Context, opts BruteOptions) (*BruteResult, error) {
	pub, err := readPublicKey(opts.KeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}

	c, err := codec.HexToBigInt(opts.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("invalid hex ciphertext: %v", err)
	}

	start := time.Now()
	var plaintext *big.Int
	var found bool

	if opts.CandidateFile != "" {
		f, err := os.Open(opts.CandidateFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open candidate file: %v", err)
		}
		defer f.Close()
		plaintext, found = attack.BruteForcePlaintextStream(ctx, pub, c, f, '\n', opts.CandidateHex, opts.Workers)
	} else {
		min, err := codec.HexToBigInt(opts.Min)
		if err != nil {
			return nil, fmt.Errorf("invalid hex min: %v", err)
		}
		max, err := codec.HexToBigInt(opts.Max)
		if err != nil {
			return nil, fmt.Errorf("invalid hex max: %v", err)
		}
		plaintext, found = attack.BruteForcePlaintextRange(ctx, pub, c, min, max, opts.Workers)
	}

	result := &BruteResult{Found: found, Elapsed: time.Since(start)}
	if found {
		result.Plaintext = plaintext
		result.ASCII = codec.BigIntToASCII(plaintext)
	}
	return result, nil
}

// BruteSigOptions configures a signature brute-force search: find g such
// that g^e mod n equals opts.Target exactly.
type BruteSigOptions struct {
	KeyFile    string
	Passphrase string
	Target     string
	Workers    int
}

// BruteSigResult is the outcome of a signature brute-force search.
type BruteSigResult struct {
	Found     bool
	Signature *big.Int
	Elapsed   time.Duration
}

// BruteForceSignature searches for a signature whose raw verification
// equals opts.Target exactly.
func BruteForceSignature(ctx context.Context, opts BruteSigOptions) (*BruteSigResult, error) {
	pub, err := readPublicKey(opts.KeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}

	target, err := codec.HexToBigInt(opts.Target)
	if err != nil {
		return nil, fmt.Errorf("invalid hex target: %v", err)
	}

	start := time.Now()
	accept := func(candidate *big.Int) bool { return candidate.Cmp(target) == 0 }
	sig, found := attack.BruteForceSignature(ctx, pub, accept, opts.Workers)

	return &BruteSigResult{Found: found, Signature: sig, Elapsed: time.Since(start)}, nil
}
