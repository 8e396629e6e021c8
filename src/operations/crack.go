package operations

import (
	"context"
	"fmt"
	"time"

	"rubbishrsa/src/attack"
)

// CrackOptions configures key cracking (factoring n back into a private key).
type CrackOptions struct {
	KeyFile    string
	Passphrase string
	OutputFile string
}

// CrackResult is the outcome of a successful key crack.
type CrackResult struct {
	OutputFile string
	Elapsed    time.Duration
}

// CrackKey reads a public key from opts.KeyFile, factors its modulus, and
// writes the recovered private key to opts.OutputFile.
func CrackKey(ctx context.Context, opts CrackOptions) (*CrackResult, error) {
	pub, err := readPublicKey(opts.KeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	priv, err := attack.CrackKey(ctx, pub)
	if err != nil {
		return nil, fmt.Errorf("failed to crack key: %v", err)
	}

	if err := writeKey(priv.Fields(), opts.OutputFile, ""); err != nil {
		return nil, err
	}

	return &CrackResult{OutputFile: opts.OutputFile, Elapsed: time.Since(start)}, nil
}
