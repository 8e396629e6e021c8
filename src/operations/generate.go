// Package operations sits between the cmd layer's flag parsing and the
// mathematical core: each operation takes a small Options struct, calls into
// keys/numtheory/codec/attack, and returns a Result struct for cmd to print.
// This mirrors the teacher's operations package (EncryptFile/DecryptFile
// taking an Options struct and returning a Result).
package operations

import (
	"context"
	"fmt"
	"time"

	"rubbishrsa/src/keys"
)

// GenerateOptions configures key generation.
type GenerateOptions struct {
	Bits       int
	OutputFile string
	Passphrase string
}

// GenerateResult reports the outcome of key generation.
type GenerateResult struct {
	OutputFile string
	Bits       int
	Elapsed    time.Duration
	Protected  bool
}

// GenerateKey generates a fresh private key and writes it to opts.OutputFile
// in rubbishrsa's key-file format, optionally sealed behind a passphrase.
func GenerateKey(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	start := time.Now()

	priv, err := keys.Generate(ctx, opts.Bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %v", err)
	}

	if err := writeKey(priv.Fields(), opts.OutputFile, opts.Passphrase); err != nil {
		return nil, err
	}

	return &GenerateResult{
		OutputFile: opts.OutputFile,
		Bits:       opts.Bits,
		Elapsed:    time.Since(start),
		Protected:  opts.Passphrase != "",
	}, nil
}
