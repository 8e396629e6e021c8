package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"rubbishrsa/src/operations"
)

// BruteCommand handles the brute subcommand: plaintext brute force over a
// range or a candidate file.
func BruteCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("brute", flag.ExitOnError)

	var (
		keyFile       = fs.String("key", "", "Public key file (required)")
		passphrase    = fs.String("passphrase", "", "Passphrase for the key file, if protected")
		ciphertext    = fs.String("ciphertext", "", "Hex-encoded ciphertext to crack (required)")
		min           = fs.String("min", "0", "Hex-encoded lower bound (inclusive) for a range search")
		max            = fs.String("max", "", "Hex-encoded upper bound (inclusive) for a range search")
		candidateFile = fs.String("candidates", "", "File of newline-separated candidates instead of a range")
		candidateHex  = fs.Bool("candidates-hex", false, "Candidates in --candidates are hex, not ASCII")
		workers       = fs.Int("workers", 0, "Number of worker goroutines (0 = hardware concurrency)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s brute --key FILE --ciphertext HEX (--max HEX | --candidates FILE)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nBrute-force the plaintext behind a ciphertext\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *keyFile == "" {
		fs.Usage()
		return fmt.Errorf("--key is required")
	}
	if *ciphertext == "" {
		fs.Usage()
		return fmt.Errorf("--ciphertext is required")
	}
	if *candidateFile == "" && *max == "" {
		fs.Usage()
		return fmt.Errorf("either --max or --candidates must be given")
	}

	start := time.Now()
	result, err := operations.BruteForcePlaintext(ctx, operations.BruteOptions{
		KeyFile:       *keyFile,
		Passphrase:    *passphrase,
		Ciphertext:    *ciphertext,
		Min:           *min,
		Max:           *max,
		CandidateFile: *candidateFile,
		CandidateHex:  *candidateHex,
		Workers:       *workers,
	})
	if err != nil {
		return err
	}

	if !result.Found {
		fmt.Printf("No match found (elapsed %v)\n", time.Since(start).Round(time.Millisecond))
		os.Exit(1)
	}

	fmt.Printf("Found plaintext (hex): %s\n", result.Plaintext.Text(16))
	fmt.Printf("Found plaintext (ascii): %q\n", result.ASCII)
	fmt.Printf("Elapsed: %v\n", result.Elapsed.Round(time.Millisecond))
	return nil
}

// BruteSigCommand handles the brute-sig subcommand: signature brute force
// against an exact target.
func BruteSigCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("brute-sig", flag.ExitOnError)

	var (
		keyFile    = fs.String("key", "", "Public key file (required)")
		passphrase = fs.String("passphrase", "", "Passphrase for the key file, if protected")
		target     = fs.String("target", "", "Hex-encoded target the signature must verify to (required)")
		workers    = fs.Int("workers", 0, "Number of worker goroutines (0 = hardware concurrency)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s brute-sig --key FILE --target HEX\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nBrute-force a signature whose raw verification equals --target exactly\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *keyFile == "" {
		fs.Usage()
		return fmt.Errorf("--key is required")
	}
	if *target == "" {
		fs.Usage()
		return fmt.Errorf("--target is required")
	}

	result, err := operations.BruteForceSignature(ctx, operations.BruteSigOptions{
		KeyFile:    *keyFile,
		Passphrase: *passphrase,
		Target:     *target,
		Workers:    *workers,
	})
	if err != nil {
		return err
	}

	if !result.Found {
		fmt.Printf("No match found (elapsed %v)\n", result.Elapsed.Round(time.Millisecond))
		os.Exit(1)
	}

	fmt.Printf("Found signature: %s\n", result.Signature.Text(16))
	fmt.Printf("Elapsed: %v\n", result.Elapsed.Round(time.Millisecond))
	return nil
}
