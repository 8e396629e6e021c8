package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"rubbishrsa/src/operations"
)

// ForgeCommand handles the forge subcommand: invisible-suffix-tolerant
// signature forgery.
func ForgeCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("forge", flag.ExitOnError)

	var (
		keyFile    = fs.String("key", "", "Public key file (required)")
		passphrase = fs.String("passphrase", "", "Passphrase for the key file, if protected")
		message    = fs.String("message", "", "Message to forge a signature for (required)")
		hex        = fs.Bool("hex", false, "Treat --message as a hex-encoded integer instead of ASCII")
		workers    = fs.Int("workers", 0, "Number of worker goroutines (0 = hardware concurrency)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s forge --key FILE --message TEXT [--hex]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nForge a signature that verifies to --message plus invisible padding\n\n")
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
	if *message == "" {
		fs.Usage()
		return fmt.Errorf("--message is required")
	}

	result, err := operations.ForgeInvisibleSuffix(ctx, operations.ForgeOptions{
		KeyFile:    *keyFile,
		Passphrase: *passphrase,
		Message:    *message,
		Hex:        *hex,
		Workers:    *workers,
	})
	if err != nil {
		return err
	}

	if !result.Found {
		fmt.Printf("No forgery found (elapsed %v)\n", result.Elapsed.Round(time.Millisecond))
		os.Exit(1)
	}

	fmt.Printf("Forged signature: %s\n", result.Signature.Text(16))
	fmt.Printf("Elapsed: %v\n", result.Elapsed.Round(time.Millisecond))
	return nil
}

// EncMultiplyCommand handles the enc-multiply subcommand.
func EncMultiplyCommand(args []string) error {
	fs := flag.NewFlagSet("enc-multiply", flag.ExitOnError)

	var (
		keyFile    = fs.String("key", "", "Public key file (required)")
		passphrase = fs.String("passphrase", "", "Passphrase for the key file, if protected")
		ciphertext = fs.String("ciphertext", "", "Hex-encoded encryption of the unknown plaintext (required)")
		factor     = fs.String("factor", "", "Hex-encoded factor to multiply the unknown plaintext by (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s enc-multiply --key FILE --ciphertext HEX --factor HEX\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nCompute the encryption of factor*m given only the encryption of m\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *keyFile == "" || *ciphertext == "" || *factor == "" {
		fs.Usage()
		return fmt.Errorf("--key, --ciphertext, and --factor are all required")
	}

	result, err := operations.EncMultiply(operations.MultiplyOptions{
		KeyFile:    *keyFile,
		Passphrase: *passphrase,
		Ciphertext: *ciphertext,
		Factor:     *factor,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Result: %s\n", result.Value.Text(16))
	return nil
}

// SigForgeMultiplyCommand handles the sig-forge-multiply subcommand.
func SigForgeMultiplyCommand(args []string) error {
	fs := flag.NewFlagSet("sig-forge-multiply", flag.ExitOnError)

	var (
		keyFile    = fs.String("key", "", "Public key file (required)")
		passphrase = fs.String("passphrase", "", "Passphrase for the key file, if protected")
		sigA       = fs.String("sig-a", "", "Hex-encoded signature on message A (required)")
		sigB       = fs.String("sig-b", "", "Hex-encoded signature on message B (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sig-forge-multiply --key FILE --sig-a HEX --sig-b HEX\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nCombine two valid signatures into a forged signature on the product of their messages\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *keyFile == "" || *sigA == "" || *sigB == "" {
		fs.Usage()
		return fmt.Errorf("--key, --sig-a, and --sig-b are all required")
	}

	result, err := operations.SigForgeMultiply(operations.MultiplyOptions{
		KeyFile:    *keyFile,
		Passphrase: *passphrase,
		SigA:       *sigA,
		SigB:       *sigB,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Forged signature: %s\n", result.Value.Text(16))
	return nil
}
