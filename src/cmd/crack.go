package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"rubbishrsa/src/operations"
)

// CrackCommand handles the crack subcommand.
func CrackCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("crack", flag.ExitOnError)

	var (
		keyFile    = fs.String("key", "", "Public key file (required)")
		passphrase = fs.String("passphrase", "", "Passphrase for the key file, if protected")
		outputFile = fs.String("output", "cracked.key.rubbishrsa", "Where to write the recovered private key")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s crack --key FILE [--output FILE]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nFactor a public modulus and recover the private key\n\n")
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

	fmt.Printf("Factoring modulus...\n")
	result, err := operations.CrackKey(ctx, operations.CrackOptions{
		KeyFile:    *keyFile,
		Passphrase: *passphrase,
		OutputFile: *outputFile,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recovered private key written to %s (elapsed %v)\n", result.OutputFile, result.Elapsed.Round(time.Millisecond))
	return nil
}
