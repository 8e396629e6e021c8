package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"rubbishrsa/src/operations"
)

// GenerateCommand handles the gen subcommand.
func GenerateCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)

	var (
		bits       = fs.Int("bits", 512, "Approximate modulus size in bits")
		outputFile = fs.String("output", "key.rubbishrsa", "Where to write the generated key")
		passphrase = fs.String("passphrase", "", "Optional passphrase to seal the key file with, or @file:path")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s gen --bits N [--output FILE] [--passphrase PASS]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nGenerate a new textbook RSA private key\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s gen --bits 512 --output alice.key\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s gen --bits 1024 --output alice.key --passphrase \"my passphrase\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	userKeyRaw, err := parsePassphraseFlag(*passphrase)
	if err != nil {
		return fmt.Errorf("failed to parse passphrase: %v", err)
	}

	fmt.Printf("Generating a %d-bit key (this may take a while for large sizes)...\n", *bits)

	result, err := operations.GenerateKey(ctx, operations.GenerateOptions{
		Bits:       *bits,
		OutputFile: *outputFile,
		Passphrase: string(userKeyRaw),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d-bit key to %s (elapsed %v)\n", result.Bits, result.OutputFile, result.Elapsed.Round(time.Millisecond))
	if result.Protected {
		fmt.Printf("Key file is passphrase-protected.\n")
	}
	return nil
}
