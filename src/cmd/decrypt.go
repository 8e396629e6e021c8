package cmd

import (
	"flag"
	"fmt"
	"os"

	"rubbishrsa/src/operations"
)

// DecryptCommand handles the dec subcommand.
func DecryptCommand(args []string) error {
	fs := flag.NewFlagSet("dec", flag.ExitOnError)

	var (
		keyFile    = fs.String("key", "", "Private key file (required)")
		passphrase = fs.String("passphrase", "", "Passphrase for the key file, if protected")
		ciphertext = fs.String("ciphertext", "", "Hex-encoded ciphertext to decrypt (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s dec --key FILE --ciphertext HEX\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nRaw RSA-decrypt a ciphertext (no padding)\n\n")
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

	result, err := operations.Decrypt(operations.DecryptOptions{
		KeyFile:    *keyFile,
		Passphrase: *passphrase,
		Ciphertext: *ciphertext,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Plaintext (hex): %s\n", result.Plaintext.Text(16))
	fmt.Printf("Plaintext (ascii): %q\n", result.ASCII)
	return nil
}
