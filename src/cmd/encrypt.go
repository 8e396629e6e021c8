package cmd

import (
	"flag"
	"fmt"
	"os"

	"rubbishrsa/src/operations"
)

// EncryptCommand handles the enc subcommand.
func EncryptCommand(args []string) error {
	fs := flag.NewFlagSet("enc", flag.ExitOnError)

	var (
		keyFile    = fs.String("key", "", "Public (or private) key file (required)")
		passphrase = fs.String("passphrase", "", "Passphrase for the key file, if protected")
		message    = fs.String("message", "", "Message to encrypt (required)")
		hex        = fs.Bool("hex", false, "Treat --message as a hex-encoded integer instead of ASCII")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s enc --key FILE --message TEXT [--hex]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nRaw RSA-encrypt a message (no padding)\n\n")
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

	result, err := operations.Encrypt(operations.EncryptOptions{
		KeyFile:    *keyFile,
		Passphrase: *passphrase,
		Message:    *message,
		Hex:        *hex,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Ciphertext: %s\n", result.Ciphertext.Text(16))
	return nil
}
