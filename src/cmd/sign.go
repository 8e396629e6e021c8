package cmd

import (
	"flag"
	"fmt"
	"os"

	"rubbishrsa/src/operations"
)

// SignCommand handles the sign subcommand.
func SignCommand(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)

	var (
		keyFile    = fs.String("key", "", "Private key file (required)")
		passphrase = fs.String("passphrase", "", "Passphrase for the key file, if protected")
		message    = fs.String("message", "", "Message to sign (required)")
		hex        = fs.Bool("hex", false, "Treat --message as a hex-encoded integer instead of ASCII")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sign --key FILE --message TEXT [--hex]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nRaw RSA-sign a message (no padding)\n\n")
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

	result, err := operations.Sign(operations.SignOptions{
		KeyFile:    *keyFile,
		Passphrase: *passphrase,
		Message:    *message,
		Hex:        *hex,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Signature: %s\n", result.Signature.Text(16))
	return nil
}

// VerifyCommand handles the verify subcommand.
func VerifyCommand(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)

	var (
		keyFile    = fs.String("key", "", "Public (or private) key file (required)")
		passphrase = fs.String("passphrase", "", "Passphrase for the key file, if protected")
		message    = fs.String("message", "", "Message to check (required)")
		signature  = fs.String("signature", "", "Hex-encoded signature to check (required)")
		hex        = fs.Bool("hex", false, "Treat --message as a hex-encoded integer instead of ASCII")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s verify --key FILE --message TEXT --signature HEX [--hex]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nRaw RSA-verify a signature (no padding)\n\n")
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
	if *signature == "" {
		fs.Usage()
		return fmt.Errorf("--signature is required")
	}

	result, err := operations.Verify(operations.VerifyOptions{
		KeyFile:    *keyFile,
		Passphrase: *passphrase,
		Message:    *message,
		Signature:  *signature,
		Hex:        *hex,
	})
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Printf("Signature is valid.\n")
	} else {
		fmt.Printf("Signature is INVALID.\n")
		os.Exit(1)
	}
	return nil
}
