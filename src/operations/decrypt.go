package operations

import (
	"fmt"
	"math/big"

	"rubbishrsa/src/codec"
)

// DecryptOptions configures raw RSA decryption.
type DecryptOptions struct {
	KeyFile    string
	Passphrase string
	Ciphertext string
}

// DecryptResult is the outcome of raw RSA decryption.
type DecryptResult struct {
	Ciphertext *big.Int
	Plaintext  *big.Int
	ASCII      string
}

// Decrypt decrypts a hex-encoded ciphertext under the private key in
// opts.KeyFile, also rendering the recovered plaintext's base-256 digits as
// a byte string, whether or not they are printable.
func Decrypt(opts DecryptOptions) (*DecryptResult, error) {
	priv, err := readPrivateKey(opts.KeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}

	c, err := codec.HexToBigInt(opts.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("invalid hex ciphertext: %v", err)
	}

	m, err := priv.RawDecrypt(c)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %v", err)
	}

	return &DecryptResult{
		Ciphertext: c,
		Plaintext:  m,
		ASCII:      codec.BigIntToASCII(m),
	}, nil
}
