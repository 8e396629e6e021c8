package operations

import (
	"fmt"
	"math/big"

	"rubbishrsa/src/codec"
)

// EncryptOptions configures raw RSA encryption.
type EncryptOptions struct {
	KeyFile    string
	Passphrase string
	Message    string
	Hex        bool
}

// EncryptResult is the outcome of raw RSA encryption.
type EncryptResult struct {
	Plaintext  *big.Int
	Ciphertext *big.Int
}

// Encrypt encrypts opts.Message (read as hex if opts.Hex, else as the raw
// ASCII bytes of the string) under the public key in opts.KeyFile.
func Encrypt(opts EncryptOptions) (*EncryptResult, error) {
	pub, err := readPublicKey(opts.KeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}

	m, err := decodeMessage(opts.Message, opts.Hex)
	if err != nil {
		return nil, err
	}

	c, err := pub.RawEncrypt(m)
	if err != nil {
		return nil, fmt.Errorf("encryption failed: %v", err)
	}

	return &EncryptResult{Plaintext: m, Ciphertext: c}, nil
}

func decodeMessage(message string, hex bool) (*big.Int, error) {
	if hex {
		n, err := codec.HexToBigInt(message)
		if err != nil {
			return nil, fmt.Errorf("invalid hex message: %v", err)
		}
		return n, nil
	}
	return codec.ASCIIToBigInt(message), nil
}
