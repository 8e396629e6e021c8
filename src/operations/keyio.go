package operations

import (
	"fmt"
	"math/big"

	"rubbishrsa/src/keys"
	"rubbishrsa/src/utils"
)

// writeKey writes fields to path, sealing it behind passphrase when one is
// given.
func writeKey(fields map[string]*big.Int, path, passphrase string) error {
	if passphrase == "" {
		if err := utils.WriteKeyFile(path, fields); err != nil {
			return fmt.Errorf("failed to write key file: %v", err)
		}
		return nil
	}
	if err := utils.WriteProtectedKeyFile(path, fields, []byte(passphrase)); err != nil {
		return fmt.Errorf("failed to write protected key file: %v", err)
	}
	return nil
}

// readFields reads a key file at path, transparently trying the
// passphrase-protected format first when it looks like one.
func readFields(path, passphrase string) (map[string]*big.Int, error) {
	protected, err := utils.IsProtectedKeyFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %v", err)
	}
	if protected {
		fields, err := utils.ReadProtectedKeyFile(path, []byte(passphrase))
		if err != nil {
			return nil, fmt.Errorf("failed to read protected key file: %v", err)
		}
		return fields, nil
	}
	fields, err := utils.ReadKeyFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %v", err)
	}
	return fields, nil
}

// readPublicKey reads either a public or private key file, returning the
// public half - every command that only needs e and n accepts either shape.
func readPublicKey(path, passphrase string) (keys.PublicKey, error) {
	fields, err := readFields(path, passphrase)
	if err != nil {
		return keys.PublicKey{}, err
	}
	pub, err := keys.PublicKeyFromFields(fields)
	if err != nil {
		return keys.PublicKey{}, fmt.Errorf("malformed key file: %v", err)
	}
	return pub, nil
}

// readPrivateKey reads a private key file, failing if it has no d field.
func readPrivateKey(path, passphrase string) (*keys.PrivateKey, error) {
	fields, err := readFields(path, passphrase)
	if err != nil {
		return nil, err
	}
	priv, err := keys.PrivateKeyFromFields(fields)
	if err != nil {
		return nil, fmt.Errorf("malformed private key file: %v", err)
	}
	return priv, nil
}
