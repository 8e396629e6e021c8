package cmd

import "rubbishrsa/src/utils"

// parsePassphraseFlag resolves a --passphrase flag's value, supporting both
// a literal passphrase and an @file:path reference (see utils.ParseKeyInput).
func parsePassphraseFlag(raw string) ([]byte, error) {
	return utils.ParseKeyInput(raw)
}
