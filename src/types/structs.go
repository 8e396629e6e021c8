// Package types holds the small value types shared by the key-file format,
// mirroring the teacher repo's habit of keeping wire/file layouts in their
// own package, separate from the logic that reads and writes them.
package types

// Argon2idParams holds the parameters for the Argon2id KDF used to protect a
// key file with a passphrase (adapted from the time-lock puzzle's password
// integration: here it wraps an RSA private key's field map instead of a
// file's symmetric key).
type Argon2idParams struct {
	Memory      uint32 // Memory cost in KiB
	Time        uint32 // Time cost (iterations)
	Parallelism uint8  // Parallelism factor
	KeyLen      uint32 // Output key length
}

// DefaultArgon2idParams provides conservative Argon2id parameters for
// key-file protection.
var DefaultArgon2idParams = Argon2idParams{
	Memory:      64 * 1024, // 64 MiB
	Time:        3,
	Parallelism: 1,
	KeyLen:      32,
}

// KDF identifiers recorded in a protected key file's header line.
const (
	KdfNone    uint8 = 0
	KdfArgon2id uint8 = 1
)

// ProtectedHeader is the metadata written ahead of a passphrase-protected
// key file's sealed field map: the salt used to derive the wrapping key and
// the nonce used to seal it.
type ProtectedHeader struct {
	KdfID  uint8
	Salt   [16]byte
	Nonce  [12]byte
	Params Argon2idParams
}
