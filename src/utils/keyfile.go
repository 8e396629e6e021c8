// Package utils holds the collaborator-level plumbing around rubbishrsa's
// core: the key-file text format, an optional passphrase-protected wrapper
// around it, and time-estimate helpers for the benchmark. None of this is
// part of the mathematical core (see src/numtheory, src/keys, src/attack);
// it exists so the CLI has somewhere to put keys and report timings.
package utils

import (
	"bufio"
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strings"

	"rubbishrsa/src/bigint"
	"rubbishrsa/src/crypto"
	"rubbishrsa/src/rerr"
	"rubbishrsa/src/types"
)

// WriteKeyFields writes fields (as produced by keys.PublicKey.Fields or
// keys.PrivateKey.Fields) as one "name = decimalvalue" line per field, in
// a stable (sorted) order, to w. The encoding is deliberately opaque beyond
// that: any order round-trips via ReadKeyFields.
func WriteKeyFields(w io.Writer, fields map[string]*big.Int) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, bigint.FormatDecimal(fields[name])); err != nil {
			return rerr.New(rerr.IoError, "WriteKeyFields", name, err)
		}
	}
	return nil
}

// ReadKeyFields parses the "name = decimalvalue" lines produced by
// WriteKeyFields. Field order doesn't matter and trailing whitespace on
// each line is tolerated. It fails with ParseError on a malformed line or a
// non-numeric value.
func ReadKeyFields(r io.Reader) (map[string]*big.Int, error) {
	fields := make(map[string]*big.Int)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, valueStr, found := strings.Cut(line, "=")
		if !found {
			return nil, rerr.New(rerr.ParseError, "ReadKeyFields", line, errMalformedLine)
		}
		name = strings.TrimSpace(name)
		valueStr = strings.TrimSpace(valueStr)

		value, ok := bigint.ParseDecimal(valueStr)
		if !ok {
			return nil, rerr.New(rerr.ParseError, "ReadKeyFields", name, errNonNumericField)
		}
		fields[name] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, rerr.New(rerr.IoError, "ReadKeyFields", "", err)
	}
	return fields, nil
}

type errMalformedLineT struct{}

func (errMalformedLineT) Error() string { return "expected \"name = value\"" }

var errMalformedLine = errMalformedLineT{}

type errNonNumericFieldT struct{}

func (errNonNumericFieldT) Error() string { return "field value is not a decimal integer" }

var errNonNumericField = errNonNumericFieldT{}

// WriteKeyFile writes fields to the plain-text key file at path.
func WriteKeyFile(path string, fields map[string]*big.Int) error {
	var buf bytes.Buffer
	if err := WriteKeyFields(&buf, fields); err != nil {
		return err
	}
	if err := WriteFile(path, buf.Bytes()); err != nil {
		return rerr.New(rerr.IoError, "WriteKeyFile", path, err)
	}
	return nil
}

// ReadKeyFile reads a plain-text key file written by WriteKeyFile.
func ReadKeyFile(path string) (map[string]*big.Int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rerr.New(rerr.IoError, "ReadKeyFile", path, err)
	}
	defer f.Close()
	return ReadKeyFields(f)
}

// protectedMagic marks a passphrase-protected key file so ReadProtectedKeyFile
// can tell it apart from a plain one.
const protectedMagic = "rubbishrsa-protected-key\n"

// WriteProtectedKeyFile serialises fields the same way WriteKeyFile does,
// then seals the result with a key derived from passphrase via Argon2id and
// writes it behind a small header (salt + nonce) using
// ChaCha20-Poly1305 - an optional at-rest wrapper around the opaque field
// map, not a change to the field map format itself.
func WriteProtectedKeyFile(path string, fields map[string]*big.Int, passphrase []byte) error {
	var plain strings.Builder
	if err := WriteKeyFields(&plain, fields); err != nil {
		return err
	}

	var header types.ProtectedHeader
	header.KdfID = types.KdfArgon2id
	header.Params = types.DefaultArgon2idParams
	if _, err := rand.Read(header.Salt[:]); err != nil {
		return rerr.New(rerr.IoError, "WriteProtectedKeyFile", path, err)
	}

	key := crypto.DeriveKey(passphrase, header.Salt[:], header.Params)
	nonce, sealed, err := crypto.Seal(key, []byte(plain.String()))
	if err != nil {
		return rerr.New(rerr.IoError, "WriteProtectedKeyFile", path, err)
	}
	copy(header.Nonce[:], nonce)

	f, err := os.Create(path)
	if err != nil {
		return rerr.New(rerr.IoError, "WriteProtectedKeyFile", path, err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, protectedMagic); err != nil {
		return rerr.New(rerr.IoError, "WriteProtectedKeyFile", path, err)
	}
	if err := binary.Write(f, binary.BigEndian, header.KdfID); err != nil {
		return rerr.New(rerr.IoError, "WriteProtectedKeyFile", path, err)
	}
	if err := binary.Write(f, binary.BigEndian, header.Salt); err != nil {
		return rerr.New(rerr.IoError, "WriteProtectedKeyFile", path, err)
	}
	if err := binary.Write(f, binary.BigEndian, header.Nonce); err != nil {
		return rerr.New(rerr.IoError, "WriteProtectedKeyFile", path, err)
	}
	if err := binary.Write(f, binary.BigEndian, header.Params.Memory); err != nil {
		return rerr.New(rerr.IoError, "WriteProtectedKeyFile", path, err)
	}
	if err := binary.Write(f, binary.BigEndian, header.Params.Time); err != nil {
		return rerr.New(rerr.IoError, "WriteProtectedKeyFile", path, err)
	}
	if _, err := f.Write(sealed); err != nil {
		return rerr.New(rerr.IoError, "WriteProtectedKeyFile", path, err)
	}
	return nil
}

// IsProtectedKeyFile reports whether the file at path was written by
// WriteProtectedKeyFile.
func IsProtectedKeyFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, rerr.New(rerr.IoError, "IsProtectedKeyFile", path, err)
	}
	defer f.Close()

	buf := make([]byte, len(protectedMagic))
	n, _ := io.ReadFull(f, buf)
	return n == len(buf) && string(buf) == protectedMagic, nil
}

// ReadProtectedKeyFile opens a file written by WriteProtectedKeyFile,
// derives the same wrapping key from passphrase, and returns the decoded
// field map. It fails with ParseError if the passphrase is wrong (the AEAD
// tag won't verify) or the file is malformed.
func ReadProtectedKeyFile(path string, passphrase []byte) (map[string]*big.Int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rerr.New(rerr.IoError, "ReadProtectedKeyFile", path, err)
	}
	defer f.Close()

	magic := make([]byte, len(protectedMagic))
	if _, err := io.ReadFull(f, magic); err != nil || string(magic) != protectedMagic {
		return nil, rerr.New(rerr.ParseError, "ReadProtectedKeyFile", path, errNotProtected)
	}

	var header types.ProtectedHeader
	if err := binary.Read(f, binary.BigEndian, &header.KdfID); err != nil {
		return nil, rerr.New(rerr.ParseError, "ReadProtectedKeyFile", path, err)
	}
	if err := binary.Read(f, binary.BigEndian, &header.Salt); err != nil {
		return nil, rerr.New(rerr.ParseError, "ReadProtectedKeyFile", path, err)
	}
	if err := binary.Read(f, binary.BigEndian, &header.Nonce); err != nil {
		return nil, rerr.New(rerr.ParseError, "ReadProtectedKeyFile", path, err)
	}
	if err := binary.Read(f, binary.BigEndian, &header.Params.Memory); err != nil {
		return nil, rerr.New(rerr.ParseError, "ReadProtectedKeyFile", path, err)
	}
	if err := binary.Read(f, binary.BigEndian, &header.Params.Time); err != nil {
		return nil, rerr.New(rerr.ParseError, "ReadProtectedKeyFile", path, err)
	}
	header.Params.Parallelism = types.DefaultArgon2idParams.Parallelism
	header.Params.KeyLen = types.DefaultArgon2idParams.KeyLen

	sealed, err := io.ReadAll(f)
	if err != nil {
		return nil, rerr.New(rerr.IoError, "ReadProtectedKeyFile", path, err)
	}

	key := crypto.DeriveKey(passphrase, header.Salt[:], header.Params)
	plain, err := crypto.Open(key, header.Nonce[:], sealed)
	if err != nil {
		return nil, rerr.New(rerr.ParseError, "ReadProtectedKeyFile", path, errWrongPassphrase)
	}

	return ReadKeyFields(strings.NewReader(string(plain)))
}

type errNotProtectedT struct{}

func (errNotProtectedT) Error() string { return "not a passphrase-protected key file" }

var errNotProtected = errNotProtectedT{}

type errWrongPassphraseT struct{}

func (errWrongPassphraseT) Error() string { return "wrong passphrase or corrupted key file" }

var errWrongPassphrase = errWrongPassphraseT{}
