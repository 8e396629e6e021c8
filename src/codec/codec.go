// Package codec converts between octet-stream text, hexadecimal, and the
// arbitrary-precision integers that rubbishrsa's RSA primitives operate on.
package codec

import (
	"bufio"
	"io"
	"math/big"

	"rubbishrsa/src/bigint"
	"rubbishrsa/src/rerr"
)

// ASCIIToBigInt interprets s as a base-256 number, most significant byte
// first: result = sum(s[i] * 256^(len-1-i)).
func ASCIIToBigInt(s string) *big.Int {
	return new(big.Int).SetBytes([]byte(s))
}

// ASCIIReaderToBigInt reads r to completion and interprets the bytes as a
// base-256 number using the same convention as ASCIIToBigInt.
func ASCIIReaderToBigInt(r io.Reader) (*big.Int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, rerr.New(rerr.IoError, "ASCIIReaderToBigInt", "", err)
	}
	return new(big.Int).SetBytes(data), nil
}

// BigIntToASCII emits the base-256 digits of n, most significant first, as
// an octet string. The representation of 0 is the empty string.
func BigIntToASCII(n *big.Int) string {
	return string(n.Bytes())
}

// HexToBigInt parses s (without a "0x" prefix) as a non-negative
// hexadecimal integer. It fails with a ParseError on any non-hex character.
func HexToBigInt(s string) (*big.Int, error) {
	n, err := bigint.ParseHex(s)
	if err != nil {
		return nil, rerr.New(rerr.ParseError, "HexToBigInt", s, err)
	}
	return n, nil
}

// BigIntToHex renders n in lowercase hexadecimal, no "0x" prefix.
func BigIntToHex(n *big.Int) string {
	return bigint.FormatHex(n)
}

// NewLineScanner returns a bufio.Scanner over r that splits on delim, for
// use by attack.BruteForcePlaintextStream's producer.
func NewLineScanner(r io.Reader, delim byte) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Split(splitOn(delim))
	return scanner
}

func splitOn(delim byte) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		for i, b := range data {
			if b == delim {
				return i + 1, data[:i], nil
			}
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}
