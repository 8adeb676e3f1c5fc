// Package token implements the fixed-radix encoding of short identifiers into
// 64-bit integers.
//
// A token string holds at most 12 characters from a 38-symbol alphabet:
//
//	index:  0    1..10   11..36   37
//	symbol: \0   0-9     a-z      _
//
// The string is read as a little-endian base-38 number: the character at
// position i contributes index(c) * 38^i. Index 0 is the terminator and only
// ever appears implicitly past the end of a string, so the empty string maps
// to 0 and every valid string maps to exactly one value below 38^12.
//
// Parsing is case-insensitive; formatting always yields lowercase.
package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/mapitem/endian"
	"github.com/arloliu/mapitem/errs"
)

const (
	// MaxLength is the maximum number of characters in a token string.
	MaxLength = 12
	// Radix is the size of the token alphabet, terminator included.
	Radix = 38
	// Size is the encoded size of a token in bytes.
	Size = 8
	// Limit is 38^12, one past the largest value of a canonical token.
	Limit = uint64(9065737908494995456)

	// hexPrefix marks the text form of a token that has no canonical string.
	// '#' is outside the alphabet so the two forms never collide.
	hexPrefix = '#'
)

const alphabet = "\x000123456789abcdefghijklmnopqrstuvwxyz_"

// symbolIndex maps a lowercase byte to its alphabet index, or -1. The
// terminator is deliberately absent.
var symbolIndex = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 1; i < len(alphabet); i++ {
		table[alphabet[i]] = int8(i) //nolint:gosec
	}

	return table
}()

// Token is an encoded identifier. The zero value is the empty token.
type Token uint64

// FromString encodes s. It fails with errs.ErrInvalidToken when s is longer
// than MaxLength or holds a character outside the alphabet.
func FromString(s string) (Token, error) {
	if len(s) > MaxLength {
		return 0, fmt.Errorf("%w: %q has %d characters, maximum is %d", errs.ErrInvalidToken, s, len(s), MaxLength)
	}

	var value uint64
	weight := uint64(1)
	for i := 0; i < len(s); i++ {
		idx := symbolIndex[toLower(s[i])]
		if idx < 0 {
			return 0, fmt.Errorf("%w: %q has invalid character %q at position %d", errs.ErrInvalidToken, s, s[i], i)
		}
		value += uint64(idx) * weight
		weight *= Radix
	}

	return Token(value), nil
}

// MustParse is like FromString but panics on invalid input. It is meant for
// literals in code and tests.
func MustParse(s string) Token {
	t, err := FromString(s)
	if err != nil {
		panic(err)
	}

	return t
}

// IsValid reports whether s can be encoded as a token.
func IsValid(s string) bool {
	_, err := FromString(s)
	return err == nil
}

// Decode reads a token from the first Size bytes of b. Any 8 bytes form a
// token; b shorter than Size panics like binary.ByteOrder does.
func Decode(b []byte) Token {
	return Token(endian.GetLittleEndianEngine().Uint64(b))
}

// Append appends the little-endian encoding of t to dst.
func (t Token) Append(dst []byte) []byte {
	return endian.GetLittleEndianEngine().AppendUint64(dst, uint64(t))
}

// Bytes returns the little-endian encoding of t.
func (t Token) Bytes() []byte {
	return t.Append(make([]byte, 0, Size))
}

// String returns the shortest symbol string whose value equals t, or "" for
// the empty token. Values with no canonical form still format, possibly with
// embedded terminators or 13 symbols; see Canonical.
func (t Token) String() string {
	if t == 0 {
		return ""
	}

	var buf [13]byte
	n := 0
	for v := uint64(t); v > 0; v /= Radix {
		buf[n] = alphabet[v%Radix]
		n++
	}

	return string(buf[:n])
}

// Canonical reports whether String returns a valid token string that encodes
// back to t.
func (t Token) Canonical() bool {
	if uint64(t) >= Limit {
		return false
	}

	return !strings.ContainsRune(t.String(), 0)
}

// IsEmpty reports whether t is the empty token.
func (t Token) IsEmpty() bool {
	return t == 0
}

// MarshalText implements encoding.TextMarshaler. Canonical tokens are written
// as their string, others as '#' followed by 16 hex digits.
func (t Token) MarshalText() ([]byte, error) {
	if t.Canonical() {
		return []byte(t.String()), nil
	}

	return fmt.Appendf(nil, "%c%016x", hexPrefix, uint64(t)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for both forms written by
// MarshalText.
func (t *Token) UnmarshalText(text []byte) error {
	if len(text) > 0 && text[0] == hexPrefix {
		v, err := strconv.ParseUint(string(text[1:]), 16, 64)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", errs.ErrInvalidToken, text, err)
		}
		*t = Token(v)

		return nil
	}

	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
