package totp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
)

const (
	// MinDigits and MaxDigits bound the supported code length. The lower
	// bound is the RFC 4226 minimum; the upper bound keeps the truncated
	// 31-bit value meaningful as a modulus input.
	MinDigits = 6
	MaxDigits = 10

	// Dynamic truncation reads 4 bytes at an offset selected by the low
	// nibble of the final digest byte, so the digest must hold at least
	// 15+4 bytes. All supported algorithms satisfy this (SHA1 is 20).
	minDigestLen = 19
)

// HOTP computes an RFC 4226 HMAC-based one-time password for the given
// counter. The secret is the raw shared key, not its base32 encoding.
//
// The returned code is a decimal string of exactly digits characters,
// zero-padded on the left.
func HOTP(secret []byte, counter uint64, digits int, algorithm Algorithm) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("%w: secret must not be empty", ErrEncodingFailure)
	}
	if digits < MinDigits || digits > MaxDigits {
		return "", fmt.Errorf("%w: digits must be between %d and %d, got %d", ErrInvalidParameter, MinDigits, MaxDigits, digits)
	}
	newHash, err := algorithm.hashFunc()
	if err != nil {
		return "", err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(newHash, secret)
	mac.Write(msg[:])
	digest := mac.Sum(nil)

	if len(digest) < minDigestLen {
		return "", fmt.Errorf("%w: %s digest too short for truncation (%d bytes)", ErrInvalidParameter, algorithm, len(digest))
	}

	// Dynamic truncation: the low nibble of the last byte selects a
	// 4-byte window, and the sign bit of that window is cleared so the
	// result is a non-negative 31-bit integer.
	offset := digest[len(digest)-1] & 0x0f
	truncated := binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7fffffff

	return formatCode(truncated, digits), nil
}

// formatCode reduces the truncated HMAC value modulo 10^digits and
// renders it as a zero-padded decimal string.
func formatCode(truncated uint32, digits int) string {
	mod := uint64(1)
	for i := 0; i < digits; i++ {
		mod *= 10
	}
	return fmt.Sprintf("%0*d", digits, uint64(truncated)%mod)
}
