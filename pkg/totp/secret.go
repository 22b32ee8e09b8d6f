package totp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// b32 is the RFC 4648 standard alphabet without padding. Authenticator
// apps neither emit nor expect trailing '=' characters.
var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateSecret generates a cryptographically random shared key and
// returns it base32-encoded, suitable for handing to a setup tool.
func GenerateSecret() (string, error) {
	// 20 bytes (160 bits), the RFC 4226 recommended key size
	secret := make([]byte, 20)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("totp: failed to generate random secret: %w", err)
	}
	return b32.EncodeToString(secret), nil
}

// EncodeSecret returns the base32 encoding of a raw secret, without
// padding.
func EncodeSecret(secret []byte) string {
	return b32.EncodeToString(secret)
}

// DecodeSecret decodes a base32 secret into raw key bytes. Setup tools
// present secrets in varying shapes, so lowercase, interior spaces, and
// trailing padding are all tolerated.
func DecodeSecret(s string) ([]byte, error) {
	s = strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	s = strings.TrimRight(s, "=")
	raw, err := b32.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: secret is not valid base32: %v", ErrEncodingFailure, err)
	}
	return raw, nil
}
