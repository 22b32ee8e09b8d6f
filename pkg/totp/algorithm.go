package totp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Algorithm represents the hash algorithm used for code generation.
type Algorithm string

const (
	// AlgorithmSHA1 uses SHA1, the RFC 6238 default and the only
	// algorithm every authenticator app supports.
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses SHA256.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses SHA512.
	AlgorithmSHA512 Algorithm = "SHA512"
)

// hashFunc returns the hash constructor for the algorithm.
// Unknown values are rejected rather than silently defaulted.
func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA1:
		return sha1.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512, got %q", ErrInvalidParameter, string(a))
	}
}

// valid reports whether a names a supported algorithm.
func (a Algorithm) valid() bool {
	_, err := a.hashFunc()
	return err == nil
}
