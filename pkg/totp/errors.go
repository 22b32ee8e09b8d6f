package totp

import "errors"

var (
	// ErrInvalidParameter indicates a generation parameter is out of range
	// or unsupported: bad digits, non-positive period, unknown algorithm,
	// or an empty issuer/account name for provisioning URIs.
	ErrInvalidParameter = errors.New("totp: invalid parameter")

	// ErrEncodingFailure indicates the secret cannot be encoded,
	// e.g. an empty byte sequence.
	ErrEncodingFailure = errors.New("totp: encoding failure")
)
