package totp

import (
	"fmt"
	"net/url"
	"strconv"
)

// ProvisioningURI returns the otpauth:// URI that authenticator apps
// import, embedding the generator's secret and parameters:
//
//	otpauth://totp/{issuer}:{user}?secret=...&issuer=...&algorithm=...&digits=...&period=...
//
// The issuer and user are treated as opaque strings and percent-encoded,
// so names containing spaces, colons, or query metacharacters survive
// the round trip. The secret is base32-encoded without padding.
func (g *Generator) ProvisioningURI(issuer, user string) (string, error) {
	if issuer == "" {
		return "", fmt.Errorf("%w: issuer must not be empty", ErrInvalidParameter)
	}
	if user == "" {
		return "", fmt.Errorf("%w: user must not be empty", ErrInvalidParameter)
	}

	v := url.Values{}
	v.Set("secret", EncodeSecret(g.secret))
	v.Set("issuer", issuer)
	v.Set("algorithm", string(g.algorithm))
	v.Set("digits", strconv.Itoa(g.digits))
	v.Set("period", strconv.Itoa(g.period))

	label := url.PathEscape(issuer + ":" + user)
	return "otpauth://totp/" + label + "?" + v.Encode(), nil
}
