// Package totp generates TOTP (RFC 6238) and HOTP (RFC 4226) one-time
// passwords and the otpauth:// provisioning URIs that authenticator
// apps import.
//
// The HMAC truncation core is implemented directly against the RFCs;
// the package performs no I/O beyond reading the configured clock and
// never logs or stores the secret.
//
// # TOTP Example
//
// Time-based codes for use with authenticator apps:
//
//	secret, err := totp.DecodeSecret("JBSWY3DPEHPK3PXP")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen, err := totp.New(totp.Config{
//	    Secret:    secret,
//	    Digits:    6,
//	    Period:    30,
//	    Algorithm: totp.AlgorithmSHA1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := gen.Generate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// code is a 6-digit string valid for the current 30s period
//
// # Provisioning URI
//
// Generate the otpauth:// URI for enrollment:
//
//	uri, err := gen.ProvisioningURI("MyApp", "user@example.com")
//	// Display uri as a QR code for the user to scan
//
// # HOTP Example
//
// Counter-based codes for hardware tokens:
//
//	code, err := totp.HOTP(secret, counter, 6, totp.AlgorithmSHA1)
//	// Persist counter+1 before accepting another code
//
// # Deterministic Tests
//
// Generation reads the clock through Config.Now, so tests can pin time
// instead of monkeypatching:
//
//	gen, err := totp.New(totp.Config{
//	    Secret: secret,
//	    Now:    func() time.Time { return time.Unix(59, 0) },
//	})
//
// # Thread Safety
//
// Generator holds no mutable state and is safe for concurrent use.
// Two concurrent calls within the same period return the same code by
// contract.
package totp
