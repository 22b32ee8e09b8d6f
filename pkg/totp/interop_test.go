package totp

import (
	"testing"
	"time"

	pqotp "github.com/pquerna/otp"
	pqhotp "github.com/pquerna/otp/hotp"
	pqtotp "github.com/pquerna/otp/totp"
)

// referenceAlgorithm maps our closed enum onto pquerna/otp's.
func referenceAlgorithm(t *testing.T, a Algorithm) pqotp.Algorithm {
	t.Helper()
	switch a {
	case AlgorithmSHA1:
		return pqotp.AlgorithmSHA1
	case AlgorithmSHA256:
		return pqotp.AlgorithmSHA256
	case AlgorithmSHA512:
		return pqotp.AlgorithmSHA512
	default:
		t.Fatalf("no reference mapping for algorithm %q", a)
		return 0
	}
}

// TestTOTPAgainstReference cross-checks generated codes against
// pquerna/otp for every supported algorithm and common digit widths
func TestTOTPAgainstReference(t *testing.T) {
	secret := []byte("an interop secret of odd length!!")
	algorithms := []Algorithm{AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512}
	timestamps := []int64{59, 1111111111, 1234567890, 2000000000, 20000000000}

	for _, algo := range algorithms {
		for digits := 6; digits <= 8; digits++ {
			gen, err := New(Config{
				Secret:    secret,
				Digits:    digits,
				Period:    30,
				Algorithm: algo,
			})
			if err != nil {
				t.Fatalf("New(%s, %d): unexpected error: %v", algo, digits, err)
			}

			for _, sec := range timestamps {
				at := time.Unix(sec, 0)
				got, err := gen.GenerateAt(at)
				if err != nil {
					t.Fatalf("GenerateAt(%d): unexpected error: %v", sec, err)
				}

				want, err := pqtotp.GenerateCodeCustom(EncodeSecret(secret), at.UTC(), pqtotp.ValidateOpts{
					Period:    30,
					Digits:    pqotp.Digits(digits),
					Algorithm: referenceAlgorithm(t, algo),
				})
				if err != nil {
					t.Fatalf("reference GenerateCodeCustom(%d): %v", sec, err)
				}

				if got != want {
					t.Errorf("GenerateAt(t=%d, %s, digits=%d) = %q, reference says %q", sec, algo, digits, got, want)
				}
			}
		}
	}
}

// TestHOTPAgainstReference cross-checks counter-based codes against
// pquerna/otp
func TestHOTPAgainstReference(t *testing.T) {
	secret := []byte("another shared interop secret")
	counters := []uint64{0, 1, 9, 255, 65536, 1 << 32, 1<<63 + 17}

	for _, algo := range []Algorithm{AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512} {
		for _, counter := range counters {
			got, err := HOTP(secret, counter, 6, algo)
			if err != nil {
				t.Fatalf("HOTP(counter=%d, %s): unexpected error: %v", counter, algo, err)
			}

			want, err := pqhotp.GenerateCodeCustom(EncodeSecret(secret), counter, pqhotp.ValidateOpts{
				Digits:    pqotp.DigitsSix,
				Algorithm: referenceAlgorithm(t, algo),
			})
			if err != nil {
				t.Fatalf("reference GenerateCodeCustom(counter=%d): %v", counter, err)
			}

			if got != want {
				t.Errorf("HOTP(counter=%d, %s) = %q, reference says %q", counter, algo, got, want)
			}
		}
	}
}

// TestValidateAgainstReference tests that codes produced by the
// reference implementation validate here, and vice versa
func TestValidateAgainstReference(t *testing.T) {
	secret := []byte("12345678901234567890")
	at := time.Unix(1111111111, 0)

	gen, err := New(Config{Secret: secret})
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	refCode, err := pqtotp.GenerateCodeCustom(EncodeSecret(secret), at.UTC(), pqtotp.ValidateOpts{
		Period:    30,
		Digits:    pqotp.DigitsSix,
		Algorithm: pqotp.AlgorithmSHA1,
	})
	if err != nil {
		t.Fatalf("reference GenerateCodeCustom: %v", err)
	}
	if !gen.ValidateAt(refCode, at) {
		t.Errorf("reference code %q rejected", refCode)
	}

	ourCode, err := gen.GenerateAt(at)
	if err != nil {
		t.Fatalf("GenerateAt: unexpected error: %v", err)
	}
	ok, err := pqtotp.ValidateCustom(ourCode, EncodeSecret(secret), at.UTC(), pqtotp.ValidateOpts{
		Period:    30,
		Skew:      0,
		Digits:    pqotp.DigitsSix,
		Algorithm: pqotp.AlgorithmSHA1,
	})
	if err != nil {
		t.Fatalf("reference ValidateCustom: %v", err)
	}
	if !ok {
		t.Errorf("reference rejected our code %q", ourCode)
	}
}
