package totp

import (
	"crypto/hmac"
	"fmt"
	"time"
)

// Config holds the parameters for time-based code generation.
type Config struct {
	// Secret is the raw shared key (required). Use DecodeSecret to turn
	// a base32 secret from a setup tool into raw bytes.
	Secret []byte
	// Digits specifies the number of digits in the code (6 to 10).
	// Default: 6
	Digits int
	// Period specifies the time step in seconds.
	// Default: 30
	Period int
	// Algorithm specifies the hash algorithm to use.
	// Default: SHA1
	Algorithm Algorithm
	// Now supplies the current time, letting tests pin the clock.
	// Default: time.Now
	Now func() time.Time
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	if len(c.Secret) == 0 {
		return fmt.Errorf("%w: secret must not be empty", ErrEncodingFailure)
	}
	if c.Digits != 0 && (c.Digits < MinDigits || c.Digits > MaxDigits) {
		return fmt.Errorf("%w: digits must be between %d and %d, got %d", ErrInvalidParameter, MinDigits, MaxDigits, c.Digits)
	}
	if c.Period < 0 {
		return fmt.Errorf("%w: period must be positive, got %d", ErrInvalidParameter, c.Period)
	}
	if c.Algorithm != "" && !c.Algorithm.valid() {
		return fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512, got %q", ErrInvalidParameter, string(c.Algorithm))
	}
	return nil
}

// Generator produces time-based one-time passwords (RFC 6238).
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	secret    []byte
	digits    int
	period    int
	algorithm Algorithm
	now       func() time.Time
}

// New creates a Generator from cfg. The configuration is validated and
// defaults are applied; an error is returned if it is invalid.
func New(cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if cfg.Digits == 0 {
		cfg.Digits = 6
	}
	if cfg.Period == 0 {
		cfg.Period = 30
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmSHA1
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Generator{
		secret:    cfg.Secret,
		digits:    cfg.Digits,
		period:    cfg.Period,
		algorithm: cfg.Algorithm,
		now:       cfg.Now,
	}, nil
}

// Counter derives the RFC 6238 time-step counter for the instant t:
// floor(unix seconds / period). Floor division rounds toward negative
// infinity, so pre-epoch instants still map to the correct step.
func Counter(t time.Time, period int) (uint64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidParameter, period)
	}
	sec := t.Unix()
	p := int64(period)
	step := sec / p
	if sec < 0 && sec%p != 0 {
		step--
	}
	return uint64(step), nil
}

// Generate returns the code for the current time step.
//
// Two concurrent calls within the same period return the same code;
// that is the contract, not a race.
func (g *Generator) Generate() (string, error) {
	return g.GenerateAt(g.now())
}

// GenerateAt returns the code for the time step containing t.
func (g *Generator) GenerateAt(t time.Time) (string, error) {
	counter, err := Counter(t, g.period)
	if err != nil {
		return "", err
	}
	return HOTP(g.secret, counter, g.digits, g.algorithm)
}

// Validate reports whether code matches the current time step.
// Only the single period containing the current instant is checked;
// callers needing clock-skew tolerance or replay protection must build
// that on top.
func (g *Generator) Validate(code string) bool {
	return g.ValidateAt(code, g.now())
}

// ValidateAt reports whether code matches the time step containing t.
// The comparison is constant-time.
func (g *Generator) ValidateAt(code string, t time.Time) bool {
	want, err := g.GenerateAt(t)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(code), []byte(want))
}
