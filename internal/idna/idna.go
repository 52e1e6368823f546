// Package idna provides the IDNA converter capability the HostValidator
// delegates to for hosts containing non-ASCII bytes, per RFC 3987 / UTS
// #46. The core never imports golang.org/x/net/idna directly: it depends
// only on the Converter interface below, so it stays testable without
// the dependency and so a caller can swap in a different UTS #46
// implementation.
package idna

import (
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// Error bits, mirroring the UTS #46 error set a converter may report.
// Zero means acceptance.
const (
	ErrEmptyLabel uint32 = 1 << iota
	ErrLabelTooLong
	ErrDomainTooLong
	ErrLeadingOrTrailingHyphen
	ErrHyphen34
	ErrLeadingCombiningMark
	ErrDisallowedChar
	ErrPunycode
	ErrLabelHasDot
	ErrInvalidACE
	ErrBidi
	ErrContextJ
)

// Converter is the injected IDNA capability. ToASCII attempts to convert
// a single label (or a dotted sequence of labels) to its ASCII
// (Punycode) form under UTS #46, non-transitional processing. Errs is
// zero iff the label was accepted; otherwise it is a bitmask of the
// Err* constants above describing every violation found.
type Converter interface {
	ToASCII(label string) (ascii string, errs uint32)
}

// converterFunc adapts a plain function to Converter.
type converterFunc func(string) (string, uint32)

func (f converterFunc) ToASCII(label string) (string, uint32) {
	return f(label)
}

// NewUTS46Converter returns the default Converter, backed by
// golang.org/x/net/idna configured for non-transitional ToASCII
// processing, with an NFC pre-normalization pass via
// golang.org/x/text/unicode/norm (the same pairing used to normalize
// hosts elsewhere in the ecosystem).
func NewUTS46Converter() Converter {
	profile := idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.ValidateLabels(true),
		idna.StrictDomainName(false),
	)

	return converterFunc(func(label string) (string, uint32) {
		normalized := norm.NFC.String(label)

		ascii, err := profile.ToASCII(normalized)
		if err == nil {
			return ascii, 0
		}

		return ascii, classifyError(err)
	})
}

// classifyError maps the opaque error golang.org/x/net/idna returns into
// our bitmask. The library does not expose individual UTS #46 violations
// as distinct types, so any non-nil error is reported as a disallowed
// character unless its message indicates a more specific cause; this
// keeps MissingIdnSupport (no converter configured at all) distinguishable
// from "the converter ran and rejected the label".
func classifyError(err error) uint32 {
	if err == nil {
		return 0
	}

	msg := err.Error()
	switch {
	case containsAny(msg, "too long"):
		return ErrLabelTooLong | ErrDomainTooLong
	case containsAny(msg, "hyphen"):
		return ErrLeadingOrTrailingHyphen
	case containsAny(msg, "bidi"):
		return ErrBidi
	case containsAny(msg, "punycode", "ACE"):
		return ErrPunycode | ErrInvalidACE
	case containsAny(msg, "empty label", "empty string"):
		return ErrEmptyLabel
	default:
		return ErrDisallowedChar
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if indexFold(s, sub) >= 0 {
			return true
		}
	}

	return false
}

// indexFold is a tiny case-insensitive substring search, avoiding a
// strings.ToLower allocation per error on this diagnostic-only path.
func indexFold(s, sub string) int {
	n := len(sub)
	if n == 0 {
		return 0
	}

	for i := 0; i+n <= len(s); i++ {
		if equalFold(s[i:i+n], sub) {
			return i
		}
	}

	return -1
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}

	return true
}
