package uri

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rfc3986/uri/internal/charclass"
)

const (
	maxDNSLabelLength  = 63
	maxDNSDomainLength = 255
)

// UsesDNSHostValidation reports whether scheme is one of the well-known
// URI schemes whose host is conventionally a DNS name (RFC 1035) rather
// than an arbitrary RFC 3986 registered name. It only matters when the
// caller has opted into WithDNSHostValidation; Parse's baseline host
// check never consults it.
//
// Reference: https://www.iana.org/assignments/uri-schemes/uri-schemes.xhtml
func UsesDNSHostValidation(scheme string) bool {
	switch scheme {
	case "http", "https", "ftp", "sftp", "ssh", "telnet",
		"imap", "imaps", "pop", "pop3", "smtp", "smtps", "mailto",
		"ldap", "ldaps", "nfs", "nntp", "ntp", "dns",
		"rtsp", "rtsps", "ws", "wss", "redis", "postgresql",
		"coap", "coaps", "git", "rsync", "svn", "vnc":
		return true
	default:
		return false
	}
}

// validateDNSHost applies RFC 1035 label/domain shape rules on top of
// the RFC 3986 registered-name check, which validateRegisteredName has
// already performed. Percent-encoded dots (label separators that happen
// to be escaped) are honored: "%2E" counts as a "." for segmentation.
func validateDNSHost(host string) error {
	if len(host) > maxDNSDomainLength {
		return errJoin(ErrInvalidHost, fmt.Errorf("DNS name %q exceeds %d bytes", host, maxDNSDomainLength))
	}

	offset := 0
	for offset < len(host) {
		consumed, err := validateDNSLabel(host[offset:])
		if err != nil {
			return errJoin(ErrInvalidHost, err)
		}

		offset += consumed
	}

	return nil
}

// validateDNSLabel validates one label (the bytes up to, and including,
// the next "." or "%2E", or end of string) and returns how many bytes of
// s it consumed.
func validateDNSLabel(s string) (int, error) {
	var (
		offset    int
		length    int
		lastWasLD bool // last consumed rune was a letter or digit
		sawAny    bool
	)

	for offset < len(s) {
		r, size := utf8.DecodeRuneInString(s[offset:])
		if r == utf8.RuneError && size <= 1 {
			return 0, fmt.Errorf("invalid UTF-8 near %q", s[offset:])
		}

		if r == '%' {
			b, n, ok := charclass.DecodePctEncoded(s[offset:])
			if !ok {
				return 0, fmt.Errorf("malformed percent-encoding near %q", s[offset:])
			}
			r, size = rune(b), n
		}

		if r == '.' {
			if !sawAny {
				return 0, fmt.Errorf("DNS label is empty near %q", s)
			}
			if !lastWasLD {
				return 0, fmt.Errorf("DNS label must end with a letter or digit, near %q", s[:offset])
			}

			return offset + size, nil
		}

		isLD := unicode.IsLetter(r) || unicode.IsDigit(r)
		if !isLD && r != '-' {
			return 0, fmt.Errorf("DNS label contains invalid rune %q", r)
		}
		if length == 0 && !unicode.IsLetter(r) {
			return 0, fmt.Errorf("DNS label must start with a letter, near %q", s)
		}

		length++
		if length > maxDNSLabelLength {
			return 0, fmt.Errorf("DNS label exceeds %d bytes, near %q", maxDNSLabelLength, s)
		}

		lastWasLD = isLD
		sawAny = true
		offset += size
	}

	if sawAny && !lastWasLD {
		return 0, fmt.Errorf("DNS label must end with a letter or digit, near %q", s)
	}

	return offset, nil
}
