package uri

import (
	"fmt"
	"strings"

	"github.com/rfc3986/uri/internal/charclass"
)

// IsHost reports whether h is a valid host candidate per section 4.3:
// IP-literal, IPv4, registered-name, or (via the configured IDNA
// converter) an internationalized name.
func IsHost(h string, opts ...Option) bool {
	o, redeem := borrowOptions(opts)
	defer redeem()

	return validateHostForScheme(h, "", o) == nil
}

// validateHostForScheme dispatches a host candidate to the appropriate
// branch. An empty string is always valid: it represents an authority
// with no host content ("//" with nothing before the path).
func validateHostForScheme(h string, scheme string, o *options) error {
	if h == "" {
		return nil
	}

	if strings.HasPrefix(h, "[") {
		if !strings.HasSuffix(h, "]") {
			return errJoin(ErrInvalidHost, fmt.Errorf("unterminated IP-literal %q", h))
		}

		return validateIPLiteral(h[1 : len(h)-1])
	}

	if err := validateIPv4(h); err == nil {
		return nil
	}

	return validateRegisteredName(h, scheme, o)
}

// validateRegisteredName implements the reg-name ABNF: a dot-separated
// sequence of labels (optionally ending with a trailing dot), each label
// built from unreserved / sub-delims / pct-encoded runes. If the whole
// host does not match this shape and contains a non-ASCII byte, it falls
// through to the injected IDNA converter; otherwise it fails.
func validateRegisteredName(h string, scheme string, o *options) error {
	if isASCII(h) {
		if err := validateRegNameShape(h); err != nil {
			return errJoin(ErrInvalidHost, err)
		}

		if o.withDNSHostRules && o.schemeIsDNSFunc != nil && o.schemeIsDNSFunc(scheme) {
			return validateDNSHost(h)
		}

		return nil
	}

	return validateIDNHost(h, o)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}

	return true
}

// validateRegNameShape checks the label/dot structure and character set
// of an ASCII reg-name, without imposing any DNS-specific length limit.
func validateRegNameShape(h string) error {
	labels := strings.Split(h, ".")
	if len(labels) > 1 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1] // tolerate one trailing dot
	}

	if len(labels) > 127 {
		return fmt.Errorf("host %q has more than 127 labels", h)
	}

	for _, label := range labels {
		if err := validateRegNameLabel(label); err != nil {
			return err
		}
	}

	return nil
}

func validateRegNameLabel(label string) error {
	for i := 0; i < len(label); {
		if label[i] == '%' {
			_, n, ok := charclass.DecodePctEncoded(label[i:])
			if !ok {
				return fmt.Errorf("malformed percent-encoding in host label %q", label)
			}
			i += n

			continue
		}

		r := rune(label[i])
		if !charclass.UnreservedOrSubDelims.IsMember(r) {
			return fmt.Errorf("host label %q contains invalid character %q", label, r)
		}
		i++
	}

	return nil
}

// validateIDNHost delegates a non-ASCII host to the injected IDNA
// converter. A nil converter is reported as MissingIdnSupport, distinct
// from an ordinary InvalidHost failure so callers can tell a
// configuration gap from a genuinely malformed host.
func validateIDNHost(h string, o *options) error {
	conv, available := o.idna()
	if !available {
		return errJoin(ErrMissingIdnSupport, fmt.Errorf("host %q requires IDNA processing", h))
	}

	_, errs := conv.ToASCII(h)
	if errs != 0 {
		return errJoin(ErrInvalidHost, fmt.Errorf("host %q failed IDNA validation (error bits 0x%x)", h, errs))
	}

	return nil
}
