package uri

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/rfc3986/uri/internal/charclass"
)

// validateIPv4 checks host against the RFC 3986 IPv4address production:
// four dec-octets, no leading zeros, no percent-encoding.
//
//	dec-octet = DIGIT / %x31-39 DIGIT / "1" 2DIGIT / "2" %x30-34 DIGIT / "25" %x30-35
func validateIPv4(host string) error {
	octets := strings.Split(host, ".")
	if len(octets) != 4 {
		if len(octets) < 4 {
			return errJoin(ErrInvalidHost, ipv4ErrTooFewOctets)
		}
		return errJoin(ErrInvalidHost, ipv4ErrTooManyOctets)
	}

	for _, octet := range octets {
		if err := validateDecOctet(octet); err != nil {
			return errJoin(ErrInvalidHost, err)
		}
	}

	return nil
}

func validateDecOctet(octet string) error {
	if len(octet) == 0 {
		return ipv4ErrEmptyOctet
	}
	if len(octet) > 3 {
		return ipv4ErrOctetTooLarge
	}

	value := 0
	for i := 0; i < len(octet); i++ {
		c := octet[i]
		if !charclass.IsDigit(c) {
			return ipv4ErrInvalidCharacter
		}
		value = value*10 + int(c-'0')
	}

	if len(octet) > 1 && octet[0] == '0' {
		return ipv4ErrLeadingZero
	}
	if value > 255 {
		return ipv4ErrOctetTooLarge
	}

	return nil
}

// validateIPLiteral validates the content of a "[...]" host, dispatching
// to IPv6 (with optional RFC 6874 zone identifier), or IPvFuture.
func validateIPLiteral(content string) error {
	if len(content) == 0 {
		return errJoin(ErrInvalidHost, fmt.Errorf("empty IP-literal"))
	}

	if content[0] == 'v' || content[0] == 'V' {
		return validateIPvFuture(content)
	}

	return validateIPv6(content)
}

// validateIPv6 validates an IPv6 literal, optionally followed by a
// "%<zone>" suffix per RFC 6874. Per RFC 6874, a zone identifier is only
// legal on a link-local address (fe80::/10).
func validateIPv6(content string) error {
	addrPart, zone, hasZone := strings.Cut(content, "%")

	addr, err := netip.ParseAddr(addrPart)
	if err != nil || !addr.Is6() || addr.Is4In6() {
		return errJoin(ErrInvalidHost, fmt.Errorf("%q is not a valid IPv6 address", addrPart))
	}

	if !hasZone {
		return nil
	}

	decodedZone, err := decodeZoneID(zone)
	if err != nil {
		return errJoin(ErrInvalidHost, err)
	}

	if decodedZone == "" {
		return errJoin(ErrInvalidHost, fmt.Errorf("IPv6 zone identifier must not be empty"))
	}

	if !isLinkLocal(addr) {
		return errJoin(ErrInvalidHost, fmt.Errorf("zone identifiers are only valid on link-local (fe80::/10) addresses, got %q", addrPart))
	}

	return nil
}

// isLinkLocal reports whether addr falls in fe80::/10, per RFC 6874.
func isLinkLocal(addr netip.Addr) bool {
	b := addr.As16()
	return b[0] == 0xfe && (b[1]&0xc0) == 0x80
}

// decodeZoneID percent-decodes the zone suffix (without its leading "%")
// and rejects any decoded byte that is a gen-delim or space, per section
// 4.3's zone-identifier rule.
func decodeZoneID(zone string) (string, error) {
	var out strings.Builder
	out.Grow(len(zone))

	for i := 0; i < len(zone); {
		if zone[i] == '%' {
			b, n, ok := charclass.DecodePctEncoded(zone[i:])
			if !ok {
				return "", fmt.Errorf("malformed percent-encoding in zone identifier %q", zone)
			}
			if isForbiddenInZone(rune(b)) {
				return "", fmt.Errorf("zone identifier %q decodes to a forbidden character", zone)
			}
			out.WriteByte(b)
			i += n

			continue
		}

		r := rune(zone[i])
		if isForbiddenInZone(r) {
			return "", fmt.Errorf("zone identifier %q contains a forbidden character", zone)
		}
		out.WriteByte(zone[i])
		i++
	}

	return out.String(), nil
}

func isForbiddenInZone(r rune) bool {
	switch r {
	case ':', '/', '?', '#', '[', ']', '@', ' ':
		return true
	default:
		return false
	}
}

// validateIPvFuture validates the "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
// production. The v4/v6 version tags are reserved for the canonical IPv4
// and IPv6 syntaxes and are rejected here.
func validateIPvFuture(content string) error {
	rest := content[1:] // drop leading 'v'/'V'

	dot := strings.IndexByte(rest, '.')
	if dot <= 0 {
		return errJoin(ErrInvalidHost, fmt.Errorf("IPvFuture %q is missing its version/address separator", content))
	}

	version := rest[:dot]
	address := rest[dot+1:]

	for _, r := range version {
		if !charclass.IsHex(r) {
			return errJoin(ErrInvalidHost, fmt.Errorf("IPvFuture version %q is not hexadecimal", version))
		}
	}

	if isReservedIPvFutureVersion(version) {
		return errJoin(ErrInvalidHost, fmt.Errorf("IPvFuture version %q is reserved for the canonical IPv4/IPv6 forms", version))
	}

	if len(address) == 0 {
		return errJoin(ErrInvalidHost, fmt.Errorf("IPvFuture %q has an empty address part", content))
	}

	for _, r := range address {
		if !charclass.UnreservedOrSubDelims.IsMember(r) && r != ':' {
			return errJoin(ErrInvalidHost, fmt.Errorf("IPvFuture address %q contains an invalid character %q", address, r))
		}
	}

	return nil
}

func isReservedIPvFutureVersion(version string) bool {
	return strings.EqualFold(version, "4") || strings.EqualFold(version, "6")
}
