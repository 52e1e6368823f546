package uri

import "errors"

// Error is the error type returned by this module. It is a plain alias
// for the standard error interface, kept distinct so that godoc groups
// the sentinel values below under one banner.
type Error interface {
	error
}

// Failure kinds, per the taxonomy: every Parse/IsHost/IsPort failure
// wraps exactly one of these sentinels, so callers can discriminate with
// errors.Is without parsing the message.
var (
	ErrInvalidCharacters = Error(errors.New("input contains a character forbidden in a URI"))
	ErrInvalidScheme     = Error(errors.New("invalid scheme in URI"))
	ErrInvalidPath       = Error(errors.New("invalid path in URI"))
	ErrInvalidHost       = Error(errors.New("invalid host in URI"))
	ErrInvalidPort       = Error(errors.New("invalid port in URI"))
	ErrMissingIdnSupport = Error(errors.New("host requires IDNA processing but no converter was configured"))
)

// errJoin wraps a sentinel failure kind with a more specific cause,
// keeping errors.Is working against the sentinel.
func errJoin(kind error, cause error) error {
	return errors.Join(kind, cause)
}

// ipv4Error enumerates the ways a dotted-quad candidate can be malformed.
// Kept as a byte enum (not a fmt.Errorf per case) so the octet checks
// build no formatted error values of their own.
type ipv4Error uint8

const (
	ipv4ErrInvalidCharacter ipv4Error = iota
	ipv4ErrOctetTooLarge
	ipv4ErrEmptyOctet
	ipv4ErrLeadingZero
	ipv4ErrTooManyOctets
	ipv4ErrTooFewOctets
)

func (e ipv4Error) Error() string {
	switch e {
	case ipv4ErrInvalidCharacter:
		return "invalid character in IPv4 literal"
	case ipv4ErrOctetTooLarge:
		return "IPv4 octet value exceeds 255"
	case ipv4ErrEmptyOctet:
		return "IPv4 octet must have at least one digit"
	case ipv4ErrLeadingZero:
		return "IPv4 octet has a leading zero"
	case ipv4ErrTooManyOctets:
		return "IPv4 address has too many octets"
	case ipv4ErrTooFewOctets:
		return "IPv4 address has too few octets"
	default:
		return "invalid IPv4 literal"
	}
}
