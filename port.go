package uri

import (
	"fmt"
	"strconv"

	"github.com/rfc3986/uri/internal/charclass"
)

const maxPort = 65535

// IsPort reports whether x is a valid port value: nil, "", or a decimal
// integer in 0..=65535 (as a string or an int).
func IsPort(x any) bool {
	_, err := validatePort(x)
	return err == nil
}

// validatePort accepts nil, "", or a string/int decimal value in
// 0..=65535, and returns the parsed port or nil if the port is absent.
func validatePort(x any) (*int, error) {
	switch v := x.(type) {
	case nil:
		return nil, nil
	case string:
		return validatePortString(v)
	case int:
		return validatePortInt(v)
	default:
		return nil, errJoin(ErrInvalidPort, fmt.Errorf("unsupported port value of type %T", x))
	}
}

func validatePortString(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}

	for i := 0; i < len(s); i++ {
		if !charclass.IsDigit(s[i]) {
			return nil, errJoin(ErrInvalidPort, fmt.Errorf("port %q is not numeric", s))
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil || n > maxPort {
		return nil, errJoin(ErrInvalidPort, fmt.Errorf("port %q is out of range 0..%d", s, maxPort))
	}

	return intPtr(n), nil
}

func validatePortInt(n int) (*int, error) {
	if n < 0 || n > maxPort {
		return nil, errJoin(ErrInvalidPort, fmt.Errorf("port %d is out of range 0..%d", n, maxPort))
	}

	return intPtr(n), nil
}
