package uri

import (
	"fmt"

	"github.com/rfc3986/uri/internal/charclass"
)

// IsScheme reports whether s is a syntactically valid URI scheme:
// ALPHA (ALPHA | DIGIT | "+" | "-" | ".")*. An empty string is valid
// (meaning "no scheme"), matching SchemeValidator's contract.
//
// Reference: https://www.rfc-editor.org/rfc/rfc3986#section-3.1
func IsScheme(s string) bool {
	return validateScheme(s) == nil
}

func validateScheme(scheme string) error {
	if len(scheme) == 0 {
		return nil
	}

	if !charclass.IsASCIILetter(rune(scheme[0])) {
		return errJoin(ErrInvalidScheme, fmt.Errorf("a scheme must start with an ASCII letter, got %q", scheme))
	}

	for i := 1; i < len(scheme); i++ {
		if !charclass.IsSchemeChar(rune(scheme[i])) {
			return errJoin(ErrInvalidScheme, fmt.Errorf("invalid character %q in scheme %q", scheme[i], scheme))
		}
	}

	return nil
}
