package uri

import (
	"fmt"
	"strings"
)

// Parse decomposes a URI into its eight RFC 3986 components. It is a
// deterministic, single-pass decision tree driven by the position of the
// first structural delimiter: it never backtracks and never partially
// populates a Components value on failure.
//
// Parse is permissive at the component level (scheme-specific rules on
// path/query/fragment content are not enforced) and strict at the
// structural level (the scheme/authority/path-variant combination must
// be one RFC 3986 Appendix B would actually produce).
func Parse(s string, opts ...Option) (Components, error) {
	o, redeem := borrowOptions(opts)
	defer redeem()

	if c, ok := shortcutTable(s); ok {
		return c, nil
	}

	if err := scanControlCharacters(s); err != nil {
		return Components{}, err
	}

	switch {
	case strings.HasPrefix(s, "#"):
		return parseFragmentOnly(s), nil

	case strings.HasPrefix(s, "?"):
		return parseQueryOnly(s), nil

	case strings.HasPrefix(s, "//"):
		return parseWithAuthority(s[2:], "", o)

	case strings.HasPrefix(s, "/"), !strings.ContainsRune(s, ':'):
		return parsePathOnly(s), nil

	default:
		return parseColonFallback(s, o)
	}
}

// shortcutTable returns the canonical record for one of the six
// degenerate inputs where the general decision tree would otherwise have
// to special-case an entirely empty component on every branch.
func shortcutTable(s string) (Components, bool) {
	switch s {
	case "":
		return Components{Path: ""}, true
	case "#":
		return Components{Path: "", Fragment: strPtr("")}, true
	case "?":
		return Components{Path: "", Query: strPtr("")}, true
	case "?#":
		return Components{Path: "", Query: strPtr(""), Fragment: strPtr("")}, true
	case "/":
		return Components{Path: "/"}, true
	case "//":
		return Components{Path: "", Host: strPtr("")}, true
	default:
		return Components{}, false
	}
}

func scanControlCharacters(s string) error {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b <= 0x1F || b == 0x7F {
			return errJoin(ErrInvalidCharacters, fmt.Errorf("forbidden control character %#x at byte offset %d", b, i))
		}
	}

	return nil
}

func parseFragmentOnly(s string) Components {
	return Components{Path: "", Fragment: strPtr(s[1:])}
}

func parseQueryOnly(s string) Components {
	rest := s[1:]
	query, fragment, hasFragment := strings.Cut(rest, "#")

	c := Components{Path: "", Query: strPtr(query)}
	if hasFragment {
		c.Fragment = strPtr(fragment)
	}

	return c
}

// parsePathOnly splits s into path/query/fragment with no scheme and no
// authority: first on "#", then on "?".
func parsePathOnly(s string) Components {
	beforeFragment, fragment, hasFragment := strings.Cut(s, "#")
	path, query, hasQuery := strings.Cut(beforeFragment, "?")

	c := Components{Path: path}
	if hasQuery {
		c.Query = strPtr(query)
	}
	if hasFragment {
		c.Fragment = strPtr(fragment)
	}

	return c
}

// parseWithAuthority handles the "leading //" case (with scheme already
// stripped, if any): split on "#" then "?", then tokenize the authority
// out of what remains.
func parseWithAuthority(rest string, scheme string, o *options) (Components, error) {
	beforeFragment, fragment, hasFragment := strings.Cut(rest, "#")
	authorityAndPath, query, hasQuery := strings.Cut(beforeFragment, "?")

	res, err := tokenizeAuthority(authorityAndPath, scheme, o)
	if err != nil {
		return Components{}, err
	}

	c := Components{
		Path: res.path,
		User: res.user,
		Pass: res.pass,
		Host: res.host,
		Port: res.port,
	}
	if scheme != "" {
		c.Scheme = strPtr(scheme)
	}
	if hasQuery {
		c.Query = strPtr(query)
	}
	if hasFragment {
		c.Fragment = strPtr(fragment)
	}

	return c, nil
}

// parseColonFallback handles every input that doesn't start with "#",
// "?", "//", or "/", and does contain a ":".
func parseColonFallback(s string, o *options) (Components, error) {
	head, tail, _ := strings.Cut(s, ":")

	if head == "" {
		return Components{}, errJoin(ErrInvalidScheme, fmt.Errorf("empty scheme before ':' in %q", s))
	}

	if validateScheme(head) != nil {
		if strings.HasPrefix(tail, "//") {
			// The "://" marker makes this unambiguously a malformed
			// scheme attempt rather than a path whose first segment
			// happens to contain a colon.
			return Components{}, errJoin(ErrInvalidScheme, fmt.Errorf("%q is not a valid scheme", head))
		}

		return parseAsPathNoScheme(s, len(head))
	}

	scheme := head

	switch {
	case tail == "":
		return Components{Path: "", Scheme: strPtr(scheme)}, nil

	case tail == "//":
		return Components{Path: "", Scheme: strPtr(scheme), Host: strPtr("")}, nil

	case strings.HasPrefix(tail, "//"):
		return parseWithAuthority(tail[2:], scheme, o)

	default:
		path, query, fragment := splitPathQueryFragment(tail)
		c := Components{Path: path, Scheme: strPtr(scheme)}
		if query != nil {
			c.Query = query
		}
		if fragment != nil {
			c.Fragment = fragment
		}

		return c, nil
	}
}

// parseAsPathNoScheme handles the case where the candidate scheme before
// the first ':' failed scheme validation: the whole input is reinterpreted
// as a relative path, unless the first ':' precedes every '/' in the
// input, which would make the first path segment ambiguous with a scheme
// (the path-noscheme rule).
func parseAsPathNoScheme(s string, firstColon int) (Components, error) {
	firstSlash := strings.IndexByte(s, '/')
	if firstSlash < 0 || firstColon < firstSlash {
		return Components{}, errJoin(ErrInvalidPath, fmt.Errorf("%q has a ':' in its first path segment", s))
	}

	return parsePathOnly(s), nil
}

// splitPathQueryFragment splits tail (everything after "scheme:") into
// path/query/fragment, preserving the absent/present distinction for
// query and fragment.
func splitPathQueryFragment(tail string) (path string, query, fragment *string) {
	beforeFragment, frag, hasFragment := strings.Cut(tail, "#")
	p, q, hasQuery := strings.Cut(beforeFragment, "?")

	path = p
	if hasQuery {
		query = strPtr(q)
	}
	if hasFragment {
		fragment = strPtr(frag)
	}

	return path, query, fragment
}
