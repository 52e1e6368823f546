package uri

import (
	"fmt"
	"strings"
)

// authorityResult holds the tokenized pieces of an authority plus the
// path that followed it; pass is only ever non-nil when user is too.
type authorityResult struct {
	user *string
	pass *string
	host *string
	port *int
	path string
}

// tokenizeAuthority implements the AuthorityTokenizer (section 4.2). s is
// everything after the "//" prefix the Decomposer already stripped; it
// still contains any trailing path, but never a query or fragment (the
// Decomposer peels those off first).
func tokenizeAuthority(s string, scheme string, o *options) (authorityResult, error) {
	if s == "" {
		// empty-authority rule: "//" with nothing before the path.
		return authorityResult{host: strPtr(""), path: ""}, nil
	}

	authorityPart, path := splitAuthorityFromPath(s)

	if authorityPart == "" {
		return authorityResult{host: strPtr(""), path: path}, nil
	}

	userinfo, hostport, hasUserinfo := cutLastAt(authorityPart)

	var user, pass *string
	if hasUserinfo {
		u, p, hasPass := strings.Cut(userinfo, ":")
		user = strPtr(u)
		if hasPass {
			pass = strPtr(p)
		}
	}

	hostStr, portStr, err := tokenizeHostPort(hostport)
	if err != nil {
		return authorityResult{}, err
	}

	if err := validateHostForScheme(hostStr, scheme, o); err != nil {
		return authorityResult{}, err
	}

	port, err := validatePort(portStr)
	if err != nil {
		return authorityResult{}, err
	}

	return authorityResult{
		user: user,
		pass: pass,
		host: strPtr(hostStr),
		port: port,
		path: path,
	}, nil
}

// splitAuthorityFromPath peels the path (everything from the first "/"
// onward) off the authority; an authority never contains an unescaped
// "/".
func splitAuthorityFromPath(s string) (authority, path string) {
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		return s[:idx], s[idx:]
	}

	return s, ""
}

// cutLastAt splits off userinfo at the *first* "@", per section 4.2 step 2.
func cutLastAt(s string) (userinfo, hostport string, ok bool) {
	if idx := strings.IndexByte(s, '@'); idx >= 0 {
		return s[:idx], s[idx+1:], true
	}

	return "", s, false
}

// tokenizeHostPort splits a hostport candidate into host and port. A
// leading "[" dispatches to the IP-literal rule: the bracket must be at
// position 0, a matching "]" must exist, and anything after it must
// start with ":" (the port separator).
func tokenizeHostPort(hostport string) (host, port string, err error) {
	if strings.IndexByte(hostport, '[') < 0 {
		host, port, _ = strings.Cut(hostport, ":")

		return host, port, nil
	}

	if hostport[0] != '[' {
		return "", "", errJoin(ErrInvalidHost, fmt.Errorf("%q has a '[' that is not the first character", hostport))
	}

	closeIdx := strings.IndexByte(hostport, ']')
	if closeIdx < 0 {
		return "", "", errJoin(ErrInvalidHost, fmt.Errorf("%q has an unmatched '['", hostport))
	}

	host = hostport[:closeIdx+1]
	rest := hostport[closeIdx+1:]

	if rest == "" {
		return host, "", nil
	}

	if rest[0] != ':' {
		return "", "", errJoin(ErrInvalidHost, fmt.Errorf("%q has trailing characters after ']' that are not a port", hostport))
	}

	return host, rest[1:], nil
}
