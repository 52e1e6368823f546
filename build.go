package uri

import "strconv"

// Build reassembles a Components value into its string form. It is the
// exact inverse of Parse's decomposition, not a validator: it performs no
// character-class or structural checks of its own and trusts the caller
// (or a prior successful Parse) for the validity of every field.
//
// Pass is intentionally never emitted, per RFC 3986 section 7.5's
// guidance against transmitting cleartext userinfo; a Components value
// round-tripped through Parse and Build will lose a password that was
// present in the original string.
func Build(c Components) string {
	out := c.Path

	if c.Query != nil {
		out = out + "?" + *c.Query
	}
	if c.Fragment != nil {
		out = out + "#" + *c.Fragment
	}

	if c.Host != nil {
		authority := *c.Host
		if c.Port != nil {
			authority = authority + ":" + strconv.Itoa(*c.Port)
		}
		if c.User != nil {
			authority = *c.User + "@" + authority
		}
		out = "//" + authority + out
	}

	if c.Scheme != nil {
		out = *c.Scheme + ":" + out
	}

	return out
}
