package uri

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Components is the parsed representation of a URI: exactly the eight
// fields RFC 3986 defines, each preserving the distinction between
// "absent" (the component's delimiter never appeared) and "present but
// empty" (the delimiter appeared with nothing after it). Path is the one
// field that is never absent.
//
// A Components value is produced by Parse, or may be populated directly
// by a caller who is responsible for the validity of what they set; it
// is immutable once built, and Build never re-validates it.
type Components struct {
	Scheme   *string
	User     *string
	Pass     *string
	Host     *string
	Port     *int
	Path     string
	Query    *string
	Fragment *string
}

// componentsJSON mirrors Components field-for-field with the stable
// serialization order this module promises: scheme, user, pass, host,
// port, path, query, fragment. Absent fields marshal as null, present
// empty strings as "".
type componentsJSON struct {
	Scheme   *string `json:"scheme"`
	User     *string `json:"user"`
	Pass     *string `json:"pass"`
	Host     *string `json:"host"`
	Port     *int    `json:"port"`
	Path     string  `json:"path"`
	Query    *string `json:"query"`
	Fragment *string `json:"fragment"`
}

// MarshalJSON implements json.Marshaler, preserving the absent/present
// distinction and the scheme/user/pass/host/port/path/query/fragment
// field order.
func (c Components) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	fields := []struct {
		name string
		ptr  *string
		ival *int
		str  *string // for Path, always present
	}{
		{name: "scheme", ptr: c.Scheme},
		{name: "user", ptr: c.User},
		{name: "pass", ptr: c.Pass},
		{name: "host", ptr: c.Host},
		{name: "port", ival: c.Port},
		{name: "path", str: &c.Path},
		{name: "query", ptr: c.Query},
		{name: "fragment", ptr: c.Fragment},
	}

	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		encodedName, err := json.Marshal(f.name)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedName)
		buf.WriteByte(':')

		switch {
		case f.str != nil:
			encoded, err := json.Marshal(*f.str)
			if err != nil {
				return nil, err
			}
			buf.Write(encoded)
		case f.ival != nil:
			buf.WriteString(strconv.Itoa(*f.ival))
		case f.ptr != nil:
			encoded, err := json.Marshal(*f.ptr)
			if err != nil {
				return nil, err
			}
			buf.Write(encoded)
		default:
			buf.WriteString("null")
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Components) UnmarshalJSON(data []byte) error {
	var raw componentsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Scheme = raw.Scheme
	c.User = raw.User
	c.Pass = raw.Pass
	c.Host = raw.Host
	c.Port = raw.Port
	c.Path = raw.Path
	c.Query = raw.Query
	c.Fragment = raw.Fragment

	return nil
}

// strPtr is a small constructor helper used throughout the parser to
// build a present (possibly empty) string component.
func strPtr(s string) *string { return &s }

// intPtr is the equivalent helper for the port component.
func intPtr(n int) *int { return &n }
