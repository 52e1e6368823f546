// Package uri is an RFC 3986 compliant URI parser and builder, extended
// with RFC 3987 internationalized hosts (via an injected IDNA converter)
// and RFC 6874 IPv6 zone identifiers.
//
// This is based on the design of github.com/fredbi/uri (itself forked
// from github.com/ttacon/uri), rebuilt around an explicit eight-field
// component record with a distinguishable absent/empty state for every
// optional field.
//
// Parse is deliberately permissive at the component level: it does not
// enforce scheme-specific rules on path, query or fragment content. It is
// strict at the structural level: scheme, authority and path-variant
// combinations that RFC 3986 Appendix B would not produce are rejected.
//
// Reference: https://www.rfc-editor.org/rfc/rfc3986
package uri
