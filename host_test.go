package uri

import (
	"testing"

	"github.com/rfc3986/uri/internal/idna"
	"github.com/stretchr/testify/require"
)

func TestIsHost(t *testing.T) {
	for _, tc := range []struct {
		host string
		want bool
	}{
		{"", true},
		{"example.com", true},
		{"example.com.", true},
		{"127.0.0.1", true},
		{"[::1]", true},
		{"[127.0.0.1]", false},
		{"x|y", false},
		{"exa mple.com", false},
	} {
		require.Equalf(t, tc.want, IsHost(tc.host), "host=%q", tc.host)
	}
}

func TestValidateRegisteredName_DNSOptIn(t *testing.T) {
	o := &options{withDNSHostRules: true, schemeIsDNSFunc: UsesDNSHostValidation}

	require.NoError(t, validateRegisteredName("example.com", "https", o))
	require.Error(t, validateRegisteredName("exa--mple-.com", "https", o), "label ending in hyphen is invalid DNS shape")
	require.NoError(t, validateRegisteredName("exa--mple-.com", "urn", o), "non-DNS scheme bypasses the stricter rule")
}

func TestValidateIDNHost_MissingConverter(t *testing.T) {
	o := &options{idnaConverter: nil, idnaConfigured: true}

	err := validateIDNHost("www.詹姆斯.org", o)
	require.ErrorIs(t, err, ErrMissingIdnSupport)
}

func TestValidateIDNHost_CustomConverter(t *testing.T) {
	rejectAll := idna.Converter(converterStub{errs: idna.ErrDisallowedChar})
	o := &options{idnaConverter: rejectAll, idnaConfigured: true}

	err := validateIDNHost("xn--invalid", o)
	require.ErrorIs(t, err, ErrInvalidHost)
}

type converterStub struct {
	errs uint32
}

func (c converterStub) ToASCII(string) (string, uint32) { return "", c.errs }
