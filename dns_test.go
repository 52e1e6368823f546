package uri

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsesDNSHostValidation(t *testing.T) {
	for _, tc := range []struct {
		scheme string
		want   bool
	}{
		{"http", true},
		{"https", true},
		{"ftp", true},
		{"mailto", true},
		{"urn", false},
		{"tel", false},
		{"", false},
	} {
		require.Equalf(t, tc.want, UsesDNSHostValidation(tc.scheme), "scheme=%q", tc.scheme)
	}
}

func TestValidateDNSHost(t *testing.T) {
	for _, tc := range []struct {
		host    string
		ok      bool
		comment string
	}{
		{"example.com", true, "ordinary domain"},
		{"example.com.", true, "trailing dot"},
		{"a.b.c", true, "short labels"},
		{"xn--80akhbyknj4f", true, "punycode ACE label"},
		{"-example.com", false, "leading hyphen"},
		{"example-.com", false, "trailing hyphen"},
		{"exam_ple.com", false, "underscore not a DNS-label character"},
		{"1example.com", false, "DNS label must start with a letter, not a digit"},
		{strings.Repeat("a", 64) + ".com", false, "label exceeds 63 bytes"},
		{strings.Repeat("a", 63) + ".com", true, "label exactly 63 bytes"},
	} {
		err := validateDNSHost(tc.host)
		if tc.ok {
			require.NoErrorf(t, err, "host=%q (%s)", tc.host, tc.comment)
		} else {
			require.Errorf(t, err, "host=%q (%s)", tc.host, tc.comment)
		}
	}
}

func TestValidateDNSHost_DomainTooLong(t *testing.T) {
	label := strings.Repeat("a", 50)
	labels := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		labels = append(labels, label)
	}
	host := strings.Join(labels, ".")

	require.Greater(t, len(host), maxDNSDomainLength)
	require.Error(t, validateDNSHost(host))
}

func TestValidateDNSLabel_EmptyLabelRejected(t *testing.T) {
	require.Error(t, validateDNSHost("example..com"))
}

func TestValidateDNSLabel_PercentEncodedDotCountsAsSeparator(t *testing.T) {
	// "%2E" decodes to "." for segmentation purposes, but the label
	// boundary rules (must end in letter/digit) still apply to what
	// precedes it.
	err := validateDNSHost("example%2Ecom")
	require.NoError(t, err)
}
