package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsScheme(t *testing.T) {
	for _, tc := range []struct {
		scheme string
		want   bool
	}{
		{"", true},
		{"http", true},
		{"x", true},
		{"a+b-c.d", true},
		{"A9", true},
		{"0http", false},
		{"ht tp", false},
		{"ht?tps", false},
	} {
		require.Equalf(t, tc.want, IsScheme(tc.scheme), "scheme=%q", tc.scheme)
	}
}
