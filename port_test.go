package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPort(t *testing.T) {
	for _, tc := range []struct {
		value any
		want  bool
	}{
		{nil, true},
		{"", true},
		{"0", true},
		{"65535", true},
		{0, true},
		{65535, true},
		{"65536", false},
		{65536, false},
		{-1, false},
		{"-1", false},
		{"abc", false},
		{"08", true},
		{3.14, false},
	} {
		require.Equalf(t, tc.want, IsPort(tc.value), "value=%v", tc.value)
	}
}

func TestValidatePort_Absent(t *testing.T) {
	p, err := validatePort(nil)
	require.NoError(t, err)
	require.Nil(t, p)

	p, err = validatePort("")
	require.NoError(t, err)
	require.Nil(t, p)
}
