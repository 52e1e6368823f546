package charclass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnreserved(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '0', '-', '.', '_', '~'} {
		require.Truef(t, Unreserved.IsMember(r), "rune=%q", r)
	}
	for _, r := range []rune{'!', '@', ':', ' ', '詹'} {
		require.Falsef(t, Unreserved.IsMember(r), "rune=%q", r)
	}
}

func TestUserInfoAllowsColon(t *testing.T) {
	require.True(t, UserInfo.IsMember(':'))
	require.False(t, UserInfo.IsMember('@'))
}

func TestPCharAllowsColonAndAt(t *testing.T) {
	require.True(t, PChar.IsMember(':'))
	require.True(t, PChar.IsMember('@'))
	require.False(t, PChar.IsMember('/'))
}

func TestIsSchemeChar(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '9', '+', '-', '.'} {
		require.Truef(t, IsSchemeChar(r), "rune=%q", r)
	}
	require.False(t, IsSchemeChar('_'))
}

func TestDecodePctEncoded(t *testing.T) {
	b, n, ok := DecodePctEncoded("%41rest")
	require.True(t, ok)
	require.Equal(t, byte('A'), b)
	require.Equal(t, 3, n)

	_, _, ok = DecodePctEncoded("%4")
	require.False(t, ok)

	_, _, ok = DecodePctEncoded("%zz")
	require.False(t, ok)
}
