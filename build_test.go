package uri

import (
	"testing"

	"github.com/rfc3986/uri/internal/fixtures"
	"github.com/stretchr/testify/require"
)

func TestBuild_Scenarios(t *testing.T) {
	t.Run("pass is elided", func(t *testing.T) {
		got := Build(Components{
			Scheme: strPtr("http"), User: strPtr("u"), Pass: strPtr("p"), Host: strPtr("h"),
		})
		require.Equal(t, "http://u@h", got)
	})

	t.Run("present-but-empty query and fragment", func(t *testing.T) {
		got := Build(Components{Path: "/", Query: strPtr(""), Fragment: strPtr("")})
		require.Equal(t, "/?#", got)
	})
}

// TestBuild_RoundTrip checks parse/build agreement on every accepted
// fixture that carries no userinfo password, per the round-trip property.
func TestBuild_RoundTrip(t *testing.T) {
	for _, generator := range fixtures.All {
		for _, tc := range generator() {
			if !tc.ParseOK {
				continue
			}

			c, err := Parse(tc.Raw)
			require.NoErrorf(t, err, "raw=%q", tc.Raw)

			if c.Pass != nil {
				continue // builder intentionally elides pass; not a round trip case
			}

			require.Equalf(t, tc.Raw, Build(c), "raw=%q", tc.Raw)
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	for _, generator := range fixtures.All {
		for _, tc := range generator() {
			if !tc.ParseOK {
				continue
			}

			c1, err := Parse(tc.Raw)
			require.NoErrorf(t, err, "raw=%q", tc.Raw)

			once := Build(c1)

			c2, err := Parse(once)
			require.NoErrorf(t, err, "round-tripped=%q (from raw=%q)", once, tc.Raw)

			require.Equalf(t, once, Build(c2), "raw=%q", tc.Raw)
		}
	}
}
