package uri

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponents_MarshalJSON_FieldOrderAndAbsence(t *testing.T) {
	c := Components{
		Scheme: strPtr("http"),
		Host:   strPtr("example.com"),
		Port:   intPtr(80),
		Path:   "/a",
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)

	require.JSONEq(t, `{
		"scheme":"http","user":null,"pass":null,"host":"example.com",
		"port":80,"path":"/a","query":null,"fragment":null
	}`, string(data))

	require.Equal(t,
		`{"scheme":"http","user":null,"pass":null,"host":"example.com","port":80,"path":"/a","query":null,"fragment":null}`,
		string(data),
		"field order must be scheme,user,pass,host,port,path,query,fragment",
	)
}

func TestComponents_MarshalJSON_PresentButEmpty(t *testing.T) {
	c := Components{Path: "", Query: strPtr(""), Fragment: strPtr("")}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	require.JSONEq(t, `{"scheme":null,"user":null,"pass":null,"host":null,"port":null,"path":"","query":"","fragment":""}`, string(data))
}

func TestComponents_UnmarshalJSON_RoundTrip(t *testing.T) {
	original := Components{
		Scheme: strPtr("https"), User: strPtr("u"), Host: strPtr("h"), Port: intPtr(443),
		Path: "/x", Query: strPtr("q"), Fragment: strPtr("f"),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Components
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, original, decoded)
}
