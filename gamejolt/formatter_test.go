package gamejolt

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatterURL(t *testing.T) {
	f := NewFormatter(DefaultBaseURL, DefaultVersion, "123", "json")

	tests := []struct {
		name     string
		endpoint Endpoint
		params   url.Values
		expected string
	}{
		{
			name:     "defaults only",
			endpoint: EndpointTimeFetch,
			expected: "https://api.gamejolt.com/api/game/v1_2/time?format=json&game_id=123",
		},
		{
			name:     "with parameters",
			endpoint: EndpointUsersFetch,
			params:   url.Values{"username": {"cros"}},
			expected: "https://api.gamejolt.com/api/game/v1_2/users?format=json&game_id=123&username=cros",
		},
		{
			name:     "parameters override defaults",
			endpoint: EndpointUsersFetch,
			params:   url.Values{"format": {"xml"}},
			expected: "https://api.gamejolt.com/api/game/v1_2/users?format=xml&game_id=123",
		},
		{
			name:     "values are escaped",
			endpoint: EndpointDataStoreSet,
			params:   url.Values{"key": {"a b"}, "data": {"x&y=z"}},
			expected: "https://api.gamejolt.com/api/game/v1_2/data-store/set?data=x%26y%3Dz&format=json&game_id=123&key=a+b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.URL(tt.endpoint, tt.params))
		})
	}
}

func TestFormatterDoesNotMutateDefaults(t *testing.T) {
	f := NewFormatter(DefaultBaseURL, DefaultVersion, "123", "json")
	f.URL(EndpointUsersFetch, url.Values{"game_id": {"999"}})

	assert.Equal(t, "123", f.Defaults.Get("game_id"))
}

func TestSign(t *testing.T) {
	u := "https://api.gamejolt.com/api/game/v1_2/users?format=json&game_id=123&username=cros"
	assert.Equal(t, "d2b3954dcb1ba7d3b848646948085d08", Sign(u, "secret"))
}

func TestSignedURL(t *testing.T) {
	f := NewFormatter(DefaultBaseURL, DefaultVersion, "123", "json")

	signed := f.SignedURL(EndpointUsersFetch, url.Values{"username": {"cros"}}, "secret")
	assert.Equal(t,
		"https://api.gamejolt.com/api/game/v1_2/users?format=json&game_id=123&username=cros&signature=d2b3954dcb1ba7d3b848646948085d08",
		signed)
}

func TestAppendSignatureWithoutQuery(t *testing.T) {
	signed := AppendSignature("https://example.com/time", "k")
	assert.Equal(t, "https://example.com/time?signature="+Sign("https://example.com/time", "k"), signed)
}
