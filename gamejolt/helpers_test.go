package gamejolt

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	testGameID = "123"
	testKey    = "secret"
)

// fakeTransport records every URL it is asked to send and answers with a canned body
type fakeTransport struct {
	body string
	err  error
	urls []string
}

func (f *fakeTransport) Send(ctx context.Context, u string) ([]byte, error) {
	f.urls = append(f.urls, u)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

// lastRequest splits the last sent URL into path and query
func (f *fakeTransport) lastRequest(t *testing.T) (string, url.Values) {
	t.Helper()
	require.NotEmpty(t, f.urls, "no request was sent")

	u, err := url.Parse(f.urls[len(f.urls)-1])
	require.NoError(t, err)
	return u.Path, u.Query()
}

func newTestClient(t *testing.T, body string, opts ...Option) (*Client, *fakeTransport) {
	t.Helper()

	ft := &fakeTransport{body: body}
	opts = append([]Option{WithTransport(ft)}, opts...)
	client, err := NewClient(testGameID, testKey, zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client, ft
}

func success(fields string) string {
	if fields == "" {
		return `{"response":{"success":"true"}}`
	}
	return `{"response":{"success":"true",` + fields + `}}`
}

func failure(message string) string {
	if message == "" {
		return `{"response":{"success":"false"}}`
	}
	return `{"response":{"success":"false","message":"` + message + `"}}`
}

func testUser() *User {
	return NewUser("cros", "tok")
}

// requireSigned checks that the URL ends with the signature of everything before it
func requireSigned(t *testing.T, rawURL string) {
	t.Helper()

	idx := strings.LastIndex(rawURL, "&signature=")
	require.Positive(t, idx, "signature missing from %s", rawURL)
	require.Equal(t, Sign(rawURL[:idx], testKey), rawURL[idx+len("&signature="):])
}

func sortValue(v int64) *int64 {
	return &v
}
