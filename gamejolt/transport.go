package gamejolt

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// HTTPTransport is the default Transport: it POSTs the signed URL with resty
// over a retrying round tripper, optionally rate limited.
type HTTPTransport struct {
	client  *resty.Client
	limiter *rate.Limiter
}

// NewHTTPTransport creates the default transport. Only the HTTP related
// options (timeout, retries, rate limit, user agent, http client) apply.
func NewHTTPTransport(logger zerolog.Logger, opts ...Option) *HTTPTransport {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return newHTTPTransport(o, logger)
}

func newHTTPTransport(o *clientOptions, logger zerolog.Logger) *HTTPTransport {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = o.maxRetries
	retryClient.RetryWaitMin = o.retryWaitMin
	retryClient.RetryWaitMax = o.retryWaitMax
	retryClient.Logger = retryLogger{logger: logger}
	if o.httpClient != nil {
		retryClient.HTTPClient = o.httpClient
	}

	restyClient := resty.NewWithClient(retryClient.StandardClient())
	restyClient.
		SetTimeout(o.timeout).
		SetHeader("User-Agent", o.userAgent).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{logger: logger})

	t := &HTTPTransport{client: restyClient}
	if o.rateLimit > 0 {
		burst := max(int(o.rateLimit), 1)
		t.limiter = rate.NewLimiter(rate.Limit(o.rateLimit), burst)
	}
	return t
}

// Send implements Transport
func (t *HTTPTransport) Send(ctx context.Context, url string) ([]byte, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit error: %w", err)
		}
	}

	resp, err := t.client.R().SetContext(ctx).Post(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &StatusError{
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	return resp.Body(), nil
}

// restyLogger routes resty's own warnings into zerolog
type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.logger.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...any)  { l.logger.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...any) { l.logger.Debug().Msgf(format, v...) }

// retryLogger implements retryablehttp.LeveledLogger. Per-attempt chatter is
// demoted to debug and request URLs are dropped since they carry user tokens.
type retryLogger struct {
	logger zerolog.Logger
}

func (l retryLogger) Error(msg string, kv ...any) { l.logger.Warn().Fields(withoutURL(kv)).Msg(msg) }
func (l retryLogger) Info(msg string, kv ...any)  { l.logger.Debug().Fields(withoutURL(kv)).Msg(msg) }
func (l retryLogger) Debug(msg string, kv ...any) { l.logger.Debug().Fields(withoutURL(kv)).Msg(msg) }
func (l retryLogger) Warn(msg string, kv ...any)  { l.logger.Warn().Fields(withoutURL(kv)).Msg(msg) }

func withoutURL(kv []any) []any {
	out := make([]any, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok && key == "url" {
			continue
		}
		out = append(out, kv[i], kv[i+1])
	}
	return out
}
