package gamejolt

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL   string
	version   string
	format    string
	transport Transport
	evaluator Evaluator

	httpClient   *http.Client
	timeout      time.Duration
	maxRetries   int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	rateLimit    float64
	userAgent    string
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL:      DefaultBaseURL,
		version:      DefaultVersion,
		format:       DefaultFormat,
		timeout:      30 * time.Second,
		maxRetries:   3,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 30 * time.Second,
		userAgent:    "gjctl",
	}
}

// WithBaseURL overrides the API root. The URL should end with a slash.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithVersion selects the API version (v1, v1_1 or v1_2).
func WithVersion(version string) Option {
	return func(o *clientOptions) {
		o.version = version
	}
}

// WithFormat selects the response format. Formats other than json need WithEvaluator.
func WithFormat(format string) Option {
	return func(o *clientOptions) {
		o.format = format
	}
}

// WithTransport replaces the HTTP transport.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// WithEvaluator replaces the JSON response evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(o *clientOptions) {
		o.evaluator = e
	}
}

// WithHTTPClient sets the http.Client the default transport sends through.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithMaxRetries sets the maximum number of retry attempts on connection errors and 5xx.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.maxRetries = retries
		}
	}
}

// WithRetryWait sets the backoff bounds between retry attempts.
func WithRetryWait(min, max time.Duration) Option {
	return func(o *clientOptions) {
		if min > 0 && max >= min {
			o.retryWaitMin = min
			o.retryWaitMax = max
		}
	}
}

// WithRateLimit limits outgoing requests per second. Zero disables the limit.
func WithRateLimit(rps float64) Option {
	return func(o *clientOptions) {
		if rps >= 0 {
			o.rateLimit = rps
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}
