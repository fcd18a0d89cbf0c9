package gamejolt

import (
	"context"
)

// Transport sends a signed request URL and returns the raw response body
type Transport interface {
	Send(ctx context.Context, url string) ([]byte, error)
}

// Evaluator interprets a raw response body
type Evaluator interface {
	// Evaluate parses the body into a Response; a well-formed failure
	// response is returned with Success false, not as an error.
	Evaluate(body []byte) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface
type TransportFunc func(ctx context.Context, url string) ([]byte, error)

// Send implements Transport
func (f TransportFunc) Send(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// EvaluatorFunc adapts a function to the Evaluator interface
type EvaluatorFunc func(body []byte) (*Response, error)

// Evaluate implements Evaluator
func (f EvaluatorFunc) Evaluate(body []byte) (*Response, error) {
	return f(body)
}
