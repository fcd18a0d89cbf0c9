package gamejolt

import (
	"encoding/json"
	"fmt"
)

// Response is an evaluated Game Jolt response
type Response struct {
	Success bool
	Message string
	// Fields holds every member of the response object, success and message included
	Fields map[string]json.RawMessage
}

// Has reports whether the response carries the field
func (r *Response) Has(field string) bool {
	_, ok := r.Fields[field]
	return ok
}

// Decode unmarshals a response field into v
func (r *Response) Decode(field string, v any) error {
	raw, ok := r.Fields[field]
	if !ok {
		return fmt.Errorf("%w: missing field %q", ErrMalformedResponse, field)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: field %q: %v", ErrMalformedResponse, field, err)
	}
	return nil
}

// decodeObject unmarshals the whole response object into v
func (r *Response) decodeObject(v any) error {
	raw, err := json.Marshal(r.Fields)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// String returns a scalar field as a string; numbers are returned as written
func (r *Response) String(field string) (string, error) {
	raw, ok := r.Fields[field]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrMalformedResponse, field)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("%w: field %q is not a scalar", ErrMalformedResponse, field)
}

// JSONEvaluator reads the JSON envelope: {"response": {"success": "true", ...}}
type JSONEvaluator struct{}

// Evaluate implements Evaluator
func (JSONEvaluator) Evaluate(body []byte) (*Response, error) {
	var envelope struct {
		Response map[string]json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope.Response == nil {
		return nil, fmt.Errorf("%w: missing response object", ErrMalformedResponse)
	}

	rawSuccess, ok := envelope.Response["success"]
	if !ok {
		return nil, fmt.Errorf("%w: missing success flag", ErrMalformedResponse)
	}
	var success FlexBool
	if err := json.Unmarshal(rawSuccess, &success); err != nil {
		return nil, fmt.Errorf("%w: success flag: %v", ErrMalformedResponse, err)
	}

	resp := &Response{
		Success: bool(success),
		Fields:  envelope.Response,
	}
	if rawMessage, ok := envelope.Response["message"]; ok {
		// A non-string message is ignored rather than failing the response
		_ = json.Unmarshal(rawMessage, &resp.Message)
	}
	return resp, nil
}
