package gamejolt

import (
	"context"
	"fmt"
	"net/url"
)

// Operation is a server-side data store update
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
	OpAppend   Operation = "append"
	OpPrepend  Operation = "prepend"
)

// IsNumeric reports whether the operation works on integer data
func (op Operation) IsNumeric() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// Valid reports whether Game Jolt knows the operation
func (op Operation) Valid() bool {
	return op.IsNumeric() || op == OpAppend || op == OpPrepend
}

// DataStoreService reads and writes the game's key/value store.
//
// Every method takes a *User scope: nil addresses the global store,
// a user with a session token addresses that user's store.
type DataStoreService struct {
	client *Client
}

// scopeParams validates the scope and key and returns the base parameters
func scopeParams(user *User, key string) (url.Values, Scope, error) {
	if key == "" {
		return nil, "", fmt.Errorf("%w: key must be provided", ErrInvalidArgument)
	}
	if user == nil {
		return url.Values{"key": {key}}, ScopeGlobal, nil
	}
	if err := requireToken(user); err != nil {
		return nil, "", err
	}

	params := userParams(user)
	params.Set("key", key)
	return params, ScopeUser, nil
}

// Fetch reads a key
func (s *DataStoreService) Fetch(ctx context.Context, user *User, key string) (*DataStoreItem, error) {
	params, scope, err := scopeParams(user, key)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Post(ctx, EndpointDataStoreFetch, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key %q: %w", key, err)
	}

	data, err := resp.String("data")
	if err != nil {
		return nil, err
	}
	return &DataStoreItem{Key: key, Data: data, Scope: scope}, nil
}

// Set writes a key, creating it if needed
func (s *DataStoreService) Set(ctx context.Context, user *User, key, data string) error {
	params, scope, err := scopeParams(user, key)
	if err != nil {
		return err
	}
	params.Set("data", data)

	if _, err := s.client.Post(ctx, EndpointDataStoreSet, params); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}

	s.client.logger.Debug().
		Str("key", key).
		Str("scope", string(scope)).
		Msg("Stored data store item")
	return nil
}

// Update applies an operation to a key on the server and returns the new value
func (s *DataStoreService) Update(ctx context.Context, user *User, key string, op Operation, value string) (*DataStoreItem, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: unknown operation %q", ErrInvalidArgument, op)
	}

	params, scope, err := scopeParams(user, key)
	if err != nil {
		return nil, err
	}
	params.Set("operation", string(op))
	params.Set("value", value)

	resp, err := s.client.Post(ctx, EndpointDataStoreUpdate, params)
	if err != nil {
		return nil, fmt.Errorf("failed to update key %q: %w", key, err)
	}

	data, err := resp.String("data")
	if err != nil {
		return nil, err
	}
	return &DataStoreItem{Key: key, Data: data, Scope: scope}, nil
}

// Remove deletes a key
func (s *DataStoreService) Remove(ctx context.Context, user *User, key string) error {
	params, _, err := scopeParams(user, key)
	if err != nil {
		return err
	}

	if _, err := s.client.Post(ctx, EndpointDataStoreRemove, params); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

// GetKeys lists keys, optionally filtered by a pattern where * matches anything.
// Patterns need API version v1_2.
func (s *DataStoreService) GetKeys(ctx context.Context, user *User, pattern string) ([]string, error) {
	params := url.Values{}
	if user != nil {
		if err := requireToken(user); err != nil {
			return nil, err
		}
		params = userParams(user)
	}
	if pattern != "" {
		if err := s.client.requireVersion("data-store get-keys pattern", "v1_2"); err != nil {
			return nil, err
		}
		params.Set("pattern", pattern)
	}

	resp, err := s.client.Post(ctx, EndpointDataStoreGetKeys, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get keys: %w", err)
	}

	// An empty store answers without a keys array
	if !resp.Has("keys") {
		return []string{}, nil
	}

	var entries []struct {
		Key string `json:"key"`
	}
	if err := resp.Decode("keys", &entries); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys, nil
}
