package gamejolt

import (
	"context"
	"errors"
	"fmt"
)

// SessionStatus is reported on ping to tell Game Jolt what the player is doing
type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionIdle   SessionStatus = "idle"
)

// SessionsService opens, pings, checks and closes play sessions.
// Game Jolt closes a session that has not been pinged for 120 seconds.
type SessionsService struct {
	client *Client
}

// Open opens a session for the user, closing any open one
func (s *SessionsService) Open(ctx context.Context, user *User) error {
	if err := requireToken(user); err != nil {
		return err
	}
	if _, err := s.client.Post(ctx, EndpointSessionsOpen, userParams(user)); err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	return nil
}

// Ping keeps the user's session open. An empty status leaves it unchanged.
func (s *SessionsService) Ping(ctx context.Context, user *User, status SessionStatus) error {
	if err := requireToken(user); err != nil {
		return err
	}

	params := userParams(user)
	switch status {
	case "":
	case SessionActive, SessionIdle:
		params.Set("status", string(status))
	default:
		return fmt.Errorf("%w: invalid session status %q", ErrInvalidArgument, status)
	}

	if _, err := s.client.Post(ctx, EndpointSessionsPing, params); err != nil {
		return fmt.Errorf("failed to ping session: %w", err)
	}
	return nil
}

// Check reports whether the user has an open session. A bare failure from
// the API means "no session"; a failure with a message is returned as error.
func (s *SessionsService) Check(ctx context.Context, user *User) (bool, error) {
	if err := s.client.requireVersion("sessions check", "v1_2"); err != nil {
		return false, err
	}
	if err := requireToken(user); err != nil {
		return false, err
	}

	_, err := s.client.Post(ctx, EndpointSessionsCheck, userParams(user))
	if err == nil {
		return true, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && !apiErr.HasMessage() {
		return false, nil
	}
	return false, fmt.Errorf("failed to check session: %w", err)
}

// Close closes the user's session
func (s *SessionsService) Close(ctx context.Context, user *User) error {
	if err := requireToken(user); err != nil {
		return err
	}
	if _, err := s.client.Post(ctx, EndpointSessionsClose, userParams(user)); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}
