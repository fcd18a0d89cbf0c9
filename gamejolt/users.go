package gamejolt

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// UsersService fetches and authenticates users
type UsersService struct {
	client *Client
}

// FetchByUsername fetches a single user by username
func (s *UsersService) FetchByUsername(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidArgument)
	}

	users, err := s.fetch(ctx, url.Values{"username": {username}})
	if err != nil {
		return nil, err
	}
	return &users[0], nil
}

// FetchByID fetches a single user by ID
func (s *UsersService) FetchByID(ctx context.Context, id int) (*User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID %d", ErrInvalidArgument, id)
	}

	users, err := s.fetch(ctx, url.Values{"user_id": {strconv.Itoa(id)}})
	if err != nil {
		return nil, err
	}
	return &users[0], nil
}

// FetchByIDs fetches several users in one request
func (s *UsersService) FetchByIDs(ctx context.Context, ids ...int) ([]User, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one user ID is required", ErrInvalidArgument)
	}
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: invalid user ID %d", ErrInvalidArgument, id)
		}
	}

	return s.fetch(ctx, url.Values{"user_id": {joinIDs(ids)}})
}

func (s *UsersService) fetch(ctx context.Context, params url.Values) ([]User, error) {
	resp, err := s.client.Post(ctx, EndpointUsersFetch, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	var users []User
	if err := resp.Decode("users", &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}

	s.client.logger.Debug().
		Int("count", len(users)).
		Msg("Retrieved users from Game Jolt")
	return users, nil
}

// Authenticate verifies a username and game token pair.
// On success the caller can attach the token to its User with SetToken.
func (s *UsersService) Authenticate(ctx context.Context, username, token string) error {
	if username == "" || token == "" {
		return fmt.Errorf("%w: username and token are required", ErrInvalidArgument)
	}

	_, err := s.client.Post(ctx, EndpointUsersAuth, url.Values{
		"username":   {username},
		"user_token": {token},
	})
	if err != nil {
		return fmt.Errorf("failed to authenticate %s: %w", username, err)
	}
	return nil
}
