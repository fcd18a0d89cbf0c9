package gamejolt

import (
	"context"
	"fmt"
)

// TimeService reads the server clock
type TimeService struct {
	client *Client
}

// Fetch returns the current time on the Game Jolt servers
func (s *TimeService) Fetch(ctx context.Context) (*ServerTime, error) {
	if err := s.client.requireVersion("time", "v1_2"); err != nil {
		return nil, err
	}

	resp, err := s.client.Post(ctx, EndpointTimeFetch, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch server time: %w", err)
	}

	// The time fields sit directly in the response object
	var st ServerTime
	if err := resp.decodeObject(&st); err != nil {
		return nil, err
	}
	return &st, nil
}
