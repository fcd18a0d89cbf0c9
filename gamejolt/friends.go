package gamejolt

import (
	"context"
	"fmt"
)

// FriendsService lists a user's friends
type FriendsService struct {
	client *Client
}

// Fetch returns the user IDs of the user's friends
func (s *FriendsService) Fetch(ctx context.Context, user *User) ([]int, error) {
	if err := s.client.requireVersion("friends", "v1_2"); err != nil {
		return nil, err
	}
	if err := requireToken(user); err != nil {
		return nil, err
	}

	resp, err := s.client.Post(ctx, EndpointFriendsFetch, userParams(user))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch friends: %w", err)
	}

	if !resp.Has("friends") {
		return []int{}, nil
	}

	var friends []struct {
		FriendID FlexInt `json:"friend_id"`
	}
	if err := resp.Decode("friends", &friends); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(friends))
	for _, f := range friends {
		ids = append(ids, int(f.FriendID))
	}
	return ids, nil
}
