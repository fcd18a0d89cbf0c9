package gamejolt

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// TrophiesService fetches and grants trophies
type TrophiesService struct {
	client *Client
}

// Fetch returns the game's trophies for a user. A nil achieved returns all
// trophies, otherwise only achieved (true) or unachieved (false) ones.
func (s *TrophiesService) Fetch(ctx context.Context, user *User, achieved *bool) ([]Trophy, error) {
	if err := requireToken(user); err != nil {
		return nil, err
	}

	params := userParams(user)
	if achieved != nil {
		params.Set("achieved", strconv.FormatBool(*achieved))
	}
	return s.fetch(ctx, params)
}

// FetchByID returns a single trophy
func (s *TrophiesService) FetchByID(ctx context.Context, user *User, id int) (*Trophy, error) {
	trophies, err := s.FetchByIDs(ctx, user, id)
	if err != nil {
		return nil, err
	}
	return &trophies[0], nil
}

// FetchByIDs returns the listed trophies in one request
func (s *TrophiesService) FetchByIDs(ctx context.Context, user *User, ids ...int) ([]Trophy, error) {
	if err := requireToken(user); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one trophy ID is required", ErrInvalidArgument)
	}

	params := userParams(user)
	params.Set("trophy_id", joinIDs(ids))

	trophies, err := s.fetch(ctx, params)
	if err != nil {
		if len(ids) == 1 {
			return nil, trophyError(err, ids[0], user)
		}
		return nil, err
	}
	return trophies, nil
}

func (s *TrophiesService) fetch(ctx context.Context, params url.Values) ([]Trophy, error) {
	resp, err := s.client.Post(ctx, EndpointTrophiesFetch, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trophies: %w", err)
	}

	var trophies []Trophy
	if err := resp.Decode("trophies", &trophies); err != nil {
		return nil, err
	}
	if len(trophies) == 0 && params["trophy_id"] != nil {
		return nil, ErrNotFound
	}

	s.client.logger.Debug().
		Int("count", len(trophies)).
		Msg("Retrieved trophies from Game Jolt")
	return trophies, nil
}

// AddAchieved marks a trophy as achieved by the user
func (s *TrophiesService) AddAchieved(ctx context.Context, user *User, trophyID int) error {
	if err := requireToken(user); err != nil {
		return err
	}

	params := userParams(user)
	params.Set("trophy_id", strconv.Itoa(trophyID))

	if _, err := s.client.Post(ctx, EndpointTrophiesAddAchieved, params); err != nil {
		return trophyError(err, trophyID, user)
	}

	s.client.logger.Info().
		Str("user", user.Username).
		Int("trophy_id", trophyID).
		Msg("Trophy achieved")
	return nil
}

// RemoveAchieved removes a trophy from the user's achieved trophies
func (s *TrophiesService) RemoveAchieved(ctx context.Context, user *User, trophyID int) error {
	if err := s.client.requireVersion("trophies remove-achieved", "v1_2"); err != nil {
		return err
	}
	if err := requireToken(user); err != nil {
		return err
	}

	params := userParams(user)
	params.Set("trophy_id", strconv.Itoa(trophyID))

	if _, err := s.client.Post(ctx, EndpointTrophiesRemoveAchieved, params); err != nil {
		return trophyError(err, trophyID, user)
	}

	s.client.logger.Info().
		Str("user", user.Username).
		Int("trophy_id", trophyID).
		Msg("Trophy removed")
	return nil
}
