package gamejolt

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// MaxScoreLimit is the largest number of scores one fetch returns
const MaxScoreLimit = 100

// ScoresService reads and stores scores
type ScoresService struct {
	client *Client
}

// ScoreQuery selects scores. Zero values are omitted from the request.
type ScoreQuery struct {
	// TableID selects a table; zero means the primary table
	TableID int
	// Limit is 1..100; zero uses the API default of 10
	Limit int
	// User restricts to one user's scores
	User *User
	// Guest restricts to one guest's scores
	Guest string
	// BetterThan and WorseThan take a sort value (v1_2); nil leaves them unset
	BetterThan *int64
	WorseThan  *int64
}

func (s *ScoresService) queryParams(q ScoreQuery) (url.Values, error) {
	params := url.Values{}

	if q.User != nil && q.Guest != "" {
		return nil, fmt.Errorf("%w: user and guest are mutually exclusive", ErrInvalidArgument)
	}
	if q.User != nil {
		if err := requireToken(q.User); err != nil {
			return nil, err
		}
		params = userParams(q.User)
	}
	if q.Guest != "" {
		params.Set("guest", q.Guest)
	}

	if q.Limit < 0 || q.Limit > MaxScoreLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidArgument, MaxScoreLimit)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.TableID > 0 {
		params.Set("table_id", strconv.Itoa(q.TableID))
	}

	if q.BetterThan != nil && q.WorseThan != nil {
		return nil, fmt.Errorf("%w: better_than and worse_than are mutually exclusive", ErrInvalidArgument)
	}
	if q.BetterThan != nil || q.WorseThan != nil {
		if err := s.client.requireVersion("scores better_than/worse_than", "v1_2"); err != nil {
			return nil, err
		}
	}
	if q.BetterThan != nil {
		params.Set("better_than", strconv.FormatInt(*q.BetterThan, 10))
	}
	if q.WorseThan != nil {
		params.Set("worse_than", strconv.FormatInt(*q.WorseThan, 10))
	}

	return params, nil
}

// Fetch returns scores matching the query
func (s *ScoresService) Fetch(ctx context.Context, q ScoreQuery) ([]Score, error) {
	params, err := s.queryParams(q)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Post(ctx, EndpointScoresFetch, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scores: %w", err)
	}

	scores := []Score{}
	if resp.Has("scores") {
		if err := resp.Decode("scores", &scores); err != nil {
			return nil, err
		}
	}

	s.client.logger.Debug().
		Int("count", len(scores)).
		Int("table_id", q.TableID).
		Msg("Retrieved scores from Game Jolt")
	return scores, nil
}

// ScoreEntry is a score to store. Exactly one of User and Guest must be set.
type ScoreEntry struct {
	// Score is the display string, e.g. "500 Jumps"
	Score     string
	Sort      int64
	User      *User
	Guest     string
	TableID   int
	ExtraData string
}

// Add stores a score
func (s *ScoresService) Add(ctx context.Context, entry ScoreEntry) error {
	if entry.Score == "" {
		return fmt.Errorf("%w: score string is required", ErrInvalidArgument)
	}
	if (entry.User == nil) == (entry.Guest == "") {
		return fmt.Errorf("%w: exactly one of user or guest is required", ErrInvalidArgument)
	}

	params := url.Values{}
	if entry.User != nil {
		if err := requireToken(entry.User); err != nil {
			return err
		}
		params = userParams(entry.User)
	} else {
		params.Set("guest", entry.Guest)
	}
	params.Set("score", entry.Score)
	params.Set("sort", strconv.FormatInt(entry.Sort, 10))
	if entry.TableID > 0 {
		params.Set("table_id", strconv.Itoa(entry.TableID))
	}
	if entry.ExtraData != "" {
		params.Set("extra_data", entry.ExtraData)
	}

	if _, err := s.client.Post(ctx, EndpointScoresAdd, params); err != nil {
		return fmt.Errorf("failed to add score: %w", err)
	}
	return nil
}

// GetRank returns the rank a sort value would have in a table (zero for the primary table)
func (s *ScoresService) GetRank(ctx context.Context, sort int64, tableID int) (int, error) {
	if err := s.client.requireVersion("scores get-rank", "v1_2"); err != nil {
		return 0, err
	}

	params := url.Values{"sort": {strconv.FormatInt(sort, 10)}}
	if tableID > 0 {
		params.Set("table_id", strconv.Itoa(tableID))
	}

	resp, err := s.client.Post(ctx, EndpointScoresGetRank, params)
	if err != nil {
		return 0, fmt.Errorf("failed to get rank: %w", err)
	}

	var rank FlexInt
	if err := resp.Decode("rank", &rank); err != nil {
		return 0, err
	}
	return int(rank), nil
}

// Tables lists the game's score tables
func (s *ScoresService) Tables(ctx context.Context) ([]ScoreTable, error) {
	resp, err := s.client.Post(ctx, EndpointScoresTables, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch score tables: %w", err)
	}

	var tables []ScoreTable
	if err := resp.Decode("tables", &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// PrimaryTable returns the primary table from a list, if any
func PrimaryTable(tables []ScoreTable) (ScoreTable, bool) {
	for _, t := range tables {
		if t.Primary {
			return t, true
		}
	}
	return ScoreTable{}, false
}
