package gamejolt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoresBody = `{"response":{"success":"true","scores":[
	{"score":"500 Jumps","sort":"500","extra_data":"","user":"cros","user_id":"1","guest":"","stored":"1 week ago","stored_timestamp":"1400000000"},
	{"score":"450 Jumps","sort":450,"extra_data":"hard","user":"","user_id":"","guest":"Jim","stored":"2 weeks ago","stored_timestamp":1390000000}
]}}`

func TestScoresFetch(t *testing.T) {
	client, ft := newTestClient(t, scoresBody)

	scores, err := client.Scores.Fetch(context.Background(), ScoreQuery{TableID: 4, Limit: 2})
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, int64(500), scores[0].Sort)
	assert.Equal(t, 1, scores[0].UserID)
	assert.False(t, scores[0].IsGuest())
	assert.True(t, scores[1].IsGuest())
	assert.Equal(t, "hard", scores[1].ExtraData)

	path, q := ft.lastRequest(t)
	assert.Equal(t, "/api/game/v1_2/scores", path)
	assert.Equal(t, "4", q.Get("table_id"))
	assert.Equal(t, "2", q.Get("limit"))
	assert.False(t, q.Has("username"))
}

func TestScoresFetchQueryParams(t *testing.T) {
	tests := []struct {
		name     string
		query    ScoreQuery
		expected map[string]string
		absent   []string
	}{
		{
			name:   "defaults",
			query:  ScoreQuery{},
			absent: []string{"table_id", "limit", "guest", "username", "better_than", "worse_than"},
		},
		{
			name:     "user",
			query:    ScoreQuery{User: NewUser("cros", "tok")},
			expected: map[string]string{"username": "cros", "user_token": "tok"},
		},
		{
			name:     "guest",
			query:    ScoreQuery{Guest: "Jim"},
			expected: map[string]string{"guest": "Jim"},
			absent:   []string{"username"},
		},
		{
			name:     "better than",
			query:    ScoreQuery{BetterThan: sortValue(300)},
			expected: map[string]string{"better_than": "300"},
			absent:   []string{"worse_than"},
		},
		{
			name:     "worse than",
			query:    ScoreQuery{WorseThan: sortValue(300), Limit: 100},
			expected: map[string]string{"worse_than": "300", "limit": "100"},
		},
		{
			name:     "better than zero",
			query:    ScoreQuery{BetterThan: sortValue(0)},
			expected: map[string]string{"better_than": "0"},
			absent:   []string{"worse_than"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, ft := newTestClient(t, scoresBody)

			_, err := client.Scores.Fetch(context.Background(), tt.query)
			require.NoError(t, err)

			_, q := ft.lastRequest(t)
			for k, v := range tt.expected {
				assert.Equal(t, v, q.Get(k), k)
			}
			for _, k := range tt.absent {
				assert.False(t, q.Has(k), k)
			}
		})
	}
}

func TestScoresFetchValidation(t *testing.T) {
	tests := []struct {
		name    string
		query   ScoreQuery
		wantErr error
	}{
		{"user and guest", ScoreQuery{User: testUser(), Guest: "Jim"}, ErrInvalidArgument},
		{"limit too large", ScoreQuery{Limit: 101}, ErrInvalidArgument},
		{"negative limit", ScoreQuery{Limit: -1}, ErrInvalidArgument},
		{"better and worse", ScoreQuery{BetterThan: sortValue(1), WorseThan: sortValue(2)}, ErrInvalidArgument},
		{"user without token", ScoreQuery{User: &User{Username: "cros"}}, ErrTokenRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, ft := newTestClient(t, scoresBody)

			_, err := client.Scores.Fetch(context.Background(), tt.query)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, ft.urls)
		})
	}
}

func TestScoresFetchEmpty(t *testing.T) {
	client, _ := newTestClient(t, success(""))

	scores, err := client.Scores.Fetch(context.Background(), ScoreQuery{})
	require.NoError(t, err)
	assert.NotNil(t, scores)
	assert.Empty(t, scores)
}

func TestScoresAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("user score", func(t *testing.T) {
		client, ft := newTestClient(t, success(""))

		err := client.Scores.Add(ctx, ScoreEntry{Score: "500 Jumps", Sort: 500, User: testUser(), TableID: 2, ExtraData: "lvl=3"})
		require.NoError(t, err)

		path, q := ft.lastRequest(t)
		assert.Equal(t, "/api/game/v1_2/scores/add", path)
		assert.Equal(t, "500 Jumps", q.Get("score"))
		assert.Equal(t, "500", q.Get("sort"))
		assert.Equal(t, "2", q.Get("table_id"))
		assert.Equal(t, "lvl=3", q.Get("extra_data"))
		assert.Equal(t, "cros", q.Get("username"))
		assert.False(t, q.Has("guest"))
		requireSigned(t, ft.urls[0])
	})

	t.Run("guest score", func(t *testing.T) {
		client, ft := newTestClient(t, success(""))

		require.NoError(t, client.Scores.Add(ctx, ScoreEntry{Score: "10", Sort: 10, Guest: "Jim"}))
		_, q := ft.lastRequest(t)
		assert.Equal(t, "Jim", q.Get("guest"))
		assert.False(t, q.Has("username"))
		assert.False(t, q.Has("table_id"))
		assert.False(t, q.Has("extra_data"))
	})

	invalid := map[string]ScoreEntry{
		"no score string":     {Sort: 1, Guest: "Jim"},
		"neither user/guest":  {Score: "1", Sort: 1},
		"both user and guest": {Score: "1", Sort: 1, User: testUser(), Guest: "Jim"},
	}
	for name, entry := range invalid {
		t.Run(name, func(t *testing.T) {
			client, ft := newTestClient(t, success(""))
			assert.ErrorIs(t, client.Scores.Add(ctx, entry), ErrInvalidArgument)
			assert.Empty(t, ft.urls)
		})
	}
}

func TestScoresGetRank(t *testing.T) {
	client, ft := newTestClient(t, success(`"rank":"3"`))

	rank, err := client.Scores.GetRank(context.Background(), 450, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	path, q := ft.lastRequest(t)
	assert.Equal(t, "/api/game/v1_2/scores/get-rank", path)
	assert.Equal(t, "450", q.Get("sort"))
	assert.Equal(t, "7", q.Get("table_id"))
}

func TestScoresTables(t *testing.T) {
	client, ft := newTestClient(t, success(`"tables":[{"id":"1","name":"Main","description":"","primary":"1"},{"id":"2","name":"Speed","description":"","primary":"0"}]`))

	tables, err := client.Scores.Tables(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 2)

	primary, ok := PrimaryTable(tables)
	require.True(t, ok)
	assert.Equal(t, 1, primary.ID)

	path, _ := ft.lastRequest(t)
	assert.Equal(t, "/api/game/v1_2/scores/tables", path)
}
