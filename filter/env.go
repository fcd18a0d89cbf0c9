package filter

import (
	"strings"

	"github.com/s0up4200/gamejolt/gamejolt"
)

// TrophyEnv exposes a trophy to filter expressions
func TrophyEnv(trophy gamejolt.Trophy) Env {
	rank := trophy.Difficulty.Rank()
	return Env{
		"Trophy":      trophy,
		"ID":          trophy.ID,
		"Title":       trophy.Title,
		"Description": trophy.Description,
		"Difficulty":  string(trophy.Difficulty),
		"Rank":        rank,
		"ImageURL":    trophy.ImageURL,
		"Achieved":    trophy.IsAchieved(),
		"AchievedOn":  trophy.Achieved,

		// atLeast("Gold") matches Gold and Platinum trophies
		"atLeast": func(difficulty string) bool {
			want := gamejolt.Difficulty(difficulty).Rank()
			return want > 0 && rank >= want
		},
	}
}

// ScoreEnv exposes a score to filter expressions
func ScoreEnv(score gamejolt.Score) Env {
	return Env{
		"Score":     score.Score,
		"Sort":      score.Sort,
		"ExtraData": score.ExtraData,
		"User":      score.User,
		"UserID":    score.UserID,
		"Guest":     score.Guest,
		"IsGuest":   score.IsGuest(),
		"Name":      score.DisplayName(),
		"Stored":    score.StoredAt(),

		"by": func(name string) bool {
			return strings.EqualFold(score.DisplayName(), name)
		},
	}
}

// UserEnv exposes a user to filter expressions
func UserEnv(user gamejolt.User) Env {
	return Env{
		"ID":            user.ID,
		"Username":      user.Username,
		"Type":          string(user.Type),
		"Status":        string(user.Status),
		"Online":        user.IsOnline(),
		"Banned":        user.IsBanned(),
		"Developer":     user.Type == gamejolt.UserTypeDeveloper,
		"DeveloperName": user.DeveloperName,
		"SignedUp":      user.SignedUpAt(),
		"LastLoggedIn":  user.LastLoggedInAt(),
	}
}
