package gamejolt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FlexInt decodes an integer the API may send as a number or a quoted string.
// Empty strings and null decode to zero.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	s := string(data)
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
		if s == "" {
			*f = 0
			return nil
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Some numeric fields come back as floats ("12.0")
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("invalid integer %q: %w", s, err)
		}
		n = int64(fl)
	}
	*f = FlexInt(n)
	return nil
}

// FlexBool decodes a boolean sent as true/false, "true"/"false" or "1"/"0".
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = false
		return nil
	}

	s := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		*b = true
	case "false", "0", "":
		*b = false
	default:
		return fmt.Errorf("invalid boolean %q", s)
	}
	return nil
}

// UserType is the role of a Game Jolt account
type UserType string

const (
	UserTypeUser          UserType = "User"
	UserTypeDeveloper     UserType = "Developer"
	UserTypeModerator     UserType = "Moderator"
	UserTypeAdministrator UserType = "Administrator"
)

// UserStatus tells whether an account is still a member of the site
type UserStatus string

const (
	UserStatusActive UserStatus = "Active"
	UserStatusBanned UserStatus = "Banned"
)

// User represents a Game Jolt user.
//
// Token is the session token the caller obtained from the player; it is never
// part of a response and is required for user-scoped calls.
type User struct {
	ID                    int        `json:"id"`
	Type                  UserType   `json:"type"`
	Username              string     `json:"username"`
	AvatarURL             string     `json:"avatar_url"`
	SignedUp              string     `json:"signed_up"`
	SignedUpTimestamp     int64      `json:"signed_up_timestamp"`
	LastLoggedIn          string     `json:"last_logged_in"`
	LastLoggedInTimestamp int64      `json:"last_logged_in_timestamp"`
	Status                UserStatus `json:"status"`
	DeveloperName         string     `json:"developer_name"`
	DeveloperWebsite      string     `json:"developer_website"`
	DeveloperDescription  string     `json:"developer_description"`

	Token string `json:"-"`
}

// NewUser returns a user identified only by name and session token,
// which is all user-scoped calls need.
func NewUser(username, token string) *User {
	return &User{Username: username, Token: token}
}

// UnmarshalJSON implements json.Unmarshaler
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		ID                    FlexInt `json:"id"`
		SignedUpTimestamp     FlexInt `json:"signed_up_timestamp"`
		LastLoggedInTimestamp FlexInt `json:"last_logged_in_timestamp"`
		*alias
	}{alias: (*alias)(u)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	u.ID = int(aux.ID)
	u.SignedUpTimestamp = int64(aux.SignedUpTimestamp)
	u.LastLoggedInTimestamp = int64(aux.LastLoggedInTimestamp)
	return nil
}

// SetToken attaches a session token to the user
func (u *User) SetToken(token string) {
	u.Token = token
}

// HasToken reports whether a session token is set
func (u *User) HasToken() bool {
	return u != nil && u.Token != ""
}

// IsOnline reports whether Game Jolt shows the user as currently online
func (u *User) IsOnline() bool {
	return u.LastLoggedIn == "Online Now"
}

// IsBanned reports whether the account has been banned
func (u *User) IsBanned() bool {
	return u.Status == UserStatusBanned
}

// DisplayName returns the developer name when set, otherwise the username
func (u *User) DisplayName() string {
	if u.DeveloperName != "" {
		return u.DeveloperName
	}
	return u.Username
}

// SignedUpAt returns the sign-up time
func (u *User) SignedUpAt() time.Time {
	return unixTime(u.SignedUpTimestamp)
}

// LastLoggedInAt returns the last login time
func (u *User) LastLoggedInAt() time.Time {
	return unixTime(u.LastLoggedInTimestamp)
}

// Difficulty is the tier of a trophy
type Difficulty string

const (
	DifficultyBronze   Difficulty = "Bronze"
	DifficultySilver   Difficulty = "Silver"
	DifficultyGold     Difficulty = "Gold"
	DifficultyPlatinum Difficulty = "Platinum"
)

// Rank orders difficulties from Bronze (1) to Platinum (4); unknown tiers rank 0
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBronze:
		return 1
	case DifficultySilver:
		return 2
	case DifficultyGold:
		return 3
	case DifficultyPlatinum:
		return 4
	default:
		return 0
	}
}

// Trophy represents a trophy of the game
type Trophy struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	ImageURL    string     `json:"image_url"`
	// Achieved holds when the user achieved the trophy ("2 days ago"),
	// or is empty if they have not.
	Achieved string `json:"achieved"`
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Trophy) UnmarshalJSON(data []byte) error {
	type alias Trophy
	aux := struct {
		ID       FlexInt         `json:"id"`
		Achieved json.RawMessage `json:"achieved"`
		*alias
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.ID = int(aux.ID)

	achieved, err := parseAchieved(aux.Achieved)
	if err != nil {
		return err
	}
	t.Achieved = achieved
	return nil
}

// parseAchieved accepts false, "false", a bool true or a date string.
func parseAchieved(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	if raw[0] != '"' {
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return "", fmt.Errorf("invalid achieved value %s: %w", raw, err)
		}
		if b {
			return "true", nil
		}
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	if strings.EqualFold(s, "false") {
		return "", nil
	}
	return s, nil
}

// IsAchieved reports whether the user has the trophy
func (t *Trophy) IsAchieved() bool {
	return t.Achieved != ""
}

// Score represents an entry of a score table
type Score struct {
	// Score is the display string, e.g. "234 Coins"
	Score string `json:"score"`
	// Sort is the numeric value tables are ordered by
	Sort            int64  `json:"sort"`
	ExtraData       string `json:"extra_data"`
	User            string `json:"user"`
	UserID          int    `json:"user_id"`
	Guest           string `json:"guest"`
	Stored          string `json:"stored"`
	StoredTimestamp int64  `json:"stored_timestamp"`
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Score) UnmarshalJSON(data []byte) error {
	type alias Score
	aux := struct {
		Sort            FlexInt `json:"sort"`
		UserID          FlexInt `json:"user_id"`
		StoredTimestamp FlexInt `json:"stored_timestamp"`
		*alias
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Sort = int64(aux.Sort)
	s.UserID = int(aux.UserID)
	s.StoredTimestamp = int64(aux.StoredTimestamp)
	return nil
}

// IsGuest reports whether the score was stored by a guest
func (s *Score) IsGuest() bool {
	return s.Guest != "" && s.User == ""
}

// DisplayName returns the user or guest name of the score
func (s *Score) DisplayName() string {
	if s.User != "" {
		return s.User
	}
	return s.Guest
}

// StoredAt returns when the score was stored
func (s *Score) StoredAt() time.Time {
	return unixTime(s.StoredTimestamp)
}

// ScoreTable describes a score table of the game
type ScoreTable struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Primary     bool   `json:"primary"`
}

// UnmarshalJSON implements json.Unmarshaler
func (st *ScoreTable) UnmarshalJSON(data []byte) error {
	type alias ScoreTable
	aux := struct {
		ID      FlexInt  `json:"id"`
		Primary FlexBool `json:"primary"`
		*alias
	}{alias: (*alias)(st)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	st.ID = int(aux.ID)
	st.Primary = bool(aux.Primary)
	return nil
}

// Scope selects the global or the per-user data store
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeUser   Scope = "user"
)

// DataStoreItem is a key/value pair read from the data store
type DataStoreItem struct {
	Key   string `json:"key"`
	Data  string `json:"data"`
	Scope Scope  `json:"scope"`
}

// Int parses the item data as an integer, as written by numeric updates
func (d *DataStoreItem) Int() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(d.Data), 10, 64)
}

// ServerTime is the time on the Game Jolt servers
type ServerTime struct {
	Timestamp int64  `json:"timestamp"`
	Timezone  string `json:"timezone"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	Second    int    `json:"second"`
}

// UnmarshalJSON implements json.Unmarshaler
func (st *ServerTime) UnmarshalJSON(data []byte) error {
	var aux struct {
		Timestamp FlexInt `json:"timestamp"`
		Timezone  string  `json:"timezone"`
		Year      FlexInt `json:"year"`
		Month     FlexInt `json:"month"`
		Day       FlexInt `json:"day"`
		Hour      FlexInt `json:"hour"`
		Minute    FlexInt `json:"minute"`
		Second    FlexInt `json:"second"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*st = ServerTime{
		Timestamp: int64(aux.Timestamp),
		Timezone:  aux.Timezone,
		Year:      int(aux.Year),
		Month:     int(aux.Month),
		Day:       int(aux.Day),
		Hour:      int(aux.Hour),
		Minute:    int(aux.Minute),
		Second:    int(aux.Second),
	}
	return nil
}

// Time returns the server time in the server's timezone, or UTC if the zone is unknown
func (st *ServerTime) Time() time.Time {
	t := time.Unix(st.Timestamp, 0)
	if loc, err := time.LoadLocation(st.Timezone); err == nil && st.Timezone != "" {
		return t.In(loc)
	}
	return t.UTC()
}

func unixTime(ts int64) time.Time {
	if ts > 0 {
		return time.Unix(ts, 0)
	}
	return time.Time{}
}
