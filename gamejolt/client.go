package gamejolt

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/blang/semver"
	"github.com/rs/zerolog"
)

// apiVersions maps Game Jolt version names onto comparable versions
var apiVersions = map[string]semver.Version{
	"v1":   semver.MustParse("1.0.0"),
	"v1_1": semver.MustParse("1.1.0"),
	"v1_2": semver.MustParse("1.2.0"),
}

// Client represents a Game Jolt API client
type Client struct {
	gameID     string
	privateKey string
	version    string
	formatter  Formatter
	transport  Transport
	evaluator  Evaluator
	logger     zerolog.Logger

	Users     *UsersService
	Sessions  *SessionsService
	Trophies  *TrophiesService
	DataStore *DataStoreService
	Scores    *ScoresService
	Time      *TimeService
	Friends   *FriendsService
}

// NewClient creates a new Game Jolt client for one game
func NewClient(gameID, privateKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if gameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidConfig)
	}
	if privateKey == "" {
		return nil, fmt.Errorf("%w: private key is required", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if _, ok := apiVersions[o.version]; !ok {
		return nil, fmt.Errorf("%w: unknown API version %q", ErrInvalidConfig, o.version)
	}
	if !slices.Contains(SupportedFormats, o.format) {
		return nil, fmt.Errorf("%w: invalid response format %q, supported formats are: %s",
			ErrInvalidConfig, o.format, strings.Join(SupportedFormats, ", "))
	}
	if o.format != DefaultFormat && o.evaluator == nil {
		return nil, fmt.Errorf("%w: response format %q requires a custom evaluator", ErrInvalidConfig, o.format)
	}

	baseURL := o.baseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	c := &Client{
		gameID:     gameID,
		privateKey: privateKey,
		version:    o.version,
		formatter:  NewFormatter(baseURL, o.version, gameID, o.format),
		transport:  o.transport,
		evaluator:  o.evaluator,
		logger:     logger,
	}
	if c.transport == nil {
		c.transport = newHTTPTransport(o, logger)
	}
	if c.evaluator == nil {
		c.evaluator = JSONEvaluator{}
	}

	c.Users = &UsersService{client: c}
	c.Sessions = &SessionsService{client: c}
	c.Trophies = &TrophiesService{client: c}
	c.DataStore = &DataStoreService{client: c}
	c.Scores = &ScoresService{client: c}
	c.Time = &TimeService{client: c}
	c.Friends = &FriendsService{client: c}

	return c, nil
}

// GameID returns the game the client signs requests for
func (c *Client) GameID() string {
	return c.gameID
}

// Version returns the configured API version
func (c *Client) Version() string {
	return c.version
}

// Formatter returns the URL formatter used by the client
func (c *Client) Formatter() Formatter {
	return c.formatter
}

// SignedURL formats and signs a request URL without sending it
func (c *Client) SignedURL(endpoint Endpoint, params url.Values) string {
	return c.formatter.SignedURL(endpoint, params, c.privateKey)
}

// Post sends a signed request to an endpoint and evaluates the response.
// A response with success=false is returned as *APIError.
func (c *Client) Post(ctx context.Context, endpoint Endpoint, params url.Values) (*Response, error) {
	c.logger.Debug().
		Str("endpoint", string(endpoint)).
		Msg("Making Game Jolt API request")

	body, err := c.transport.Send(ctx, c.SignedURL(endpoint, params))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	resp, err := c.evaluator.Evaluate(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	if !resp.Success {
		c.logger.Debug().
			Str("endpoint", string(endpoint)).
			Str("message", resp.Message).
			Msg("Game Jolt API reported failure")
		return nil, &APIError{
			Endpoint: endpoint,
			Message:  resp.Message,
			Response: resp,
		}
	}

	return resp, nil
}

// requireVersion fails when the configured version is older than required
func (c *Client) requireVersion(operation, required string) error {
	if apiVersions[c.version].LT(apiVersions[required]) {
		return &VersionError{
			Operation: operation,
			Required:  required,
			Current:   c.version,
		}
	}
	return nil
}

// requireToken checks that a user can make user-scoped calls
func requireToken(user *User) error {
	if user == nil || user.Token == "" {
		return ErrTokenRequired
	}
	if user.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidArgument)
	}
	return nil
}

// userParams returns the credentials of a user-scoped call
func userParams(user *User) url.Values {
	return url.Values{
		"username":   {user.Username},
		"user_token": {user.Token},
	}
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// IsAPIError reports whether err is a failure reported by Game Jolt
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
