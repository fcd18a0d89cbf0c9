// Package gamejolt provides a client for the Game Jolt game API.
//
// Game Jolt hosts indie games and offers a small backend for them: user
// authentication, trophies, play sessions, a key/value data store and score
// tables. Every request is a signed URL; this package builds those URLs,
// hands them to a Transport and turns the evaluated response into typed values.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: holds the game credentials and exposes one service per endpoint group
//   - Formatter: builds and signs request URLs
//   - Transport / Evaluator: the two hooks that send a request and interpret its body
//   - Types: records decoded from responses (users, trophies, scores, data store items)
//   - Errors: sentinel errors and structured error types
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := gamejolt.NewClient("123456", "private-key", logger,
//		gamejolt.WithTimeout(10*time.Second),
//		gamejolt.WithRateLimit(5),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	user := gamejolt.NewUser("player", "token")
//	if err := client.Sessions.Open(ctx, user); err != nil {
//		log.Fatal(err)
//	}
//	trophies, err := client.Trophies.Fetch(ctx, user, nil)
//
// # Hooks
//
// By default requests go out over HTTP and responses are read as the JSON
// envelope. Callers that need a different network stack or response format
// supply their own implementations:
//
//	client, err := gamejolt.NewClient(gameID, key, logger,
//		gamejolt.WithFormat("keypair"),
//		gamejolt.WithTransport(myTransport),
//		gamejolt.WithEvaluator(myKeypairEvaluator),
//	)
//
// # Error Handling
//
// Guards run before any request is sent:
//
//   - ErrInvalidArgument: a required argument is missing or out of range
//   - ErrTokenRequired: a user-scoped call was made without a session token
//   - ErrUnsupportedVersion: the configured API version lacks the endpoint (see VersionError)
//
// When Game Jolt reports a failure the call returns an *APIError carrying the
// remote message. Trophy calls refine it into a *TrophyError:
//
//	err := client.Trophies.AddAchieved(ctx, user, 42)
//	if errors.Is(err, gamejolt.ErrUserAlreadyHasTrophy) {
//		// nothing to do
//	}
package gamejolt
