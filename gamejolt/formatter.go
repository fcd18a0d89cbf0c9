package gamejolt

import (
	"crypto/md5"
	"encoding/hex"
	"maps"
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the root of the Game Jolt game API
	DefaultBaseURL = "https://api.gamejolt.com/api/game/"
	// DefaultVersion is the newest API version
	DefaultVersion = "v1_2"
	// DefaultFormat is the response format understood by JSONEvaluator
	DefaultFormat = "json"
)

// SupportedFormats lists the response formats Game Jolt can return
var SupportedFormats = []string{"json", "keypair", "dump", "xml"}

// Endpoint is an API path relative to the versioned base URL
type Endpoint string

const (
	EndpointUsersFetch = Endpoint("/users")
	EndpointUsersAuth  = Endpoint("/users/auth")

	EndpointSessionsOpen  = Endpoint("/sessions/open")
	EndpointSessionsPing  = Endpoint("/sessions/ping")
	EndpointSessionsCheck = Endpoint("/sessions/check")
	EndpointSessionsClose = Endpoint("/sessions/close")

	EndpointScoresFetch   = Endpoint("/scores")
	EndpointScoresAdd     = Endpoint("/scores/add")
	EndpointScoresGetRank = Endpoint("/scores/get-rank")
	EndpointScoresTables  = Endpoint("/scores/tables")

	EndpointTrophiesFetch          = Endpoint("/trophies")
	EndpointTrophiesAddAchieved    = Endpoint("/trophies/add-achieved")
	EndpointTrophiesRemoveAchieved = Endpoint("/trophies/remove-achieved")

	EndpointDataStoreFetch   = Endpoint("/data-store")
	EndpointDataStoreGetKeys = Endpoint("/data-store/get-keys")
	EndpointDataStoreRemove  = Endpoint("/data-store/remove")
	EndpointDataStoreSet     = Endpoint("/data-store/set")
	EndpointDataStoreUpdate  = Endpoint("/data-store/update")

	EndpointFriendsFetch = Endpoint("/friends")
	EndpointTimeFetch    = Endpoint("/time")
)

// Formatter builds request URLs: base URL, API version, endpoint and query.
// Defaults are merged into every query; call parameters override them.
type Formatter struct {
	BaseURL  string
	Version  string
	Defaults url.Values
}

// NewFormatter returns a formatter whose default query carries the game ID and format
func NewFormatter(baseURL, version, gameID, format string) Formatter {
	return Formatter{
		BaseURL: baseURL,
		Version: version,
		Defaults: url.Values{
			"game_id": {gameID},
			"format":  {format},
		},
	}
}

// URL formats the unsigned request URL
func (f Formatter) URL(endpoint Endpoint, params url.Values) string {
	query := make(url.Values, len(f.Defaults)+len(params))
	maps.Copy(query, f.Defaults)
	maps.Copy(query, params)

	u := f.BaseURL + f.Version + string(endpoint)
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// SignedURL formats the request URL and appends its signature as the last parameter
func (f Formatter) SignedURL(endpoint Endpoint, params url.Values, privateKey string) string {
	return AppendSignature(f.URL(endpoint, params), privateKey)
}

// Sign returns the request signature: the hex MD5 of the URL followed by the private key
func Sign(rawURL, privateKey string) string {
	sum := md5.Sum([]byte(rawURL + privateKey))
	return hex.EncodeToString(sum[:])
}

// AppendSignature appends the signature parameter to an already formatted URL
func AppendSignature(rawURL, privateKey string) string {
	sep := "&"
	if !strings.Contains(rawURL, "?") {
		sep = "?"
	}
	return rawURL + sep + url.Values{"signature": {Sign(rawURL, privateKey)}}.Encode()
}
