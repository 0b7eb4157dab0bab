package wargaming

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/antonholmquist/jason"

	"github.com/monester/go-wargaming/params"
)

// If you modify this package, please change the user agent.
const DefaultUserAgent = "go-wargaming (https://github.com/monester/go-wargaming)"

// Defaults applied by New for Config fields left at their zero value.
const (
	DefaultLanguage = "en"
	DefaultRegion   = RegionRU
	DefaultTimeout  = 30 * time.Second
)

// Config carries the options for a Client. The zero value of every field
// except ApplicationID is usable; New fills in the defaults. A Config is
// copied on construction, so changing it afterwards has no effect on
// clients built from it.
type Config struct {
	// ApplicationID is the API key identifying your application to
	// Wargaming.net. Required. Keys are issued at
	// https://developers.wargaming.net/applications/.
	ApplicationID string

	// Region selects the API cluster. Defaults to DefaultRegion.
	Region Region

	// Language is sent as the default "language" parameter of every
	// request that does not set one itself. Defaults to DefaultLanguage.
	Language string

	// Timeout bounds each request, including reading the response body.
	// Defaults to DefaultTimeout. Ignored if HTTPClient is set.
	Timeout time.Duration

	// BaseURL overrides the URL derived from the game and region. Mainly
	// useful for tests and API mirrors.
	BaseURL string

	// UserAgent overrides DefaultUserAgent.
	UserAgent string

	// HTTPClient overrides the http.Client used for requests.
	HTTPClient *http.Client
}

// Client performs requests against the API of a single game on a single
// region. It holds no mutable state; a Client is safe for concurrent use
// to the extent its http.Client is.
//
// Most callers will not use Client directly but one of the typed game
// clients (WGN, WoT, WoWS, WoWP, WoTB, WoTX) wrapping it.
type Client struct {
	httpc     *http.Client
	game      Game
	appID     string
	language  string
	baseURL   string
	userAgent string
}

// New returns an initialized Client for the given game. It fails with a
// ValidationError if the application id is empty or the game or region
// is unknown.
func New(game Game, cfg Config) (*Client, error) {
	if _, ok := endpoints[game]; !ok {
		return nil, ValidationError{fmt.Sprintf("game %q is not in allowed list: %s", game, allowedGames())}
	}
	if cfg.ApplicationID == "" {
		return nil, ValidationError{"application id must not be empty"}
	}

	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		var err error
		baseURL, err = apiURL(game, region)
		if err != nil {
			return nil, err
		}
	} else if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	language := cfg.Language
	if language == "" {
		language = DefaultLanguage
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	httpc := cfg.HTTPClient
	if httpc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpc = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpc:     httpc,
		game:      game,
		appID:     cfg.ApplicationID,
		language:  language,
		baseURL:   baseURL,
		userAgent: userAgent,
	}, nil
}

// Game returns the game this client was constructed for.
func (c *Client) Game() Game {
	return c.game
}

// BaseURL returns the URL all method paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call resolves category and method against the client's endpoint table
// and performs a single GET request. Unknown names and missing required
// parameters fail with a ValidationError before any request is made.
//
// On success the "data" field of the response envelope is returned
// verbatim. If the envelope reports an error, the returned error is an
// APIError carrying the remote code, message and field. Anything else
// (unreachable host, timeout, body that is not the expected JSON) is
// reported as an ordinary error.
func (c *Client) Call(category, method string, p params.Values) (*jason.Value, error) {
	desc, err := c.resolve(category, method, p)
	if err != nil {
		return nil, err
	}

	body, status, err := c.fetch(desc.path, p)
	if err != nil {
		return nil, err
	}

	js, err := jason.NewObjectFromBytes(body)
	if err != nil {
		return nil, fmt.Errorf("invalid API response (HTTP %d): %v", status, err)
	}
	return extractResponse(js)
}

// CallRaw is like Call but returns the raw response body without any
// envelope handling, leaving fields such as "meta" reachable for methods
// that paginate. No API errors are extracted.
func (c *Client) CallRaw(category, method string, p params.Values) ([]byte, error) {
	desc, err := c.resolve(category, method, p)
	if err != nil {
		return nil, err
	}

	body, _, err := c.fetch(desc.path, p)
	return body, err
}

func (c *Client) resolve(category, method string, p params.Values) (methodDesc, error) {
	desc, err := lookup(c.game, category, method)
	if err != nil {
		return methodDesc{}, err
	}
	for _, field := range desc.required {
		if _, ok := p[field]; !ok {
			return methodDesc{}, ValidationError{fmt.Sprintf("missing required parameter: %s", field)}
		}
	}
	return desc, nil
}

// fetch makes a GET request for the given relative path. The application
// id and default language are added unless the caller set them, so both
// may be overridden per call.
func (c *Client) fetch(path string, p params.Values) ([]byte, int, error) {
	v := params.Values{}
	for key, value := range p {
		v[key] = value
	}
	if _, ok := v["application_id"]; !ok {
		v.Set("application_id", c.appID)
	}
	if _, ok := v["language"]; !ok {
		v.Set("language", c.language)
	}

	req, err := http.NewRequest("GET", fmt.Sprintf("%s%s?%s", c.baseURL, path, v.Encode()), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to make request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("error reading response from %s: %w", path, err)
	}
	return body, resp.StatusCode, nil
}
