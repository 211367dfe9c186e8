package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
)

type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelDebug
)
const LogLevelDefault = LogLevelError

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrRequestFailed = errors.New("request failed")
	ErrBadResponse   = errors.New("invalid response")
)

var _logLevel LogLevel = LogLevelDefault

func _log(level LogLevel, format string, v ...any) {
	if _logLevel >= level {
		log.Printf(format, v...)
	}
}

func SetLogLevel(logLevel LogLevel) {
	_logLevel = logLevel
}

// Client talks to a warrant server over its HTTP API. Construct one with
// New; the zero value has no base URL and every request will fail.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// SetHTTPClient replaces the transport used for requests. Callers that need
// custom timeouts or test transports set one before the first request.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

type signInRequest struct {
	ProviderToken string `json:"providerToken"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

/*
SignIn exchanges a provider-issued ID token for a warrant session token and
the user record it names. The server collapses every rejection to the same
response, so a failed exchange surfaces only as [ErrUnauthorized].
*/
func (c *Client) SignIn(
	ctx context.Context,
	providerToken string,
) (*SignInResult, error) {
	result := new(SignInResult)
	req := signInRequest{ProviderToken: providerToken}
	if err := c.postJson(ctx, "/api/signin", req, result); err != nil {
		return nil, err
	}
	return result, nil
}

/*
Refresh exchanges a live legacy token for a fresh access/refresh pair.
Returns [ErrUnauthorized] when the server rejects the presented token.
*/
func (c *Client) Refresh(
	ctx context.Context,
	refreshToken string,
) (*TokenPair, error) {
	pair := new(TokenPair)
	req := refreshRequest{RefreshToken: refreshToken}
	if err := c.postJson(ctx, "/api/refresh", req, pair); err != nil {
		return nil, err
	}
	return pair, nil
}

/*
Me fetches the user record behind a session token. Returns
[ErrUnauthorized] when the token is rejected.
*/
func (c *Client) Me(
	ctx context.Context,
	sessionToken string,
) (*User, error) {
	url := fmt.Sprintf("%s/api/me", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	user := new(User)
	if err := c.do(req, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) postJson(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	url := fmt.Sprintf("%s%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	_log(LogLevelDebug, "%s %s\n", req.Method, req.URL)

	res, err := c.httpClient.Do(req)
	if err != nil {
		_log(LogLevelError, "request to %s failed: %v\n", req.URL, err)
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		_log(LogLevelDebug, "request to %s was unauthorized\n", req.URL)
		return ErrUnauthorized
	case res.StatusCode != http.StatusOK:
		_log(LogLevelError, "request to %s returned status %d\n", req.URL, res.StatusCode)
		return fmt.Errorf("%w: status %d", ErrRequestFailed, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		_log(LogLevelError, "failed to decode response from %s: %v\n", req.URL, err)
		return ErrBadResponse
	}
	return nil
}
