package seriesdb

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
)

// HTTPClient is the interface for HTTP client.
type HTTPClient interface {
	// Get sends a GET request to the SeriesDB server.
	Get(context.Context, *url.URL) (*http.Response, error)
	// Post sends a POST request to the SeriesDB server.
	Post(context.Context, *url.URL, string, []byte) (*http.Response, error)
	// Close releases any idle connections held by the client.
	Close()
}

type httpClient struct {
	client *http.Client
}

// NewHTTPClient creates a new internal HTTP client.
func NewHTTPClient() HTTPClient {
	return &httpClient{
		client: http.DefaultClient,
	}
}

// Ensure httpClient implements HTTPClient.
var _ HTTPClient = (*httpClient)(nil)

func (c *httpClient) Get(ctx context.Context, u *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	return resp, err
}

func (c *httpClient) Post(ctx context.Context, u *url.URL, contentType string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	resp, err := c.client.Do(req)
	return resp, err
}

func (c *httpClient) Close() {
	c.client.CloseIdleConnections()
}

// Client is an immutable handle to one SeriesDB server. It holds no
// network state and is safe for unlimited concurrent use.
type Client struct {
	baseURL  *url.URL
	username string
	password string

	http HTTPClient
}

// NewClient creates a new client for the configured server.
//
// The configured address is normalized once here; no network I/O occurs
// until the first operation.
func NewClient(config *Config) (*Client, error) {
	u, err := normalizeAddress(config.Address)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:  u,
		username: config.Username,
		password: config.Password,
		http:     NewHTTPClient(),
	}, nil
}

// Close closes the client.
//
// You don't typically need to call this as the garbage collector will release
// the resources when the client is no longer referenced. However, it can be
// useful to call this if you want to release the resources immediately.
func (c *Client) Close() {
	c.http.Close()
}

// authenticate inserts the stored credentials into the request parameters.
//
// It is a no-op unless both username and password are present. Applying it
// twice yields the same parameter state.
func (c *Client) authenticate(params url.Values) {
	if c.username != "" && c.password != "" {
		params.Set("u", c.username)
		params.Set("p", c.password)
	}
}

// endpointURL builds the URL for the named API path with the given
// query parameters.
func (c *Client) endpointURL(path string, params url.Values) *url.URL {
	u := *c.baseURL
	u.Path = u.Path + path
	u.RawQuery = params.Encode()
	return &u
}

// Ping checks that the server is reachable and returns the version it
// reports in the X-Seriesdb-Version header.
func (c *Client) Ping(ctx context.Context) (string, error) {
	resp, err := c.http.Get(ctx, c.endpointURL("/ping", url.Values{}))
	if err != nil {
		return "", err
	}
	defer sneakyBodyClose(resp.Body)
	if resp.StatusCode != http.StatusNoContent {
		return "", &QueryError{StatusCode: resp.StatusCode, Message: readBody(resp)}
	}
	return resp.Header.Get("X-Seriesdb-Version"), nil
}
