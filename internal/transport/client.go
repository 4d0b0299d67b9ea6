// Package transport speaks the one HTTP endpoint the interaction loop
// needs: POST a modulated bit string to the alien proxy and get a
// modulated bit string back. The client shape — plain net/http.Client,
// explicit timeout, status-code check, structured error wrapping —
// is deliberately minimal: there is exactly one fixed, operator-supplied
// host, so none of the capability or DNS-rebinding sandboxing a
// general-purpose outbound client would need applies here.
package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/galaxypad/galaxy/internal/galerrors"
)

// DefaultTimeout bounds a single round trip to the alien proxy.
const DefaultTimeout = 30 * time.Second

// Client sends modulated requests to the alien proxy and returns the
// modulated response.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// New builds a Client against baseURL, authenticating with apiKey, with
// the default timeout.
func New(baseURL, apiKey string) *Client {
	return NewWithTimeout(baseURL, apiKey, DefaultTimeout)
}

// NewWithTimeout is New with an explicit round-trip timeout, for callers
// (cmd/galaxy's --timeout flag) that want control over how long a turn
// may block on the alien proxy.
func NewWithTimeout(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Send posts an already-modulated bit string to /aliens/send and
// returns the alien's modulated reply.
func (c *Client) Send(ctx context.Context, modulated string) (string, error) {
	u, err := url.Parse(c.BaseURL + "/aliens/send")
	if err != nil {
		return "", galerrors.Newf(galerrors.NET002, "transport", "invalid base URL: %v", err)
	}
	q := u.Query()
	q.Set("apiKey", c.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(modulated))
	if err != nil {
		return "", galerrors.Newf(galerrors.NET002, "transport", "building request: %v", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", galerrors.Newf(galerrors.NET002, "transport", "request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", galerrors.Newf(galerrors.NET002, "transport", "reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", galerrors.WithData(
			galerrors.Newf(galerrors.NET001, "transport", "alien proxy returned status %d", resp.StatusCode),
			map[string]any{"status": strconv.Itoa(resp.StatusCode), "body": string(body)},
		)
	}

	return strings.TrimSpace(string(body)), nil
}
