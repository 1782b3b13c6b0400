// Package subsonic implements the source adapter contract against servers
// speaking the Subsonic protocol family (Navidrome, Airsonic, ...).
package subsonic

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"SoundX/adapter"
)

// apiVersion is the protocol version advertised in the "v" parameter.
const apiVersion = "1.16.1"

// Config identifies one Subsonic server binding.
type Config struct {
	BaseURL    string
	Username   string
	Password   string
	ClientName string
}

// Client is the low-level transport: it signs requests, unwraps the response
// envelope and maps failures. It performs no retries; retry policy belongs to
// the caller.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a transport client for one server binding.
func NewClient(cfg Config) *Client {
	if cfg.ClientName == "" {
		cfg.ClientName = "SoundX"
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

var saltLetters = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

func randomSalt(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = saltLetters[rand.Intn(len(saltLetters))]
	}
	return string(b)
}

// authParams builds the standard auth query parameters. The salt is fresh per
// request, so a captured request cannot be replayed.
func (c *Client) authParams() url.Values {
	salt := randomSalt(12)
	token := fmt.Sprintf("%x", md5.Sum([]byte(c.cfg.Password+salt)))

	v := url.Values{}
	v.Set("u", c.cfg.Username)
	v.Set("t", token)
	v.Set("s", salt)
	v.Set("v", apiVersion)
	v.Set("c", c.cfg.ClientName)
	v.Set("f", "json")
	return v
}

func (c *Client) endpointURL(endpoint string, params map[string]string) string {
	values := c.authParams()
	for k, v := range params {
		values.Set(k, v)
	}
	return fmt.Sprintf("%s/rest/%s.view?%s", c.cfg.BaseURL, endpoint, values.Encode())
}

// envelope is the top-level wrapper every Subsonic response carries.
type envelope struct {
	Response json.RawMessage `json:"subsonic-response"`
}

type responseStatus struct {
	Status string `json:"status"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, endpoint string, params map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL(endpoint, params), nil)
	if err != nil {
		return &adapter.TransportError{Op: endpoint, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &adapter.TransportError{Op: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &adapter.TransportError{Op: endpoint, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &adapter.TransportError{Op: endpoint, Err: fmt.Errorf("malformed response: %w", err)}
	}
	if env.Response == nil {
		return &adapter.TransportError{Op: endpoint, Err: fmt.Errorf("missing subsonic-response envelope")}
	}

	var status responseStatus
	if err := json.Unmarshal(env.Response, &status); err != nil {
		return &adapter.TransportError{Op: endpoint, Err: fmt.Errorf("malformed response: %w", err)}
	}
	if status.Status == "failed" {
		perr := &adapter.ProtocolError{Op: endpoint, Message: "Subsonic request failed"}
		if status.Error != nil {
			perr.Code = status.Error.Code
			if status.Error.Message != "" {
				perr.Message = status.Error.Message
			}
		}
		return perr
	}

	if out != nil {
		if err := json.Unmarshal(env.Response, out); err != nil {
			return &adapter.TransportError{Op: endpoint, Err: fmt.Errorf("malformed response: %w", err)}
		}
	}
	return nil
}

// Get issues a signed GET against /rest/{endpoint}.view and decodes the
// unwrapped payload into out (which may be nil).
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, params, out)
}

// Post issues a signed POST. The protocol is GET-oriented; POST exists for
// mutation-style calls, with all parameters still in the query string.
func (c *Client) Post(ctx context.Context, endpoint string, params map[string]string, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, params, out)
}

// CoverURL constructs (does not fetch) a cover-art URL the UI can embed
// directly in image components.
func (c *Client) CoverURL(id string) string {
	if id == "" {
		return ""
	}
	return c.endpointURL("getCoverArt", map[string]string{"id": id})
}

// StreamURL constructs a direct audio-stream URL for a track id.
func (c *Client) StreamURL(id string) string {
	return c.endpointURL("stream", map[string]string{"id": id})
}
