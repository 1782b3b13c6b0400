// Package native implements the source adapter contract as thin pass-through
// calls against the proprietary REST backend. Responses already arrive in
// canonical shape; no mapping layer is needed.
package native

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"SoundX/adapter"
	"SoundX/model"
)

// Client is the shared request helper: base URL, bearer token, JSON codec.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a request helper for one backend binding. token may be
// empty for anonymous access.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &adapter.TransportError{Op: path, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &adapter.TransportError{Op: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &adapter.TransportError{Op: path, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		perr := &adapter.ProtocolError{Op: path, Code: resp.StatusCode, Message: resp.Status}
		var env struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			perr.Message = env.Message
		}
		return perr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &adapter.TransportError{Op: path, Err: fmt.Errorf("malformed response: %w", err)}
		}
	}
	return nil
}

// The helpers below decode the full success envelope. A non-200 envelope code
// in a 2xx HTTP response (notably 401) is returned to the caller as data, so
// "request failed" and "access denied" stay distinguishable.

func get[T any](ctx context.Context, c *Client, path string, params url.Values) (model.SuccessResponse[T], error) {
	var res model.SuccessResponse[T]
	err := c.do(ctx, http.MethodGet, path, params, nil, &res)
	return res, err
}

func post[T any](ctx context.Context, c *Client, path string, body any) (model.SuccessResponse[T], error) {
	var res model.SuccessResponse[T]
	err := c.do(ctx, http.MethodPost, path, nil, body, &res)
	return res, err
}

func put[T any](ctx context.Context, c *Client, path string, body any) (model.SuccessResponse[T], error) {
	var res model.SuccessResponse[T]
	err := c.do(ctx, http.MethodPut, path, nil, body, &res)
	return res, err
}

func del[T any](ctx context.Context, c *Client, path string, params url.Values, body any) (model.SuccessResponse[T], error) {
	var res model.SuccessResponse[T]
	err := c.do(ctx, http.MethodDelete, path, params, body, &res)
	return res, err
}
