// Package httpapi implements the api.Client contract against the remote
// backend over HTTP. Every response body arrives wrapped in a {"data": ...}
// envelope; error bodies carry {"code": ..., "message": ...} and are mapped
// onto the domain error taxonomy.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"auctionfront/internal/api"
	"auctionfront/internal/domain"
	"auctionfront/internal/session"
)

type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
	logger  *log.Logger
}

var _ api.Client = (*Client)(nil)

// NewClient builds the remote binding. The underlying http.Client carries no
// timeout; callers bound requests through ctx.
func NewClient(baseURL string, sess *session.Session, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: sess,
		logger:  logger,
	}
}

// envelope is the standard response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requireAuth short-circuits mutating calls before any network traffic when
// the session holds no token.
func (c *Client) requireAuth() error {
	if !c.session.IsAuthenticated() {
		return domain.ErrAuthRequired
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do sends a JSON request and decodes the data envelope into out (which may
// be nil when the caller only cares about success).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}
	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", domain.ErrRequestFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Data == nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrRequestFailed, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrRequestFailed, err)
	}
	return nil
}

func (c *Client) errorFrom(status int, raw []byte) error {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Code != "" {
		c.logger.Printf("api error: status=%d code=%s", status, body.Code)
		return domain.NewCodedError(body.Code, body.Message)
	}
	c.logger.Printf("api error: status=%d (no code)", status)
	if status == http.StatusUnauthorized {
		return domain.ErrAuthRequired
	}
	return fmt.Errorf("%w: unexpected status %d", domain.ErrRequestFailed, status)
}
