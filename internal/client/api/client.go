package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/starmarket/internal/common"
	"github.com/dmitrijs2005/starmarket/internal/logging"
)

// Endpoints holds the URLs of the five remote services.
type Endpoints struct {
	Auth        string
	Tasks       string
	Marketplace string
	Exchange    string
	Admin       string
}

// Client issues requests against the Star Market services. The zero
// http.Client is used deliberately: no explicit timeout, the transport
// default applies.
type Client struct {
	http      *http.Client
	log       logging.Logger
	endpoints Endpoints
}

func New(endpoints Endpoints, log logging.Logger) *Client {
	return &Client{
		http:      &http.Client{},
		log:       log.With("component", "api"),
		endpoints: endpoints,
	}
}

// envelope is the common wrapper most services put around their payloads.
// Auth responses carry a bare object instead, so Success stays nil there.
type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

// get issues a GET request with the given query string and decodes the
// response body into out (when out is non-nil).
func (c *Client) get(ctx context.Context, rawURL string, query url.Values, out any) error {
	u := rawURL
	if len(query) > 0 {
		u = rawURL + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, u, nil, out)
}

// send issues a request with a JSON body (POST or PUT) and decodes the
// response body into out (when out is non-nil).
func (c *Client) send(ctx context.Context, method, rawURL string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, method, rawURL, payload, out)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Request id is for log correlation only, not an idempotency key.
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "url", rawURL, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.asError(resp.StatusCode, data)
		c.log.Warn(ctx, "request rejected", "method", method, "url", rawURL, "request_id", requestID, "status", resp.StatusCode, "error", apiErr)
		return apiErr
	}

	// Some services report business-rule rejections with a 2xx status and
	// {"success": false, "error": ...} in the body.
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Success != nil && !*env.Success {
		return c.asError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// asError extracts the server's message from an error body, falling back to
// the HTTP status text when the body carries none.
func (c *Client) asError(status int, data []byte) error {
	var e struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(data, &e)
	if e.Error == "" {
		e.Error = http.StatusText(status)
	}
	return &Error{Status: status, Message: e.Error}
}
