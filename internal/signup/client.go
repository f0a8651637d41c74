package signup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

const (
	subscribePath   = "/api/subscribe"
	unsubscribePath = "/api/unsubscribe"

	maxReplyBytes = 64 << 10
)

// Reply is a completed HTTP exchange with the subscription API.
type Reply struct {
	Status int
	Body   []byte
}

func (r Reply) OK() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}

// Message returns the "message" field of a JSON body, if any.
func (r Reply) Message() string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return ""
	}
	return body.Message
}

// Client posts email addresses to the subscription API on behalf of the forms.
type Client struct {
	baseURL string
	origin  string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL, origin string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger = logger.With().Str("component", "SignupClient").Logger()
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		origin:  origin,
		http:    httpClient,
		log:     logger,
	}
}

func (c *Client) Subscribe(ctx context.Context, email, clientIP string) (Reply, error) {
	return c.post(ctx, subscribePath, email, clientIP)
}

func (c *Client) Unsubscribe(ctx context.Context, email, clientIP string) (Reply, error) {
	return c.post(ctx, unsubscribePath, email, clientIP)
}

// post sends one request; a non-nil error means no response was received.
func (c *Client) post(ctx context.Context, path, email, clientIP string) (Reply, error) {
	payload, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return Reply{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return Reply{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.origin != "" {
		req.Header.Set("Origin", c.origin)
	}
	if clientIP != "" {
		// the API rate-limits the visitor, not this server
		req.Header.Set("X-Forwarded-For", clientIP)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("request failed")
		return Reply{}, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Error().Err(err).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return Reply{}, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("response received")
	return Reply{Status: resp.StatusCode, Body: body}, nil
}
