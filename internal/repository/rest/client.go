package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"mountainride-backoffice/internal/config"
	"mountainride-backoffice/internal/logger"
)

const serviceName = "mountainride-api"

// TokenSource supplies the bearer token of the current session; an empty
// string means no session.
type TokenSource interface {
	Token() string
}

// Client performs JSON calls against the remote Mountain Ride API.
// There is no caching, no retry and no backoff.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	now        func() time.Time
}

// NewClient builds a client for baseURL (including the /api prefix). A zero
// timeout leaves requests bounded only by their context.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, tokens, &http.Client{Timeout: timeout})
}

func NewClientWithHTTP(baseURL string, tokens TokenSource, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     tokens,
		now:        time.Now,
	}
}

// call describes one remote operation
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// do sends req and decodes a JSON success body into out. A 204 or an empty
// body leaves out untouched.
func (c *Client) do(ctx context.Context, req call, out any) error {
	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return &TransportError{Op: req.op, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return &TransportError{Op: req.op, Err: err}
	}

	requestID := uuid.New().String()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if config.RequiresBearer(req.op) && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger.ExternalServiceCall(serviceName, req.op, "method", req.method, "path", req.path, "request_id", requestID)

	err = c.send(httpReq, req.op, out)
	logger.ExternalServiceResult(serviceName, req.op, err, "request_id", requestID)
	return err
}

func (c *Client) send(httpReq *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp.StatusCode, data)
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

func (c *Client) decodeError(status int, data []byte) *RemoteError {
	var remoteErr RemoteError
	if err := json.Unmarshal(data, &remoteErr); err != nil {
		return &RemoteError{
			TimeStamp:   c.now().UTC().Format(time.RFC3339),
			Message:     GenericMessage,
			HTTPStatus:  status,
			Synthesized: true,
		}
	}
	if remoteErr.HTTPStatus == 0 {
		remoteErr.HTTPStatus = status
	}
	return &remoteErr
}

func idPath(prefix string, id int64, suffix string) string {
	return fmt.Sprintf("%s/%d%s", prefix, id, suffix)
}
