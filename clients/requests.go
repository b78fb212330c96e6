package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/r-moraru/cluster-consensus/raft_server"
)

type Client struct {
	httpClient *http.Client
}

// StatusError is a non-2xx answer from a node.
type StatusError struct {
	StatusCode int
	Body       raft_server.ErrorResponse
}

func (e *StatusError) Error() string {
	if e.Body.Error != "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body.Error)
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

func (l *Client) get(ctx context.Context, url string, v any) error {
	return l.do(ctx, http.MethodGet, url, nil, v)
}

func (l *Client) post(ctx context.Context, url string, payload any, v any) error {
	return l.do(ctx, http.MethodPost, url, payload, v)
}

func (l *Client) delete(ctx context.Context, url string, v any) error {
	return l.do(ctx, http.MethodDelete, url, nil, v)
}

func (l *Client) do(ctx context.Context, method, url string, payload any, v any) error {
	var body io.Reader
	if payload != nil {
		marshalledPayload, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(marshalledPayload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create %s request for %s: %w", method, url, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		// Plain text errors leave the body empty.
		json.NewDecoder(resp.Body).Decode(&statusErr.Body)
		return statusErr
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}
