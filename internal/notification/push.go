// Package notification talks to the external push gateway. Delivery is
// best-effort: callers log failures and move on.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Notifier sends one push message to a batch of device tokens.
type Notifier interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) error
}

// maxBatchSize is the gateway's per-request message limit.
const maxBatchSize = 100

type pushMessage struct {
	To    []string          `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// PushClient is an HTTP client for an Expo-compatible push endpoint.
type PushClient struct {
	endpoint string
	client   *http.Client
}

func NewPushClient(endpoint string, timeout time.Duration) *PushClient {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	return &PushClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout, Transport: tr},
	}
}

func (c *PushClient) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	if len(tokens) == 0 {
		return nil
	}

	for start := 0; start < len(tokens); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}

		if err := c.post(ctx, pushMessage{
			To:    tokens[start:end],
			Title: title,
			Body:  body,
			Data:  data,
		}); err != nil {
			return fmt.Errorf("c.post -> %w", err)
		}
	}

	return nil
}

func (c *PushClient) post(ctx context.Context, msg pushMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push gateway returned status %v", resp.StatusCode)
	}

	return nil
}
