// Package mirror pushes catalog stock counts to an external data store.
// Delivery is best-effort and fire-and-forget: no retries, and callers are
// expected to log and discard the returned error.
package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

type Client struct {
	http    *http.Client
	baseURL string
}

// New builds a mirror client for the given endpoint. An empty URL disables
// the client entirely.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   3 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

func (c *Client) Enabled() bool { return c.baseURL != "" }

type stockPayload struct {
	ItemKey string `json:"item_key"`
	Stock   int    `json:"stock"`
}

func (c *Client) PushStock(ctx context.Context, itemKey string, stock int) error {
	if !c.Enabled() {
		return nil
	}
	body, err := json.Marshal(stockPayload{ItemKey: itemKey, Stock: stock})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mirror returned %d", resp.StatusCode)
	}
	return nil
}
