package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DjordjeVuckovic/bfhl/internal/apperr"
	"github.com/DjordjeVuckovic/bfhl/internal/dto"
)

const (
	defaultTimeout = 30 * time.Second
	classifyPath   = "/bfhl"
	maxErrorBody   = 512
)

type ClientOption func(client *Client)

// Client calls a remote /bfhl endpoint. One attempt per call, no retries.
type Client struct {
	base url.URL
	http *http.Client
}

func NewClient(baseUrl string, opts ...ClientOption) (*Client, error) {
	if baseUrl == "" {
		return nil, errors.New("remote base url is empty")
	}
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse remote base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("remote base url must be absolute: %q", baseUrl)
	}

	client := &Client{
		base: *base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(client *Client) {
		client.http = httpClient
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(client *Client) {
		if timeout > 0 {
			client.http.Timeout = timeout
		}
	}
}

func (c *Client) Classify(ctx context.Context, tokens []string) (*dto.ClassifyResponse, error) {
	if tokens == nil {
		tokens = []string{}
	}

	var resp dto.ClassifyResponse
	if err := c.do(ctx, http.MethodPost, classifyPath, dto.ClassifyRequest{Data: tokens}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Ping checks that the remote /bfhl endpoint answers GET with a 2xx status.
func (c *Client) Ping(ctx context.Context) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.JoinPath(classifyPath).String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(request)
	if err != nil {
		return apperr.NewRemote(0, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperr.NewRemote(resp.StatusCode, errors.New("ping failed"))
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, reqData, respData any) error {
	reqDataBytes, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := c.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, method, reqURL.String(), bytes.NewReader(reqDataBytes))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(request)
	if err != nil {
		return apperr.NewRemote(0, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.NewRemote(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperr.NewRemote(resp.StatusCode, fmt.Errorf("body: %s", truncate(respBody, maxErrorBody)))
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return apperr.NewRemote(resp.StatusCode, fmt.Errorf("unmarshal response: %w", err))
	}

	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
