// Package apiclient talks to the learning platform's backend REST
// APIs. Every response is decoded exactly once at this boundary into
// either a payload or a typed error kind; internal code never
// branches on field presence.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"eduadmin/domain/contracts"
	"eduadmin/domain/listing"
	"eduadmin/logging"
)

// Config holds backend connection settings.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

// DefaultConfig returns the standard backend client settings.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:9000/api",
		Timeout:    30 * time.Second,
		RetryCount: 0,
	}
}

// Client is the shared resty transport for all entity APIs.
type Client struct {
	http   *resty.Client
	logger *logging.Logger
}

// New builds the backend client from configuration.
func New(cfg *Config, logger *logging.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.RetryCount > 0 {
		httpClient.
			SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(100 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if err != nil {
					return true
				}
				if r == nil {
					return false
				}
				code := r.StatusCode()
				return code >= 500 || code == 429 || code == 408
			})
	}

	return &Client{
		http:   httpClient,
		logger: logger.WithComponent("api_client"),
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// get issues a GET and decodes the envelope's data into out.
func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	return c.decode(resp, err, path, out)
}

// post issues a POST with a JSON body and decodes into out (nil when
// the caller only needs success/failure).
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	return c.decode(resp, err, path, out)
}

// put issues a PUT with a JSON body and decodes into out.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Put(path)
	return c.decode(resp, err, path, out)
}

// delete issues a DELETE with an optional JSON body.
func (c *Client) delete(ctx context.Context, path string, body any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Delete(path)
	return c.decode(resp, err, path, nil)
}

// decode converts a resty outcome into a payload or a typed error.
// Network failures become transport errors (with a timeout mark);
// non-2xx or success=false responses become server errors carrying
// the backend's message verbatim.
func (c *Client) decode(resp *resty.Response, err error, path string, out any) error {
	if err != nil {
		timeout := isTimeout(err)
		c.logger.Backend("request failed", "path", path, "timeout", timeout, "error", err)
		return contracts.NewTransportError(fmt.Sprintf("backend request failed: %v", err), timeout)
	}

	var env envelope
	if len(resp.Body()) > 0 {
		if jsonErr := json.Unmarshal(resp.Body(), &env); jsonErr != nil {
			return contracts.NewServerError(resp.StatusCode(), fmt.Sprintf("malformed backend response: %v", jsonErr))
		}
	}

	if resp.IsError() || !env.Success {
		message := env.Error
		if message == "" {
			message = env.Message
		}
		if message == "" {
			message = fmt.Sprintf("backend returned status %d", resp.StatusCode())
		}
		c.logger.Backend("request rejected", "path", path, "status", resp.StatusCode(), "message", message)
		return contracts.NewServerError(resp.StatusCode(), message)
	}

	if out == nil {
		return nil
	}
	if jsonErr := json.Unmarshal(env.Data, out); jsonErr != nil {
		return contracts.NewServerError(resp.StatusCode(), fmt.Sprintf("malformed backend payload: %v", jsonErr))
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// listQuery renders page, limit, filters, and sort as request
// parameters. Unset filter keys never appear.
func listQuery(page, perPage int, filters listing.Filters, sort listing.Sort) map[string]string {
	query := map[string]string{
		"page":  fmt.Sprintf("%d", page),
		"limit": fmt.Sprintf("%d", perPage),
	}
	for key, value := range filters {
		query[key] = value
	}
	if !sort.IsZero() {
		query["sort"] = sort.Param()
	}
	return query
}
