// Package graph talks to the Microsoft Graph mail and calendar endpoints on
// behalf of a device-code authenticated user.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/philipdalen/mcp-workspace/internal/common"
)

const (
	// DefaultBaseURL is the Graph API root used by the mail server.
	DefaultBaseURL = "https://graph.microsoft.com/beta"

	appName = "simply-outlook-mcp"

	// maxResponseSize caps a Graph response body.
	maxResponseSize = 50 << 20
)

// APIError is a non-2xx Graph response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("graph request failed with status %d", e.Status)
}

// Client performs authenticated Graph requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a Graph client that signs every request with tokens
// from ts.
func NewClient(baseURL string, ts oauth2.TokenSource, logger *common.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 300 * time.Second,
			Transport: &oauth2.Transport{
				Source: ts,
				Base:   http.DefaultTransport,
			},
		},
		logger: logger,
	}
}

// encodeQuery keeps OData's $ prefixes readable and encodes spaces as %20.
func encodeQuery(q url.Values) string {
	s := q.Encode()
	s = strings.ReplaceAll(s, "%24", "$")
	return strings.ReplaceAll(s, "+", "%20")
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, data, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, data, out)
}

func (c *Client) patch(ctx context.Context, path string, data, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, data, out)
}

// do sends one request and decodes a JSON response into out when out is
// non-nil and the body is not empty.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, data, out any) error {
	c.logger.Debug().Str("method", method).Str("path", path).Msg("graph request")

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + encodeQuery(query)
	}

	var bodyReader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", common.UserAgent(appName))
	req.Header.Set("Accept", "application/json")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", method).Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("graph request failed")
		return fmt.Errorf("graph request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("graph response")

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp.StatusCode, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse graph response: %w", err)
	}
	return nil
}

// parseErrorResponse extracts the Graph error code and message.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	apiErr := &APIError{Status: statusCode}
	if json.Unmarshal(body, &errResp) == nil {
		apiErr.Code = errResp.Error.Code
		apiErr.Message = errResp.Error.Message
	}
	if apiErr.Message == "" && len(body) > 0 {
		apiErr.Message = fmt.Sprintf("graph returned %d: %s", statusCode, strings.TrimSpace(string(body)))
	}
	return apiErr
}
