package teamwork

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/philipdalen/mcp-workspace/internal/common"
)

// maxResponseSize caps vendor response bodies.
const maxResponseSize = 50 << 20 // 50MB

const appName = "teamwork-mcp"

var (
	schemePrefix  = regexp.MustCompile(`^https?://`)
	teamworkHost  = regexp.MustCompile(`\.teamwork\.com$`)
	trailingSlash = regexp.MustCompile(`/+$`)
)

// NormalizeDomain reduces a site address such as
// "https://acme.teamwork.com/" to its subdomain "acme".
func NormalizeDomain(domain string) string {
	d := schemePrefix.ReplaceAllString(strings.TrimSpace(domain), "")
	d = trailingSlash.ReplaceAllString(d, "")
	return teamworkHost.ReplaceAllString(d, "")
}

// BaseURL returns the API root for version ("v1" or "v3") on domain.
func BaseURL(domain, version string) string {
	d := NormalizeDomain(domain)
	if version == "v1" {
		return fmt.Sprintf("https://%s.teamwork.com/", d)
	}
	return fmt.Sprintf("https://%s.teamwork.com/projects/api/%s/", d, version)
}

// APIError is a non-2xx response from Teamwork.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("teamwork returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("teamwork returned %d", e.Status)
}

// Response is a raw vendor response.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// IsJSON reports whether the body is JSON.
func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType, "json") || json.Valid(r.Body)
}

// Client talks to one Teamwork API version with basic auth.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client rooted at baseURL, which must end with a slash.
func NewClient(baseURL, username, password string, logger *common.Logger) *Client {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	creds := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return &Client{
		baseURL:    baseURL,
		authHeader: "Basic " + creds,
		httpClient: &http.Client{
			Timeout: 300 * time.Second,
		},
		logger: logger,
	}
}

// Clients holds the memoized per-version clients.
type Clients struct {
	V1 *Client
	V3 *Client
}

// NewClients builds the v1 and v3 clients for a site.
func NewClients(domain, username, password string, logger *common.Logger) (*Clients, error) {
	if NormalizeDomain(domain) == "" {
		return nil, fmt.Errorf("invalid or empty Teamwork domain")
	}
	return &Clients{
		V1: NewClient(BaseURL(domain, "v1"), username, password, logger),
		V3: NewClient(BaseURL(domain, "v3"), username, password, logger),
	}, nil
}

// BaseURL returns the API root the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET and returns the JSON body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	resp, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Post performs a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, data any) (json.RawMessage, error) {
	resp, err := c.Do(ctx, http.MethodPost, path, nil, data)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Put performs a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, data any) (json.RawMessage, error) {
	resp, err := c.Do(ctx, http.MethodPut, path, nil, data)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Patch performs a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, data any) (json.RawMessage, error) {
	resp, err := c.Do(ctx, http.MethodPatch, path, nil, data)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Delete performs a DELETE. Empty bodies come back as nil.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	resp, err := c.Do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Do performs one request. path is relative to the client's base URL.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, data any) (*Response, error) {
	path = strings.TrimLeft(path, "/")
	c.logger.Debug().Str("method", method).Str("path", path).Msg("teamwork request")

	var bodyReader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", common.UserAgent(appName))
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", method).Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("teamwork request failed")
		return nil, fmt.Errorf("teamwork request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("teamwork response")

	if resp.StatusCode >= 400 {
		return nil, parseErrorResponse(resp.StatusCode, body)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = nil
	}
	return &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// parseErrorResponse reads the v3 {"errors":[...]} and v1 {"MESSAGE":...}
// error shapes.
func parseErrorResponse(statusCode int, body []byte) error {
	apiErr := &APIError{Status: statusCode}

	var v3 struct {
		Errors []struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		} `json:"errors"`
	}
	var v1 struct {
		Message string `json:"MESSAGE"`
		Error   string `json:"error"`
	}

	switch {
	case json.Unmarshal(body, &v3) == nil && len(v3.Errors) > 0:
		parts := make([]string, 0, len(v3.Errors))
		for _, e := range v3.Errors {
			msg := e.Detail
			if msg == "" {
				msg = e.Title
			}
			if msg != "" {
				parts = append(parts, msg)
			}
		}
		apiErr.Message = strings.Join(parts, "; ")
	case json.Unmarshal(body, &v1) == nil && (v1.Message != "" || v1.Error != ""):
		apiErr.Message = v1.Message
		if apiErr.Message == "" {
			apiErr.Message = v1.Error
		}
	default:
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
