package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yesigotthis/adhd-hub/pkg/catalog"
)

// Client talks to the content service and the blob store on behalf of an
// upload session. Each presigned URL it fetches is used for exactly one
// PUT and never reused.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithAuthToken sets the bearer token sent on service requests.
func WithAuthToken(token string) ClientOption {
	return func(c *Client) { c.authToken = token }
}

// NewClient creates a client for the content service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Minute, // uploads can be large
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestUploadURL asks the service for a fresh presigned PUT URL.
func (c *Client) RequestUploadURL(ctx context.Context, fileName, mimeType string) (catalog.UploadTarget, error) {
	body := catalog.GetUploadURLRequest{
		FileName: fileName,
		MimeType: mimeType,
	}

	var target catalog.UploadTarget
	if err := c.doJSON(ctx, http.MethodPost, "/upload", body, &target); err != nil {
		return catalog.UploadTarget{}, fmt.Errorf("request upload url: %w", err)
	}
	return target, nil
}

// PutObject streams the file bytes to the presigned URL.
func (c *Client) PutObject(ctx context.Context, uploadURL, mimeType string, data io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, data)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mimeType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload to storage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("upload to storage: status %d: %s", resp.StatusCode, msg)
	}
	return nil
}

// RegisterContent creates the catalog record once the assets are in place.
func (c *Client) RegisterContent(ctx context.Context, req catalog.CreateContentRequest) (*catalog.ContentItem, error) {
	var item catalog.ContentItem
	if err := c.doJSON(ctx, http.MethodPost, "/content", req, &item); err != nil {
		return nil, fmt.Errorf("register content: %w", err)
	}
	return &item, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, msg)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
