// Package figma provides a Figma REST API client implementing
// veritext.NodeSource and veritext.ImageExporter.
package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mstolarz/veritext"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Figma REST API endpoint.
const DefaultBaseURL = "https://api.figma.com"

// DefaultRequestsPerSecond matches Figma's documented per-token rate
// limit headroom for file endpoints.
const DefaultRequestsPerSecond = 2.0

// Ensure Client implements the source interfaces at compile time.
var (
	_ veritext.NodeSource    = (*Client)(nil)
	_ veritext.ImageExporter = (*Client)(nil)
)

// Client calls the Figma REST API. All requests pass through a token
// bucket so bursts of verifications do not trip Figma's rate limits.
type Client struct {
	token   string
	baseURL string
	depth   int
	scale   float64
	format  string
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithDepth bounds how many levels of the node tree are returned.
// Zero means the full tree.
func WithDepth(depth int) Option {
	return func(c *Client) { c.depth = depth }
}

// WithRateLimit sets the request rate in requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithExportScale sets the render scale for ExportImage.
func WithExportScale(scale float64) Option {
	return func(c *Client) { c.scale = scale }
}

// NewClient creates a Client authenticating with the given personal
// access token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		scale:   1.0,
		format:  "png",
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// nodesResponse mirrors the GET /v1/files/{key}/nodes payload.
type nodesResponse struct {
	Nodes map[string]struct {
		Document *veritext.DesignNode `json:"document"`
	} `json:"nodes"`
}

// Node retrieves the node tree rooted at nodeID within the given file.
func (c *Client) Node(ctx context.Context, fileKey, nodeID string) (*veritext.DesignNode, error) {
	if fileKey == "" {
		return nil, veritext.Errorf(veritext.EINVALID, "file key required")
	}
	if nodeID == "" {
		return nil, veritext.Errorf(veritext.EINVALID, "node ID required")
	}

	q := url.Values{}
	q.Set("ids", nodeID)
	if c.depth > 0 {
		q.Set("depth", strconv.Itoa(c.depth))
	}

	var resp nodesResponse
	if err := c.get(ctx, fmt.Sprintf("/v1/files/%s/nodes", url.PathEscape(fileKey)), q, &resp); err != nil {
		return nil, err
	}

	entry, ok := resp.Nodes[nodeID]
	if !ok || entry.Document == nil {
		return nil, veritext.Errorf(veritext.ENOTFOUND, "node %q not found in file %q", nodeID, fileKey)
	}

	return entry.Document, nil
}

// imagesResponse mirrors the GET /v1/images/{key} payload.
type imagesResponse struct {
	Err    *string           `json:"err"`
	Images map[string]string `json:"images"`
}

// ExportImage renders the node and returns the URL of the rendered image.
func (c *Client) ExportImage(ctx context.Context, fileKey, nodeID string) (string, error) {
	if fileKey == "" {
		return "", veritext.Errorf(veritext.EINVALID, "file key required")
	}
	if nodeID == "" {
		return "", veritext.Errorf(veritext.EINVALID, "node ID required")
	}

	q := url.Values{}
	q.Set("ids", nodeID)
	q.Set("format", c.format)
	q.Set("scale", strconv.FormatFloat(c.scale, 'f', -1, 64))

	var resp imagesResponse
	if err := c.get(ctx, fmt.Sprintf("/v1/images/%s", url.PathEscape(fileKey)), q, &resp); err != nil {
		return "", err
	}
	if resp.Err != nil {
		return "", veritext.Errorf(veritext.EINTERNAL, "figma render failed: %s", *resp.Err)
	}

	imageURL, ok := resp.Images[nodeID]
	if !ok || imageURL == "" {
		return "", veritext.Errorf(veritext.ENOTFOUND, "no render for node %q in file %q", nodeID, fileKey)
	}

	return imageURL, nil
}

// get performs a rate-limited authenticated GET and decodes the JSON body
// into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Figma-Token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusUnauthorized:
		return veritext.Errorf(veritext.EUNAUTHORIZED, "figma rejected token (HTTP %d)", resp.StatusCode)
	case http.StatusNotFound:
		return veritext.Errorf(veritext.ENOTFOUND, "figma resource not found")
	default:
		return fmt.Errorf("figma API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding figma response: %w", err)
	}

	return nil
}
