package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yanqian/itinerary-roaster/internal/domain/roast"
)

const (
	defaultTimeout  = 15 * time.Second
	defaultMaxBytes = 2 << 20
)

// Client downloads published spreadsheet exports.
type Client struct {
	httpClient *http.Client
	maxBytes   int64
}

// NewClient builds an export client. Non-positive arguments use defaults.
func NewClient(timeout time.Duration, maxBytes int64) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		maxBytes:   maxBytes,
	}
}

// Fetch performs a GET on the export URL. Non-2xx statuses are returned to the
// caller as data; only transport and read failures are errors.
func (c *Client) Fetch(ctx context.Context, exportURL string) (roast.SheetExport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return roast.SheetExport{}, fmt.Errorf("build sheet request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return roast.SheetExport{}, fmt.Errorf("sheet request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return roast.SheetExport{}, fmt.Errorf("read sheet response: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return roast.SheetExport{}, fmt.Errorf("sheet export exceeds %d bytes", c.maxBytes)
	}

	return roast.SheetExport{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

var _ roast.SheetFetcher = (*Client)(nil)
