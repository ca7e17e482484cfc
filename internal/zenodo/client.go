package zenodo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// OpError is the structured failure of one deposition operation. Every
// failure carries the remote status code and response body so the
// orchestrator can log and report without unwinding.
type OpError struct {
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *OpError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("zenodo %s: status %d: %s", e.Op, e.Status, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("zenodo %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("zenodo %s failed", e.Op)
	}
}

func (e *OpError) Unwrap() error { return e.Err }

// Client wraps the archival service's deposition REST API. Operations are
// narrow and independently retryable; failures are values, not panics, so a
// workflow can decide per step whether to abort.
type Client struct {
	apiBase string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

func NewClient(apiBase string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		apiBase: strings.TrimRight(apiBase, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(5), 5),
		logger:  logger,
	}
}

// do performs one authenticated API call and decodes a JSON response into
// out (when out is non-nil). A non-2xx response becomes an *OpError with the
// body captured.
func (c *Client) do(ctx context.Context, op, method, rawurl, token string, body io.Reader, contentType string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &OpError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, rawurl, body)
	if err != nil {
		return &OpError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("zenodo.http.send_error", "op", op, "error", err)
		return &OpError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	c.logger.Debug("zenodo.http.response",
		"op", op,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return &OpError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &OpError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// CreateDeposition creates a new empty draft deposition.
func (c *Client) CreateDeposition(ctx context.Context, token string) (*Deposition, error) {
	var dep Deposition
	err := c.do(ctx, "create deposition", http.MethodPost,
		c.apiBase+"/deposit/depositions", token,
		strings.NewReader("{}"), "application/json", &dep)
	if err != nil {
		return nil, err
	}
	return &dep, nil
}

// GetDeposition fetches a deposition by id. The published-record "latest
// version" endpoint is tried first; it answers 404 for unsubmitted drafts,
// in which case the draft deposition endpoint is consulted. Any other
// failure on either call is a hard error.
func (c *Client) GetDeposition(ctx context.Context, token string, depositionID int64) (*Deposition, error) {
	var dep Deposition
	err := c.do(ctx, "get deposition", http.MethodGet,
		fmt.Sprintf("%s/records/%d/versions/latest", c.apiBase, depositionID), token,
		nil, "", &dep)
	if err == nil {
		return &dep, nil
	}

	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Status != http.StatusNotFound {
		return nil, err
	}

	var draft Deposition
	if err := c.do(ctx, "get draft deposition", http.MethodGet,
		fmt.Sprintf("%s/deposit/depositions/%d", c.apiBase, depositionID), token,
		nil, "", &draft); err != nil {
		if errors.As(err, &opErr) && opErr.Status == http.StatusNotFound {
			return nil, &OpError{Op: "get deposition", Status: http.StatusNotFound,
				Body: fmt.Sprintf("deposition with ID %d not found", depositionID)}
		}
		return nil, err
	}
	return &draft, nil
}

// ListDepositions lists the caller's depositions. Used as the token
// liveness probe.
func (c *Client) ListDepositions(ctx context.Context, token string) ([]Deposition, error) {
	var deps []Deposition
	err := c.do(ctx, "list depositions", http.MethodGet,
		c.apiBase+"/deposit/depositions", token, nil, "", &deps)
	if err != nil {
		return nil, err
	}
	return deps, nil
}

// UpdateMetadata replaces a deposition's metadata wholesale and returns the
// remote echo.
func (c *Client) UpdateMetadata(ctx context.Context, token string, depositionID int64, meta DepositionMetadata) (*Deposition, error) {
	payload, err := json.Marshal(map[string]DepositionMetadata{"metadata": meta})
	if err != nil {
		return nil, &OpError{Op: "update metadata", Err: err}
	}
	var dep Deposition
	if err := c.do(ctx, "update metadata", http.MethodPut,
		fmt.Sprintf("%s/deposit/depositions/%d", c.apiBase, depositionID), token,
		bytes.NewReader(payload), "application/json", &dep); err != nil {
		return nil, err
	}
	return &dep, nil
}

// DeleteFile removes one named file from a draft deposition.
func (c *Client) DeleteFile(ctx context.Context, token string, depositionID int64, filename string) error {
	return c.do(ctx, "delete file", http.MethodDelete,
		fmt.Sprintf("%s/records/%d/draft/files/%s", c.apiBase, depositionID, url.PathEscape(filename)), token,
		nil, "", nil)
}

// NewVersion creates a fresh draft linked to the same concept record as a
// previously-submitted deposition.
func (c *Client) NewVersion(ctx context.Context, token string, depositionID int64) (*Deposition, error) {
	var dep Deposition
	err := c.do(ctx, "new version", http.MethodPost,
		fmt.Sprintf("%s/records/%d/actions/newversion", c.apiBase, depositionID), token,
		nil, "", &dep)
	if err != nil {
		return nil, err
	}
	return &dep, nil
}

// UploadFile PUTs raw bytes into a deposition's upload bucket under name.
func (c *Client) UploadFile(ctx context.Context, token, bucketURL, name string, data []byte) error {
	return c.do(ctx, "upload file", http.MethodPut,
		strings.TrimRight(bucketURL, "/")+"/"+url.PathEscape(name), token,
		bytes.NewReader(data), "application/octet-stream", nil)
}

// Publish submits a draft deposition. The transition is irreversible on the
// remote side.
func (c *Client) Publish(ctx context.Context, token string, depositionID int64) (*Deposition, error) {
	var dep Deposition
	err := c.do(ctx, "publish", http.MethodPost,
		fmt.Sprintf("%s/deposit/depositions/%d/actions/publish", c.apiBase, depositionID), token,
		nil, "application/json", &dep)
	if err != nil {
		return nil, err
	}
	return &dep, nil
}
