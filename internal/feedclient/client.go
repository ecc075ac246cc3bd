// Package feedclient is the HTTP side of the tool: a bearer-token client
// with retry, backoff and rate limiting. It hands raw feed bytes to the
// normalizer and owns the transport error surface.
package feedclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"postpace/internal/metrics"
)

// Feed bodies are bounded; a blog feed past this size is not something we
// want to buffer.
const maxBodyBytes = 8 << 20

// Client is the fetch surface the commands and discovery depend on.
type Client interface {
	Fetch(ctx context.Context, feedURL string) ([]byte, error)
}

// StatusError is a non-success HTTP response that survived retries.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("Server returned %d", e.Code) }

// HTTPClient fetches feeds over HTTP with optional bearer auth.
type HTTPClient struct {
	token       string
	httpClient  *http.Client
	limiter     *rate.Limiter
	maxAttempts int
	baseBackoff time.Duration
}

func New(token string) *HTTPClient {
	return &HTTPClient{
		token:       token,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		limiter:     newDefaultLimiter(),
		maxAttempts: getEnvInt("POSTPACE_MAX_ATTEMPTS", 5),
		baseBackoff: time.Duration(getEnvInt("POSTPACE_BASE_BACKOFF_MS", 500)) * time.Millisecond,
	}
}

func (c *HTTPClient) auth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json, application/feed+json, application/rss+xml, application/atom+xml, */*")
}

// Fetch GETs feedURL and returns the response body. A non-2xx status after
// retries maps to *StatusError; transport failures come back wrapped as
// network errors.
func (c *HTTPClient) Fetch(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("Network error: %w", err)
	}
	c.auth(req)
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("Network error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("Network error: %w", err)
	}
	return body, nil
}

// doWithRetry retries 429 and 5xx responses, honouring Retry-After, with
// exponential backoff and +/-20% jitter. The last response is returned even
// when it is still an error status so Fetch can map the code.
func (c *HTTPClient) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	backoff := c.baseBackoff
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err := c.httpClient.Do(req.Clone(ctx))
		if err == nil {
			retryable := resp.StatusCode == http.StatusTooManyRequests ||
				(resp.StatusCode >= 500 && resp.StatusCode <= 599)
			if !retryable || attempt == c.maxAttempts {
				return resp, nil
			}
			metrics.IncFetchRetry(strconv.Itoa(resp.StatusCode))
			wait := backoff
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				if secs, err := strconv.Atoi(ra); err == nil {
					wait = time.Duration(secs) * time.Second
				} else if t, err := http.ParseTime(ra); err == nil {
					if d := time.Until(t); d > 0 {
						wait = d
					}
				}
			}
			_ = resp.Body.Close()
			if jitter := time.Duration(float64(wait) * 0.2); jitter > 0 {
				wait = wait - jitter + time.Duration(time.Now().UnixNano()%int64(2*jitter))
			}
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
			continue
		}
		lastErr = err
		if attempt == c.maxAttempts {
			break
		}
		metrics.IncFetchRetry("network")
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
	}
	return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxAttempts, lastErr)
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil && i > 0 {
		return i
	}
	return def
}
