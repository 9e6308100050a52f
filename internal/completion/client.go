// Package completion is a small client for OpenAI-compatible chat completion endpoints.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperr "vidchat/internal/errors"
)

const (
	defaultBaseURL        = "https://openrouter.ai/api/v1/chat/completions"
	defaultHTTPTimeout    = 15 * time.Second
	defaultRetryBaseDelay = 1 * time.Second
	defaultRetryMaxDelay  = 10 * time.Second
	defaultRetryAttempts  = 3
)

// Config holds the endpoint settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client posts chat completion requests with retries on transient failures.
type Client struct {
	cfg        Config
	httpClient *http.Client

	retryMaxAttempts int
	retryBaseDelay   time.Duration
	retryMaxDelay    time.Duration
	sleeper          func(time.Duration)
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRetryMaxAttempts overrides the number of attempts (defaults to 3).
func WithRetryMaxAttempts(attempts int) Option {
	return func(c *Client) {
		c.retryMaxAttempts = attempts
	}
}

// WithRetryBackoff overrides the retry backoff delays.
func WithRetryBackoff(baseDelay, maxDelay time.Duration) Option {
	return func(c *Client) {
		c.retryBaseDelay = baseDelay
		c.retryMaxDelay = maxDelay
	}
}

// WithSleeper replaces the retry sleep, for tests.
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(c *Client) {
		c.sleeper = sleeper
	}
}

// NewClient builds a client for cfg.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	c := &Client{
		cfg: Config{
			APIKey:  strings.TrimSpace(cfg.APIKey),
			BaseURL: strings.TrimSpace(cfg.BaseURL),
			Model:   strings.TrimSpace(cfg.Model),
			Timeout: timeout,
		},
		httpClient:       &http.Client{Timeout: timeout},
		retryMaxAttempts: defaultRetryAttempts,
		retryBaseDelay:   defaultRetryBaseDelay,
		retryMaxDelay:    defaultRetryMaxDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg.BaseURL == "" {
		c.cfg.BaseURL = defaultBaseURL
	}
	return c
}

type httpStatusError struct {
	StatusCode int
	Body       string
	RetryAfter time.Duration
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("completion request: http %d: %s", e.StatusCode, e.Body)
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
		Text    string      `json:"text"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends prompt as a single user message and returns the reply text.
// Failures wrap errors.ErrExternalService, or errors.ErrTimeout when ctx expired.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", apperr.ErrMissingFields
	}
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("completion: api key not configured: %w", apperr.ErrExternalService)
	}
	payload := chatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.2,
	}

	reply, err := c.completeWithRetry(ctx, payload)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %w", apperr.ErrTimeout, err)
		}
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", apperr.ErrExternalService, err)
	}
	return reply, nil
}

func (c *Client) completeWithRetry(ctx context.Context, payload chatCompletionRequest) (string, error) {
	attempts := max(c.retryMaxAttempts, 1)
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		completion, err := c.sendOnce(ctx, payload)
		if err == nil {
			if content := firstContent(completion); content != "" {
				return content, nil
			}
			err = errors.New("completion: empty reply")
		}

		delay, retry := c.retryDelay(ctx, err, attempt, attempts)
		if !retry {
			return "", err
		}
		if err := c.sleep(ctx, delay); err != nil {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("completion: failed after %d attempts: %w", attempts, lastErr)
}

func firstContent(completion chatCompletionResponse) string {
	for _, choice := range completion.Choices {
		if s := strings.TrimSpace(choice.Message.Content); s != "" {
			return s
		}
		if s := strings.TrimSpace(choice.Text); s != "" {
			return s
		}
	}
	return ""
}

func (c *Client) sendOnce(ctx context.Context, payload chatCompletionRequest) (chatCompletionResponse, error) {
	var completion chatCompletionResponse
	encoded, err := json.Marshal(payload)
	if err != nil {
		return completion, fmt.Errorf("completion request: encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(encoded))
	if err != nil {
		return completion, fmt.Errorf("completion request: new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return completion, fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return completion, fmt.Errorf("completion request: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		retryAfter, _ := parseRetryAfter(resp.Header.Get("Retry-After"))
		return completion, &httpStatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
			RetryAfter: retryAfter,
		}
	}
	if err := json.Unmarshal(body, &completion); err != nil {
		return completion, fmt.Errorf("completion request: decode response: %w", err)
	}
	if completion.Error != nil {
		return completion, fmt.Errorf("completion request: api error: %s", strings.TrimSpace(completion.Error.Message))
	}
	return completion, nil
}

func (c *Client) retryDelay(ctx context.Context, err error, attempt, maxAttempts int) (time.Duration, bool) {
	if attempt >= maxAttempts || err == nil || ctx.Err() != nil {
		return 0, false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 0, false
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusRequestTimeout,
			statusErr.StatusCode == http.StatusTooManyRequests,
			statusErr.StatusCode >= http.StatusInternalServerError:
			if statusErr.RetryAfter > 0 {
				return c.capDelay(statusErr.RetryAfter), true
			}
			return c.backoffDelay(attempt), true
		default:
			return 0, false
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return c.backoffDelay(attempt), true
	}
	return 0, false
}

// backoffDelay doubles from the base delay: attempt 1 -> base, 2 -> base*2, ...
func (c *Client) backoffDelay(attempt int) time.Duration {
	if c.retryBaseDelay <= 0 {
		return 0
	}
	delay := c.retryBaseDelay
	for i := 1; i < attempt; i++ {
		if c.retryMaxDelay > 0 && delay > c.retryMaxDelay/2 {
			return c.retryMaxDelay
		}
		delay *= 2
	}
	return c.capDelay(delay)
}

func (c *Client) capDelay(delay time.Duration) time.Duration {
	if delay < 0 {
		return 0
	}
	if c.retryMaxDelay > 0 && delay > c.retryMaxDelay {
		return c.retryMaxDelay
	}
	return delay
}

func (c *Client) sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	if c.sleeper != nil {
		c.sleeper(delay)
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func parseRetryAfter(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second, true
	}
	if when, err := http.ParseTime(value); err == nil {
		if delay := time.Until(when); delay > 0 {
			return delay, true
		}
	}
	return 0, false
}
