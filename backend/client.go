package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hnasir/askbook"
)

// Interface compliance check.
var _ askbook.Answerer = (*Client)(nil)

// Client implements [askbook.Answerer] against the book's chat endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the service base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the debug logger. Default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a new [Client] with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Ask posts the query to the chat endpoint and classifies the outcome.
// Exactly one round trip per call. Transport errors map to Unreachable,
// non-2xx statuses to Failure, and missing or blank answer text to
// NoAnswer; classification never inspects error message strings.
func (c *Client) Ask(ctx context.Context, query string) askbook.Result {
	// apiRequest holds only strings; marshalling cannot fail.
	body, _ := json.Marshal(apiRequest{
		Query:    query,
		Software: softwareContext,
		Hardware: hardwareContext,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(body))
	if err != nil {
		c.logger.Error().Err(err).Str("base_url", c.baseURL).Msg("build chat request")
		return askbook.Unreachable{}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport-level failure: the endpoint was never reached.
		c.logger.Warn().Err(err).Msg("chat endpoint unreachable")
		return askbook.Unreachable{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		diag, _ := io.ReadAll(resp.Body)
		c.logger.Warn().Int("status", resp.StatusCode).Msg("chat request rejected")
		return askbook.Failure{Status: resp.StatusCode, Body: strings.TrimSpace(string(diag))}
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn().Err(err).Msg("undecodable chat response")
		return askbook.NoAnswer{}
	}

	answer := strings.TrimSpace(payload.Answer)
	if answer == "" {
		return askbook.NoAnswer{}
	}
	c.logger.Debug().Int("answer_len", len(answer)).Int("sources", len(payload.Sources)).Msg("answer received")
	return askbook.Answer{Text: answer, Sources: convertSources(payload.Sources)}
}

func convertSources(src []apiSource) []askbook.Source {
	if len(src) == 0 {
		return nil
	}
	result := make([]askbook.Source, len(src))
	for i, s := range src {
		result[i] = askbook.Source{Chapter: s.Chapter, Section: s.Section, URL: s.URL}
	}
	return result
}
