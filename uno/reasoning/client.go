package reasoning

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel   = "gemini-2.0-flash"

	temperature     = 0.7
	maxOutputTokens = 200
	errorBodyLimit  = 512

	apiKeyHeader = "x-goog-api-key"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrNoCandidates = errors.New("reasoning service returned no candidates")
	ErrNoJSONObject = errors.New("no JSON object in reply")
	ErrNoCardIndex  = errors.New("reply has no card_index")
)

// StatusError is returned when the service answers with a non 2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("reasoning service answered %d: %s", e.StatusCode, e.Body)
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Client asks a Gemini generateContent endpoint which card to play.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func NewClient(apiKey string, options ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// endpoint carries no credential, so transport errors quoting the URL are safe to log.
func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/%s:generateContent", c.baseURL, url.PathEscape(c.model))
}

// Reason sends request and parses the decision out of the first candidate.
// The deadline of ctx bounds the whole exchange.
func (c *Client) Reason(ctx context.Context, request Request) (Reply, error) {
	prompt, err := BuildPrompt(request)
	if err != nil {
		return Reply{}, fmt.Errorf("build prompt: %w", err)
	}
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	})
	if err != nil {
		return Reply{}, fmt.Errorf("encode request: %w", err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return Reply{}, err
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set(apiKeyHeader, c.apiKey)

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return Reply{}, err
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		errorBody, _ := io.ReadAll(io.LimitReader(httpResponse.Body, errorBodyLimit))
		return Reply{}, &StatusError{StatusCode: httpResponse.StatusCode, Body: strings.TrimSpace(string(errorBody))}
	}

	var response generateResponse
	if err := json.NewDecoder(httpResponse.Body).Decode(&response); err != nil {
		return Reply{}, fmt.Errorf("decode response: %w", err)
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return Reply{}, ErrNoCandidates
	}
	return ParseReply(response.Candidates[0].Content.Parts[0].Text)
}
