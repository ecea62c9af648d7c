package anthropic

//go:generate go run go.uber.org/mock/mockgen -source=./anthropic.go -destination=./mocks/anthropic_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"flightapi/config"
	"flightapi/infras/otel"
	"flightapi/shared/constant"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	defaultMaxTokens = 4096
	apiVersion       = "2023-06-01"
	requestTimeout   = 60 * time.Second

	BlockTypeDocument = "document"
	BlockTypeImage    = "image"
)

// Client talks to the Anthropic Messages API. The only operation this
// service needs is sending one document (or image) plus a text prompt and
// getting the model's text back.
type Client interface {
	ExtractText(ctx context.Context, blockType, mediaType, base64Data, prompt string) (string, error)
}

type contentSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type contentBlock struct {
	Type   string         `json:"type"`
	Text   string         `json:"text,omitempty"`
	Source *contentSource `json:"source,omitempty"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type clientImpl struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
	otel       otel.Otel
}

func New(config *config.Config, otel otel.Otel) Client {
	baseURL := config.External.Anthropic.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	maxTokens := config.External.Anthropic.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &clientImpl{
		baseURL:   baseURL,
		apiKey:    config.External.Anthropic.APIKey,
		model:     config.External.Anthropic.Model,
		maxTokens: maxTokens,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		otel: otel,
	}
}

func (c *clientImpl) ExtractText(ctx context.Context, blockType, mediaType, base64Data, prompt string) (text string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".anthropic.ExtractText")
	defer scope.End()
	defer scope.TraceIfError(err)

	if c.apiKey == "" {
		return "", fmt.Errorf("anthropic api key is not configured")
	}

	reqBody := messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []message{
			{
				Role: "user",
				Content: []contentBlock{
					{
						Type: blockType,
						Source: &contentSource{
							Type:      "base64",
							MediaType: mediaType,
							Data:      base64Data,
						},
					},
					{
						Type: "text",
						Text: prompt,
					},
				},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal messages request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build messages request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAPIKey, c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call messages api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read messages response: %w", err)
	}

	var decoded messagesResponse
	if err = json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode messages response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil {
			log.Error().Str("type", decoded.Error.Type).Str("message", decoded.Error.Message).Msg("messages api returned an error")

			return "", fmt.Errorf("messages api error: %s", decoded.Error.Message)
		}

		return "", fmt.Errorf("messages api returned status %d", resp.StatusCode)
	}

	for _, block := range decoded.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("messages api response contained no text block")
}
