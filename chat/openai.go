package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const completionsURL = "https://api.openai.com/v1/chat/completions"

// Completer produces a chat completion for a message list.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Message is one role/content turn of a chat exchange.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIClient calls the hosted chat-completions API.
type OpenAIClient struct {
	client *resty.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: resty.New().
			SetTimeout(60 * time.Second).
			SetAuthToken(apiKey),
		model: model,
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (o *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	var result completionResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(completionRequest{
			Model:       o.model,
			Messages:    messages,
			Temperature: 0.2,
		}).
		SetResult(&result).
		SetError(&result).
		Post(completionsURL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		if result.Error != nil {
			return "", fmt.Errorf("completion failed: %s", result.Error.Message)
		}
		return "", fmt.Errorf("completion failed with status %d", resp.StatusCode())
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}
