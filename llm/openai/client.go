// Package openai implements the llm.Adapter contract against OpenAI's
// chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pchaumet/unicall/llm"
	openai "github.com/sashabaranov/go-openai"
)

// Client is the OpenAI adapter. It holds no per-call state; the SDK client
// is built from the request credential on each invocation.
type Client struct{}

// New creates the OpenAI adapter.
func New() *Client {
	return &Client{}
}

// Invoke implements llm.Adapter.Invoke.
func (c *Client) Invoke(ctx context.Context, req *llm.Request) (string, error) {
	if req.APIKey == "" {
		return "", llm.NewAPICallError(req.Service, "OpenAI API key is required", nil)
	}

	client := openai.NewClient(req.APIKey)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return "", convertError(req, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", llm.NewAPICallError(
			req.Service,
			fmt.Sprintf("the call to the OpenAI '%s' model didn't provide any text result", req.Model),
			nil,
		)
	}

	return resp.Choices[0].Message.Content, nil
}

// convertError maps structured OpenAI API errors into the taxonomy. Errors
// without a structured overload signal are returned raw for the central
// classifier.
func convertError(req *llm.Request, err error) error {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.HTTPStatusCode {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return llm.NewOverloadedError(
			req.Service,
			fmt.Sprintf("OpenAI '%s' model is overloaded: %s", req.Model, apiErr.Message),
			err,
		)
	default:
		return err
	}
}
