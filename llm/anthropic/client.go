// Package anthropic implements the llm.Adapter contract against the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pchaumet/unicall/llm"
	"github.com/samber/lo"
)

// maxTokens caps the completion length for single-turn calls.
const maxTokens = 10000

// Anthropic signals temporary capacity exhaustion with a dedicated 529
// "overloaded_error" status on top of the usual 429 rate limit.
const statusOverloaded = 529

// Client is the Anthropic adapter.
type Client struct{}

// New creates the Anthropic adapter.
func New() *Client {
	return &Client{}
}

// Invoke implements llm.Adapter.Invoke.
func (c *Client) Invoke(ctx context.Context, req *llm.Request) (string, error) {
	if req.APIKey == "" {
		return "", llm.NewAPICallError(req.Service, "Anthropic API key is required", nil)
	}

	client := anthropic.NewClient(option.WithAPIKey(req.APIKey))

	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", convertError(req, err)
	}

	texts := lo.FilterMap(message.Content, func(blockUnion anthropic.ContentBlockUnion, _ int) (string, bool) {
		if block, ok := blockUnion.AsAny().(anthropic.TextBlock); ok {
			return block.Text, true
		}
		return "", false
	})
	if len(texts) == 0 {
		return "", llm.NewAPICallError(
			req.Service,
			fmt.Sprintf("the call to the Anthropic '%s' model didn't provide any text response", req.Model),
			nil,
		)
	}

	return texts[0], nil
}

// convertError maps structured Anthropic API errors into the taxonomy.
func convertError(req *llm.Request, err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.StatusCode {
	case http.StatusTooManyRequests, statusOverloaded:
		return llm.NewOverloadedError(
			req.Service,
			fmt.Sprintf("Anthropic '%s' model is overloaded: %v", req.Model, apiErr),
			err,
		)
	default:
		return err
	}
}
