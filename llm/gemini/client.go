// Package gemini implements the llm.Adapter contract against Google's
// Generative AI (Gemini) API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pchaumet/unicall/llm"
	"google.golang.org/genai"
)

// Client is the Google Gemini adapter.
type Client struct{}

// New creates the Gemini adapter.
func New() *Client {
	return &Client{}
}

// Invoke implements llm.Adapter.Invoke.
//
// Gemini's response text is nullable; an empty string is an accepted
// degenerate success here rather than an error, unlike the other adapters.
func (c *Client) Invoke(ctx context.Context, req *llm.Request) (string, error) {
	if req.APIKey == "" {
		return "", llm.NewAPICallError(req.Service, "Google API key is required", nil)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  req.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", llm.NewAPICallError(
			req.Service,
			fmt.Sprintf("failed to create Gemini client: %v", err),
			err,
		)
	}

	contents := genai.Text(req.Prompt)

	resp, err := client.Models.GenerateContent(ctx, req.Model, contents, nil)
	if err != nil {
		return "", convertError(req, err)
	}

	return resp.Text(), nil
}

// convertError maps structured Gemini API errors into the taxonomy.
func convertError(req *llm.Request, err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.Code == http.StatusTooManyRequests,
		apiErr.Code == http.StatusServiceUnavailable,
		apiErr.Status == "RESOURCE_EXHAUSTED":
		return llm.NewOverloadedError(
			req.Service,
			fmt.Sprintf("Gemini '%s' model is overloaded: %s", req.Model, apiErr.Message),
			err,
		)
	default:
		return err
	}
}
