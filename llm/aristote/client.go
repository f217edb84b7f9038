// Package aristote implements the llm.Adapter contract against the
// self-hosted Aristote dispatcher, an OpenAI-compatible chat completions
// endpoint that runs without per-call credentials.
package aristote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pchaumet/unicall/llm"
)

// DefaultEndpoint is the fixed URL of the Aristote dispatcher.
const DefaultEndpoint = "https://aristote-dispatcher.mydocker-run-vd.centralesupelec.fr/v1/chat/completions"

const defaultTimeout = 120 * time.Second

// Client is the Aristote adapter. Endpoint and HTTPClient are settable for
// tests; the zero values of New are used in production.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
}

// New creates the Aristote adapter against the fixed dispatcher endpoint.
func New() *Client {
	return &Client{
		Endpoint:   DefaultEndpoint,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Invoke implements llm.Adapter.Invoke. The dispatcher requires no
// credential; req.APIKey is ignored.
func (c *Client) Invoke(ctx context.Context, req *llm.Request) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "user", Content: req.Prompt},
		},
	})
	if err != nil {
		return "", llm.NewAPICallError(req.Service, "aristote: failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", llm.NewAPICallError(req.Service, "aristote: failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", llm.NewAPICallError(
			req.Service,
			fmt.Sprintf("aristote: unexpected status %d from dispatcher", resp.StatusCode),
			nil,
		)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", llm.NewAPICallError(req.Service, "aristote: failed to decode response", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", llm.NewAPICallError(
			req.Service,
			fmt.Sprintf("the call to the Aristote '%s' model didn't provide any text result", req.Model),
			nil,
		)
	}

	return chatResp.Choices[0].Message.Content, nil
}
