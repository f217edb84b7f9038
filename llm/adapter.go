package llm

import (
	"context"
)

// Request carries the inputs for a single completion call. The prompt is a
// single user-role message; there is no conversation history.
type Request struct {
	Service Service
	Model   string
	APIKey  string
	Prompt  string
}

// Adapter executes a single-turn completion against one provider and
// returns the extracted text. Implementations translate provider-specific
// failures into *Error values where the provider exposes a structured
// signal; raw errors are classified centrally by WrapProviderError.
// Adapters hold no mutable per-call state and are safe for concurrent use.
type Adapter interface {
	Invoke(ctx context.Context, req *Request) (string, error)
}
