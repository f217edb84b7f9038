// Package caller exposes the unicall facade: a configured (service, model,
// credential) triple that routes single-turn prompts to the right provider
// adapter and normalizes every failure into the llm error taxonomy.
package caller

import (
	"context"
	"time"

	"github.com/pchaumet/unicall/llm"
	"github.com/pchaumet/unicall/llm/anthropic"
	"github.com/pchaumet/unicall/llm/aristote"
	"github.com/pchaumet/unicall/llm/gemini"
	"github.com/pchaumet/unicall/llm/openai"
	"github.com/rs/zerolog"
)

// defaultAdapters is the read-only Service to adapter table, built once at
// package init. Every enumerated service has exactly one entry; services
// without a working implementation get the unimplemented adapter so a call
// fails deterministically instead of being silently skipped.
var defaultAdapters = map[llm.Service]llm.Adapter{
	llm.ServiceOpenAI:    openai.New(),
	llm.ServiceAnthropic: anthropic.New(),
	llm.ServiceGoogle:    gemini.New(),
	llm.ServiceXAI:       unimplemented{service: llm.ServiceXAI},
	llm.ServiceAristote:  aristote.New(),
}

// unimplemented is the adapter for recognized services without a working
// implementation yet.
type unimplemented struct {
	service llm.Service
}

// Invoke implements llm.Adapter.Invoke by always failing.
func (u unimplemented) Invoke(_ context.Context, _ *llm.Request) (string, error) {
	return "", llm.NewNotImplementedError(u.service)
}

// Caller is the configured facade. It is immutable after construction and
// safe for concurrent use; a call holds no per-invocation state on the
// Caller itself.
type Caller struct {
	service  llm.Service
	model    string
	apiKey   string
	handlers map[llm.Service]llm.Adapter
	logger   zerolog.Logger
}

// Option customizes a Caller at construction time.
type Option func(*Caller)

// WithLogger sets the logger used at the dispatch boundary. The default
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Caller) {
		c.logger = logger
	}
}

// WithHandlers replaces the whole adapter table. Intended for tests and for
// embedders that bring their own providers; the map is used as-is and must
// not be mutated afterwards.
func WithHandlers(handlers map[llm.Service]llm.Adapter) Option {
	return func(c *Caller) {
		c.handlers = handlers
	}
}

// New creates a Caller for the named service. The service name is resolved
// case-insensitively against the canonical names; model and apiKey are
// stored verbatim. Model names are never validated client-side, an invalid
// one surfaces as a provider rejection at call time. apiKey may be empty
// for services that don't require a token.
func New(serviceName, model, apiKey string, opts ...Option) (*Caller, error) {
	service, err := llm.ParseService(serviceName)
	if err != nil {
		return nil, err
	}

	c := &Caller{
		service:  service,
		model:    model,
		apiKey:   apiKey,
		handlers: defaultAdapters,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Service returns the resolved service.
func (c *Caller) Service() llm.Service {
	return c.service
}

// Model returns the configured model name.
func (c *Caller) Model() string {
	return c.model
}

// Call sends the prompt as a single user message to the configured provider
// and returns the extracted text. Every failure is logged once here and
// returned as an *llm.Error; the adapter's error identity is preserved so
// callers can branch on kind (llm.IsOverloadedError etc.). Call never
// retries; see the retry package for a caller-side policy.
func (c *Caller) Call(ctx context.Context, prompt string) (string, error) {
	handler, ok := c.handlers[c.service]
	if !ok {
		err := llm.NewNoHandlerError(c.service)
		c.logError(err)
		return "", err
	}

	text, err := handler.Invoke(ctx, &llm.Request{
		Service: c.service,
		Model:   c.model,
		APIKey:  c.apiKey,
		Prompt:  prompt,
	})
	if err != nil {
		wrapped := llm.WrapProviderError(c.service, err)
		c.logError(wrapped)
		return "", wrapped
	}

	return text, nil
}

// WaitCooldown blocks the calling goroutine for the service's cooldown.
// It is a rate-limiting aid only and is never invoked by Call; serializing
// concurrent callers against the same provider is the caller's policy.
func (c *Caller) WaitCooldown() {
	time.Sleep(c.service.Cooldown())
}

func (c *Caller) logError(err error) {
	c.logger.Error().
		Str("service", c.service.String()).
		Str("model", c.model).
		Err(err).
		Msg("LLM call failed")
}
