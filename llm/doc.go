// Package llm defines the provider-neutral core of unicall: the closed
// Service enumeration with its per-provider cooldown and credential facts,
// the shared error taxonomy, and the Adapter contract that each provider
// implementation satisfies.
//
// The package deliberately knows nothing about any vendor SDK. Provider
// implementations live in subpackages (llm/openai, llm/anthropic,
// llm/gemini, llm/aristote) and translate their SDK's failure shapes into
// the taxonomy defined here. The caller package wires adapters to services
// and exposes the user-facing facade.
package llm
