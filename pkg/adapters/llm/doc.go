// Package llm provides LLM client implementations.
//
// The factory creates LLM clients based on provider configuration.
// Clients double as dependency probes: Check verifies that the provider
// is reachable and accepts the configured credentials.
//
// Currently supports:
//   - Anthropic Claude
package llm
