package llm

import "context"

// Client is the chat-completion capability consumed by the recipe orchestrator.
// Implementations return the raw completion text; failures (transport, non-2xx,
// empty completion) come back as errors so the orchestrator stays substitutable
// in tests.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
