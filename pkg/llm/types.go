package llm

import "context"

// CompletionRequest is a single prompt submitted to a chat model. The
// response is expected to be one JSON object matching the schema described
// inside the prompt, with no markdown fencing or commentary.
type CompletionRequest struct {
	Prompt      string
	Temperature float64
}

// Provider executes chat completions against one concrete LLM backend.
type Provider interface {
	// Complete submits the prompt and returns the raw response text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Name identifies the backend ("openai", "ollama") for logging.
	Name() string
}
