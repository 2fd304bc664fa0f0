package contentgen

import "context"

// Generator produces quiz content for a single word.
type Generator interface {
	// Generate produces content for the given input. It must be safe to
	// call from a background goroutine and must honor ctx cancellation.
	Generate(ctx context.Context, input GenerateInput) (*Content, error)
}
