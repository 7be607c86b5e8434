package ai

import "context"

// Advisor turns a finished recommendation into a short human-readable note
// for the renter. Implementations may call out to an LLM; callers must treat
// a failed Explain as advisory-only and never fail the request over it.
type Advisor interface {
	Explain(ctx context.Context, s Summary) (string, error)
}
