// Package complexity estimates the time/space complexity of a pasted
// solution through an external text-completion service. The estimate is
// a best-effort enrichment: callers make one attempt, treat nil as "no
// estimate available," and never fail a write because of it.
package complexity

import "context"

// Estimate holds the model's best guess for a solution's complexity.
type Estimate struct {
	TimeComplexity  string `json:"timeComplexity"`
	SpaceComplexity string `json:"spaceComplexity"`
}

// Estimator produces a complexity estimate for a piece of code.
// Implementations return (nil, nil) when the service declines to guess;
// an error means the service could not be reached at all. Callers
// swallow both outcomes the same way.
type Estimator interface {
	Estimate(ctx context.Context, code, language string) (*Estimate, error)
}

// noopEstimator never produces an estimate. Used when no API key is
// configured.
type noopEstimator struct{}

func (noopEstimator) Estimate(ctx context.Context, code, language string) (*Estimate, error) {
	return nil, nil
}

// Disabled returns an estimator that always reports "no estimate."
func Disabled() Estimator {
	return noopEstimator{}
}
