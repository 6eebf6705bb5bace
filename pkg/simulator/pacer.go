package simulator

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// StepPacer bounds how many simulated steps run per wall-clock second.
type StepPacer struct {
	limiter *rate.Limiter
	mu      sync.Mutex
}

func NewStepPacer(stepsPerSecond float64) *StepPacer {
	return &StepPacer{limiter: newStepLimiter(stepsPerSecond)}
}

func newStepLimiter(stepsPerSecond float64) *rate.Limiter {
	if stepsPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(stepsPerSecond), 1)
}

func (p *StepPacer) Limit() rate.Limit {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.limiter.Limit()
}

func (p *StepPacer) SetRate(stepsPerSecond float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.limiter = newStepLimiter(stepsPerSecond)
}

// Wait blocks until the next step may run. It fails fast when ctx is already done.
func (p *StepPacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	limiter := p.limiter
	p.mu.Unlock()
	return limiter.Wait(ctx)
}
