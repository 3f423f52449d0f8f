// Package latency models the cosmetic pause the original client showed
// before resolving an operation. The pause is not a concurrency-control
// mechanism and has no effect on ordering or correctness, so the default
// strategy is zero-duration and tests stay deterministic.
package latency

import "time"

// Strategy blocks for a configured cosmetic delay.
type Strategy interface {
	Wait()
}

type fixed struct {
	d time.Duration
}

func (f fixed) Wait() {
	if f.d > 0 {
		time.Sleep(f.d)
	}
}

// Fixed returns a strategy sleeping for d on every call.
func Fixed(d time.Duration) Strategy {
	return fixed{d: d}
}

// None returns a strategy that never sleeps.
func None() Strategy {
	return fixed{}
}
