// Package lock provides an in-process, per-key mutual exclusion primitive.
// It serializes critical sections for the same key while leaving unrelated
// keys fully concurrent. Suitable for single-process deployments; a
// multi-instance deployment needs a distributed lock with the same contract.
package lock

import "sync"

// Keyed serializes critical sections per key with FIFO fairness. The zero
// value is not usable; use NewKeyed. Each key's bookkeeping is dropped as
// soon as its last queued section finishes, so idle keys cost nothing.
type Keyed struct {
	mu     sync.Mutex
	chains map[string]chan struct{}
}

func NewKeyed() *Keyed {
	return &Keyed{chains: make(map[string]chan struct{})}
}

// Do runs fn after every previously queued section for key has finished.
// Waiters for the same key are admitted in arrival order. The return value
// of fn is handed back to this caller only; a failing section still lets
// the next waiter proceed.
func (k *Keyed) Do(key string, fn func() error) error {
	k.mu.Lock()
	prior := k.chains[key]
	turn := make(chan struct{})
	k.chains[key] = turn
	k.mu.Unlock()

	if prior != nil {
		<-prior
	}

	defer func() {
		close(turn)
		k.mu.Lock()
		// Only remove the entry if no later caller has chained onto us.
		if k.chains[key] == turn {
			delete(k.chains, key)
		}
		k.mu.Unlock()
	}()

	return fn()
}

// Len reports how many keys currently have an active or queued section.
// Test hook for the idle-cleanup guarantee.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.chains)
}
