package translate

import "sync"

// budget caps AI calls per run. Zero or negative max means unlimited.
type budget struct {
	mu    sync.Mutex
	count int
	max   int
}

func newBudget(max int) *budget {
	return &budget{max: max}
}

func (b *budget) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.max > 0 && b.count >= b.max {
		return false
	}
	b.count++
	return true
}

func (b *budget) used() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}
