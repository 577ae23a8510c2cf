package usecase

import (
	"sync"
)

// ItemLockManager hands out one mutex per item id so that purchase, delist
// and relist never interleave their read-modify-write on the same item.
type ItemLockManager struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewItemLockManager() *ItemLockManager {
	return &ItemLockManager{
		locks: make(map[string]*sync.Mutex),
	}
}

func (m *ItemLockManager) get(itemID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[itemID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[itemID] = lock
	}
	return lock
}

// Lock acquires the per-item mutex and returns the unlock function.
func (m *ItemLockManager) Lock(itemID string) func() {
	lock := m.get(itemID)
	lock.Lock()
	return lock.Unlock
}
