package repositories

// The memory backend is the default store: keyed maps with incrementing
// counters, reset on every restart. Repositories guard their maps with an
// RWMutex since gin serves requests concurrently; within a single call the
// semantics stay synchronous.

import "sort"

// Memory bundles the in-memory repositories so the app (and the demo seed)
// can construct the whole store in one call.
type Memory struct {
	Users         *MemoryUserRepository
	Tasks         *MemoryTaskRepository
	Friends       *MemoryFriendRepository
	Notifications *MemoryNotificationRepository
	Groups        *MemoryGroupRepository
}

func NewMemory() *Memory {
	return &Memory{
		Users:         NewMemoryUserRepository(),
		Tasks:         NewMemoryTaskRepository(),
		Friends:       NewMemoryFriendRepository(),
		Notifications: NewMemoryNotificationRepository(),
		Groups:        NewMemoryGroupRepository(),
	}
}

func sortedIDs(ids []int64) []int64 {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
