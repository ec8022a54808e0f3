package repositories

import (
	"context"
	"sync"

	"github.com/chris-kelly1/WeDo/internal/models"
)

type MemoryFriendRepository struct {
	mu      sync.RWMutex
	friends map[int64]models.Friend
	counter int64
}

func NewMemoryFriendRepository() *MemoryFriendRepository {
	return &MemoryFriendRepository{friends: make(map[int64]models.Friend), counter: 1}
}

func (r *MemoryFriendRepository) Store(ctx context.Context, friend *models.Friend) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	friend.ID = r.counter
	r.counter++
	r.friends[friend.ID] = *friend
	return nil
}

func (r *MemoryFriendRepository) FindByUser(ctx context.Context, userID int64) ([]models.Friend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.friends))
	for id, f := range r.friends {
		if f.UserID == userID {
			ids = append(ids, id)
		}
	}
	friends := make([]models.Friend, 0, len(ids))
	for _, id := range sortedIDs(ids) {
		friends = append(friends, r.friends[id])
	}
	return friends, nil
}

func (r *MemoryFriendRepository) Delete(ctx context.Context, userID, friendID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, f := range r.friends {
		if f.UserID == userID && f.FriendID == friendID {
			delete(r.friends, id)
			return true, nil
		}
	}
	return false, nil
}
