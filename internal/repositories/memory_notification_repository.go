package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/chris-kelly1/WeDo/internal/models"
)

type MemoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications map[int64]models.Notification
	counter       int64
}

func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{
		notifications: make(map[int64]models.Notification),
		counter:       1,
	}
}

func (r *MemoryNotificationRepository) Store(ctx context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = r.counter
	r.counter++
	r.notifications[n.ID] = *n
	return nil
}

func (r *MemoryNotificationRepository) FindByUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var notifications []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (r *MemoryNotificationRepository) MarkRead(ctx context.Context, id int64) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	n.Read = true
	r.notifications[id] = n
	return &n, nil
}

func (r *MemoryNotificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notifications[id]; !ok {
		return false, nil
	}
	delete(r.notifications, id)
	return true, nil
}
