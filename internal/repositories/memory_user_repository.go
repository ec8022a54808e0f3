package repositories

import (
	"context"
	"strings"
	"sync"

	"github.com/chris-kelly1/WeDo/internal/models"
)

type MemoryUserRepository struct {
	mu      sync.RWMutex
	users   map[int64]models.User
	counter int64
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]models.User), counter: 1}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.counter
	r.counter++
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	users := make([]models.User, 0, len(ids))
	for _, id := range sortedIDs(ids) {
		users = append(users, r.users[id])
	}
	return users, nil
}

func (r *MemoryUserRepository) Search(ctx context.Context, query string) ([]models.User, error) {
	q := strings.ToLower(query)
	all, _ := r.FindAll(ctx)
	var users []models.User
	for _, user := range all {
		if strings.Contains(strings.ToLower(user.Username), q) ||
			strings.Contains(strings.ToLower(user.Name), q) {
			users = append(users, user)
		}
	}
	return users, nil
}
