package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
)

const dayFormat = "2006-01-02"

type MemoryTaskRepository struct {
	mu      sync.RWMutex
	tasks   map[int64]models.Task
	counter int64
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{tasks: make(map[int64]models.Task), counter: 1}
}

func (r *MemoryTaskRepository) Store(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.ID = r.counter
	r.counter++
	r.tasks[task.ID] = *task
	return nil
}

func (r *MemoryTaskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if task, ok := r.tasks[id]; ok {
		return &task, nil
	}
	return nil, nil
}

func (r *MemoryTaskRepository) FindByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	return r.filter(func(t models.Task) bool { return t.UserID == userID }), nil
}

func (r *MemoryTaskRepository) FindByUserAndDate(ctx context.Context, userID int64, date time.Time) ([]models.Task, error) {
	day := date.Format(dayFormat)
	return r.filter(func(t models.Task) bool {
		return t.UserID == userID && t.DueDate.Format(dayFormat) == day
	}), nil
}

func (r *MemoryTaskRepository) FindByGroup(ctx context.Context, groupID int64) ([]models.Task, error) {
	return r.filter(func(t models.Task) bool {
		return t.GroupID != nil && *t.GroupID == groupID
	}), nil
}

func (r *MemoryTaskRepository) Update(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = *task
	return nil
}

func (r *MemoryTaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

func (r *MemoryTaskRepository) filter(keep func(models.Task) bool) []models.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.tasks))
	for id, task := range r.tasks {
		if keep(task) {
			ids = append(ids, id)
		}
	}
	tasks := make([]models.Task, 0, len(ids))
	for _, id := range sortedIDs(ids) {
		tasks = append(tasks, r.tasks[id])
	}
	return tasks
}
