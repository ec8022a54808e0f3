package services

import (
	"context"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/repositories"
)

type TaskService interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Task, error)
	ListByDate(ctx context.Context, userID int64, date time.Time) ([]models.Task, error)
	Update(ctx context.Context, id int64, update *models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type taskService struct {
	repo repositories.TaskRepository
}

func NewTaskService(repo repositories.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

// Create stores a task. Completed and CreatedAt are forced server-side; any
// client-supplied values for them are discarded.
func (s *taskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	task.Completed = false
	task.CreatedAt = time.Now()

	if err := s.repo.Store(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *taskService) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *taskService) ListByDate(ctx context.Context, userID int64, date time.Time) ([]models.Task, error) {
	return s.repo.FindByUserAndDate(ctx, userID, date)
}

// Update shallow-merges the provided fields over the stored record. Fields
// are merged as-is, without validation. Returns nil when the task is absent.
func (s *taskService) Update(ctx context.Context, id int64, update *models.TaskUpdate) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	if update.UserID != nil {
		task.UserID = *update.UserID
	}
	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.DueDate != nil {
		task.DueDate = *update.DueDate
	}
	if update.DueTime != nil {
		task.DueTime = *update.DueTime
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}
	if update.Private != nil {
		task.Private = *update.Private
	}
	if update.GroupID != nil {
		task.GroupID = update.GroupID
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
