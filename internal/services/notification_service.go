package services

import (
	"context"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/repositories"
)

type NotificationService interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) (*models.Notification, error)
	MarkRead(ctx context.Context, id int64) (*models.Notification, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type notificationService struct {
	repo repositories.NotificationRepository
}

func NewNotificationService(repo repositories.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListByUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *notificationService) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	n.Read = false
	n.CreatedAt = time.Now()
	if err := s.repo.Store(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) (*models.Notification, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *notificationService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
