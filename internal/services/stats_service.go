package services

import (
	"context"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/repositories"
)

type StatsService interface {
	Today(ctx context.Context, userID int64) (*models.DailyStats, error)
}

type statsService struct {
	tasks repositories.TaskRepository
	users repositories.UserRepository
}

func NewStatsService(tasks repositories.TaskRepository, users repositories.UserRepository) StatsService {
	return &statsService{tasks: tasks, users: users}
}

// Today summarizes the user's tasks due on the server's current calendar day.
// An unknown user still gets stats, with streak 0.
func (s *statsService) Today(ctx context.Context, userID int64) (*models.DailyStats, error) {
	now := time.Now()
	tasks, err := s.tasks.FindByUserAndDate(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	stats := &models.DailyStats{
		Date:       now.Format("Monday, January 2"),
		TotalTasks: len(tasks),
	}
	for _, t := range tasks {
		if t.Completed {
			stats.CompletedTasks++
		}
	}
	stats.Progress = percent(stats.CompletedTasks, stats.TotalTasks)

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		stats.Streak = user.Streak
	}
	return stats, nil
}
