package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/repositories"
)

// progressDenominator fixes the friend progress calculation at "completed
// tasks out of 10". This is a product decision, not a bug: progress stays
// comparable across friends with different task counts and is capped at 100.
const progressDenominator = 10

type FriendService interface {
	ListWithProgress(ctx context.Context, userID int64) ([]models.FriendWithProgress, error)
	Potential(ctx context.Context, userID int64) ([]models.User, error)
	Add(ctx context.Context, friend *models.Friend) (*models.Friend, error)
	Remove(ctx context.Context, userID, friendID int64) (bool, error)
	Comparison(ctx context.Context, userID, friendID int64) (*models.FriendComparison, error)
}

type friendService struct {
	friends       repositories.FriendRepository
	users         repositories.UserRepository
	tasks         repositories.TaskRepository
	notifications repositories.NotificationRepository
}

func NewFriendService(
	friends repositories.FriendRepository,
	users repositories.UserRepository,
	tasks repositories.TaskRepository,
	notifications repositories.NotificationRepository,
) FriendService {
	return &friendService{friends: friends, users: users, tasks: tasks, notifications: notifications}
}

func (s *friendService) ListWithProgress(ctx context.Context, userID int64) ([]models.FriendWithProgress, error) {
	edges, err := s.friends.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.FriendWithProgress, 0, len(edges))
	for _, edge := range edges {
		friend, err := s.users.FindByID(ctx, edge.FriendID)
		if err != nil {
			return nil, err
		}
		if friend == nil {
			return nil, fmt.Errorf("friend %d not found", edge.FriendID)
		}

		tasks, err := s.tasks.FindByUser(ctx, edge.FriendID)
		if err != nil {
			return nil, err
		}
		completed := 0
		for _, t := range tasks {
			if t.Completed {
				completed++
			}
		}
		result = append(result, models.FriendWithProgress{
			User:     *friend,
			Progress: progressPercent(completed),
		})
	}
	return result, nil
}

// Potential returns every user that is neither the requester nor already a
// friend of the requester.
func (s *friendService) Potential(ctx context.Context, userID int64) ([]models.User, error) {
	edges, err := s.friends.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	known := map[int64]bool{userID: true}
	for _, edge := range edges {
		known[edge.FriendID] = true
	}

	all, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var potential []models.User
	for _, u := range all {
		if !known[u.ID] {
			potential = append(potential, u)
		}
	}
	return potential, nil
}

// Add inserts a directed edge and notifies the initiator. Duplicate edges are
// not rejected and the reverse edge is never created.
func (s *friendService) Add(ctx context.Context, friend *models.Friend) (*models.Friend, error) {
	if err := s.friends.Store(ctx, friend); err != nil {
		return nil, err
	}

	title := "You added a new friend"
	if f, err := s.users.FindByID(ctx, friend.FriendID); err == nil && f != nil {
		title = fmt.Sprintf("You are now friends with %s", f.Name)
	}
	notification := &models.Notification{
		UserID:    friend.UserID,
		Title:     title,
		Message:   "Compare your progress on the friends page",
		Type:      models.NotificationFriendActivity,
		CreatedAt: time.Now(),
	}
	if err := s.notifications.Store(ctx, notification); err != nil {
		return nil, err
	}
	return friend, nil
}

func (s *friendService) Remove(ctx context.Context, userID, friendID int64) (bool, error) {
	return s.friends.Delete(ctx, userID, friendID)
}

// Comparison aggregates both users' tasks. The friend's private tasks are
// excluded from their list and stats; the requesting user's own private tasks
// are included. The asymmetry is intentional: you always see all of your own
// work, a friend only sees what you share.
func (s *friendService) Comparison(ctx context.Context, userID, friendID int64) (*models.FriendComparison, error) {
	userTasks, err := s.tasks.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	friendAll, err := s.tasks.FindByUser(ctx, friendID)
	if err != nil {
		return nil, err
	}
	friendTasks := make([]models.Task, 0, len(friendAll))
	for _, t := range friendAll {
		if !t.Private {
			friendTasks = append(friendTasks, t)
		}
	}

	return &models.FriendComparison{
		UserTasks:   userTasks,
		FriendTasks: friendTasks,
		UserStats:   comparisonStats(userTasks),
		FriendStats: comparisonStats(friendTasks),
	}, nil
}

func comparisonStats(tasks []models.Task) models.ComparisonStats {
	stats := models.ComparisonStats{
		Total: len(tasks),
		ByPriority: map[string]int{
			string(models.PriorityLow):    0,
			string(models.PriorityMedium): 0,
			string(models.PriorityHigh):   0,
			string(models.PriorityUrgent): 0,
		},
	}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
			stats.ByPriority[string(t.Priority)]++
		}
	}
	return stats
}

func progressPercent(completed int) int {
	progress := int(math.Round(float64(completed) / progressDenominator * 100))
	if progress > 100 {
		progress = 100
	}
	return progress
}
