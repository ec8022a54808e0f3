package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/repositories"
)

// Notifier pushes a reminder to a user over an external channel. Implemented
// by the Telegram bot; nil when no channel is configured.
type Notifier interface {
	NotifyUser(user models.User, text string) error
}

// ReminderService turns each user's unfinished tasks for the day into
// in-app reminder notifications, optionally mirrored to a Notifier. Runs
// once per day from the scheduler.
type ReminderService struct {
	users         repositories.UserRepository
	tasks         repositories.TaskRepository
	notifications repositories.NotificationRepository
	notifier      Notifier
}

func NewReminderService(
	users repositories.UserRepository,
	tasks repositories.TaskRepository,
	notifications repositories.NotificationRepository,
	notifier Notifier,
) *ReminderService {
	return &ReminderService{users: users, tasks: tasks, notifications: notifications, notifier: notifier}
}

func (s *ReminderService) Run(ctx context.Context) error {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, user := range users {
		tasks, err := s.tasks.FindByUserAndDate(ctx, user.ID, now)
		if err != nil {
			return err
		}

		var pending []models.Task
		for _, t := range tasks {
			if !t.Completed {
				pending = append(pending, t)
			}
		}
		if len(pending) == 0 {
			continue
		}

		for _, t := range pending {
			n := &models.Notification{
				UserID:    user.ID,
				Title:     "Reminder: " + t.Title,
				Message:   "Task is due today",
				Type:      models.NotificationReminder,
				CreatedAt: now,
			}
			if err := s.notifications.Store(ctx, n); err != nil {
				return err
			}
		}

		if s.notifier != nil {
			if err := s.notifier.NotifyUser(user, dailySummary(user, pending, now)); err != nil {
				log.Printf("[reminder][notify] user=%d: %v", user.ID, err)
			}
		}
	}
	return nil
}

func dailySummary(user models.User, pending []models.Task, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s, you have %d task(s) left today (%s):\n",
		user.Name, len(pending), now.Format("Monday, January 2"))
	for _, t := range pending {
		line := "• " + t.Title
		if t.DueTime != "" {
			line += " at " + t.DueTime
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
