package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/repositories"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) NotifyUser(user models.User, text string) error {
	n.messages = append(n.messages, text)
	return nil
}

func TestReminderRunCreatesNotifications(t *testing.T) {
	ctx := context.Background()
	mem := repositories.NewMemory()
	notifier := &recordingNotifier{}
	service := NewReminderService(mem.Users, mem.Tasks, mem.Notifications, notifier)

	user := seedUser(t, mem, "busy", "Busy Person")
	idle := seedUser(t, mem, "idle", "Idle Person")

	now := time.Now()
	for _, task := range []models.Task{
		{UserID: user.ID, Title: "Call dentist", DueDate: now, DueTime: "14:30"},
		{UserID: user.ID, Title: "Pay rent", DueDate: now},
		{UserID: user.ID, Title: "Already done", DueDate: now, Completed: true},
		{UserID: user.ID, Title: "Next week", DueDate: now.AddDate(0, 0, 7)},
	} {
		task := task
		if err := mem.Tasks.Store(ctx, &task); err != nil {
			t.Fatalf("Store: %v", err)
		}
	}

	if err := service.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	notifications, err := mem.Notifications.FindByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("got %d reminders, want 2 (completed and future tasks skipped)", len(notifications))
	}
	for _, n := range notifications {
		if n.Type != models.NotificationReminder {
			t.Errorf("got type %q, want %q", n.Type, models.NotificationReminder)
		}
		if !strings.HasPrefix(n.Title, "Reminder: ") {
			t.Errorf("unexpected title %q", n.Title)
		}
	}

	// users with nothing pending get no notification and no push
	if other, _ := mem.Notifications.FindByUser(ctx, idle.ID); len(other) != 0 {
		t.Errorf("idle user received %d reminders, want 0", len(other))
	}
	if len(notifier.messages) != 1 {
		t.Fatalf("notifier called %d times, want 1", len(notifier.messages))
	}
	summary := notifier.messages[0]
	if !strings.Contains(summary, "Busy Person") || !strings.Contains(summary, "2 task(s)") {
		t.Errorf("summary missing name or count: %q", summary)
	}
	if !strings.Contains(summary, "Call dentist at 14:30") {
		t.Errorf("summary missing due time line: %q", summary)
	}
}

func TestReminderRunWithoutNotifier(t *testing.T) {
	ctx := context.Background()
	mem := repositories.NewMemory()
	service := NewReminderService(mem.Users, mem.Tasks, mem.Notifications, nil)

	user := seedUser(t, mem, "solo", "Solo")
	if err := mem.Tasks.Store(ctx, &models.Task{UserID: user.ID, Title: "x", DueDate: time.Now()}); err != nil {
		t.Fatalf("Store: %v", err)
	}

	if err := service.Run(ctx); err != nil {
		t.Fatalf("Run without notifier: %v", err)
	}
	notifications, _ := mem.Notifications.FindByUser(ctx, user.ID)
	if len(notifications) != 1 {
		t.Fatalf("got %d reminders, want 1", len(notifications))
	}
}
