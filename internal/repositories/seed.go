package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
)

// SeedDemoData loads the demo dataset into a fresh memory store: four users,
// Sophia following the other three, a day's worth of tasks for everyone and a
// few notifications. Friend task counts are chosen so the dashboard shows a
// spread of progress values (8/10, 6/12, 3/7 completed).
func (m *Memory) SeedDemoData(ctx context.Context) error {
	now := time.Now()

	users := []models.User{
		{Username: "sophia", Password: "password123", Email: "sophia@example.com", Name: "Sophia Chen", Streak: 4},
		{Username: "alex", Password: "password123", Email: "alex@example.com", Name: "Alex Johnson", Streak: 7},
		{Username: "maria", Password: "password123", Email: "maria@example.com", Name: "Maria Garcia", Streak: 3},
		{Username: "tyrone", Password: "password123", Email: "tyrone@example.com", Name: "Tyrone Williams", Streak: 5},
	}
	for i := range users {
		if err := m.Users.Create(ctx, &users[i]); err != nil {
			return err
		}
	}
	sophia, alex, maria, tyrone := users[0], users[1], users[2], users[3]

	for _, friendID := range []int64{alex.ID, maria.ID, tyrone.ID} {
		if err := m.Friends.Store(ctx, &models.Friend{UserID: sophia.ID, FriendID: friendID}); err != nil {
			return err
		}
	}

	sophiaTasks := []models.Task{
		{Title: "Review team updates", Description: "Go through daily updates from all team members", DueTime: "11:00", Priority: models.PriorityMedium, Completed: true},
		{Title: "Finish project presentation", Description: "Prepare slides and talking points for tomorrow's client meeting", DueTime: "17:00", Priority: models.PriorityHigh},
		{Title: "Schedule weekly planning session", Description: "Send calendar invites for next Monday's team planning", DueTime: "15:30", Priority: models.PriorityUrgent},
	}
	for i := range sophiaTasks {
		t := sophiaTasks[i]
		t.UserID = sophia.ID
		t.DueDate = now
		t.CreatedAt = now.Add(-time.Duration(i+1) * 12 * time.Hour)
		if err := m.Tasks.Store(ctx, &t); err != nil {
			return err
		}
	}
	// Pad Sophia's day out to 5 of 8 done.
	if err := m.seedDayTasks(ctx, sophia.ID, now, 5, 4, false); err != nil {
		return err
	}

	if err := m.seedDayTasks(ctx, alex.ID, now, 10, 8, true); err != nil {
		return err
	}
	if err := m.seedDayTasks(ctx, maria.ID, now, 12, 6, true); err != nil {
		return err
	}
	if err := m.seedDayTasks(ctx, tyrone.ID, now, 7, 3, true); err != nil {
		return err
	}

	notifications := []models.Notification{
		{Title: "Upcoming Task: Finish project presentation", Message: "Due in 30 minutes", Type: models.NotificationReminder, CreatedAt: now.Add(-30 * time.Minute)},
		{Title: "Maria completed 100% of her tasks today!", Message: "Great job Maria!", Type: models.NotificationFriendActivity, CreatedAt: now.Add(-2 * time.Hour)},
		{Title: "Reminder: Schedule weekly planning session", Message: "Task is due today", Type: models.NotificationReminder, CreatedAt: now.Add(-4 * time.Hour)},
	}
	for i := range notifications {
		notifications[i].UserID = sophia.ID
		if err := m.Notifications.Store(ctx, &notifications[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Memory) seedDayTasks(ctx context.Context, userID int64, day time.Time, total, completed int, varyPriority bool) error {
	for i := 0; i < total; i++ {
		priority := models.PriorityMedium
		if varyPriority {
			switch {
			case i%4 == 0:
				priority = models.PriorityHigh
			case i%3 == 0:
				priority = models.PriorityMedium
			default:
				priority = models.PriorityLow
			}
		}
		task := models.Task{
			UserID:    userID,
			Title:     fmt.Sprintf("Daily task %d", i+1),
			DueDate:   day,
			DueTime:   fmt.Sprintf("%02d:00", 9+i%8),
			Priority:  priority,
			Completed: i < completed,
			CreatedAt: day.Add(-time.Duration(i+1) * time.Hour),
		}
		if err := m.Tasks.Store(ctx, &task); err != nil {
			return err
		}
	}
	return nil
}
