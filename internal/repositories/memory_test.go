package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
)

func TestMemoryTaskFindByUserAndDate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepository()

	today := time.Date(2026, 8, 31, 23, 50, 0, 0, time.Local)
	sameDayMorning := time.Date(2026, 8, 31, 0, 5, 0, 0, time.Local)
	tomorrow := today.AddDate(0, 0, 1)

	for _, task := range []models.Task{
		{UserID: 1, Title: "late tonight", DueDate: today},
		{UserID: 1, Title: "early today", DueDate: sameDayMorning},
		{UserID: 1, Title: "tomorrow", DueDate: tomorrow},
		{UserID: 2, Title: "someone else", DueDate: today},
	} {
		task := task
		if err := repo.Store(ctx, &task); err != nil {
			t.Fatalf("Store: %v", err)
		}
	}

	tasks, err := repo.FindByUserAndDate(ctx, 1, today)
	if err != nil {
		t.Fatalf("FindByUserAndDate: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2 (day match must ignore time-of-day)", len(tasks))
	}
	for _, task := range tasks {
		if task.Title == "tomorrow" || task.Title == "someone else" {
			t.Errorf("unexpected task %q in day filter", task.Title)
		}
	}
}

func TestMemoryNotificationsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryNotificationRepository()

	base := time.Now()
	for i, age := range []time.Duration{4 * time.Hour, 30 * time.Minute, 2 * time.Hour} {
		n := &models.Notification{
			UserID:    1,
			Title:     []string{"oldest", "newest", "middle"}[i],
			Type:      models.NotificationSystem,
			CreatedAt: base.Add(-age),
		}
		if err := repo.Store(ctx, n); err != nil {
			t.Fatalf("Store: %v", err)
		}
	}

	notifications, err := repo.FindByUser(ctx, 1)
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	want := []string{"newest", "middle", "oldest"}
	if len(notifications) != len(want) {
		t.Fatalf("got %d notifications, want %d", len(notifications), len(want))
	}
	for i, title := range want {
		if notifications[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, notifications[i].Title, title)
		}
	}
}

func TestMemoryUserSearch(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	for _, u := range []models.User{
		{Username: "sophia", Name: "Sophia Chen"},
		{Username: "alex", Name: "Alex Johnson"},
		{Username: "maria", Name: "Maria Garcia"},
	} {
		u := u
		if err := repo.Create(ctx, &u); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	users, err := repo.Search(ctx, "SOPH")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(users) != 1 || users[0].Username != "sophia" {
		t.Fatalf("search by username fragment: got %v", users)
	}

	users, err = repo.Search(ctx, "garcia")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(users) != 1 || users[0].Username != "maria" {
		t.Fatalf("search by display name: got %v", users)
	}
}

func TestMemoryGroupFindByUserUnion(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGroupRepository()

	created := &models.Group{Name: "created only", CreatedBy: 1}
	if err := repo.StoreGroup(ctx, created); err != nil {
		t.Fatalf("StoreGroup: %v", err)
	}
	both := &models.Group{Name: "created and member", CreatedBy: 1}
	if err := repo.StoreGroup(ctx, both); err != nil {
		t.Fatalf("StoreGroup: %v", err)
	}
	if err := repo.StoreMember(ctx, &models.GroupMember{GroupID: both.ID, UserID: 1, Role: models.RoleAdmin}); err != nil {
		t.Fatalf("StoreMember: %v", err)
	}
	other := &models.Group{Name: "member only", CreatedBy: 2}
	if err := repo.StoreGroup(ctx, other); err != nil {
		t.Fatalf("StoreGroup: %v", err)
	}
	if err := repo.StoreMember(ctx, &models.GroupMember{GroupID: other.ID, UserID: 1}); err != nil {
		t.Fatalf("StoreMember: %v", err)
	}

	groups, err := repo.FindByUser(ctx, 1)
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	// the created-and-member group must not be duplicated by the union
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3: %v", len(groups), groups)
	}
}

func TestMemoryFriendDeleteDirected(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFriendRepository()

	if err := repo.Store(ctx, &models.Friend{UserID: 1, FriendID: 2}); err != nil {
		t.Fatalf("Store: %v", err)
	}

	// reverse direction does not exist
	removed, err := repo.Delete(ctx, 2, 1)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed {
		t.Fatal("deleting the reverse edge should report false")
	}

	removed, err = repo.Delete(ctx, 1, 2)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Fatal("deleting the stored edge should report true")
	}
}
