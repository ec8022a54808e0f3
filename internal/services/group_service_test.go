package services

import (
	"context"
	"testing"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/repositories"
)

func TestGroupCreateAddsCreatorAsAdmin(t *testing.T) {
	ctx := context.Background()
	mem := repositories.NewMemory()
	service := NewGroupService(mem.Groups, mem.Tasks, mem.Users)

	creator := seedUser(t, mem, "creator", "The Creator")
	group, err := service.Create(ctx, &models.Group{
		Name:      "Marathon training",
		GoalDate:  time.Now().AddDate(0, 3, 0),
		CreatedBy: creator.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	members, err := service.Members(ctx, group.ID)
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("got %d members, want the creator", len(members))
	}
	if members[0].UserID != creator.ID || members[0].Role != models.RoleAdmin {
		t.Errorf("creator membership = %+v, want admin role", members[0].GroupMember)
	}
	if members[0].User.Username != "creator" {
		t.Errorf("member info missing joined user record: %+v", members[0])
	}
}

func TestGroupAddMemberDefaultsRole(t *testing.T) {
	ctx := context.Background()
	mem := repositories.NewMemory()
	service := NewGroupService(mem.Groups, mem.Tasks, mem.Users)

	member, err := service.AddMember(ctx, &models.GroupMember{GroupID: 1, UserID: 7})
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if member.Role != models.RoleMember {
		t.Errorf("got role %q, want %q", member.Role, models.RoleMember)
	}
	if member.JoinedAt.IsZero() {
		t.Error("JoinedAt was not set")
	}
}

func TestGroupProgressPerMember(t *testing.T) {
	ctx := context.Background()
	mem := repositories.NewMemory()
	service := NewGroupService(mem.Groups, mem.Tasks, mem.Users)

	alice := seedUser(t, mem, "alice", "Alice")
	bob := seedUser(t, mem, "bob", "Bob")

	group, err := service.Create(ctx, &models.Group{Name: "Launch", GoalDate: time.Now(), CreatedBy: alice.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := service.AddMember(ctx, &models.GroupMember{GroupID: group.ID, UserID: bob.ID}); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	for _, task := range []models.Task{
		{UserID: alice.ID, Title: "spec", Completed: true},
		{UserID: alice.ID, Title: "design", Completed: true},
		{UserID: bob.ID, Title: "build"},
		{UserID: bob.ID, Title: "deploy"},
	} {
		task := task
		task.GroupID = &group.ID
		task.DueDate = time.Now()
		if err := mem.Tasks.Store(ctx, &task); err != nil {
			t.Fatalf("Store: %v", err)
		}
	}
	// a personal task outside the group must not count
	if err := mem.Tasks.Store(ctx, &models.Task{UserID: alice.ID, Title: "groceries", DueDate: time.Now()}); err != nil {
		t.Fatalf("Store: %v", err)
	}

	progress, err := service.Progress(ctx, group.ID)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if progress.TotalTasks != 4 || progress.CompletedTasks != 2 || progress.Progress != 50 {
		t.Fatalf("overall = %d/%d (%d%%), want 2/4 (50%%)",
			progress.CompletedTasks, progress.TotalTasks, progress.Progress)
	}
	if len(progress.Members) != 2 {
		t.Fatalf("got %d member breakdowns, want 2", len(progress.Members))
	}
	for _, mp := range progress.Members {
		switch mp.User.ID {
		case alice.ID:
			if mp.CompletedTasks != 2 || mp.TotalTasks != 2 || mp.Progress != 100 {
				t.Errorf("alice = %+v, want 2/2 100%%", mp)
			}
		case bob.ID:
			if mp.CompletedTasks != 0 || mp.TotalTasks != 2 || mp.Progress != 0 {
				t.Errorf("bob = %+v, want 0/2 0%%", mp)
			}
		default:
			t.Errorf("unexpected member %d", mp.User.ID)
		}
	}
}

func TestGroupProgressEmptyGroup(t *testing.T) {
	ctx := context.Background()
	mem := repositories.NewMemory()
	service := NewGroupService(mem.Groups, mem.Tasks, mem.Users)

	progress, err := service.Progress(ctx, 42)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if progress.Progress != 0 || progress.TotalTasks != 0 {
		t.Errorf("empty group progress = %+v, want zeros", progress)
	}
}
