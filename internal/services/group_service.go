package services

import (
	"context"
	"math"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/repositories"
)

type GroupService interface {
	Create(ctx context.Context, group *models.Group) (*models.Group, error)
	GetByID(ctx context.Context, id int64) (*models.Group, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Group, error)
	Members(ctx context.Context, groupID int64) ([]models.GroupMemberInfo, error)
	Tasks(ctx context.Context, groupID int64) ([]models.Task, error)
	Progress(ctx context.Context, groupID int64) (*models.GroupProgress, error)
	AddMember(ctx context.Context, member *models.GroupMember) (*models.GroupMember, error)
	RemoveMember(ctx context.Context, groupID, userID int64) (bool, error)
}

type groupService struct {
	groups repositories.GroupRepository
	tasks  repositories.TaskRepository
	users  repositories.UserRepository
}

func NewGroupService(
	groups repositories.GroupRepository,
	tasks repositories.TaskRepository,
	users repositories.UserRepository,
) GroupService {
	return &groupService{groups: groups, tasks: tasks, users: users}
}

// Create stores the group and inserts its creator as an admin member.
func (s *groupService) Create(ctx context.Context, group *models.Group) (*models.Group, error) {
	group.CreatedAt = time.Now()
	if err := s.groups.StoreGroup(ctx, group); err != nil {
		return nil, err
	}
	creator := &models.GroupMember{
		GroupID:  group.ID,
		UserID:   group.CreatedBy,
		Role:     models.RoleAdmin,
		JoinedAt: group.CreatedAt,
	}
	if err := s.groups.StoreMember(ctx, creator); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	return s.groups.FindByID(ctx, id)
}

func (s *groupService) ListByUser(ctx context.Context, userID int64) ([]models.Group, error) {
	return s.groups.FindByUser(ctx, userID)
}

func (s *groupService) Members(ctx context.Context, groupID int64) ([]models.GroupMemberInfo, error) {
	members, err := s.groups.FindMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	infos := make([]models.GroupMemberInfo, 0, len(members))
	for _, m := range members {
		info := models.GroupMemberInfo{GroupMember: m}
		if user, err := s.users.FindByID(ctx, m.UserID); err != nil {
			return nil, err
		} else if user != nil {
			info.User = *user
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *groupService) Tasks(ctx context.Context, groupID int64) ([]models.Task, error) {
	return s.tasks.FindByGroup(ctx, groupID)
}

// Progress computes overall completion plus a per-member breakdown. A group
// task counts toward the member it is assigned to via Task.UserID.
func (s *groupService) Progress(ctx context.Context, groupID int64) (*models.GroupProgress, error) {
	tasks, err := s.tasks.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	members, err := s.groups.FindMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	progress := &models.GroupProgress{TotalTasks: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			progress.CompletedTasks++
		}
	}
	progress.Progress = percent(progress.CompletedTasks, progress.TotalTasks)

	progress.Members = make([]models.MemberProgress, 0, len(members))
	for _, m := range members {
		mp := models.MemberProgress{}
		if user, err := s.users.FindByID(ctx, m.UserID); err != nil {
			return nil, err
		} else if user != nil {
			mp.User = *user
		}
		for _, t := range tasks {
			if t.UserID == m.UserID {
				mp.TotalTasks++
				if t.Completed {
					mp.CompletedTasks++
				}
			}
		}
		mp.Progress = percent(mp.CompletedTasks, mp.TotalTasks)
		progress.Members = append(progress.Members, mp)
	}
	return progress, nil
}

func (s *groupService) AddMember(ctx context.Context, member *models.GroupMember) (*models.GroupMember, error) {
	if member.Role == "" {
		member.Role = models.RoleMember
	}
	member.JoinedAt = time.Now()
	if err := s.groups.StoreMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *groupService) RemoveMember(ctx context.Context, groupID, userID int64) (bool, error) {
	return s.groups.DeleteMember(ctx, groupID, userID)
}

func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
