package repositories

import (
	"context"
	"sync"

	"github.com/chris-kelly1/WeDo/internal/models"
)

type MemoryGroupRepository struct {
	mu            sync.RWMutex
	groups        map[int64]models.Group
	members       map[int64]models.GroupMember
	groupCounter  int64
	memberCounter int64
}

func NewMemoryGroupRepository() *MemoryGroupRepository {
	return &MemoryGroupRepository{
		groups:        make(map[int64]models.Group),
		members:       make(map[int64]models.GroupMember),
		groupCounter:  1,
		memberCounter: 1,
	}
}

func (r *MemoryGroupRepository) StoreGroup(ctx context.Context, g *models.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g.ID = r.groupCounter
	r.groupCounter++
	r.groups[g.ID] = *g
	return nil
}

func (r *MemoryGroupRepository) FindByID(ctx context.Context, id int64) (*models.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if g, ok := r.groups[id]; ok {
		return &g, nil
	}
	return nil, nil
}

func (r *MemoryGroupRepository) FindByUser(ctx context.Context, userID int64) ([]models.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]bool)
	for _, m := range r.members {
		if m.UserID == userID {
			seen[m.GroupID] = true
		}
	}
	for id, g := range r.groups {
		if g.CreatedBy == userID {
			seen[id] = true
		}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		if _, ok := r.groups[id]; ok {
			ids = append(ids, id)
		}
	}
	groups := make([]models.Group, 0, len(ids))
	for _, id := range sortedIDs(ids) {
		groups = append(groups, r.groups[id])
	}
	return groups, nil
}

func (r *MemoryGroupRepository) StoreMember(ctx context.Context, m *models.GroupMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.memberCounter
	r.memberCounter++
	r.members[m.ID] = *m
	return nil
}

func (r *MemoryGroupRepository) FindMembers(ctx context.Context, groupID int64) ([]models.GroupMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.members))
	for id, m := range r.members {
		if m.GroupID == groupID {
			ids = append(ids, id)
		}
	}
	members := make([]models.GroupMember, 0, len(ids))
	for _, id := range sortedIDs(ids) {
		members = append(members, r.members[id])
	}
	return members, nil
}

func (r *MemoryGroupRepository) DeleteMember(ctx context.Context, groupID, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, m := range r.members {
		if m.GroupID == groupID && m.UserID == userID {
			delete(r.members, id)
			return true, nil
		}
	}
	return false, nil
}
