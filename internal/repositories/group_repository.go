package repositories

import (
	"context"
	"database/sql"

	"github.com/chris-kelly1/WeDo/internal/models"
)

type GroupRepository interface {
	StoreGroup(ctx context.Context, group *models.Group) error
	FindByID(ctx context.Context, id int64) (*models.Group, error)
	// FindByUser unions groups the user is a member of with groups the user
	// created, deduplicated by id. The creator is normally also a member, so
	// the union guards against data drift only.
	FindByUser(ctx context.Context, userID int64) ([]models.Group, error)
	StoreMember(ctx context.Context, member *models.GroupMember) error
	FindMembers(ctx context.Context, groupID int64) ([]models.GroupMember, error)
	DeleteMember(ctx context.Context, groupID, userID int64) (bool, error)
}

type groupRepository struct {
	db *sql.DB
}

func NewGroupRepository(db *sql.DB) GroupRepository {
	return &groupRepository{db: db}
}

const groupColumns = `id, name, description, goal_date, created_by, avatar, created_at`

func (r *groupRepository) StoreGroup(ctx context.Context, g *models.Group) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO groups (name, description, goal_date, created_by, avatar, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		g.Name, g.Description, g.GoalDate, g.CreatedBy, g.Avatar, g.CreatedAt,
	).Scan(&g.ID)
}

func (r *groupRepository) FindByID(ctx context.Context, id int64) (*models.Group, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE id = $1`, id)
	g := &models.Group{}
	var description, avatar sql.NullString
	err := row.Scan(&g.ID, &g.Name, &description, &g.GoalDate, &g.CreatedBy,
		&avatar, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g.Description = description.String
	g.Avatar = avatar.String
	return g, nil
}

func (r *groupRepository) FindByUser(ctx context.Context, userID int64) ([]models.Group, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+groupColumns+` FROM groups
		WHERE created_by = $1
		   OR id IN (SELECT group_id FROM group_members WHERE user_id = $1)
		ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		var description, avatar sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &description, &g.GoalDate,
			&g.CreatedBy, &avatar, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.Description = description.String
		g.Avatar = avatar.String
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *groupRepository) StoreMember(ctx context.Context, m *models.GroupMember) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO group_members (group_id, user_id, role, joined_at)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		m.GroupID, m.UserID, m.Role, m.JoinedAt,
	).Scan(&m.ID)
}

func (r *groupRepository) FindMembers(ctx context.Context, groupID int64) ([]models.GroupMember, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, group_id, user_id, role, joined_at FROM group_members
		WHERE group_id = $1
		ORDER BY id`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.GroupMember
	for rows.Next() {
		var m models.GroupMember
		if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *groupRepository) DeleteMember(ctx context.Context, groupID, userID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
