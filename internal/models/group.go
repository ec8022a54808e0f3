package models

import "time"

type GroupRole string

const (
	RoleMember GroupRole = "member"
	RoleAdmin  GroupRole = "admin"
)

// Group is a shared task list working toward a goal date. Creating a group
// also inserts its creator as an admin member.
type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	GoalDate    time.Time `json:"goalDate"`
	CreatedBy   int64     `json:"createdBy"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type GroupMember struct {
	ID       int64     `json:"id"`
	GroupID  int64     `json:"groupId"`
	UserID   int64     `json:"userId"`
	Role     GroupRole `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// GroupMemberInfo is a membership row joined with the member's user record.
type GroupMemberInfo struct {
	GroupMember
	User User `json:"user"`
}

// MemberProgress is one member's share of the group's tasks, where a task
// counts toward the member it is assigned to via Task.UserID.
type MemberProgress struct {
	User           User `json:"user"`
	TotalTasks     int  `json:"totalTasks"`
	CompletedTasks int  `json:"completedTasks"`
	Progress       int  `json:"progress"`
}

type GroupProgress struct {
	TotalTasks     int              `json:"totalTasks"`
	CompletedTasks int              `json:"completedTasks"`
	Progress       int              `json:"progress"`
	Members        []MemberProgress `json:"members"`
}
