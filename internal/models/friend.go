package models

// Friend is a directed edge: userId follows friendId. A reverse edge is not
// implied and never inserted automatically.
type Friend struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"userId"`
	FriendID int64 `json:"friendId"`
}

// FriendWithProgress is a friend's user record augmented with a synthetic
// completion percentage (completed tasks out of a fixed 10, capped at 100).
type FriendWithProgress struct {
	User
	Progress int `json:"progress"`
}

// ComparisonStats summarizes one side of a friend comparison. ByPriority
// counts completed tasks per priority, not totals.
type ComparisonStats struct {
	Completed  int            `json:"completed"`
	Total      int            `json:"total"`
	ByPriority map[string]int `json:"byPriority"`
}

// FriendComparison holds both users' task lists and stats. The friend's side
// excludes private tasks; the requesting user's own side does not.
type FriendComparison struct {
	UserTasks   []Task          `json:"userTasks"`
	FriendTasks []Task          `json:"friendTasks"`
	UserStats   ComparisonStats `json:"userStats"`
	FriendStats ComparisonStats `json:"friendStats"`
}
