package models

import "time"

type NotificationType string

const (
	NotificationReminder       NotificationType = "reminder"
	NotificationFriendActivity NotificationType = "friend_activity"
	NotificationSystem         NotificationType = "system"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
