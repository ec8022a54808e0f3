package repositories

import (
	"context"
	"database/sql"

	"github.com/chris-kelly1/WeDo/internal/models"
)

type NotificationRepository interface {
	Store(ctx context.Context, notification *models.Notification) error
	// FindByUser returns notifications newest first.
	FindByUser(ctx context.Context, userID int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id int64) (*models.Notification, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

const notificationColumns = `id, user_id, title, message, type, read, created_at`

func (r *notificationRepository) Store(ctx context.Context, n *models.Notification) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (user_id, title, message, type, read, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		n.UserID, n.Title, n.Message, n.Type, n.Read, n.CreatedAt,
	).Scan(&n.ID)
}

func (r *notificationRepository) FindByUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+notificationColumns+` FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		var message sql.NullString
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &message, &n.Type,
			&n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.Message = message.String
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64) (*models.Notification, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE notifications SET read = TRUE WHERE id = $1
		RETURNING `+notificationColumns, id)

	n := &models.Notification{}
	var message sql.NullString
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &message, &n.Type, &n.Read, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	n.Message = message.String
	return n, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
