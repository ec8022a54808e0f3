package repositories

import (
	"context"
	"database/sql"

	"github.com/chris-kelly1/WeDo/internal/models"
)

type FriendRepository interface {
	Store(ctx context.Context, friend *models.Friend) error
	FindByUser(ctx context.Context, userID int64) ([]models.Friend, error)
	// Delete removes the directed (userID, friendID) edge and reports whether
	// one existed.
	Delete(ctx context.Context, userID, friendID int64) (bool, error)
}

type friendRepository struct {
	db *sql.DB
}

func NewFriendRepository(db *sql.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Store(ctx context.Context, friend *models.Friend) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO friends (user_id, friend_id) VALUES ($1,$2)
		RETURNING id`,
		friend.UserID, friend.FriendID,
	).Scan(&friend.ID)
}

func (r *friendRepository) FindByUser(ctx context.Context, userID int64) ([]models.Friend, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, friend_id FROM friends WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friends []models.Friend
	for rows.Next() {
		var f models.Friend
		if err := rows.Scan(&f.ID, &f.UserID, &f.FriendID); err != nil {
			return nil, err
		}
		friends = append(friends, f)
	}
	return friends, rows.Err()
}

func (r *friendRepository) Delete(ctx context.Context, userID, friendID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM friends WHERE user_id = $1 AND friend_id = $2`, userID, friendID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
