package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/chris-kelly1/WeDo/internal/models"
)

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	FindByUser(ctx context.Context, userID int64) ([]models.Task, error)
	// FindByUserAndDate matches on the calendar day of dueDate, ignoring
	// time-of-day.
	FindByUserAndDate(ctx context.Context, userID int64, date time.Time) ([]models.Task, error)
	FindByGroup(ctx context.Context, groupID int64) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, user_id, title, description, due_date, due_time,
	priority, completed, private, group_id, created_at`

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (user_id, title, description, due_date, due_time,
			priority, completed, private, group_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Description, task.DueDate, task.DueTime,
		task.Priority, task.Completed, task.Private, task.GroupID, task.CreatedAt,
	).Scan(&task.ID)
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	task := &models.Task{}
	err := scanTask(row.Scan, task)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) FindByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *taskRepository) FindByUserAndDate(ctx context.Context, userID int64, date time.Time) ([]models.Task, error) {
	return r.query(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE user_id = $1 AND due_date::date = $2::date
		ORDER BY id`, userID, date)
}

func (r *taskRepository) FindByGroup(ctx context.Context, groupID int64) ([]models.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE group_id = $1 ORDER BY id`, groupID)
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks SET
			user_id=$1, title=$2, description=$3, due_date=$4, due_time=$5,
			priority=$6, completed=$7, private=$8, group_id=$9
		WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query,
		task.UserID, task.Title, task.Description, task.DueDate, task.DueTime,
		task.Priority, task.Completed, task.Private, task.GroupID, task.ID,
	)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *taskRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := scanTask(rows.Scan, &t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func scanTask(scan func(dest ...interface{}) error, t *models.Task) error {
	var description, dueTime sql.NullString
	var groupID sql.NullInt64
	err := scan(&t.ID, &t.UserID, &t.Title, &description, &t.DueDate, &dueTime,
		&t.Priority, &t.Completed, &t.Private, &groupID, &t.CreatedAt)
	if err != nil {
		return err
	}
	t.Description = description.String
	t.DueTime = dueTime.String
	if groupID.Valid {
		t.GroupID = &groupID.Int64
	}
	return nil
}
