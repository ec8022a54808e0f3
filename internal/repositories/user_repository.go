package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/chris-kelly1/WeDo/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Search(ctx context.Context, query string) ([]models.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, password, email, name, avatar, streak`

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, email, name, avatar, streak)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		user.Username, user.Password, user.Email, user.Name, user.Avatar, user.Streak,
	).Scan(&user.ID)
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepository) Search(ctx context.Context, query string) ([]models.User, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE lower(username) LIKE $1 OR lower(name) LIKE $1
		ORDER BY id`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var avatar sql.NullString
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Email,
		&user.Name, &avatar, &user.Streak)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user.Avatar = avatar.String
	return user, nil
}

func collectUsers(rows *sql.Rows) ([]models.User, error) {
	var users []models.User
	for rows.Next() {
		var u models.User
		var avatar sql.NullString
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Email,
			&u.Name, &avatar, &u.Streak); err != nil {
			return nil, err
		}
		u.Avatar = avatar.String
		users = append(users, u)
	}
	return users, rows.Err()
}
