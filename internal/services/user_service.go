package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/repositories"
)

type UserService interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Search(ctx context.Context, query string) ([]models.User, error)
}

type userService struct {
	repo         repositories.UserRepository
	emailService EmailService
}

func NewUserService(repo repositories.UserRepository, emailService EmailService) UserService {
	return &userService{repo: repo, emailService: emailService}
}

// Create inserts a new account. The streak always starts at 0 regardless of
// input, and the password is stored exactly as supplied.
func (s *userService) Create(ctx context.Context, user *models.User) error {
	if strings.TrimSpace(user.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if existing, err := s.repo.FindByUsername(ctx, user.Username); err != nil {
		return err
	} else if existing != nil {
		return fmt.Errorf("username %q is taken", user.Username)
	}

	user.Streak = 0
	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			// warn but do not fail signup
			log.Printf("[user][create] welcome email to %s failed: %v", user.Email, err)
		}
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *userService) Search(ctx context.Context, query string) ([]models.User, error) {
	return s.repo.Search(ctx, query)
}
