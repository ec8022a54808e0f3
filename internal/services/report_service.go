package services

import (
	"context"
	"io"
	"time"

	"github.com/chris-kelly1/WeDo/internal/pdf"
	"github.com/chris-kelly1/WeDo/internal/repositories"
)

// ReportService renders a user's task list as a PDF.
type ReportService struct {
	users     repositories.UserRepository
	tasks     repositories.TaskRepository
	generator pdf.Generator
}

func NewReportService(users repositories.UserRepository, tasks repositories.TaskRepository, generator pdf.Generator) *ReportService {
	return &ReportService{users: users, tasks: tasks, generator: generator}
}

// WriteTaskReport streams the PDF to w. Returns false when the user does not
// exist (nothing is written in that case).
func (s *ReportService) WriteTaskReport(ctx context.Context, userID int64, w io.Writer) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	tasks, err := s.tasks.FindByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	data := pdf.ReportData{User: *user, Tasks: tasks, GeneratedAt: time.Now()}
	return true, s.generator.TaskReport(data, w)
}
