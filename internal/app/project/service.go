package project

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/apperr"
)

type Service interface {
	GetByID(id string) (*Project, error)
	// Default resolves the project all boundary operations fall back to
	// when no project id is given. The single-project assumption lives
	// here, not in the coordinator.
	Default() (*Project, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(id string) (*Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("project %s not found", id)
		}
		return nil, apperr.Storage("failed to load project", err)
	}
	return project, nil
}

func (s *service) Default() (*Project, error) {
	project, err := s.repo.First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Precondition("no project configured")
		}
		return nil, apperr.Storage("failed to load default project", err)
	}
	return project, nil
}
