package seeder

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/board"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/project"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/stage"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedProject(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

// seedProject creates the default project with its four fixed stage
// columns. Columns exist from seeding onward and are never created or
// deleted at runtime.
func (s *Seeder) seedProject() error {
	var count int64
	s.db.Model(&project.Project{}).Count(&count)
	if count > 0 {
		s.logger.Info("Project already exists, skipping seed")
		return nil
	}

	proj := project.Project{
		ID:   uuid.NewString(),
		Name: "Motion Cooking",
	}
	if err := s.db.Create(&proj).Error; err != nil {
		return err
	}

	columns := make([]*board.Column, 0, stage.Count)
	for i, name := range stage.ColumnNames() {
		columns = append(columns, &board.Column{
			ID:        uuid.NewString(),
			ProjectID: proj.ID,
			Name:      name,
			Order:     i + 1,
		})
	}
	if err := s.db.Create(&columns).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded default project",
		zap.String("project_id", proj.ID),
		zap.Int("columns", len(columns)),
	)
	return nil
}
