package project

import "gorm.io/gorm"

type Repository interface {
	GetByID(id string) (*Project, error)
	First() (*Project, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(id string) (*Project, error) {
	var project Project
	err := r.db.Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *repository) First() (*Project, error) {
	var project Project
	err := r.db.Order("created_at ASC").First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}
