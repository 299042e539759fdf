package board

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateColumns(columns []*Column) error
	ListColumns(projectID string) ([]*Column, error)
	FirstColumn(projectID string) (*Column, error)
	ColumnByID(id string) (*Column, error)
	ColumnByName(projectID, name string) (*Column, error)
	CardsInColumn(columnID string) ([]*Card, error)
	CardByContentItem(contentItemID string) (*Card, error)

	// PlaceCard relocates the item's card into the given column,
	// creating it when the item has none yet. Place-not-move keeps the
	// one-card-per-item invariant without a separate create path.
	PlaceCard(columnID, contentItemID string) (*Card, error)

	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateColumns(columns []*Column) error {
	for _, c := range columns {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
	}
	return r.db.Create(columns).Error
}

func (r *repository) ListColumns(projectID string) ([]*Column, error) {
	var columns []*Column
	err := r.db.
		Where("project_id = ?", projectID).
		Order("sort_order ASC").
		Find(&columns).Error
	return columns, err
}

func (r *repository) FirstColumn(projectID string) (*Column, error) {
	var column Column
	err := r.db.
		Where("project_id = ?", projectID).
		Order("sort_order ASC").
		First(&column).Error
	if err != nil {
		return nil, err
	}
	return &column, nil
}

func (r *repository) ColumnByID(id string) (*Column, error) {
	var column Column
	err := r.db.Where("id = ?", id).First(&column).Error
	if err != nil {
		return nil, err
	}
	return &column, nil
}

func (r *repository) ColumnByName(projectID, name string) (*Column, error) {
	var column Column
	err := r.db.
		Where("project_id = ? AND name = ?", projectID, name).
		First(&column).Error
	if err != nil {
		return nil, err
	}
	return &column, nil
}

func (r *repository) CardsInColumn(columnID string) ([]*Card, error) {
	var cards []*Card
	err := r.db.
		Where("column_id = ?", columnID).
		Order("sort_order ASC").
		Find(&cards).Error
	return cards, err
}

func (r *repository) CardByContentItem(contentItemID string) (*Card, error) {
	var card Card
	err := r.db.Where("content_item_id = ?", contentItemID).First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *repository) PlaceCard(columnID, contentItemID string) (*Card, error) {
	var card Card
	err := r.db.Where("content_item_id = ?", contentItemID).First(&card).Error
	switch {
	case err == nil:
		card.ColumnID = columnID
		card.Order = time.Now().UnixMilli()
		if err := r.db.Save(&card).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		card = Card{
			ID:            uuid.NewString(),
			ColumnID:      columnID,
			ContentItemID: contentItemID,
			Order:         time.Now().UnixMilli(),
		}
		if err := r.db.Create(&card).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &card, nil
}
