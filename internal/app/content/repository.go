package content

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/stage"
)

type Repository interface {
	Create(item *Item) error
	GetByID(id string) (*Item, error)
	ListByProject(projectID string) ([]*Item, error)
	UpdateStatus(id string, status stage.Status) error
	UpsertCaption(contentItemID, platform, text, hashtags string) (*CaptionDraft, error)
	UpsertLink(contentItemID, title, url string) (*Link, error)
	CaptionsByItemIDs(itemIDs []string) ([]*CaptionDraft, error)
	LinksByItemIDs(itemIDs []string) ([]*Link, error)

	// WithTx returns a repository bound to the given transaction so the
	// coordinator can run multi-store writes atomically.
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

func (r *repository) Create(item *Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return r.db.Create(item).Error
}

func (r *repository) GetByID(id string) (*Item, error) {
	var item Item
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) ListByProject(projectID string) ([]*Item, error) {
	var items []*Item
	err := r.db.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) UpdateStatus(id string, status stage.Status) error {
	result := r.db.Model(&Item{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UpsertCaption(contentItemID, platform, text, hashtags string) (*CaptionDraft, error) {
	var draft CaptionDraft
	err := r.db.
		Where("content_item_id = ? AND platform = ?", contentItemID, platform).
		First(&draft).Error
	switch {
	case err == nil:
		draft.Text = text
		draft.Hashtags = hashtags
		if err := r.db.Save(&draft).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		draft = CaptionDraft{
			ID:            uuid.NewString(),
			ContentItemID: contentItemID,
			Platform:      platform,
			Text:          text,
			Hashtags:      hashtags,
		}
		if err := r.db.Create(&draft).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &draft, nil
}

func (r *repository) UpsertLink(contentItemID, title, url string) (*Link, error) {
	var link Link
	err := r.db.
		Where("content_item_id = ? AND title = ?", contentItemID, title).
		First(&link).Error
	switch {
	case err == nil:
		link.URL = url
		if err := r.db.Save(&link).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		link = Link{
			ID:            uuid.NewString(),
			ContentItemID: contentItemID,
			Title:         title,
			URL:           url,
		}
		if err := r.db.Create(&link).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &link, nil
}

func (r *repository) CaptionsByItemIDs(itemIDs []string) ([]*CaptionDraft, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var drafts []*CaptionDraft
	err := r.db.Where("content_item_id IN ?", itemIDs).Find(&drafts).Error
	return drafts, err
}

func (r *repository) LinksByItemIDs(itemIDs []string) ([]*Link, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var links []*Link
	err := r.db.Where("content_item_id IN ?", itemIDs).Find(&links).Error
	return links, err
}
