package content

import (
	"strings"
	"time"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/stage"
)

// Item is the canonical record for a content piece moving through
// production. Status is kept consistent with the item's board card by
// the workflow coordinator; nothing else writes it.
type Item struct {
	ID              string       `json:"id" gorm:"primaryKey"`
	ProjectID       string       `json:"project_id" gorm:"not null;index"`
	Title           string       `json:"title" gorm:"not null"`
	Brief           string       `json:"brief"`
	Status          stage.Status `json:"status" gorm:"not null"`
	PlatformTargets string       `json:"platform_targets" gorm:"not null"`
	PlannedDate     *time.Time   `json:"planned_date,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Platforms splits the comma-joined platform_targets column.
func (i *Item) Platforms() []string {
	if i.PlatformTargets == "" {
		return nil
	}
	parts := strings.Split(i.PlatformTargets, ",")
	for idx := range parts {
		parts[idx] = strings.TrimSpace(parts[idx])
	}
	return parts
}

func JoinPlatforms(platforms []string) string {
	return strings.Join(platforms, ",")
}

// CaptionDraft holds the post text for one platform. At most one draft
// exists per (content item, platform) pair.
type CaptionDraft struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	ContentItemID string    `json:"content_item_id" gorm:"not null;uniqueIndex:idx_caption_item_platform"`
	Platform      string    `json:"platform" gorm:"not null;uniqueIndex:idx_caption_item_platform"`
	Text          string    `json:"text"`
	Hashtags      string    `json:"hashtags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Link is an external reference on an item, identified by its title
// tag (e.g. "Frame.io"). Upserts key on (content item, title).
type Link struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	ContentItemID string    `json:"content_item_id" gorm:"not null;index"`
	Title         string    `json:"title" gorm:"not null"`
	URL           string    `json:"url" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Item) TableName() string {
	return "content_items"
}

func (CaptionDraft) TableName() string {
	return "caption_drafts"
}

type CreateContentRequest struct {
	Title       string `json:"title" binding:"required"`
	Platform    string `json:"platform" binding:"required"`
	Brief       string `json:"brief"`
	PlannedDate string `json:"plannedDate"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateCaptionRequest struct {
	Caption  string `json:"caption" binding:"required"`
	Platform string `json:"platform"`
}

type UpdateFrameioRequest struct {
	URL string `json:"url" binding:"required"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
