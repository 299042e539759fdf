// Package workflow owns every mutation that touches both the content
// store and the board store. An item's status and its card's column are
// two denormalized views of one stage; keeping them consistent is this
// package's single job, so no other component is allowed to write
// Item.Status or Card.ColumnID.
package workflow

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/apperr"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/board"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/content"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/stage"
	"github.com/ZenNoodz/Motioncookingcontent/internal/providers/redis"
)

// The Coordinator interface and its inputs are declared in the content
// package so the content and board handlers can depend on them without
// importing this package (which imports both of theirs). These aliases
// keep the workflow names canonical.
type CreateItemInput = content.CreateItemInput

type CreateCardInput = content.CreateCardInput

type Coordinator = content.Coordinator

type coordinator struct {
	db          *gorm.DB
	contentRepo content.Repository
	boardRepo   board.Repository
	redisP      *redis.RedisProvider
	logger      *zap.SugaredLogger
}

func NewCoordinator(db *gorm.DB, contentRepo content.Repository, boardRepo board.Repository, redisP *redis.RedisProvider, logger *zap.Logger) Coordinator {
	return &coordinator{
		db:          db,
		contentRepo: contentRepo,
		boardRepo:   boardRepo,
		redisP:      redisP,
		logger:      logger.Sugar(),
	}
}

func (c *coordinator) MoveCard(ctx context.Context, projectID, contentItemID, targetSlug string) error {
	columnName, ok := stage.ColumnNameForSlug(targetSlug)
	if !ok {
		return apperr.NotFound("column %q not found", targetSlug)
	}
	targetStatus, _ := stage.StatusForColumnName(columnName)

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		boardRepo := c.boardRepo.WithTx(tx)
		contentRepo := c.contentRepo.WithTx(tx)

		column, err := boardRepo.ColumnByName(projectID, columnName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("column %q not found", targetSlug)
			}
			return apperr.Storage("failed to resolve target column", err)
		}

		if _, err := contentRepo.GetByID(contentItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("content item %s not found", contentItemID)
			}
			return apperr.Storage("failed to load content item", err)
		}

		if _, err := boardRepo.PlaceCard(column.ID, contentItemID); err != nil {
			return apperr.Storage("failed to place card", err)
		}

		if err := contentRepo.UpdateStatus(contentItemID, targetStatus); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("content item %s not found", contentItemID)
			}
			return apperr.Storage("failed to update status", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.logger.Infow("Card moved",
		"content_item_id", contentItemID,
		"column", columnName,
		"status", targetStatus,
	)
	return c.invalidateBoardCache(ctx, projectID)
}

func (c *coordinator) ChangeStatus(ctx context.Context, projectID, contentItemID string, status stage.Status) (*content.Item, error) {
	if !stage.IsValid(status) {
		return nil, apperr.Validation("unknown status %q", status)
	}
	columnName, _ := stage.ColumnNameForStatus(status)

	var item *content.Item
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		boardRepo := c.boardRepo.WithTx(tx)
		contentRepo := c.contentRepo.WithTx(tx)

		if err := contentRepo.UpdateStatus(contentItemID, status); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("content item %s not found", contentItemID)
			}
			return apperr.Storage("failed to update status", err)
		}

		column, err := boardRepo.ColumnByName(projectID, columnName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Precondition("project %s has no %q column", projectID, columnName)
			}
			return apperr.Storage("failed to resolve column", err)
		}

		if _, err := boardRepo.PlaceCard(column.ID, contentItemID); err != nil {
			return apperr.Storage("failed to place card", err)
		}

		item, err = contentRepo.GetByID(contentItemID)
		if err != nil {
			return apperr.Storage("failed to reload content item", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Infow("Status changed",
		"content_item_id", contentItemID,
		"status", status,
		"column", columnName,
	)
	if err := c.invalidateBoardCache(ctx, projectID); err != nil {
		return nil, err
	}
	return item, nil
}

func (c *coordinator) CreateContentItem(ctx context.Context, projectID string, in CreateItemInput) (*content.Item, error) {
	if err := validateItemInput(in.Title, in.Platforms); err != nil {
		return nil, err
	}

	var item *content.Item
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		boardRepo := c.boardRepo.WithTx(tx)
		contentRepo := c.contentRepo.WithTx(tx)

		firstColumn, err := boardRepo.FirstColumn(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Precondition("project %s has no columns configured", projectID)
			}
			return apperr.Storage("failed to resolve first column", err)
		}

		item = &content.Item{
			ProjectID:       projectID,
			Title:           strings.TrimSpace(in.Title),
			Brief:           in.Brief,
			Status:          stage.StatusNew,
			PlatformTargets: content.JoinPlatforms(in.Platforms),
			PlannedDate:     in.PlannedDate,
		}
		if err := contentRepo.Create(item); err != nil {
			return apperr.Storage("failed to create content item", err)
		}

		if _, err := boardRepo.PlaceCard(firstColumn.ID, item.ID); err != nil {
			return apperr.Storage("failed to place card", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Infow("Content item created",
		"content_item_id", item.ID,
		"title", item.Title,
		"project_id", projectID,
	)
	if err := c.invalidateBoardCache(ctx, projectID); err != nil {
		return nil, err
	}
	return item, nil
}

func (c *coordinator) CreateCard(ctx context.Context, projectID string, in CreateCardInput) (*content.Item, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("title must not be empty")
	}
	columnName, ok := stage.ColumnNameForSlug(in.ColumnSlug)
	if !ok {
		return nil, apperr.NotFound("column %q not found", in.ColumnSlug)
	}
	status, _ := stage.StatusForColumnName(columnName)

	var item *content.Item
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		boardRepo := c.boardRepo.WithTx(tx)
		contentRepo := c.contentRepo.WithTx(tx)

		column, err := boardRepo.ColumnByName(projectID, columnName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("column %q not found", in.ColumnSlug)
			}
			return apperr.Storage("failed to resolve column", err)
		}

		item = &content.Item{
			ProjectID:       projectID,
			Title:           strings.TrimSpace(in.Title),
			Brief:           in.Description,
			Status:          status,
			PlatformTargets: "instagram",
			PlannedDate:     in.DueDate,
		}
		if err := contentRepo.Create(item); err != nil {
			return apperr.Storage("failed to create content item", err)
		}

		if _, err := boardRepo.PlaceCard(column.ID, item.ID); err != nil {
			return apperr.Storage("failed to place card", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Infow("Card created",
		"content_item_id", item.ID,
		"column", columnName,
		"status", status,
	)
	if err := c.invalidateBoardCache(ctx, projectID); err != nil {
		return nil, err
	}
	return item, nil
}

// invalidateBoardCache drops the cached board projection after a
// committed mutation. A failure here means the stores are consistent
// but readers may see a stale board until the TTL expires, so it is
// surfaced as a partial failure: callers should re-fetch instead of
// trusting optimistic local state.
func (c *coordinator) invalidateBoardCache(ctx context.Context, projectID string) error {
	if c.redisP == nil {
		return nil
	}
	if err := c.redisP.Del(ctx, board.CacheKey(projectID)).Err(); err != nil {
		c.logger.Warnw("Failed to invalidate board cache", "project_id", projectID, "error", err)
		return apperr.Partial("mutation applied but board projection may be stale", err)
	}
	return nil
}

func validateItemInput(title string, platforms []string) error {
	if strings.TrimSpace(title) == "" {
		return apperr.Validation("title must not be empty")
	}
	for _, p := range platforms {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "instagram", "youtube":
		default:
			return apperr.Validation("unknown platform %q", p)
		}
	}
	return nil
}
