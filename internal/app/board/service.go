package board

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/apperr"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/content"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/projection"
	"github.com/ZenNoodz/Motioncookingcontent/internal/providers/redis"
)

type Service interface {
	// BoardView returns the column-partitioned projection for a
	// project, served from the redis cache when warm.
	BoardView(ctx context.Context, projectID string) ([]projection.BoardColumnView, error)
	ListColumns(ctx context.Context, projectID string) ([]*Column, error)
}

type service struct {
	repo        Repository
	contentRepo content.Repository
	redisP      *redis.RedisProvider
	logger      *zap.SugaredLogger
	cachePrefix string
}

func NewService(repo Repository, contentRepo content.Repository, redisP *redis.RedisProvider, logger *zap.Logger) Service {
	return &service{
		repo:        repo,
		contentRepo: contentRepo,
		redisP:      redisP,
		logger:      logger.Sugar(),
		cachePrefix: "board:view",
	}
}

// CacheKey is the redis key the board projection of a project is
// cached under. The workflow coordinator deletes it on every mutation.
func CacheKey(projectID string) string {
	return fmt.Sprintf("board:view:%s", projectID)
}

func (s *service) BoardView(ctx context.Context, projectID string) ([]projection.BoardColumnView, error) {
	if s.redisP != nil {
		cached, err := s.redisP.Get(ctx, CacheKey(projectID)).Result()
		if err == nil && cached != "" {
			var views []projection.BoardColumnView
			if err := json.Unmarshal([]byte(cached), &views); err == nil {
				return views, nil
			}
			s.logger.Warnw("Failed to decode cached board view, falling back to DB", "project_id", projectID)
		}
	}

	columns, err := s.repo.ListColumns(projectID)
	if err != nil {
		return nil, apperr.Storage("failed to load board columns", err)
	}

	columnSources := make([]projection.ColumnSource, 0, len(columns))
	cardsByColumn := make(map[string][]projection.CardSource, len(columns))
	for _, col := range columns {
		columnSources = append(columnSources, projection.ColumnSource{ID: col.ID, Name: col.Name})
		cards, err := s.repo.CardsInColumn(col.ID)
		if err != nil {
			return nil, apperr.Storage("failed to load cards", err)
		}
		for _, card := range cards {
			cardsByColumn[col.ID] = append(cardsByColumn[col.ID], projection.CardSource{
				ColumnID:      card.ColumnID,
				ContentItemID: card.ContentItemID,
			})
		}
	}

	items, err := s.contentRepo.ListByProject(projectID)
	if err != nil {
		return nil, apperr.Storage("failed to load content items", err)
	}
	itemsByID := make(map[string]projection.ItemSource, len(items))
	for _, item := range items {
		itemsByID[item.ID] = projection.ItemSource{
			ID:          item.ID,
			Title:       item.Title,
			Brief:       item.Brief,
			Status:      item.Status,
			Platforms:   item.Platforms(),
			PlannedDate: item.PlannedDate,
			CreatedAt:   item.CreatedAt,
		}
	}

	views := projection.BoardView(columnSources, cardsByColumn, itemsByID)

	if s.redisP != nil {
		payload, err := json.Marshal(views)
		if err == nil {
			if err := s.redisP.SetWithDefaultTTL(ctx, CacheKey(projectID), payload, 0).Err(); err != nil {
				s.logger.Warnw("Failed to cache board view", "project_id", projectID, "error", err)
			}
		}
	}

	return views, nil
}

func (s *service) ListColumns(ctx context.Context, projectID string) ([]*Column, error) {
	columns, err := s.repo.ListColumns(projectID)
	if err != nil {
		return nil, apperr.Storage("failed to load board columns", err)
	}
	return columns, nil
}
