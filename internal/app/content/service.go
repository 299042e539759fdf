package content

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/apperr"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/projection"
)

// FrameioLinkTitle tags the review-tool link the UI edits directly.
const FrameioLinkTitle = "Frame.io"

type Service interface {
	ListView(ctx context.Context, projectID string, page, limit int) ([]projection.ListItemView, projection.Pagination, error)
	Calendar(ctx context.Context, projectID string, year int, month time.Month) (map[int][]projection.ListItemView, error)
	UpsertCaption(ctx context.Context, contentItemID, platform, text, hashtags string) (*CaptionDraft, error)
	UpsertLink(ctx context.Context, contentItemID, title, url string) (*Link, error)
}

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.Sugar(),
	}
}

func (s *service) ListView(ctx context.Context, projectID string, page, limit int) ([]projection.ListItemView, projection.Pagination, error) {
	sources, err := s.itemSources(projectID)
	if err != nil {
		return nil, projection.Pagination{}, err
	}
	views, pagination := projection.Paginate(projection.ListView(sources), page, limit)
	return views, pagination, nil
}

func (s *service) Calendar(ctx context.Context, projectID string, year int, month time.Month) (map[int][]projection.ListItemView, error) {
	sources, err := s.itemSources(projectID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int][]projection.ListItemView)
	for day, items := range projection.GroupByPlannedDate(sources, year, month) {
		byDay[day] = projection.ListView(items)
	}
	return byDay, nil
}

func (s *service) UpsertCaption(ctx context.Context, contentItemID, platform, text, hashtags string) (*CaptionDraft, error) {
	platform = strings.ToLower(strings.TrimSpace(platform))
	if platform == "" {
		platform = "instagram"
	}
	if !validPlatform(platform) {
		return nil, apperr.Validation("unknown platform %q", platform)
	}

	if err := s.ensureItemExists(contentItemID); err != nil {
		return nil, err
	}

	draft, err := s.repo.UpsertCaption(contentItemID, platform, text, hashtags)
	if err != nil {
		return nil, apperr.Storage("failed to save caption draft", err)
	}
	return draft, nil
}

func (s *service) UpsertLink(ctx context.Context, contentItemID, title, url string) (*Link, error) {
	if strings.TrimSpace(url) == "" {
		return nil, apperr.Validation("url must not be empty")
	}

	if err := s.ensureItemExists(contentItemID); err != nil {
		return nil, err
	}

	link, err := s.repo.UpsertLink(contentItemID, title, url)
	if err != nil {
		return nil, apperr.Storage("failed to save link", err)
	}
	return link, nil
}

func (s *service) ensureItemExists(contentItemID string) error {
	if _, err := s.repo.GetByID(contentItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("content item %s not found", contentItemID)
		}
		return apperr.Storage("failed to load content item", err)
	}
	return nil
}

// itemSources loads the project's items with captions and links joined
// into the projection input shape.
func (s *service) itemSources(projectID string) ([]projection.ItemSource, error) {
	items, err := s.repo.ListByProject(projectID)
	if err != nil {
		return nil, apperr.Storage("failed to load content items", err)
	}

	itemIDs := make([]string, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	captions, err := s.repo.CaptionsByItemIDs(itemIDs)
	if err != nil {
		return nil, apperr.Storage("failed to load caption drafts", err)
	}
	links, err := s.repo.LinksByItemIDs(itemIDs)
	if err != nil {
		return nil, apperr.Storage("failed to load links", err)
	}

	captionByItem := make(map[string]string)
	for _, c := range captions {
		if c.Platform == "instagram" {
			captionByItem[c.ContentItemID] = c.Text
		}
	}
	linkByItem := make(map[string]string)
	for _, l := range links {
		if l.Title == FrameioLinkTitle {
			linkByItem[l.ContentItemID] = l.URL
		}
	}

	sources := make([]projection.ItemSource, 0, len(items))
	for _, item := range items {
		sources = append(sources, projection.ItemSource{
			ID:          item.ID,
			Title:       item.Title,
			Brief:       item.Brief,
			Status:      item.Status,
			Platforms:   item.Platforms(),
			PlannedDate: item.PlannedDate,
			CreatedAt:   item.CreatedAt,
			Caption:     captionByItem[item.ID],
			FrameioURL:  linkByItem[item.ID],
		})
	}
	return sources, nil
}

func validPlatform(platform string) bool {
	return platform == "instagram" || platform == "youtube"
}
