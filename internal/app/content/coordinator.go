package content

import (
	"context"
	"time"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/stage"
)

// The coordinator interface and its inputs are declared here, below the
// workflow package in the import graph, so the content and board
// handlers can depend on them without importing workflow (which imports
// both packages). The workflow package aliases these names; it remains
// the only implementation.

type CreateItemInput struct {
	Title       string
	Platforms   []string
	Brief       string
	PlannedDate *time.Time
}

type CreateCardInput struct {
	Title       string
	Description string
	ColumnSlug  string
	DueDate     *time.Time
}

type Coordinator interface {
	// MoveCard relocates an item's card into the column named by slug
	// and aligns the item's status with it. Both writes happen in one
	// transaction; after it returns, status and column agree.
	MoveCard(ctx context.Context, projectID, contentItemID, targetSlug string) error

	// ChangeStatus sets an item's status and relocates its card into
	// the column the mapping assigns to that status.
	ChangeStatus(ctx context.Context, projectID, contentItemID string, status stage.Status) (*Item, error)

	// CreateContentItem creates an item in the NEW stage and places its
	// card in the project's first column.
	CreateContentItem(ctx context.Context, projectID string, in CreateItemInput) (*Item, error)

	// CreateCard is the board-side creation path: the item starts in
	// the given column, with its status derived from that column.
	CreateCard(ctx context.Context, projectID string, in CreateCardInput) (*Item, error)
}
