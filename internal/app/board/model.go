package board

import "time"

// Column is one of the four fixed stage containers of a project board.
// Columns are created by the seeder and never touched by the workflow
// coordinator.
type Column struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ProjectID string    `json:"project_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Order     int       `json:"order" gorm:"column:sort_order;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Card links a content item to the column it currently occupies. An
// item has at most one card; Order is a placement timestamp in
// milliseconds, so fresh placements sort last without renumbering.
type Card struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	ColumnID      string    `json:"column_id" gorm:"not null;index"`
	ContentItemID string    `json:"content_item_id" gorm:"not null;uniqueIndex"`
	Order         int64     `json:"order" gorm:"column:sort_order;not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Column) TableName() string {
	return "board_columns"
}

func (Card) TableName() string {
	return "board_cards"
}

type MoveCardRequest struct {
	CardID       string `json:"cardId" binding:"required"`
	FromColumnID string `json:"fromColumnId"`
	ToColumnID   string `json:"toColumnId" binding:"required"`
}

type CreateCardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ColumnID    string `json:"columnId" binding:"required"`
	DueDate     string `json:"dueDate"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
