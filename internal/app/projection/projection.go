// Package projection computes the read-side views (board, list,
// calendar, pagination) on demand. Everything here is pure: inputs are
// plain source structs the store-facing services assemble, outputs are
// the wire shapes, and nothing touches storage.
package projection

import (
	"sort"
	"time"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/stage"
)

// ColumnSource is the board-store slice of a column a projection needs.
type ColumnSource struct {
	ID   string
	Name string
}

// CardSource is a card placement, already in ascending placement order.
type CardSource struct {
	ColumnID      string
	ContentItemID string
}

// ItemSource is the content-store slice of an item, with the instagram
// caption and Frame.io link already joined in.
type ItemSource struct {
	ID          string
	Title       string
	Brief       string
	Status      stage.Status
	Platforms   []string
	PlannedDate *time.Time
	CreatedAt   time.Time
	Caption     string
	FrameioURL  string
}

type BoardCardView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Priority    string `json:"priority"`
}

type BoardColumnView struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Color string          `json:"color"`
	Cards []BoardCardView `json:"cards"`
}

type ListItemView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Platforms   []string `json:"platforms"`
	Status      string   `json:"status"`
	Brief       string   `json:"brief,omitempty"`
	Caption     string   `json:"caption"`
	FrameioLink string   `json:"frameioLink"`
	PostingDate string   `json:"postingDate"`
	Date        string   `json:"date"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

const dateLayout = "2006-01-02"

// BoardView assembles the column-partitioned board: one entry per
// column in board order, each with its card count and cards in the
// order they were placed.
func BoardView(columns []ColumnSource, cardsByColumn map[string][]CardSource, itemsByID map[string]ItemSource) []BoardColumnView {
	views := make([]BoardColumnView, 0, len(columns))
	for _, col := range columns {
		slug, ok := stage.SlugForColumnName(col.Name)
		if !ok {
			slug = col.ID
		}
		cards := cardsByColumn[col.ID]
		cardViews := make([]BoardCardView, 0, len(cards))
		for _, card := range cards {
			item, ok := itemsByID[card.ContentItemID]
			if !ok {
				continue
			}
			cardViews = append(cardViews, BoardCardView{
				ID:          item.ID,
				Title:       item.Title,
				Description: item.Brief,
				DueDate:     formatDate(item.PlannedDate),
				Priority:    Priority(item.PlannedDate, time.Now()),
			})
		}
		views = append(views, BoardColumnView{
			ID:    slug,
			Name:  col.Name,
			Count: len(cardViews),
			Color: stage.ColumnColor(col.Name),
			Cards: cardViews,
		})
	}
	return views
}

// ListView flattens items into the list-view shape, newest first.
func ListView(items []ItemSource) []ListItemView {
	sorted := make([]ItemSource, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	views := make([]ListItemView, 0, len(sorted))
	for _, item := range sorted {
		slug, _ := stage.SlugForStatus(item.Status)
		views = append(views, ListItemView{
			ID:          item.ID,
			Name:        item.Title,
			Platforms:   item.Platforms,
			Status:      slug,
			Brief:       item.Brief,
			Caption:     item.Caption,
			FrameioLink: item.FrameioURL,
			PostingDate: formatDate(item.PlannedDate),
			Date:        item.CreatedAt.Format(dateLayout),
		})
	}
	return views
}

// GroupByPlannedDate buckets items by day of month for the given
// month. Items without a planned date, or planned outside the month,
// are excluded.
func GroupByPlannedDate(items []ItemSource, year int, month time.Month) map[int][]ItemSource {
	byDay := make(map[int][]ItemSource)
	for _, item := range items {
		if item.PlannedDate == nil {
			continue
		}
		d := *item.PlannedDate
		if d.Year() != year || d.Month() != month {
			continue
		}
		byDay[d.Day()] = append(byDay[d.Day()], item)
	}
	return byDay
}

// Paginate slices one page out of the list view and reports the page
// math alongside it.
func Paginate(items []ListItemView, page, limit int) ([]ListItemView, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	total := int64(len(items))
	totalPages := (total + int64(limit) - 1) / int64(limit)

	start := (page - 1) * limit
	if start >= len(items) {
		return []ListItemView{}, Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// Priority grades a due date the way the board colors cards: due
// within two days is high, within a week medium, otherwise low.
func Priority(dueDate *time.Time, now time.Time) string {
	if dueDate == nil {
		return "low"
	}
	diffDays := int(dueDate.Sub(now).Hours() / 24)
	switch {
	case diffDays <= 2:
		return "high"
	case diffDays <= 7:
		return "medium"
	default:
		return "low"
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
