package projection

import (
	"testing"
	"time"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/stage"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestBoardViewCountsAndOrder(t *testing.T) {
	columns := []ColumnSource{
		{ID: "c1", Name: "Neues Video Aida"},
		{ID: "c2", Name: "In Arbeit"},
		{ID: "c3", Name: "Review"},
		{ID: "c4", Name: "Fertig"},
	}
	cardsByColumn := map[string][]CardSource{
		"c1": {{ColumnID: "c1", ContentItemID: "i1"}, {ColumnID: "c1", ContentItemID: "i2"}},
		"c3": {{ColumnID: "c3", ContentItemID: "i3"}},
	}
	items := map[string]ItemSource{
		"i1": {ID: "i1", Title: "Reel A", Status: stage.StatusNew},
		"i2": {ID: "i2", Title: "Reel B", Status: stage.StatusNew},
		"i3": {ID: "i3", Title: "Reel C", Status: stage.StatusNeedsReview},
	}

	views := BoardView(columns, cardsByColumn, items)
	if len(views) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(views))
	}
	if views[0].ID != "neues-video-aida" || views[0].Count != 2 {
		t.Errorf("first column = %s with count %d, want neues-video-aida with 2", views[0].ID, views[0].Count)
	}
	if views[1].Count != 0 || len(views[1].Cards) != 0 {
		t.Errorf("In Arbeit should be empty, got count %d", views[1].Count)
	}
	if views[2].Count != 1 || views[2].Cards[0].Title != "Reel C" {
		t.Errorf("Review should hold Reel C, got %+v", views[2].Cards)
	}
	if views[0].Cards[0].ID != "i1" || views[0].Cards[1].ID != "i2" {
		t.Errorf("cards must keep placement order, got %+v", views[0].Cards)
	}
}

func TestBoardViewSkipsDanglingCards(t *testing.T) {
	columns := []ColumnSource{{ID: "c1", Name: "Neues Video Aida"}}
	cardsByColumn := map[string][]CardSource{
		"c1": {{ColumnID: "c1", ContentItemID: "gone"}},
	}

	views := BoardView(columns, cardsByColumn, map[string]ItemSource{})
	if views[0].Count != 0 {
		t.Errorf("card without an item must not be counted, got %d", views[0].Count)
	}
}

func TestListViewSortsNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []ItemSource{
		{ID: "old", Title: "Old", Status: stage.StatusNew, CreatedAt: base},
		{ID: "new", Title: "New", Status: stage.StatusApproved, CreatedAt: base.Add(48 * time.Hour)},
		{ID: "mid", Title: "Mid", Status: stage.StatusInProgress, CreatedAt: base.Add(24 * time.Hour)},
	}

	views := ListView(items)
	got := []string{views[0].ID, views[1].ID, views[2].ID}
	want := []string{"new", "mid", "old"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if views[0].Status != "fertig" {
		t.Errorf("approved item should surface as fertig, got %s", views[0].Status)
	}
	if views[0].Date != "2025-06-03" {
		t.Errorf("date = %s, want 2025-06-03", views[0].Date)
	}
}

func TestGroupByPlannedDate(t *testing.T) {
	june := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	items := []ItemSource{
		{ID: "a", PlannedDate: datePtr(june)},
		{ID: "b", PlannedDate: datePtr(june)},
		{ID: "c", PlannedDate: datePtr(time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC))},
		{ID: "d", PlannedDate: datePtr(time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))},
		{ID: "e"}, // no planned date
	}

	byDay := GroupByPlannedDate(items, 2025, time.June)
	if len(byDay) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(byDay))
	}
	if len(byDay[10]) != 2 {
		t.Errorf("day 10 should hold 2 items, got %d", len(byDay[10]))
	}
	if len(byDay[21]) != 1 {
		t.Errorf("day 21 should hold 1 item, got %d", len(byDay[21]))
	}
}

func TestPaginate(t *testing.T) {
	items := make([]ListItemView, 0, 7)
	for i := 0; i < 7; i++ {
		items = append(items, ListItemView{ID: string(rune('a' + i))})
	}

	tests := []struct {
		name       string
		page       int
		limit      int
		wantLen    int
		wantFirst  string
		totalPages int64
	}{
		{"first page", 1, 3, 3, "a", 3},
		{"middle page", 2, 3, 3, "d", 3},
		{"last partial page", 3, 3, 1, "g", 3},
		{"past the end", 4, 3, 0, "", 3},
		{"everything on one page", 1, 10, 7, "a", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pagination := Paginate(items, tt.page, tt.limit)
			if len(page) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(page), tt.wantLen)
			}
			if tt.wantLen > 0 && page[0].ID != tt.wantFirst {
				t.Errorf("first = %s, want %s", page[0].ID, tt.wantFirst)
			}
			if pagination.TotalPages != tt.totalPages {
				t.Errorf("totalPages = %d, want %d", pagination.TotalPages, tt.totalPages)
			}
			if pagination.Total != 7 {
				t.Errorf("total = %d, want 7", pagination.Total)
			}
		})
	}
}

func TestPriority(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  *time.Time
		want string
	}{
		{"no due date", nil, "low"},
		{"due tomorrow", datePtr(now.Add(24 * time.Hour)), "high"},
		{"due in five days", datePtr(now.Add(5 * 24 * time.Hour)), "medium"},
		{"due in a month", datePtr(now.Add(30 * 24 * time.Hour)), "low"},
		{"overdue", datePtr(now.Add(-24 * time.Hour)), "high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Priority(tt.due, now); got != tt.want {
				t.Errorf("Priority = %s, want %s", got, tt.want)
			}
		})
	}
}
