package workflow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/apperr"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/board"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/content"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/project"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/stage"
)

type fixture struct {
	db          *gorm.DB
	projectID   string
	coordinator Coordinator
	contentRepo content.Repository
	boardRepo   board.Repository
}

func newFixture(t *testing.T, seedColumns bool) *fixture {
	t.Helper()

	// A named shared-cache memory DB keeps every pooled connection on
	// the same database; a bare :memory: DSN would not.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(
		&project.Project{},
		&board.Column{},
		&board.Card{},
		&content.Item{},
		&content.CaptionDraft{},
		&content.Link{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	proj := project.Project{ID: uuid.NewString(), Name: "Motion Cooking"}
	if err := conn.Create(&proj).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	boardRepo := board.NewRepository(conn)
	if seedColumns {
		columns := make([]*board.Column, 0, stage.Count)
		for i, name := range stage.ColumnNames() {
			columns = append(columns, &board.Column{ProjectID: proj.ID, Name: name, Order: i + 1})
		}
		if err := boardRepo.CreateColumns(columns); err != nil {
			t.Fatalf("failed to seed columns: %v", err)
		}
	}

	contentRepo := content.NewRepository(conn)
	return &fixture{
		db:          conn,
		projectID:   proj.ID,
		coordinator: NewCoordinator(conn, contentRepo, boardRepo, nil, zap.NewNop()),
		contentRepo: contentRepo,
		boardRepo:   boardRepo,
	}
}

func (f *fixture) createItem(t *testing.T, title string) *content.Item {
	t.Helper()
	item, err := f.coordinator.CreateContentItem(context.Background(), f.projectID, CreateItemInput{
		Title:     title,
		Platforms: []string{"instagram"},
	})
	if err != nil {
		t.Fatalf("CreateContentItem(%s) failed: %v", title, err)
	}
	return item
}

func (f *fixture) columnOfItem(t *testing.T, itemID string) *board.Column {
	t.Helper()
	card, err := f.boardRepo.CardByContentItem(itemID)
	if err != nil {
		t.Fatalf("item %s has no card: %v", itemID, err)
	}
	column, err := f.boardRepo.ColumnByID(card.ColumnID)
	if err != nil {
		t.Fatalf("card points at missing column: %v", err)
	}
	return column
}

// assertConsistent checks the central invariant: the status of every
// item agrees with the column its card sits in.
func (f *fixture) assertConsistent(t *testing.T) {
	t.Helper()
	items, err := f.contentRepo.ListByProject(f.projectID)
	if err != nil {
		t.Fatalf("failed to list items: %v", err)
	}
	for _, item := range items {
		column := f.columnOfItem(t, item.ID)
		mapped, ok := stage.StatusForColumnName(column.Name)
		if !ok {
			t.Fatalf("card of %s sits in unmapped column %q", item.ID, column.Name)
		}
		if mapped != item.Status {
			t.Errorf("item %s: status %s but card in %q (maps to %s)", item.ID, item.Status, column.Name, mapped)
		}
	}
}

func TestCreateContentItemStartsInFirstColumn(t *testing.T) {
	f := newFixture(t, true)

	item := f.createItem(t, "Reel A")
	if item.Status != stage.StatusNew {
		t.Errorf("status = %s, want %s", item.Status, stage.StatusNew)
	}

	column := f.columnOfItem(t, item.ID)
	if column.Name != "Neues Video Aida" {
		t.Errorf("card in %q, want Neues Video Aida", column.Name)
	}
	f.assertConsistent(t)
}

func TestMoveCardSyncsStatus(t *testing.T) {
	f := newFixture(t, true)
	item := f.createItem(t, "Reel A")

	if err := f.coordinator.MoveCard(context.Background(), f.projectID, item.ID, "review"); err != nil {
		t.Fatalf("MoveCard failed: %v", err)
	}

	reloaded, err := f.contentRepo.GetByID(item.ID)
	if err != nil {
		t.Fatalf("failed to reload item: %v", err)
	}
	if reloaded.Status != stage.StatusNeedsReview {
		t.Errorf("status = %s, want %s", reloaded.Status, stage.StatusNeedsReview)
	}

	first, _ := f.boardRepo.ColumnByName(f.projectID, "Neues Video Aida")
	review, _ := f.boardRepo.ColumnByName(f.projectID, "Review")
	firstCards, _ := f.boardRepo.CardsInColumn(first.ID)
	reviewCards, _ := f.boardRepo.CardsInColumn(review.ID)
	if len(firstCards) != 0 {
		t.Errorf("first column still holds %d cards", len(firstCards))
	}
	if len(reviewCards) != 1 {
		t.Errorf("review column holds %d cards, want 1", len(reviewCards))
	}
	f.assertConsistent(t)
}

func TestChangeStatusMovesCard(t *testing.T) {
	f := newFixture(t, true)
	item := f.createItem(t, "Reel A")

	updated, err := f.coordinator.ChangeStatus(context.Background(), f.projectID, item.ID, stage.StatusApproved)
	if err != nil {
		t.Fatalf("ChangeStatus failed: %v", err)
	}
	if updated.Status != stage.StatusApproved {
		t.Errorf("status = %s, want %s", updated.Status, stage.StatusApproved)
	}

	column := f.columnOfItem(t, item.ID)
	if column.Name != "Fertig" {
		t.Errorf("card in %q, want Fertig", column.Name)
	}
	f.assertConsistent(t)
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t, true)
	item := f.createItem(t, "Reel A")

	_, err := f.coordinator.ChangeStatus(context.Background(), f.projectID, item.ID, stage.Status("ARCHIVED"))
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMoveCardUnknownColumnLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, true)
	item := f.createItem(t, "Reel A")

	err := f.coordinator.MoveCard(context.Background(), f.projectID, item.ID, "archiv")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	reloaded, _ := f.contentRepo.GetByID(item.ID)
	if reloaded.Status != stage.StatusNew {
		t.Errorf("status changed to %s despite failed move", reloaded.Status)
	}
	if column := f.columnOfItem(t, item.ID); column.Name != "Neues Video Aida" {
		t.Errorf("card moved to %q despite failed move", column.Name)
	}
}

func TestMoveCardUnknownItem(t *testing.T) {
	f := newFixture(t, true)

	err := f.coordinator.MoveCard(context.Background(), f.projectID, "does-not-exist", "review")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	review, _ := f.boardRepo.ColumnByName(f.projectID, "Review")
	cards, _ := f.boardRepo.CardsInColumn(review.ID)
	if len(cards) != 0 {
		t.Errorf("failed move left %d cards behind", len(cards))
	}
}

func TestMoveCardIsIdempotent(t *testing.T) {
	f := newFixture(t, true)
	item := f.createItem(t, "Reel A")

	for i := 0; i < 2; i++ {
		if err := f.coordinator.MoveCard(context.Background(), f.projectID, item.ID, "in-arbeit"); err != nil {
			t.Fatalf("MoveCard #%d failed: %v", i+1, err)
		}
	}

	var count int64
	f.db.Model(&board.Card{}).Where("content_item_id = ?", item.ID).Count(&count)
	if count != 1 {
		t.Errorf("item has %d cards after repeated move, want 1", count)
	}
	if column := f.columnOfItem(t, item.ID); column.Name != "In Arbeit" {
		t.Errorf("card in %q, want In Arbeit", column.Name)
	}
	f.assertConsistent(t)
}

func TestOneCardInvariantAcrossOperations(t *testing.T) {
	f := newFixture(t, true)
	a := f.createItem(t, "Reel A")
	b := f.createItem(t, "Reel B")

	ctx := context.Background()
	ops := []func() error{
		func() error { return f.coordinator.MoveCard(ctx, f.projectID, a.ID, "review") },
		func() error { _, err := f.coordinator.ChangeStatus(ctx, f.projectID, b.ID, stage.StatusInProgress); return err },
		func() error { return f.coordinator.MoveCard(ctx, f.projectID, a.ID, "fertig") },
		func() error { return f.coordinator.MoveCard(ctx, f.projectID, b.ID, "review") },
	}
	for i, op := range ops {
		if err := op(); err != nil {
			t.Fatalf("op %d failed: %v", i, err)
		}
		f.assertConsistent(t)
	}

	for _, id := range []string{a.ID, b.ID} {
		var count int64
		f.db.Model(&board.Card{}).Where("content_item_id = ?", id).Count(&count)
		if count != 1 {
			t.Errorf("item %s has %d cards, want 1", id, count)
		}
	}
}

func TestFreshPlacementSortsLast(t *testing.T) {
	f := newFixture(t, true)
	a := f.createItem(t, "Reel A")
	b := f.createItem(t, "Reel B")

	ctx := context.Background()
	if err := f.coordinator.MoveCard(ctx, f.projectID, a.ID, "review"); err != nil {
		t.Fatalf("MoveCard failed: %v", err)
	}
	time.Sleep(2 * time.Millisecond) // placement order is a millisecond timestamp
	if err := f.coordinator.MoveCard(ctx, f.projectID, b.ID, "review"); err != nil {
		t.Fatalf("MoveCard failed: %v", err)
	}

	review, _ := f.boardRepo.ColumnByName(f.projectID, "Review")
	cards, err := f.boardRepo.CardsInColumn(review.ID)
	if err != nil {
		t.Fatalf("CardsInColumn failed: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Order > cards[1].Order {
		t.Errorf("cards not in ascending order: %d then %d", cards[0].Order, cards[1].Order)
	}
	if cards[1].ContentItemID != b.ID {
		t.Errorf("freshly moved card should sort last, got %s", cards[1].ContentItemID)
	}
}

func TestCreateContentItemValidation(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.coordinator.CreateContentItem(ctx, f.projectID, CreateItemInput{Title: "  "})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("empty title: expected validation error, got %v", err)
	}

	_, err = f.coordinator.CreateContentItem(ctx, f.projectID, CreateItemInput{
		Title:     "Reel",
		Platforms: []string{"tiktok"},
	})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("unknown platform: expected validation error, got %v", err)
	}
}

func TestCreateContentItemWithoutColumns(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.coordinator.CreateContentItem(context.Background(), f.projectID, CreateItemInput{
		Title:     "Reel A",
		Platforms: []string{"instagram"},
	})
	if !apperr.IsKind(err, apperr.KindPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}

	var count int64
	f.db.Model(&content.Item{}).Count(&count)
	if count != 0 {
		t.Errorf("item persisted despite missing columns")
	}
}

func TestCreateCardDerivesStatusFromColumn(t *testing.T) {
	f := newFixture(t, true)

	item, err := f.coordinator.CreateCard(context.Background(), f.projectID, CreateCardInput{
		Title:      "Schnitt Tutorial",
		ColumnSlug: "in-arbeit",
	})
	if err != nil {
		t.Fatalf("CreateCard failed: %v", err)
	}
	if item.Status != stage.StatusInProgress {
		t.Errorf("status = %s, want %s", item.Status, stage.StatusInProgress)
	}
	if column := f.columnOfItem(t, item.ID); column.Name != "In Arbeit" {
		t.Errorf("card in %q, want In Arbeit", column.Name)
	}
	f.assertConsistent(t)
}

func TestCreateCardUnknownColumn(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.coordinator.CreateCard(context.Background(), f.projectID, CreateCardInput{
		Title:      "Reel",
		ColumnSlug: "backlog",
	})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
