package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
)

type statusUpdate struct {
	id     int64
	status models.ApplicantStatus
}

// fakeBoardStore serves canned columns and records status writes.
type fakeBoardStore struct {
	byStatus  map[models.ApplicantStatus][]models.Applicant
	counts    map[models.ApplicantStatus]int64
	updateErr error
	updates   []statusUpdate
}

func (f *fakeBoardStore) ListByStatus(_ uuid.UUID, status models.ApplicantStatus, page repositories.Page) ([]models.Applicant, int64, error) {
	rows := f.byStatus[status]
	start := page.Offset()
	if start > len(rows) {
		start = len(rows)
	}
	end := start + page.Size
	if end > len(rows) {
		end = len(rows)
	}
	count, ok := f.counts[status]
	if !ok {
		count = int64(len(rows))
	}
	return append([]models.Applicant(nil), rows[start:end]...), count, nil
}

func (f *fakeBoardStore) UpdateStatus(id int64, status models.ApplicantStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, statusUpdate{id: id, status: status})
	return nil
}

func applicant(id int64, name string, status models.ApplicantStatus) models.Applicant {
	return models.Applicant{
		ID:        id,
		Name:      name,
		Email:     name + "@example.com",
		Status:    status,
		AppliedAt: time.Now(),
	}
}

func testStore() *fakeBoardStore {
	return &fakeBoardStore{
		byStatus: map[models.ApplicantStatus][]models.Applicant{
			models.StatusNew: {
				applicant(1, "John Doe", models.StatusNew),
				applicant(2, "Jane Roe", models.StatusNew),
			},
			models.StatusInterview: {
				applicant(3, "Max Mustermann", models.StatusInterview),
			},
		},
	}
}

func loadTestBoard(t *testing.T, store *fakeBoardStore) *Board {
	t.Helper()
	board, err := LoadBoard(context.Background(), store, uuid.New(), nil, 20)
	require.NoError(t, err)
	return board
}

func columnIDs(col Column) []int64 {
	ids := make([]int64, 0, len(col.Applicants))
	for _, a := range col.Applicants {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestLoadBoardBuildsAllColumns(t *testing.T) {
	board := loadTestBoard(t, testStore())

	view := board.View(repositories.ApplicantFilter{})
	require.Len(t, view.Columns, len(models.PipelineStatuses))
	for i, status := range models.PipelineStatuses {
		assert.Equal(t, status, view.Columns[i].Status)
	}

	newCol, ok := board.Column(models.StatusNew)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2}, columnIDs(newCol))
	assert.Equal(t, int64(2), newCol.Count)
	assert.Equal(t, 1, newCol.TotalPages)

	assert.Equal(t, int64(3), view.TotalCount)
}

func TestLoadBoardColumnPaging(t *testing.T) {
	store := testStore()
	store.counts = map[models.ApplicantStatus]int64{models.StatusNew: 45}

	board, err := LoadBoard(context.Background(), store, uuid.New(),
		map[models.ApplicantStatus]int{models.StatusNew: 2}, 20)
	require.NoError(t, err)

	col, ok := board.Column(models.StatusNew)
	require.True(t, ok)
	assert.Equal(t, 2, col.Page)
	assert.Equal(t, 3, col.TotalPages)
}

func TestMoveSameColumnIsNoop(t *testing.T) {
	store := testStore()
	board := loadTestBoard(t, store)

	before, _ := board.Column(models.StatusNew)
	require.NoError(t, board.Move(store, 1, models.StatusNew, models.StatusNew))

	after, _ := board.Column(models.StatusNew)
	assert.Equal(t, columnIDs(before), columnIDs(after))
	assert.Equal(t, before.Count, after.Count)
	assert.Empty(t, store.updates)
}

func TestMoveUpdatesMembershipAndCounts(t *testing.T) {
	store := testStore()
	board := loadTestBoard(t, store)

	require.NoError(t, board.Move(store, 1, models.StatusNew, models.StatusInterview))

	newCol, _ := board.Column(models.StatusNew)
	interviewCol, _ := board.Column(models.StatusInterview)

	assert.Equal(t, []int64{2}, columnIDs(newCol))
	assert.Equal(t, int64(1), newCol.Count)

	// Moved card is prepended with its status overwritten.
	require.Equal(t, []int64{1, 3}, columnIDs(interviewCol))
	assert.Equal(t, models.StatusInterview, interviewCol.Applicants[0].Status)
	assert.Equal(t, "John Doe", interviewCol.Applicants[0].Name)
	assert.Equal(t, int64(2), interviewCol.Count)

	require.Len(t, store.updates, 1)
	assert.Equal(t, statusUpdate{id: 1, status: models.StatusInterview}, store.updates[0])
}

func TestMoveRevertsOnPersistenceFailure(t *testing.T) {
	store := testStore()
	board := loadTestBoard(t, store)

	beforeNew, _ := board.Column(models.StatusNew)
	beforeInterview, _ := board.Column(models.StatusInterview)

	store.updateErr = errors.New("connection reset")
	err := board.Move(store, 1, models.StatusNew, models.StatusInterview)
	require.Error(t, err)

	afterNew, _ := board.Column(models.StatusNew)
	afterInterview, _ := board.Column(models.StatusInterview)

	assert.Equal(t, columnIDs(beforeNew), columnIDs(afterNew))
	assert.Equal(t, beforeNew.Count, afterNew.Count)
	assert.Equal(t, columnIDs(beforeInterview), columnIDs(afterInterview))
	assert.Equal(t, beforeInterview.Count, afterInterview.Count)
}

func TestMoveUnknownCard(t *testing.T) {
	store := testStore()
	board := loadTestBoard(t, store)

	err := board.Move(store, 999, models.StatusNew, models.StatusOffer)
	assert.ErrorIs(t, err, ErrNotOnBoard)
	assert.Empty(t, store.updates)
}

func TestSetStatusOverwritesInPlace(t *testing.T) {
	store := testStore()
	board := loadTestBoard(t, store)

	require.NoError(t, board.SetStatus(store, 2, models.StatusOffer))

	// Dropdown change keeps the card in its list; only the field changes.
	newCol, _ := board.Column(models.StatusNew)
	require.Equal(t, []int64{1, 2}, columnIDs(newCol))
	assert.Equal(t, models.StatusOffer, newCol.Applicants[1].Status)

	require.Len(t, store.updates, 1)
	assert.Equal(t, statusUpdate{id: 2, status: models.StatusOffer}, store.updates[0])
}

func TestSetStatusRevertsOnFailure(t *testing.T) {
	store := testStore()
	board := loadTestBoard(t, store)

	store.updateErr = errors.New("boom")
	err := board.SetStatus(store, 2, models.StatusRejected)
	require.Error(t, err)

	newCol, _ := board.Column(models.StatusNew)
	assert.Equal(t, models.StatusNew, newCol.Applicants[1].Status)
}

func TestViewSearchNarrowsCardsNotCounts(t *testing.T) {
	board := loadTestBoard(t, testStore())

	view := board.View(repositories.ApplicantFilter{Search: "john"})
	assert.Equal(t, int64(2), view.Columns[0].Count)
	require.Len(t, view.Columns[0].Applicants, 1)
	assert.Equal(t, "John Doe", view.Columns[0].Applicants[0].Name)
}

func TestBoardServiceMoveFallsBackWhenCardNotLoaded(t *testing.T) {
	store := testStore()
	svc := NewBoardService(store)

	_, err := svc.Load(context.Background(), uuid.New(), nil, 20, "")
	require.NoError(t, err)

	// Card 999 lives outside the loaded window; the write still lands.
	wsID := uuid.New()
	_, err = svc.Load(context.Background(), wsID, nil, 20, "")
	require.NoError(t, err)
	require.NoError(t, svc.Move(wsID, 999, models.StatusNew, models.StatusHired))

	require.Len(t, store.updates, 1)
	assert.Equal(t, statusUpdate{id: 999, status: models.StatusHired}, store.updates[0])
}

func TestBoardServiceSetStatusWithoutBoard(t *testing.T) {
	store := testStore()
	svc := NewBoardService(store)

	require.NoError(t, svc.SetStatus(uuid.New(), 3, models.StatusHired))
	require.Len(t, store.updates, 1)
	assert.Equal(t, statusUpdate{id: 3, status: models.StatusHired}, store.updates[0])
}
