package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
)

// ErrNotOnBoard means the card is not in the board's loaded window (it may
// live on a later page of its column). Callers fall back to a plain status
// update against the store.
var ErrNotOnBoard = errors.New("applicant not on board")

// Column is one kanban lane: the loaded page of cards plus the exact total
// for the status, which the loaded page is only a window of.
type Column struct {
	Status     models.ApplicantStatus `json:"status"`
	Applicants []models.Applicant     `json:"applicants"`
	Count      int64                  `json:"count"`
	Page       int                    `json:"page"`
	TotalPages int                    `json:"total_pages"`
}

// Board is the in-memory kanban state for one workspace. Moves mutate it
// optimistically and restore a captured snapshot when persistence fails, the
// same shape the dashboard applies client-side. Two concurrent moves on one
// card race; the last completion wins. That is accepted, not coordinated.
type Board struct {
	WorkspaceID uuid.UUID

	mu      sync.Mutex
	columns map[models.ApplicantStatus]*Column
}

// BoardView is the render snapshot: columns in pipeline order.
type BoardView struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Columns     []Column  `json:"columns"`
	TotalCount  int64     `json:"total_count"`
}

// BoardStore is the slice of the applicant store the kanban needs: the
// per-status page reads and the single status write.
type BoardStore interface {
	ListByStatus(workspaceID uuid.UUID, status models.ApplicantStatus, page repositories.Page) ([]models.Applicant, int64, error)
	UpdateStatus(id int64, status models.ApplicantStatus) error
}

// LoadBoard fetches all six status columns in parallel and joins them. Each
// column's count may reflect a different instant; nothing re-reads for a
// consistent snapshot.
func LoadBoard(ctx context.Context, repo BoardStore, workspaceID uuid.UUID, pages map[models.ApplicantStatus]int, limit int) (*Board, error) {
	if limit < 1 {
		limit = repositories.DefaultPageSize
	}

	board := &Board{
		WorkspaceID: workspaceID,
		columns:     make(map[models.ApplicantStatus]*Column, len(models.PipelineStatuses)),
	}

	g, _ := errgroup.WithContext(ctx)
	var mu sync.Mutex
	for _, status := range models.PipelineStatuses {
		status := status
		page := repositories.Page{Number: pages[status], Size: limit}.Normalize()
		g.Go(func() error {
			applicants, count, err := repo.ListByStatus(workspaceID, status, page)
			if err != nil {
				return fmt.Errorf("column %s: %w", status, err)
			}
			mu.Lock()
			board.columns[status] = &Column{
				Status:     status,
				Applicants: applicants,
				Count:      count,
				Page:       page.Number,
				TotalPages: repositories.TotalPages(count, page.Size),
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return board, nil
}

// statusStore is the single persistence call a move needs.
type statusStore interface {
	UpdateStatus(id int64, status models.ApplicantStatus) error
}

var _ BoardStore = (repositories.ApplicantRepository)(nil)

// Move relocates one card from column `from` to column `to`: remove from the
// source, prepend to the destination with the status field overwritten,
// adjust both counts, then persist. On persistence failure the exact
// pre-move snapshot of both columns and counts is restored and the error
// returned. A same-column move is a no-op.
func (b *Board) Move(store statusStore, id int64, from, to models.ApplicantStatus) error {
	if from == to {
		return nil
	}

	b.mu.Lock()
	src, ok := b.columns[from]
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("unknown column %q", from)
	}
	dst, ok := b.columns[to]
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("unknown column %q", to)
	}

	idx := -1
	for i := range src.Applicants {
		if src.Applicants[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.mu.Unlock()
		return ErrNotOnBoard
	}

	prevSrc := snapshotColumn(src)
	prevDst := snapshotColumn(dst)

	moved := src.Applicants[idx]
	moved.Status = to
	src.Applicants = append(src.Applicants[:idx:idx], src.Applicants[idx+1:]...)
	dst.Applicants = append([]models.Applicant{moved}, dst.Applicants...)
	if src.Count > 0 {
		src.Count--
	}
	dst.Count++
	b.mu.Unlock()

	if err := store.UpdateStatus(id, to); err != nil {
		b.mu.Lock()
		*b.columns[from] = prevSrc
		*b.columns[to] = prevDst
		b.mu.Unlock()
		return fmt.Errorf("failed to move applicant: %w", err)
	}
	return nil
}

// SetStatus is the dropdown variant: the card stays in place, only its status
// field is overwritten locally, with the same persist-or-revert contract.
func (b *Board) SetStatus(store statusStore, id int64, to models.ApplicantStatus) error {
	b.mu.Lock()
	var col *Column
	idx := -1
	for _, c := range b.columns {
		for i := range c.Applicants {
			if c.Applicants[i].ID == id {
				col, idx = c, i
				break
			}
		}
		if col != nil {
			break
		}
	}
	if col == nil {
		b.mu.Unlock()
		return ErrNotOnBoard
	}

	prev := snapshotColumn(col)
	col.Applicants[idx].Status = to
	b.mu.Unlock()

	if err := store.UpdateStatus(id, to); err != nil {
		b.mu.Lock()
		*b.columns[col.Status] = prev
		b.mu.Unlock()
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// View renders the board in pipeline order, optionally narrowed by the
// board search box. The narrowing is display-only: counts stay the column
// totals, matching the dashboard behavior.
func (b *Board) View(filter repositories.ApplicantFilter) BoardView {
	b.mu.Lock()
	defer b.mu.Unlock()

	view := BoardView{WorkspaceID: b.WorkspaceID}
	for _, status := range models.PipelineStatuses {
		col, ok := b.columns[status]
		if !ok {
			continue
		}
		out := Column{
			Status:     col.Status,
			Count:      col.Count,
			Page:       col.Page,
			TotalPages: col.TotalPages,
		}
		for i := range col.Applicants {
			if filter.Matches(&col.Applicants[i]) {
				out.Applicants = append(out.Applicants, col.Applicants[i])
			}
		}
		if out.Applicants == nil {
			out.Applicants = []models.Applicant{}
		}
		view.Columns = append(view.Columns, out)
		view.TotalCount += col.Count
	}
	return view
}

// Column returns a copy of one lane, mainly for tests and handlers that need
// membership checks.
func (b *Board) Column(status models.ApplicantStatus) (Column, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	col, ok := b.columns[status]
	if !ok {
		return Column{}, false
	}
	return snapshotColumn(col), true
}

func snapshotColumn(c *Column) Column {
	copied := *c
	copied.Applicants = append([]models.Applicant(nil), c.Applicants...)
	return copied
}
