package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
)

// BoardService keeps one live board per workspace so that moves arriving over
// HTTP mutate the same in-memory columns the last GET was rendered from.
type BoardService interface {
	Load(ctx context.Context, workspaceID uuid.UUID, pages map[models.ApplicantStatus]int, limit int, search string) (BoardView, error)
	Move(workspaceID uuid.UUID, id int64, from, to models.ApplicantStatus) error
	SetStatus(workspaceID uuid.UUID, id int64, to models.ApplicantStatus) error
}

type boardService struct {
	repo BoardStore

	mu     sync.Mutex
	boards map[uuid.UUID]*Board
}

func NewBoardService(repo BoardStore) BoardService {
	return &boardService{
		repo:   repo,
		boards: make(map[uuid.UUID]*Board),
	}
}

// Load refreshes the workspace board from the store and returns its view,
// narrowed by the search box when present.
func (s *boardService) Load(ctx context.Context, workspaceID uuid.UUID, pages map[models.ApplicantStatus]int, limit int, search string) (BoardView, error) {
	board, err := LoadBoard(ctx, s.repo, workspaceID, pages, limit)
	if err != nil {
		return BoardView{}, err
	}

	s.mu.Lock()
	s.boards[workspaceID] = board
	s.mu.Unlock()

	return board.View(repositories.ApplicantFilter{Search: search}), nil
}

func (s *boardService) board(workspaceID uuid.UUID) *Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boards[workspaceID]
}

// Move applies the optimistic column move when the board is loaded and the
// card is in its window; otherwise it degrades to a plain status write.
func (s *boardService) Move(workspaceID uuid.UUID, id int64, from, to models.ApplicantStatus) error {
	if board := s.board(workspaceID); board != nil {
		err := board.Move(s.repo, id, from, to)
		if !errors.Is(err, ErrNotOnBoard) {
			return err
		}
	}
	if from == to {
		return nil
	}
	return s.repo.UpdateStatus(id, to)
}

func (s *boardService) SetStatus(workspaceID uuid.UUID, id int64, to models.ApplicantStatus) error {
	if board := s.board(workspaceID); board != nil {
		err := board.SetStatus(s.repo, id, to)
		if !errors.Is(err, ErrNotOnBoard) {
			return err
		}
	}
	return s.repo.UpdateStatus(id, to)
}
