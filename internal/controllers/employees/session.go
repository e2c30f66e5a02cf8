package employeesController

import (
	"context"

	"directory/internal/logger"
	. "directory/internal/models"
	"directory/internal/storage"
)

// ViewSession owns the view-mode/page state that survives navigation. Both
// controllers receive the same instance; every mutation is persisted through
// the store immediately.
type ViewSession struct {
	store storage.Store
	state ViewState
	log   logger.Logger
}

func NewViewSession(ctx context.Context, store storage.Store) *ViewSession {
	return &ViewSession{
		store: store,
		state: store.ViewState(ctx).Normalized(),
		log:   logger.New("ViewSession"),
	}
}

func (s *ViewSession) View() string {
	return s.state.View
}

func (s *ViewSession) PageIndex() int {
	return s.state.PageIndex
}

func (s *ViewSession) SetView(ctx context.Context, view string) {
	s.state.View = view
	s.state = s.state.Normalized()
	s.store.SetViewState(ctx, s.state)
}

func (s *ViewSession) SetPageIndex(ctx context.Context, pageIndex int) {
	s.state.PageIndex = pageIndex
	s.state = s.state.Normalized()
	s.store.SetViewState(ctx, s.state)
}
