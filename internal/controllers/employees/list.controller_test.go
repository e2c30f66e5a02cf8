package employeesController

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	. "directory/internal/models"
	"directory/internal/repositories"
	"directory/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNavigator records navigations for assertions.
type fakeNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *fakeNavigator) Go(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *fakeNavigator) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

// failingStore loads fine but refuses every write.
type failingStore struct {
	storage.Store
	saveErr error
}

func (s failingStore) Save(ctx context.Context, employees []Employee) error {
	return s.saveErr
}

func seedEmployees(count int) []Employee {
	employees := make([]Employee, 0, count)
	for i := 1; i <= count; i++ {
		employees = append(employees, Employee{
			ID:         fmt.Sprintf("%d", i),
			FirstName:  fmt.Sprintf("First%d", i),
			LastName:   fmt.Sprintf("Last%d", i),
			Phone:      "+905321234567",
			Email:      fmt.Sprintf("first%d@example.com", i),
			Department: DepartmentTech,
			Position:   PositionJunior,
		})
	}
	return employees
}

type listFixture struct {
	store      storage.Store
	repo       repositories.EmployeeRepository
	session    *ViewSession
	nav        *fakeNavigator
	controller *ListController
}

func newListFixture(t *testing.T, employees []Employee) *listFixture {
	t.Helper()

	store := storage.NewMemory(employees...)
	repo := repositories.New(store)
	session := NewViewSession(context.Background(), store)
	nav := &fakeNavigator{}

	controller := NewList(repo, session, nav, nil)
	t.Cleanup(controller.Close)
	controller.Load(context.Background())

	return &listFixture{
		store:      store,
		repo:       repo,
		session:    session,
		nav:        nav,
		controller: controller,
	}
}

func TestListController_LoadLeavesLoadingState(t *testing.T) {
	store := storage.NewMemory(seedEmployees(3)...)
	session := NewViewSession(context.Background(), store)
	controller := NewList(repositories.New(store), session, &fakeNavigator{}, nil)
	defer controller.Close()

	assert.Equal(t, StateLoading, controller.State())

	controller.Load(context.Background())
	assert.Equal(t, StateBrowsing, controller.State())
	assert.Equal(t, 3, controller.FilteredCount())
}

func TestListController_Pagination(t *testing.T) {
	fx := newListFixture(t, seedEmployees(20))
	ctx := context.Background()

	// List view pages hold eight rows.
	assert.Equal(t, 3, fx.controller.TotalPages())
	assert.Len(t, fx.controller.VisibleEmployees(), 8)

	fx.controller.NextPage(ctx)
	assert.Equal(t, 2, fx.controller.CurrentPage())
	assert.Equal(t, "9", fx.controller.VisibleEmployees()[0].ID)

	fx.controller.SetPage(ctx, 3)
	assert.Equal(t, 3, fx.controller.CurrentPage())
	assert.Len(t, fx.controller.VisibleEmployees(), 4)

	// Out-of-range requests are ignored.
	fx.controller.SetPage(ctx, 99)
	assert.Equal(t, 3, fx.controller.CurrentPage())
	fx.controller.SetPage(ctx, 0)
	assert.Equal(t, 3, fx.controller.CurrentPage())
	fx.controller.NextPage(ctx)
	assert.Equal(t, 3, fx.controller.CurrentPage())

	fx.controller.PrevPage(ctx)
	assert.Equal(t, 2, fx.controller.CurrentPage())

	// Page changes persist into the session.
	assert.Equal(t, 2, fx.session.PageIndex())
	assert.Equal(t, 2, fx.store.ViewState(ctx).PageIndex)
}

func TestListController_SetViewModeResetsPageAndSize(t *testing.T) {
	fx := newListFixture(t, seedEmployees(20))
	ctx := context.Background()

	fx.controller.SetPage(ctx, 3)

	fx.controller.SetViewMode(ctx, ViewCards)
	assert.Equal(t, ViewCards, fx.controller.View())
	assert.Equal(t, 1, fx.controller.CurrentPage())
	// Card view pages hold four entries.
	assert.Equal(t, 5, fx.controller.TotalPages())
	assert.Len(t, fx.controller.VisibleEmployees(), 4)

	state := fx.store.ViewState(ctx)
	assert.Equal(t, ViewCards, state.View)
	assert.Equal(t, 1, state.PageIndex)

	// Unknown modes are ignored.
	fx.controller.SetViewMode(ctx, "grid")
	assert.Equal(t, ViewCards, fx.controller.View())
}

func TestListController_SearchResetsPage(t *testing.T) {
	fx := newListFixture(t, seedEmployees(20))
	ctx := context.Background()

	fx.controller.SetPage(ctx, 3)
	fx.controller.SetSearchQuery(ctx, "first1")

	assert.Equal(t, 1, fx.controller.CurrentPage())
	assert.Equal(t, 1, fx.session.PageIndex())
	// first1, first10..first19
	assert.Equal(t, 11, fx.controller.FilteredCount())

	fx.controller.SetSearchQuery(ctx, "")
	assert.Equal(t, 20, fx.controller.FilteredCount())
}

// Deleting the only record on the last page must pull the current page back
// into range and persist the clamped value.
func TestListController_DeleteClampsPage(t *testing.T) {
	fx := newListFixture(t, seedEmployees(9))
	ctx := context.Background()

	fx.controller.SetPage(ctx, 2)
	require.Len(t, fx.controller.VisibleEmployees(), 1)

	target := fx.controller.VisibleEmployees()[0]
	fx.controller.RequestDelete(target)
	assert.Equal(t, StateConfirmingDelete, fx.controller.State())

	selected, ok := fx.controller.SelectedEmployee()
	require.True(t, ok)
	assert.Equal(t, target.ID, selected.ID)

	fx.controller.ProceedConfirm(ctx)

	assert.Equal(t, StateBrowsing, fx.controller.State())
	assert.Equal(t, 8, fx.controller.FilteredCount())
	assert.Equal(t, 1, fx.controller.TotalPages())
	assert.Equal(t, 1, fx.controller.CurrentPage())
	assert.Equal(t, 1, fx.store.ViewState(ctx).PageIndex)

	toast := fx.controller.Toast()
	assert.True(t, toast.Visible)
	assert.Equal(t, "Employee was deleted successfully!", toast.Message)

	_, found := fx.repo.FindByID(ctx, target.ID)
	assert.False(t, found)
}

// A store failure during the confirmed delete surfaces as an error toast;
// the collection snapshot stays as loaded.
func TestListController_DeleteFailureShowsErrorToast(t *testing.T) {
	ctx := context.Background()
	store := failingStore{
		Store:   storage.NewMemory(seedEmployees(3)...),
		saveErr: errors.New("storage unavailable"),
	}
	repo := repositories.New(store)
	session := NewViewSession(ctx, store)

	controller := NewList(repo, session, &fakeNavigator{}, nil)
	defer controller.Close()
	controller.Load(ctx)

	controller.RequestDelete(controller.VisibleEmployees()[0])
	controller.ProceedConfirm(ctx)

	assert.Equal(t, StateBrowsing, controller.State())
	assert.Equal(t, 3, controller.FilteredCount())

	toast := controller.Toast()
	assert.True(t, toast.Visible)
	assert.Equal(t, "Error: could not delete employee.", toast.Message)
}

func TestListController_CancelConfirmKeepsCollection(t *testing.T) {
	fx := newListFixture(t, seedEmployees(3))

	fx.controller.RequestDelete(fx.controller.VisibleEmployees()[0])
	fx.controller.CancelConfirm()

	assert.Equal(t, StateBrowsing, fx.controller.State())
	_, ok := fx.controller.SelectedEmployee()
	assert.False(t, ok)
	assert.Equal(t, 3, fx.controller.FilteredCount())
}

func TestListController_ConfirmEditNavigatesToForm(t *testing.T) {
	fx := newListFixture(t, seedEmployees(3))

	fx.controller.RequestEdit(fx.controller.VisibleEmployees()[1])
	assert.Equal(t, StateConfirmingEdit, fx.controller.State())

	fx.controller.ProceedConfirm(context.Background())

	assert.Equal(t, StateBrowsing, fx.controller.State())
	assert.Equal(t, "/employees/2", fx.nav.last())

	toast := fx.controller.Toast()
	assert.True(t, toast.Visible)
	assert.Equal(t, "Employee edit confirmed!", toast.Message)
}

func TestListController_RequestIgnoredOutsideBrowsing(t *testing.T) {
	fx := newListFixture(t, seedEmployees(3))

	first := fx.controller.VisibleEmployees()[0]
	second := fx.controller.VisibleEmployees()[1]

	fx.controller.RequestDelete(first)
	fx.controller.RequestEdit(second)

	assert.Equal(t, StateConfirmingDelete, fx.controller.State())
	selected, _ := fx.controller.SelectedEmployee()
	assert.Equal(t, first.ID, selected.ID)
}

func TestListController_PageWindow(t *testing.T) {
	tests := []struct {
		name     string
		records  int
		page     int
		expected PageWindow
	}{
		{
			name:    "single page",
			records: 5,
			page:    1,
			expected: PageWindow{
				Start: 1, End: 1, TotalPages: 1, CurrentPage: 1,
				PrevDisabled: true, NextDisabled: true,
			},
		},
		{
			name:    "few pages fit entirely",
			records: 25, // 4 pages
			page:    2,
			expected: PageWindow{
				Start: 1, End: 4, TotalPages: 4, CurrentPage: 2,
			},
		},
		{
			name:    "window centered mid-range",
			records: 80, // 10 pages
			page:    6,
			expected: PageWindow{
				Start: 4, End: 8, TotalPages: 10, CurrentPage: 6,
				ShowFirst: true, ShowLast: true,
				LeadingEllipsis: true, TrailingEllipsis: true,
			},
		},
		{
			name:    "window pinned at the start",
			records: 80,
			page:    1,
			expected: PageWindow{
				Start: 1, End: 5, TotalPages: 10, CurrentPage: 1,
				ShowLast: true, TrailingEllipsis: true,
				PrevDisabled: true,
			},
		},
		{
			name:    "window pinned at the end",
			records: 80,
			page:    10,
			expected: PageWindow{
				Start: 6, End: 10, TotalPages: 10, CurrentPage: 10,
				ShowFirst: true, LeadingEllipsis: true,
				NextDisabled: true,
			},
		},
		{
			name:    "no ellipsis when the gap is one page",
			records: 48, // 6 pages
			page:    3,
			expected: PageWindow{
				Start: 1, End: 5, TotalPages: 6, CurrentPage: 3,
				ShowLast: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newListFixture(t, seedEmployees(tt.records))
			fx.controller.SetPage(context.Background(), tt.page)

			assert.Equal(t, tt.expected, fx.controller.PageWindow())
		})
	}
}

// Row selection never leaks into persistence or the confirm flow.
func TestListController_SelectionIsInert(t *testing.T) {
	fx := newListFixture(t, seedEmployees(3))
	ctx := context.Background()

	fx.controller.ToggleRow("2", true)
	visible := fx.controller.VisibleEmployees()
	assert.True(t, visible[1].Selected)
	assert.False(t, visible[0].Selected)

	fx.controller.ToggleAll(true)
	for _, employee := range fx.controller.VisibleEmployees() {
		assert.True(t, employee.Selected)
	}

	fx.controller.ToggleAll(false)
	for _, employee := range fx.controller.VisibleEmployees() {
		assert.False(t, employee.Selected)
	}

	for _, employee := range fx.repo.GetAll(ctx) {
		assert.False(t, employee.Selected)
	}
}
