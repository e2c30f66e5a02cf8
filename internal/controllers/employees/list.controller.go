package employeesController

import (
	"context"
	"sync"
	"time"

	"directory/internal/events"
	"directory/internal/logger"
	. "directory/internal/models"
	"directory/internal/repositories"
)

type ListState int

const (
	StateLoading ListState = iota
	StateBrowsing
	StateConfirmingDelete
	StateConfirmingEdit
)

func (s ListState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateBrowsing:
		return "browsing"
	case StateConfirmingDelete:
		return "confirming-delete"
	case StateConfirmingEdit:
		return "confirming-edit"
	default:
		return "unknown"
	}
}

// PageWindow describes the pagination controls: at most five contiguous
// numbered buttons centered on the current page, first/last shortcuts when
// the window leaves an edge, and ellipsis markers when it leaves a gap.
type PageWindow struct {
	Start            int  `json:"start"`
	End              int  `json:"end"`
	TotalPages       int  `json:"totalPages"`
	CurrentPage      int  `json:"currentPage"`
	ShowFirst        bool `json:"showFirst"`
	ShowLast         bool `json:"showLast"`
	LeadingEllipsis  bool `json:"leadingEllipsis"`
	TrailingEllipsis bool `json:"trailingEllipsis"`
	PrevDisabled     bool `json:"prevDisabled"`
	NextDisabled     bool `json:"nextDisabled"`
}

// ListController drives the employee list: pagination, search filter, view
// mode, row selection, and the delete/edit confirmation flow.
type ListController struct {
	repo      repositories.EmployeeRepository
	session   *ViewSession
	nav       Navigator
	scheduler *Scheduler
	eventBus  *events.EventBus
	log       logger.Logger

	mu          sync.Mutex
	closed      bool
	state       ListState
	employees   []Employee
	searchQuery string
	view        string
	pageSize    int
	currentPage int
	selected    *Employee
	toast       Toast
}

func NewList(
	repo repositories.EmployeeRepository,
	session *ViewSession,
	nav Navigator,
	eventBus *events.EventBus,
) *ListController {
	view := session.View()
	return &ListController{
		repo:        repo,
		session:     session,
		nav:         nav,
		scheduler:   NewScheduler(),
		eventBus:    eventBus,
		log:         logger.New("ListController"),
		state:       StateLoading,
		view:        view,
		pageSize:    pageSizeFor(view),
		currentPage: session.PageIndex(),
	}
}

func pageSizeFor(view string) int {
	if view == ViewCards {
		return pageSizeCards
	}
	return pageSizeList
}

// Load resolves the collection and leaves the loading state. Rendering may
// happen before Load completes; State reports loading until then.
func (c *ListController) Load(ctx context.Context) {
	employees := c.repo.GetAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.employees = employees
	c.state = StateBrowsing
	c.clampPage(ctx)
}

func (c *ListController) State() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *ListController) filtered() []Employee {
	return repositories.Search(c.employees, c.searchQuery)
}

func (c *ListController) totalPages() int {
	total := (len(c.filtered()) + c.pageSize - 1) / c.pageSize
	if total < 1 {
		total = 1
	}
	return total
}

// clampPage keeps the current page within range whenever the filtered set
// shrinks, persisting the clamped value. Callers hold the lock.
func (c *ListController) clampPage(ctx context.Context) {
	if total := c.totalPages(); c.currentPage > total {
		c.currentPage = total
		c.session.SetPageIndex(ctx, total)
	}
	if c.currentPage < 1 {
		c.currentPage = 1
		c.session.SetPageIndex(ctx, 1)
	}
}

func (c *ListController) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages()
}

func (c *ListController) SetSearchQuery(ctx context.Context, query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searchQuery = query
	c.currentPage = 1
	c.session.SetPageIndex(ctx, 1)
}

func (c *ListController) SearchQuery() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchQuery
}

func (c *ListController) SetViewMode(ctx context.Context, view string) {
	if view != ViewList && view != ViewCards {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.view = view
	c.pageSize = pageSizeFor(view)
	c.currentPage = 1
	c.session.SetView(ctx, view)
	c.session.SetPageIndex(ctx, 1)
}

func (c *ListController) View() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *ListController) SetPage(ctx context.Context, page int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if page < 1 || page > c.totalPages() {
		return
	}
	c.currentPage = page
	c.session.SetPageIndex(ctx, page)
}

func (c *ListController) NextPage(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentPage < c.totalPages() {
		c.currentPage++
		c.session.SetPageIndex(ctx, c.currentPage)
	}
}

func (c *ListController) PrevPage(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentPage > 1 {
		c.currentPage--
		c.session.SetPageIndex(ctx, c.currentPage)
	}
}

func (c *ListController) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage
}

// VisibleEmployees derives the current page of the filtered collection.
func (c *ListController) VisibleEmployees() []Employee {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.filtered()
	start := (c.currentPage - 1) * c.pageSize
	if start >= len(filtered) {
		return []Employee{}
	}
	end := start + c.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return append([]Employee(nil), filtered[start:end]...)
}

func (c *ListController) FilteredCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.filtered())
}

func (c *ListController) PageWindow() PageWindow {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.totalPages()

	const maxButtons = 5
	start := c.currentPage - 2
	if start < 1 {
		start = 1
	}
	end := start + maxButtons - 1
	if end > total {
		end = total
	}
	start = end - maxButtons + 1
	if start < 1 {
		start = 1
	}

	return PageWindow{
		Start:            start,
		End:              end,
		TotalPages:       total,
		CurrentPage:      c.currentPage,
		ShowFirst:        start > 1,
		ShowLast:         end < total,
		LeadingEllipsis:  start > 2,
		TrailingEllipsis: end < total-1,
		PrevDisabled:     c.currentPage == 1,
		NextDisabled:     c.currentPage == total,
	}
}

// RequestDelete enters the confirming-delete state holding the target.
func (c *ListController) RequestDelete(employee Employee) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateBrowsing {
		return
	}
	employee.Selected = false
	c.selected = &employee
	c.state = StateConfirmingDelete
}

// RequestEdit enters the confirming-edit state holding the target.
func (c *ListController) RequestEdit(employee Employee) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateBrowsing {
		return
	}
	employee.Selected = false
	c.selected = &employee
	c.state = StateConfirmingEdit
}

func (c *ListController) SelectedEmployee() (Employee, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selected == nil {
		return Employee{}, false
	}
	return *c.selected, true
}

// CancelConfirm returns to browsing without mutation.
func (c *ListController) CancelConfirm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConfirmingDelete && c.state != StateConfirmingEdit {
		return
	}
	c.selected = nil
	c.state = StateBrowsing
}

// ProceedConfirm executes whichever action is pending: delete persists the
// removal, re-derives pagination, and emits a toast; edit navigates to the
// form route. Either way the controller returns to browsing.
func (c *ListController) ProceedConfirm(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selected == nil {
		return
	}

	switch c.state {
	case StateConfirmingDelete:
		c.proceedDelete(ctx)
	case StateConfirmingEdit:
		c.proceedEdit()
	}
}

func (c *ListController) proceedDelete(ctx context.Context) {
	log := c.log.Function("proceedDelete")

	id := c.selected.ID
	c.selected = nil
	c.state = StateBrowsing

	if err := c.repo.Delete(ctx, id); err != nil {
		log.Er("delete failed", err, "id", id)
		c.showToast("Error: could not delete employee.")
		return
	}

	c.employees = c.repo.GetAll(ctx)
	c.clampPage(ctx)
	c.publish("deleted", id)
	c.showToast("Employee was deleted successfully!")
}

func (c *ListController) proceedEdit() {
	id := c.selected.ID
	c.selected = nil
	c.state = StateBrowsing

	c.nav.Go(RouteList + "/" + id)
	c.showToast("Employee edit confirmed!")
}

// ToggleRow flips a row's selection flag. Selection is inert UI state: never
// persisted, consumed by nothing.
func (c *ListController) ToggleRow(id string, selected bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.employees {
		if c.employees[i].ID == id {
			c.employees[i].Selected = selected
			return
		}
	}
}

func (c *ListController) ToggleAll(selected bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.employees {
		c.employees[i].Selected = selected
	}
}

func (c *ListController) Toast() Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.toast
}

// showToast displays a timed message; the dismissal callback is inert once
// the controller closes. Callers hold the lock.
func (c *ListController) showToast(message string) {
	c.toast = Toast{Visible: true, Message: message}
	c.scheduler.After(toastDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			return
		}
		c.toast = Toast{}
	})
}

func (c *ListController) publish(eventType, id string) {
	if c.eventBus == nil {
		return
	}
	event := events.Event{
		Type:      eventType,
		Data:      map[string]any{"id": id},
		Timestamp: time.Now(),
	}
	if err := c.eventBus.Publish(events.ChannelEmployees, event); err != nil {
		c.log.Er("failed to publish employee event", err, "type", eventType, "id", id)
	}
}

// Close tears the view down; pending timers become no-ops.
func (c *ListController) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.scheduler.Close()
}
