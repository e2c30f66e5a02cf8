package repositories

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"directory/internal/format"
	"directory/internal/logger"
	. "directory/internal/models"
	"directory/internal/storage"
)

// ErrEmployeeNotFound is returned by Update when no record carries the
// requested id. Callers surface it as a message; it is never fatal.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository layers id assignment and phone canonicalization on the
// whole-collection store. Every write is a load-modify-save cycle.
type EmployeeRepository interface {
	GetAll(ctx context.Context) []Employee
	FindByID(ctx context.Context, id string) (Employee, bool)
	Create(ctx context.Context, draft Employee) (Employee, error)
	Update(ctx context.Context, id string, draft Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
}

type employeeRepository struct {
	store storage.Store
	log   logger.Logger
}

func New(store storage.Store) EmployeeRepository {
	return &employeeRepository{
		store: store,
		log:   logger.New("employeeRepository"),
	}
}

func (r *employeeRepository) GetAll(ctx context.Context) []Employee {
	return r.store.Load(ctx)
}

func (r *employeeRepository) FindByID(ctx context.Context, id string) (Employee, bool) {
	for _, employee := range r.store.Load(ctx) {
		if employee.ID == id {
			return employee, true
		}
	}
	return Employee{}, false
}

func (r *employeeRepository) Create(ctx context.Context, draft Employee) (Employee, error) {
	log := r.log.Function("Create")

	employees := r.store.Load(ctx)

	draft.ID = NextID(employees)
	draft.Phone = format.CanonicalPhone(draft.Phone)
	draft.Selected = false

	employees = append(employees, draft)
	if err := r.store.Save(ctx, employees); err != nil {
		return Employee{}, log.Err("failed to persist created employee", err, "id", draft.ID)
	}

	log.Info("employee created", "id", draft.ID)
	return draft, nil
}

func (r *employeeRepository) Update(ctx context.Context, id string, draft Employee) (Employee, error) {
	log := r.log.Function("Update")

	employees := r.store.Load(ctx)

	index := -1
	for i, employee := range employees {
		if employee.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return Employee{}, log.Err("no employee with requested id", ErrEmployeeNotFound, "id", id)
	}

	draft.ID = id
	draft.Phone = format.CanonicalPhone(draft.Phone)
	draft.Selected = false

	employees[index] = draft
	if err := r.store.Save(ctx, employees); err != nil {
		return Employee{}, log.Err("failed to persist updated employee", err, "id", id)
	}

	log.Info("employee updated", "id", id)
	return draft, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	employees := r.store.Load(ctx)

	remaining := employees[:0:0]
	for _, employee := range employees {
		if employee.ID != id {
			remaining = append(remaining, employee)
		}
	}

	// Deleting an absent id is a no-op, not an error.
	if len(remaining) == len(employees) {
		return nil
	}

	if err := r.store.Save(ctx, remaining); err != nil {
		return log.Err("failed to persist employee deletion", err, "id", id)
	}

	log.Info("employee deleted", "id", id)
	return nil
}

// NextID assigns the next monotone id: max existing numeric id (0 when the
// collection is empty) plus one, stringified. Ids of deleted records are
// never reused because the maximum only grows.
func NextID(employees []Employee) string {
	maxID := 0
	for _, employee := range employees {
		if n, err := strconv.Atoi(employee.ID); err == nil && n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}

// Search filters by case-insensitive substring match against the string form
// of every field. An empty query returns the collection unchanged, order
// preserved.
func Search(employees []Employee, query string) []Employee {
	if query == "" {
		return employees
	}

	q := strings.ToLower(query)

	var matched []Employee
	for _, employee := range employees {
		for _, field := range employee.Fields() {
			if strings.Contains(strings.ToLower(field), q) {
				matched = append(matched, employee)
				break
			}
		}
	}

	return matched
}
