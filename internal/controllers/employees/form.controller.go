package employeesController

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"directory/internal/events"
	"directory/internal/format"
	"directory/internal/logger"
	. "directory/internal/models"
	"directory/internal/repositories"
	"directory/internal/utils"
)

type FormMode int

const (
	ModeNew FormMode = iota
	ModeEdit
)

// Field names match the JSON field names of the Employee record.
const (
	FieldFirstName      = "firstName"
	FieldLastName       = "lastName"
	FieldEmploymentDate = "employmentDate"
	FieldBirthDate      = "birthDate"
	FieldPhone          = "phone"
	FieldEmail          = "email"
	FieldDepartment     = "department"
	FieldPosition       = "position"
)

var requiredFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldPhone,
	FieldEmail,
	FieldDepartment,
	FieldPosition,
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPhoneDigits = 12

// FormController drives the add/edit employee form: working draft, per-field
// validation, the edit-mode dirty check, and the submit flow. The draft keeps
// the phone in display (masked) form; it is canonicalized on submit.
type FormController struct {
	repo      repositories.EmployeeRepository
	session   *ViewSession
	nav       Navigator
	scheduler *Scheduler
	eventBus  *events.EventBus
	log       logger.Logger

	mu         sync.Mutex
	closed     bool
	mode       FormMode
	employeeID string
	draft      Employee
	original   Employee
	invalid    map[string]bool
	message    string
	toast      Toast
}

func NewForm(
	repo repositories.EmployeeRepository,
	session *ViewSession,
	nav Navigator,
	eventBus *events.EventBus,
) *FormController {
	return &FormController{
		repo:      repo,
		session:   session,
		nav:       nav,
		scheduler: NewScheduler(),
		eventBus:  eventBus,
		log:       logger.New("FormController"),
		invalid:   make(map[string]bool),
	}
}

// Enter initializes the form for the given route: an empty id means create,
// anything else means edit. Entering edit with an unknown id navigates
// straight back to the list and reports false; no form state is kept.
func (f *FormController) Enter(ctx context.Context, id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id == "" {
		f.mode = ModeNew
		f.employeeID = ""
		f.draft = Employee{}
		f.original = Employee{}
		f.invalid = make(map[string]bool)
		return true
	}

	employee, ok := f.repo.FindByID(ctx, id)
	if !ok {
		f.log.Function("Enter").Warn("employee not found, aborting to list", "id", id)
		f.nav.Go(f.listPath())
		return false
	}

	f.mode = ModeEdit
	f.employeeID = id
	employee.Phone = format.FormatPhone(employee.Phone)
	employee.Selected = false
	f.draft = employee
	f.original = employee
	f.invalid = make(map[string]bool)
	return true
}

func (f *FormController) listPath() string {
	return RouteList + "?view=" + f.session.View()
}

func (f *FormController) Mode() FormMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *FormController) Draft() Employee {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *FormController) InvalidFields() map[string]bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	flagged := make(map[string]bool, len(f.invalid))
	for field, bad := range f.invalid {
		flagged[field] = bad
	}
	return flagged
}

func (f *FormController) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

func (f *FormController) Toast() Toast {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.toast
}

// OnFieldChange updates the working draft and revalidates only the changed
// field. The phone path strips non-digits and a duplicated country code,
// then reformats; date fields normalize to ISO form when recognized.
func (f *FormController) OnFieldChange(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldPhone:
		value = format.FormatPhoneInput(value)
	case FieldEmploymentDate, FieldBirthDate:
		value = utils.NormalizeDate(value)
	}

	f.setField(field, value)
	f.validateField(field, value)
}

func (f *FormController) setField(field, value string) {
	switch field {
	case FieldFirstName:
		f.draft.FirstName = value
	case FieldLastName:
		f.draft.LastName = value
	case FieldEmploymentDate:
		f.draft.EmploymentDate = value
	case FieldBirthDate:
		f.draft.BirthDate = value
	case FieldPhone:
		f.draft.Phone = value
	case FieldEmail:
		f.draft.Email = value
	case FieldDepartment:
		f.draft.Department = value
	case FieldPosition:
		f.draft.Position = value
	}
}

func (f *FormController) fieldValue(field string) string {
	switch field {
	case FieldFirstName:
		return f.draft.FirstName
	case FieldLastName:
		return f.draft.LastName
	case FieldEmploymentDate:
		return f.draft.EmploymentDate
	case FieldBirthDate:
		return f.draft.BirthDate
	case FieldPhone:
		return f.draft.Phone
	case FieldEmail:
		return f.draft.Email
	case FieldDepartment:
		return f.draft.Department
	case FieldPosition:
		return f.draft.Position
	default:
		return ""
	}
}

func (f *FormController) validateField(field, value string) {
	valid := value != ""

	switch field {
	case FieldPhone:
		valid = format.DigitCount(value) >= minPhoneDigits
	case FieldEmail:
		valid = valid && emailPattern.MatchString(value)
	case FieldDepartment:
		valid = ValidDepartment(value)
	case FieldPosition:
		valid = ValidPosition(value)
	}

	f.invalid[field] = !valid
}

// IsFormValid requires every mandatory field present, no field flagged
// invalid, and, in edit mode, the draft differing from the loaded original.
func (f *FormController) IsFormValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.isFormValid()
}

func (f *FormController) isFormValid() bool {
	for _, field := range requiredFields {
		if f.fieldValue(field) == "" || f.invalid[field] {
			return false
		}
	}

	if f.mode == ModeEdit {
		return !f.draft.Equals(f.original)
	}
	return true
}

// Submit persists the draft. A no-op while the form is invalid. On success
// the toast shows and, after a fixed delay, navigation returns to the list
// with the prior view mode restored.
func (f *FormController) Submit(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.isFormValid() {
		return false
	}

	log := f.log.Function("Submit")

	toSave := f.draft
	toSave.Phone = format.CanonicalPhone(toSave.Phone)

	switch f.mode {
	case ModeEdit:
		if _, err := f.repo.Update(ctx, f.employeeID, toSave); err != nil {
			if errors.Is(err, repositories.ErrEmployeeNotFound) {
				f.message = "Error: Employee not found."
				break
			}
			log.Er("update failed", err, "id", f.employeeID)
			f.message = "Error: could not save employee."
			f.showToast()
			return false
		}
		f.message = "Employee updated successfully!"
		f.publish("updated", f.employeeID)
	default:
		created, err := f.repo.Create(ctx, toSave)
		if err != nil {
			log.Er("create failed", err)
			f.message = "Error: could not save employee."
			f.showToast()
			return false
		}
		f.draft = Employee{}
		f.invalid = make(map[string]bool)
		f.message = "Employee added successfully!"
		f.publish("created", created.ID)
	}

	f.showToast()
	f.scheduler.After(submitNavigateDelay, func() {
		f.mu.Lock()
		if f.closed {
			f.mu.Unlock()
			return
		}
		path := f.listPath()
		f.toast = Toast{}
		f.mu.Unlock()

		f.nav.Go(path)
	})

	return true
}

// Reset clears the working draft and all validation flags without leaving
// the form.
func (f *FormController) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft = Employee{}
	f.invalid = make(map[string]bool)
}

// Cancel navigates back to the list without persisting anything.
func (f *FormController) Cancel() {
	f.mu.Lock()
	path := f.listPath()
	f.mu.Unlock()

	f.nav.Go(path)
}

func (f *FormController) showToast() {
	f.toast = Toast{Visible: true, Message: f.message}
}

func (f *FormController) publish(eventType, id string) {
	if f.eventBus == nil {
		return
	}
	event := events.Event{
		Type:      eventType,
		Data:      map[string]any{"id": id},
		Timestamp: time.Now(),
	}
	if err := f.eventBus.Publish(events.ChannelEmployees, event); err != nil {
		f.log.Er("failed to publish employee event", err, "type", eventType, "id", id)
	}
}

// Close tears the view down; the pending post-submit navigation, if any,
// becomes a no-op.
func (f *FormController) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()

	f.scheduler.Close()
}
