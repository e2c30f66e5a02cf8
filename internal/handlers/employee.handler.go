package handlers

import (
	"directory/internal/app"
	employeesController "directory/internal/controllers/employees"
	"directory/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	Handler
	app app.App
}

func NewEmployeeHandler(app app.App, router fiber.Router) *EmployeeHandler {
	log := logger.New("handlers").File("employee_handler")
	return &EmployeeHandler{
		app: app,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *EmployeeHandler) Register() {
	employees := h.router.Group("/employees")
	employees.Get("/", h.list)
	employees.Post("/", h.create)
	employees.Get("/:id", h.get)
	employees.Put("/:id", h.update)
	employees.Delete("/:id", h.remove)
}

// navRecorder captures where a controller navigated so the response can
// carry the target as a location for the client-side router.
type navRecorder struct {
	path string
}

func (n *navRecorder) Go(path string) {
	n.path = path
}

// employeeRequest carries form field values. Absent fields are left
// untouched, so PUT merges onto the loaded record.
type employeeRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	EmploymentDate *string `json:"employmentDate"`
	BirthDate      *string `json:"birthDate"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Department     *string `json:"department"`
	Position       *string `json:"position"`
}

func (r employeeRequest) apply(form *employeesController.FormController) {
	fields := []struct {
		name  string
		value *string
	}{
		{employeesController.FieldFirstName, r.FirstName},
		{employeesController.FieldLastName, r.LastName},
		{employeesController.FieldEmploymentDate, r.EmploymentDate},
		{employeesController.FieldBirthDate, r.BirthDate},
		{employeesController.FieldPhone, r.Phone},
		{employeesController.FieldEmail, r.Email},
		{employeesController.FieldDepartment, r.Department},
		{employeesController.FieldPosition, r.Position},
	}

	for _, field := range fields {
		if field.value != nil {
			form.OnFieldChange(field.name, *field.value)
		}
	}
}

func (h *EmployeeHandler) newListController(c *fiber.Ctx) (*employeesController.ListController, *navRecorder) {
	nav := &navRecorder{}
	session := employeesController.NewViewSession(c.Context(), h.app.Store)
	ctrl := employeesController.NewList(h.app.EmployeeRepo, session, nav, h.app.EventBus)
	return ctrl, nav
}

func (h *EmployeeHandler) newFormController(c *fiber.Ctx) (*employeesController.FormController, *navRecorder) {
	nav := &navRecorder{}
	session := employeesController.NewViewSession(c.Context(), h.app.Store)
	form := employeesController.NewForm(h.app.EmployeeRepo, session, nav, h.app.EventBus)
	return form, nav
}

// list derives the visible page. Query params: q (search), page, view.
func (h *EmployeeHandler) list(c *fiber.Ctx) error {
	ctx := c.Context()

	ctrl, _ := h.newListController(c)
	defer ctrl.Close()

	ctrl.Load(ctx)

	if view := c.Query("view"); view != "" {
		ctrl.SetViewMode(ctx, view)
	}
	if q := c.Query("q"); q != "" {
		ctrl.SetSearchQuery(ctx, q)
	}
	if page := c.QueryInt("page"); page > 0 {
		ctrl.SetPage(ctx, page)
	}

	return c.JSON(fiber.Map{
		"message":       "success",
		"state":         ctrl.State().String(),
		"employees":     ctrl.VisibleEmployees(),
		"view":          ctrl.View(),
		"searchQuery":   ctrl.SearchQuery(),
		"currentPage":   ctrl.CurrentPage(),
		"totalPages":    ctrl.TotalPages(),
		"filteredCount": ctrl.FilteredCount(),
		"pageWindow":    ctrl.PageWindow(),
	})
}

func (h *EmployeeHandler) create(c *fiber.Ctx) error {
	log := h.log.Function("create")
	ctx := c.Context()

	var req employeeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Er("failed to parse create request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse request body"})
	}

	form, nav := h.newFormController(c)
	defer form.Close()

	form.Enter(ctx, "")
	req.apply(form)

	if !form.Submit(ctx) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message":       "error",
			"error":         "validation failed",
			"invalidFields": form.InvalidFields(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "success",
		"toast":    form.Toast(),
		"location": nav.path,
	})
}

func (h *EmployeeHandler) get(c *fiber.Ctx) error {
	ctx := c.Context()

	form, nav := h.newFormController(c)
	defer form.Close()

	if !form.Enter(ctx, c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message":  "error",
			"error":    "employee not found",
			"location": nav.path,
		})
	}

	return c.JSON(fiber.Map{
		"message":  "success",
		"employee": form.Draft(),
	})
}

func (h *EmployeeHandler) update(c *fiber.Ctx) error {
	log := h.log.Function("update")
	ctx := c.Context()

	var req employeeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Er("failed to parse update request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse request body"})
	}

	form, nav := h.newFormController(c)
	defer form.Close()

	if !form.Enter(ctx, c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message":  "error",
			"error":    "employee not found",
			"location": nav.path,
		})
	}

	req.apply(form)

	// Submit refuses both invalid drafts and edit drafts identical to the
	// loaded record.
	if !form.Submit(ctx) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message":       "error",
			"error":         "validation failed or nothing to save",
			"invalidFields": form.InvalidFields(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "success",
		"toast":   form.Toast(),
	})
}

func (h *EmployeeHandler) remove(c *fiber.Ctx) error {
	ctx := c.Context()

	ctrl, _ := h.newListController(c)
	defer ctrl.Close()

	ctrl.Load(ctx)

	employee, ok := h.app.EmployeeRepo.FindByID(ctx, c.Params("id"))
	if !ok {
		// Deleting an absent id is a no-op, not an error.
		return c.JSON(fiber.Map{"message": "success"})
	}

	ctrl.RequestDelete(employee)
	ctrl.ProceedConfirm(ctx)

	return c.JSON(fiber.Map{
		"message":     "success",
		"toast":       ctrl.Toast(),
		"currentPage": ctrl.CurrentPage(),
		"totalPages":  ctrl.TotalPages(),
	})
}
