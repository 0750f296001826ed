package api

import (
	"errors"
	"strconv"
	"time"

	domain "github.com/example/tareas-api/domain/task"
	"github.com/example/tareas-api/modules/task"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/", m.redirectToDocs)
	m.app.Get("/docs", m.docsHandler)
	m.app.Get("/health", m.healthHandler)

	tareas := m.app.Group("/tareas")
	tareas.Post("/", m.createTarea)
	tareas.Get("/", m.listTareas)
	tareas.Get("/:id", m.getTarea)
	tareas.Put("/:id", m.updateTarea)
	tareas.Delete("/:id", m.deleteTarea)
}

// redirectToDocs handles GET /.
func (m *APIModule) redirectToDocs(c *fiber.Ctx) error {
	return c.Redirect("/docs", fiber.StatusFound)
}

// docsHandler handles GET /docs with a static API reference page.
func (m *APIModule) docsHandler(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(docsPage)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"addr":   m.addr,
		},
	})
}

// createTarea handles POST /tareas/.
func (m *APIModule) createTarea(c *fiber.Ctx) error {
	var req CreateTareaRequest
	if err := c.BodyParser(&req); err != nil {
		return writeInvalidBody(c)
	}

	resp, err := m.taskPort.CreateTask(c.Context(), &task.CreateTaskRequest{
		Title:              req.Titulo,
		Description:        req.Descripcion,
		ProposedCompletion: req.FechaFinalizacionPropuesta,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toTareaResponse(resp, time.Now()))
}

// listTareas handles GET /tareas/. The response is a bare array in
// insertion order.
func (m *APIModule) listTareas(c *fiber.Ctx) error {
	resp, err := m.taskPort.ListTasks(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	now := time.Now()
	tareas := make([]TareaResponse, 0, len(resp.Tasks))
	for i := range resp.Tasks {
		tareas = append(tareas, toTareaResponse(&resp.Tasks[i], now))
	}
	return c.JSON(tareas)
}

// getTarea handles GET /tareas/:id.
func (m *APIModule) getTarea(c *fiber.Ctx) error {
	id, err := parseTareaID(c)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := m.taskPort.GetTask(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toTareaResponse(resp, time.Now()))
}

// updateTarea handles PUT /tareas/:id.
func (m *APIModule) updateTarea(c *fiber.Ctx) error {
	id, err := parseTareaID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateTareaRequest
	if err := c.BodyParser(&req); err != nil {
		return writeInvalidBody(c)
	}

	resp, err := m.taskPort.UpdateTask(c.Context(), toUpdateTaskRequest(id, req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toTareaResponse(resp, time.Now()))
}

// deleteTarea handles DELETE /tareas/:id.
func (m *APIModule) deleteTarea(c *fiber.Ctx) error {
	id, err := parseTareaID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := m.taskPort.DeleteTask(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseTareaID extracts the numeric id from the path. A non-numeric id
// cannot match any record, so it reports not-found.
func parseTareaID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, task.ErrTaskNotFound
	}
	return id, nil
}

// writeError maps domain errors onto HTTP statuses: missing records to
// 404, rejected input to 422, anything else to 500.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: verr.Reason,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	})
}

func writeInvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_request",
		Message: "Invalid request body",
	})
}
