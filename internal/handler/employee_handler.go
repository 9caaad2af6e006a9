package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"scheduler-service/internal/scope"
	"scheduler-service/internal/service"
	"scheduler-service/pkg/logger"
	"scheduler-service/prometheus"
)

// EmployeeHandler exposes the employee endpoints.
type EmployeeHandler struct {
	svc *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

func (h *EmployeeHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEmployeeOperation("list")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}

	employees, err := h.svc.List(sc)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEmployeeOperation("get")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid employee id"})
	}

	employee, err := h.svc.Get(sc, id)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEmployeeOperation("create")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}

	var req service.CreateEmployeeInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse employee request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	employee, err := h.svc.Create(sc, req)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEmployeeOperation("update")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid employee id"})
	}

	var req service.CreateEmployeeInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	employee, err := h.svc.Update(sc, id, req)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete removes an employee and with it the employee's shifts.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEmployeeOperation("delete")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid employee id"})
	}

	if err := h.svc.Delete(sc, id); err != nil {
		return fail(c, log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
