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

// ScheduleHandler exposes the schedule lifecycle endpoints.
type ScheduleHandler struct {
	svc *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func (h *ScheduleHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordScheduleOperation("list")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}

	schedules, err := h.svc.List(sc)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordScheduleOperation("get")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid schedule id"})
	}

	schedule, err := h.svc.Get(sc, id)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, schedule)
}

func (h *ScheduleHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordScheduleOperation("create")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}

	var req service.CreateScheduleInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse schedule request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	schedule, err := h.svc.Create(sc, req)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusCreated, schedule)
}

func (h *ScheduleHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordScheduleOperation("update")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid schedule id"})
	}

	var req service.CreateScheduleInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	schedule, err := h.svc.Update(sc, id, req)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, schedule)
}

func (h *ScheduleHandler) Publish(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordScheduleOperation("publish")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid schedule id"})
	}

	schedule, err := h.svc.Publish(sc, id)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, schedule)
}

func (h *ScheduleHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordScheduleOperation("delete")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid schedule id"})
	}

	if err := h.svc.Delete(sc, id); err != nil {
		return fail(c, log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
