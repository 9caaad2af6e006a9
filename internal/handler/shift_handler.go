package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"scheduler-service/internal/model"
	"scheduler-service/internal/scope"
	"scheduler-service/internal/service"
	"scheduler-service/pkg/logger"
	"scheduler-service/prometheus"
)

// ShiftHandler exposes the shift endpoints.
type ShiftHandler struct {
	svc *service.ShiftService
}

func NewShiftHandler(svc *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{svc: svc}
}

// List returns a schedule's shifts when schedule_id is given, otherwise the
// tenant's shifts for the current week.
func (h *ShiftHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordShiftOperation("list")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}

	var shifts []model.Shift
	switch {
	case c.QueryParam("schedule_id") != "":
		scheduleID, err := uuid.Parse(c.QueryParam("schedule_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid schedule id"})
		}
		shifts, err = h.svc.ListBySchedule(sc, scheduleID)
		if err != nil {
			return fail(c, log, err)
		}
	case c.QueryParam("from") != "" && c.QueryParam("to") != "":
		from, err := time.Parse("2006-01-02", c.QueryParam("from"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from date"})
		}
		to, err := time.Parse("2006-01-02", c.QueryParam("to"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to date"})
		}
		shifts, err = h.svc.ListByDateRange(sc, from, to)
		if err != nil {
			return fail(c, log, err)
		}
	default:
		shifts, err = h.svc.ListCurrentWeek(sc)
		if err != nil {
			return fail(c, log, err)
		}
	}
	return c.JSON(http.StatusOK, shifts)
}

func (h *ShiftHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordShiftOperation("get")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift id"})
	}

	shift, err := h.svc.Get(sc, id)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, shift)
}

func (h *ShiftHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordShiftOperation("create")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}

	var req service.CreateShiftInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse shift request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	shift, err := h.svc.Create(sc, req)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusCreated, shift)
}

func (h *ShiftHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordShiftOperation("update")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift id"})
	}

	var req service.CreateShiftInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	shift, err := h.svc.Update(sc, id, req)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, shift)
}

// UpdateStatus sets the shift status directly; any status may follow any
// other.
func (h *ShiftHandler) UpdateStatus(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordShiftOperation("status")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift id"})
	}

	var req struct {
		Status model.ShiftStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	shift, err := h.svc.UpdateStatus(sc, id, req.Status)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, shift)
}

// RecordTimes stores the actual clock-in/out pair.
func (h *ShiftHandler) RecordTimes(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordShiftOperation("record_times")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift id"})
	}

	var req struct {
		ActualStart *string `json:"actual_start"`
		ActualEnd   *string `json:"actual_end"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	shift, err := h.svc.RecordTimes(sc, id, req.ActualStart, req.ActualEnd)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, shift)
}

func (h *ShiftHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordShiftOperation("delete")

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift id"})
	}

	if err := h.svc.Delete(sc, id); err != nil {
		return fail(c, log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
