package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"scheduler-service/internal/scope"
	"scheduler-service/internal/service"
	"scheduler-service/pkg/logger"
)

// TemplateHandler exposes the shift template endpoints.
type TemplateHandler struct {
	svc *service.ShiftTemplateService
}

func NewTemplateHandler(svc *service.ShiftTemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

func (h *TemplateHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}

	templates, err := h.svc.List(sc)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid template id"})
	}

	template, err := h.svc.Get(sc, id)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}

	var req service.CreateTemplateInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse template request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	template, err := h.svc.Create(sc, req)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusCreated, template)
}

func (h *TemplateHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid template id"})
	}

	var req service.CreateTemplateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	template, err := h.svc.Update(sc, id, req)
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	sc, err := scope.FromContext(c)
	if err != nil {
		return fail(c, log, err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid template id"})
	}

	if err := h.svc.Delete(sc, id); err != nil {
		return fail(c, log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
