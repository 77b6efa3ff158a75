package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	service services.AvailabilityService
}

func NewAvailabilityHandler(service services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// DeclareWindow records a new open window for the authenticated doctor.
func (h *AvailabilityHandler) DeclareWindow(c *gin.Context) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input services.DeclareWindowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	availability, err := h.service.DeclareWindow(c.Request.Context(), principal, input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusCreated, "availability added", "success", availability)
}

// ListOwn returns the authenticated doctor's windows for the week ahead.
func (h *AvailabilityHandler) ListOwn(c *gin.Context) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	windows, err := h.service.ListOwnUpcoming(c.Request.Context(), principal)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, windows)
}

// ListForDoctor is the patient-facing view of a doctor's open windows.
func (h *AvailabilityHandler) ListForDoctor(c *gin.Context) {
	doctorID, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	windows, err := h.service.ListForDoctor(c.Request.Context(), doctorID)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, windows)
}
