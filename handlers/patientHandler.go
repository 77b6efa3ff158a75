package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service services.PatientService
}

func NewPatientHandler(service services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) GetByID(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// Search filters patients by name or contact number substring. Admin route.
func (h *PatientHandler) Search(c *gin.Context) {
	patients, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// GetOwnProfile returns the profile of the authenticated patient.
func (h *PatientHandler) GetOwnProfile(c *gin.Context) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	patient, err := h.service.GetByPrincipal(c.Request.Context(), principal)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// UpdateOwnProfile lets a patient edit their own demographic details.
func (h *PatientHandler) UpdateOwnProfile(c *gin.Context) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input services.UpdatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	patient, err := h.service.UpdateOwnProfile(c.Request.Context(), principal, input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusOK, "profile updated", "success", patient)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input services.UpdatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	patient, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusOK, "patient updated", "success", patient)
}

// Deactivate disables the patient's login without touching their history.
func (h *PatientHandler) Deactivate(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusOK, "patient deactivated", "success", nil)
}
