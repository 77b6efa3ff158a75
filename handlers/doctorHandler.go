package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service services.DoctorService
}

func NewDoctorHandler(service services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// Create provisions a doctor account with its profile. Admin route.
func (h *DoctorHandler) Create(c *gin.Context) {
	var input services.CreateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	doctor, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusCreated, "doctor added", "success", doctor)
}

func (h *DoctorHandler) GetByID(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// Search filters doctors by name or specialization substring and optionally
// by department. With no filters it lists everyone.
func (h *DoctorHandler) Search(c *gin.Context) {
	query := c.Query("q")
	var departmentID uint
	if deptStr := c.Query("department_id"); deptStr != "" {
		parsed, err := strconv.ParseUint(deptStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid department_id"})
			return
		}
		departmentID = uint(parsed)
	}

	doctors, err := h.service.Search(c.Request.Context(), query, departmentID)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// GetOwnProfile returns the profile of the authenticated doctor.
func (h *DoctorHandler) GetOwnProfile(c *gin.Context) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	doctor, err := h.service.GetByPrincipal(c.Request.Context(), principal)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input services.UpdateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	doctor, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusOK, "doctor updated", "success", doctor)
}

// Delete removes a doctor, their account, and their availability. Refused
// while the doctor still has appointments on record.
func (h *DoctorHandler) Delete(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusOK, "doctor removed", "success", nil)
}
