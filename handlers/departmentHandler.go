package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	service services.DepartmentService
}

func NewDepartmentHandler(service services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var input services.DepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	department, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusCreated, "department created", "success", department)
}

func (h *DepartmentHandler) GetByID(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

func (h *DepartmentHandler) GetAll(c *gin.Context) {
	departments, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input services.DepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	department, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusOK, "department updated", "success", department)
}

// Delete refuses to remove a department that still has doctors assigned.
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusOK, "department deleted", "success", nil)
}
