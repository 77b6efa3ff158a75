package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/models"
	"MediDesk/services"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service services.AppointmentService
}

func NewAppointmentHandler(service services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Book creates an appointment for the authenticated patient. A slot already
// occupied for the doctor, whatever the status of the occupying appointment,
// comes back as a conflict.
func (h *AppointmentHandler) Book(c *gin.Context) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input services.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	appointment, err := h.service.Book(c.Request.Context(), principal, input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusCreated, "appointment booked", "success", appointment)
}

// Cancel moves a booked appointment to cancelled. Works for the owning
// patient and the providing doctor.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), principal, id); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusOK, "appointment cancelled", "success", nil)
}

// Complete marks the appointment done and records the treatment. Doctor route.
func (h *AppointmentHandler) Complete(c *gin.Context) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input services.TreatmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	appointment, err := h.service.Complete(c.Request.Context(), principal, id, input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusOK, "appointment completed", "success", appointment)
}

// ListOwn returns every appointment of the authenticated patient.
func (h *AppointmentHandler) ListOwn(c *gin.Context) {
	h.respondList(c, h.service.ListOwn)
}

// UpcomingOwn returns the patient's booked appointments from today onward.
func (h *AppointmentHandler) UpcomingOwn(c *gin.Context) {
	h.respondList(c, h.service.UpcomingOwn)
}

// HistoryOwn returns the patient's completed appointments with treatments.
func (h *AppointmentHandler) HistoryOwn(c *gin.Context) {
	h.respondList(c, h.service.HistoryOwn)
}

// ListForDoctor returns every appointment of the authenticated doctor.
func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	h.respondList(c, h.service.ListForDoctor)
}

// WeekAhead returns the doctor's booked appointments for the next seven days.
func (h *AppointmentHandler) WeekAhead(c *gin.Context) {
	h.respondList(c, h.service.WeekAheadForDoctor)
}

// PatientHistory shows the doctor their completed visits with one patient.
func (h *AppointmentHandler) PatientHistory(c *gin.Context) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	patientID, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointments, err := h.service.PatientHistoryForDoctor(c.Request.Context(), principal, patientID)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// ListAll returns the full appointment ledger. Admin route.
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	appointments, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// Stats returns the admin dashboard counters.
func (h *AppointmentHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// respondList runs a principal-scoped listing and writes the result.
func (h *AppointmentHandler) respondList(c *gin.Context, list func(ctx context.Context, principal models.Principal) ([]models.Appointment, error)) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	appointments, err := list(c.Request.Context(), principal)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}
