package controllers

import (
	"MediDesk/handlers"
	"MediDesk/middlewares"
	"MediDesk/models"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	PatientHandler      *handlers.PatientHandler
	DoctorHandler       *handlers.DoctorHandler
	AvailabilityHandler *handlers.AvailabilityHandler
	AppointmentHandler  *handlers.AppointmentHandler
}

func NewPatientController(
	patientHandler *handlers.PatientHandler,
	doctorHandler *handlers.DoctorHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	appointmentHandler *handlers.AppointmentHandler,
) *PatientController {
	return &PatientController{
		PatientHandler:      patientHandler,
		DoctorHandler:       doctorHandler,
		AvailabilityHandler: availabilityHandler,
		AppointmentHandler:  appointmentHandler,
	}
}

// RegisterRoutes wires the patient-facing surface: doctor discovery, booking,
// own appointments, and the treatment history.
func (pc *PatientController) RegisterRoutes(router *gin.Engine) {
	patientGroup := router.Group("/patient").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RolePatient),
	)
	{
		patientGroup.GET("/profile", pc.PatientHandler.GetOwnProfile)
		patientGroup.PUT("/profile", pc.PatientHandler.UpdateOwnProfile)
		patientGroup.GET("/dashboard", pc.AppointmentHandler.UpcomingOwn)

		patientGroup.GET("/doctors", pc.DoctorHandler.Search)
		patientGroup.GET("/doctors/:id", pc.DoctorHandler.GetByID)
		patientGroup.GET("/doctors/:id/availability", pc.AvailabilityHandler.ListForDoctor)

		patientGroup.POST("/appointments", pc.AppointmentHandler.Book)
		patientGroup.GET("/appointments", pc.AppointmentHandler.ListOwn)
		patientGroup.POST("/appointments/:id/cancel", pc.AppointmentHandler.Cancel)
		patientGroup.GET("/history", pc.AppointmentHandler.HistoryOwn)
	}
}
