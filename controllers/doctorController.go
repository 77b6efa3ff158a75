package controllers

import (
	"MediDesk/handlers"
	"MediDesk/middlewares"
	"MediDesk/models"

	"github.com/gin-gonic/gin"
)

type DoctorController struct {
	DoctorHandler       *handlers.DoctorHandler
	AvailabilityHandler *handlers.AvailabilityHandler
	AppointmentHandler  *handlers.AppointmentHandler
}

func NewDoctorController(
	doctorHandler *handlers.DoctorHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	appointmentHandler *handlers.AppointmentHandler,
) *DoctorController {
	return &DoctorController{
		DoctorHandler:       doctorHandler,
		AvailabilityHandler: availabilityHandler,
		AppointmentHandler:  appointmentHandler,
	}
}

// RegisterRoutes wires the doctor-facing surface: own profile, availability
// windows, the appointment worklist, and treatment recording.
func (dc *DoctorController) RegisterRoutes(router *gin.Engine) {
	doctorGroup := router.Group("/doctor").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleDoctor),
	)
	{
		doctorGroup.GET("/profile", dc.DoctorHandler.GetOwnProfile)
		doctorGroup.GET("/dashboard", dc.AppointmentHandler.WeekAhead)

		doctorGroup.POST("/availability", dc.AvailabilityHandler.DeclareWindow)
		doctorGroup.GET("/availability", dc.AvailabilityHandler.ListOwn)

		doctorGroup.GET("/appointments", dc.AppointmentHandler.ListForDoctor)
		doctorGroup.POST("/appointments/:id/complete", dc.AppointmentHandler.Complete)
		doctorGroup.POST("/appointments/:id/cancel", dc.AppointmentHandler.Cancel)

		doctorGroup.GET("/patients/:id/history", dc.AppointmentHandler.PatientHistory)
	}
}
