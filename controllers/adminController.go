package controllers

import (
	"MediDesk/handlers"
	"MediDesk/middlewares"
	"MediDesk/models"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	DepartmentHandler  *handlers.DepartmentHandler
	DoctorHandler      *handlers.DoctorHandler
	PatientHandler     *handlers.PatientHandler
	AppointmentHandler *handlers.AppointmentHandler
}

func NewAdminController(
	departmentHandler *handlers.DepartmentHandler,
	doctorHandler *handlers.DoctorHandler,
	patientHandler *handlers.PatientHandler,
	appointmentHandler *handlers.AppointmentHandler,
) *AdminController {
	return &AdminController{
		DepartmentHandler:  departmentHandler,
		DoctorHandler:      doctorHandler,
		PatientHandler:     patientHandler,
		AppointmentHandler: appointmentHandler,
	}
}

// RegisterRoutes wires the admin-only surface: directory management, the full
// appointment ledger, and the dashboard counters.
func (ac *AdminController) RegisterRoutes(router *gin.Engine) {
	adminGroup := router.Group("/admin").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
	)
	{
		adminGroup.GET("/dashboard", ac.AppointmentHandler.Stats)

		adminGroup.POST("/departments", ac.DepartmentHandler.Create)
		adminGroup.GET("/departments", ac.DepartmentHandler.GetAll)
		adminGroup.GET("/departments/:id", ac.DepartmentHandler.GetByID)
		adminGroup.PUT("/departments/:id", ac.DepartmentHandler.Update)
		adminGroup.DELETE("/departments/:id", ac.DepartmentHandler.Delete)

		adminGroup.POST("/doctors", ac.DoctorHandler.Create)
		adminGroup.GET("/doctors", ac.DoctorHandler.Search)
		adminGroup.GET("/doctors/:id", ac.DoctorHandler.GetByID)
		adminGroup.PUT("/doctors/:id", ac.DoctorHandler.Update)
		adminGroup.DELETE("/doctors/:id", ac.DoctorHandler.Delete)

		adminGroup.GET("/patients", ac.PatientHandler.Search)
		adminGroup.GET("/patients/:id", ac.PatientHandler.GetByID)
		adminGroup.PUT("/patients/:id", ac.PatientHandler.Update)
		adminGroup.DELETE("/patients/:id", ac.PatientHandler.Deactivate)

		adminGroup.GET("/appointments", ac.AppointmentHandler.ListAll)
	}
}
